package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bitbucket.org/mmdatafocus/alerts_backend/provider"
	"bitbucket.org/mmdatafocus/alerts_backend/utils"
)

type approveReminderRequest struct {
	ApprovedBy string `json:"approved_by"`
}

func registerReminderRoutes(r *gin.Engine) {
	reminders := r.Group("/api/reminders")

	reminders.GET("/pending", func(c *gin.Context) {
		pending, err := dataProvider().GetPendingApprovals(c.Request.Context(), time.Now())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, pending)
	})

	reminders.POST("/:id/approve", func(c *gin.Context) {
		var req approveReminderRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
				return
			}
		}
		approvedBy := req.ApprovedBy
		if approvedBy == "" {
			approvedBy, _ = utils.GetActorFromContext(c.Request.Context())
		}
		if approvedBy == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "approved_by or x-actor header is required"})
			return
		}
		if err := dataProvider().ApproveReminder(c.Request.Context(), c.Param("id"), approvedBy, time.Now()); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	reminders.POST("/:id/cancel", func(c *gin.Context) {
		if err := dataProvider().CancelReminder(c.Request.Context(), c.Param("id"), time.Now()); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	reminders.POST("/:id/send", func(c *gin.Context) {
		if err := dataProvider().MarkReminderSent(c.Request.Context(), c.Param("id"), time.Now()); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	reminders.GET("/:id/draft", func(c *gin.Context) {
		opts := provider.DraftOptions{
			FromBillingCommittee: c.Query("from") == "billing",
		}
		subject, body, err := dataProvider().GetReminderDraft(c.Request.Context(), c.Param("id"), opts, time.Now())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"subject": subject, "body": body})
	})
}
