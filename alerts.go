package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bitbucket.org/mmdatafocus/alerts_backend/models"
	"bitbucket.org/mmdatafocus/alerts_backend/utils"
)

// respondError maps domain errors onto HTTP statuses. Store I/O failures are
// the caller's to retry, surfaced as 502.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrorRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, utils.ErrorNotDeletable),
		errors.Is(err, utils.ErrorAlreadySent),
		errors.Is(err, utils.ErrorAlreadyHandled),
		errors.Is(err, utils.ErrorInvalidStatus):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "storage unavailable, try again"})
	}
}

type handleRequest struct {
	Note string `json:"note"`
}

type snoozeRequest struct {
	Days int `json:"days" binding:"required,min=1,max=90"`
}

type dismissRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func markHandledHandler(alertType models.AlertType) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req handleRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
				return
			}
		}
		if err := dataProvider().MarkAlertHandled(c.Request.Context(), c.Param("id"), alertType, req.Note, time.Now()); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func snoozeHandler(alertType models.AlertType) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req snoozeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 90"})
			return
		}
		if err := dataProvider().SnoozeAlert(c.Request.Context(), c.Param("id"), alertType, req.Days, time.Now()); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func dismissHandler(alertType models.AlertType) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dismissRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "reason is required"})
			return
		}
		if err := dataProvider().DismissAlert(c.Request.Context(), c.Param("id"), alertType, req.Reason, time.Now()); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func registerAlertRoutes(r *gin.Engine) {
	ar := r.Group("/api/ar-alerts")
	{
		ar.GET("", func(c *gin.Context) {
			alerts, err := dataProvider().GetARAlerts(c.Request.Context(), time.Now())
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, alerts)
		})
		ar.GET("/aging-summary", func(c *gin.Context) {
			summary, err := dataProvider().GetARAgingSummary(c.Request.Context(), time.Now())
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, summary)
		})
		ar.GET("/:id", func(c *gin.Context) {
			alert, err := dataProvider().GetARAlertDetail(c.Request.Context(), c.Param("id"), time.Now())
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, alert)
		})
		ar.POST("/:id/handle", markHandledHandler(models.AlertTypeAR))
		ar.POST("/:id/snooze", snoozeHandler(models.AlertTypeAR))
		ar.POST("/:id/dismiss", dismissHandler(models.AlertTypeAR))
	}

	exp := r.Group("/api/expense-alerts")
	{
		exp.GET("", func(c *gin.Context) {
			alerts, err := dataProvider().GetExpenseAlerts(c.Request.Context(), time.Now())
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, alerts)
		})
		exp.GET("/:id", func(c *gin.Context) {
			alert, err := dataProvider().GetExpenseAlertDetail(c.Request.Context(), c.Param("id"), time.Now())
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, alert)
		})
		exp.POST("/:id/handle", markHandledHandler(models.AlertTypeExpense))
		exp.POST("/:id/snooze", snoozeHandler(models.AlertTypeExpense))
		exp.POST("/:id/dismiss", dismissHandler(models.AlertTypeExpense))
	}

	// Irreversible: clears every persisted namespace.
	r.POST("/api/admin/reset", func(c *gin.Context) {
		if err := dataProvider().ResetAllData(c.Request.Context()); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
}
