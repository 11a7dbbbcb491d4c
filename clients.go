package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bitbucket.org/mmdatafocus/alerts_backend/models"
	"bitbucket.org/mmdatafocus/alerts_backend/utils"
)

type clientStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=normal slow_payer payment_arrangement sensitive disputed"`
}

type clientResponse struct {
	models.Client
	PhoneDisplay string `json:"phone_display"`
}

func registerClientRoutes(r *gin.Engine) {
	clients := r.Group("/api/clients")

	clients.GET("", func(c *gin.Context) {
		overrides, err := dataProvider().GetClientStatuses(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		out := make([]clientResponse, 0, len(models.Clients))
		for _, client := range models.Clients {
			if status, ok := overrides[client.ID]; ok {
				client.Status = status
			}
			out = append(out, clientResponse{
				Client:       client,
				PhoneDisplay: utils.FormatPhoneNational(client.Contacts.Primary.Phone),
			})
		}
		c.JSON(http.StatusOK, out)
	})

	clients.GET("/statuses", func(c *gin.Context) {
		statuses, err := dataProvider().GetClientStatuses(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, statuses)
	})

	clients.PUT("/:id/status", func(c *gin.Context) {
		var req clientStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": utils.MapValidationErrors(err)})
			return
		}
		status, err := models.ParseClientStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := dataProvider().UpdateClientStatus(c.Request.Context(), c.Param("id"), status); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
}
