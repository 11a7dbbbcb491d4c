package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bitbucket.org/mmdatafocus/alerts_backend/models"
	"bitbucket.org/mmdatafocus/alerts_backend/provider"
	"bitbucket.org/mmdatafocus/alerts_backend/utils"
)

type createRuleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	AlertType   string `json:"alert_type" binding:"required,oneof=ar expense"`
	Severity    string `json:"severity" binding:"required,oneof=critical warning info"`
	Field       string `json:"field" binding:"required"`
	Operator    string `json:"operator" binding:"required,oneof=greaterThan lessThan"`
	// Pointer so a zero threshold passes required.
	Value *float64 `json:"value" binding:"required"`
}

type updateRuleRequest struct {
	Enabled     *bool  `json:"enabled"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func registerRuleRoutes(r *gin.Engine) {
	rules := r.Group("/api/rules")

	rules.GET("", func(c *gin.Context) {
		list, err := dataProvider().GetAlertRules(c.Request.Context(), time.Now())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	rules.POST("", func(c *gin.Context) {
		var req createRuleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": utils.MapValidationErrors(err)})
			return
		}
		rule := models.AlertRule{
			Name:        req.Name,
			Description: req.Description,
			AlertType:   models.AlertType(req.AlertType),
			Severity:    models.Severity(req.Severity),
			Condition: models.RuleCondition{
				Field:    req.Field,
				Operator: models.RuleOperator(req.Operator),
				Value:    *req.Value,
			},
		}
		created, err := dataProvider().CreateAlertRule(c.Request.Context(), rule, time.Now())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	})

	rules.PATCH("/:id", func(c *gin.Context) {
		var req updateRuleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		changes := provider.RuleChanges{
			Enabled:     req.Enabled,
			Name:        req.Name,
			Description: req.Description,
		}
		if err := dataProvider().UpdateAlertRule(c.Request.Context(), c.Param("id"), changes); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	rules.DELETE("/:id", func(c *gin.Context) {
		if err := dataProvider().DeleteAlertRule(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
}
