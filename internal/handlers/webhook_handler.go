package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akylbek/payment-system/status-engine/internal/models"
	"github.com/akylbek/payment-system/status-engine/internal/service"
	"github.com/akylbek/payment-system/status-engine/internal/telemetry"
)

type WebhookHandler struct {
	processor *service.WebhookProcessor
}

func NewWebhookHandler(processor *service.WebhookProcessor) *WebhookHandler {
	return &WebhookHandler{processor: processor}
}

// HandleWebhook ingests one connector notification.
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	connector := c.Param("connector")

	var webhook models.IncomingWebhook
	if err := c.ShouldBindJSON(&webhook); err != nil {
		telemetry.Logger.Error("Error decoding webhook body",
			zap.String("connector", connector),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	outcome, err := h.processor.Process(c.Request.Context(), connector, webhook)
	if err != nil {
		telemetry.Logger.Error("Error processing webhook",
			zap.String("connector", connector),
			zap.String("object_id", webhook.ObjectID),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"outcome":   outcome,
		"object_id": webhook.ObjectID,
	})
}
