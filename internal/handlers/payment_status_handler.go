package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akylbek/payment-system/status-engine/internal/interfaces"
	"github.com/akylbek/payment-system/status-engine/internal/models"
	"github.com/akylbek/payment-system/status-engine/internal/service"
	"github.com/akylbek/payment-system/status-engine/internal/telemetry"
)

type PaymentStatusHandler struct {
	repo   interfaces.PaymentStatusRepository
	engine *service.Engine
}

func NewPaymentStatusHandler(repo interfaces.PaymentStatusRepository, engine *service.Engine) *PaymentStatusHandler {
	return &PaymentStatusHandler{repo: repo, engine: engine}
}

// UpdateAttemptStatus is the synchronous variant of the attempt update
// stream: same payload, same processing.
func (h *PaymentStatusHandler) UpdateAttemptStatus(c *gin.Context) {
	var update models.AttemptUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		telemetry.Logger.Error("Error decoding attempt update", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	update.PaymentID = c.Param("id")
	update.AttemptID = c.Param("attempt_id")

	if err := h.engine.ProcessAttemptUpdate(c.Request.Context(), &update, HeaderPayloadFromContext(c)); err != nil {
		telemetry.Logger.Error("Error processing attempt update",
			zap.String("payment_id", update.PaymentID),
			zap.String("attempt_id", update.AttemptID),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "applied",
		"payment_id": update.PaymentID,
		"attempt_id": update.AttemptID,
	})
}

// GetPaymentStatus returns the derived intent status together with its
// attempt summaries.
func (h *PaymentStatusHandler) GetPaymentStatus(c *gin.Context) {
	paymentID := c.Param("id")

	intent, err := h.repo.GetIntent(c.Request.Context(), paymentID)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment status"})
		return
	}

	attempts, err := h.repo.ListAttempts(c.Request.Context(), paymentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment attempts"})
		return
	}

	summaries := make([]gin.H, 0, len(attempts))
	for _, attempt := range attempts {
		summaries = append(summaries, gin.H{
			"attempt_id": attempt.AttemptID,
			"status":     attempt.Status,
			"connector":  attempt.Connector,
			"amount":     attempt.Amount,
			"currency":   attempt.Currency,
			"updated_at": attempt.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"payment_id":        intent.PaymentID,
		"status":            intent.Status,
		"amount":            intent.Amount,
		"amount_captured":   intent.AmountCaptured,
		"currency":          intent.Currency,
		"active_attempt_id": intent.ActiveAttemptID,
		"attempts":          summaries,
		"updated_at":        intent.UpdatedAt,
	})
}
