package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akylbek/payment-system/status-engine/internal/apperrors"
	"github.com/akylbek/payment-system/status-engine/internal/service"
)

// respondError translates an error from the engine or the webhook pipeline
// into an HTTP response.
func respondError(c *gin.Context, err error) {
	var precondition *apperrors.PreconditionFailed
	var invalidData *apperrors.InvalidRequestData
	var incorrectValue *apperrors.IncorrectValueProvided
	var invalidValue *apperrors.InvalidValue

	switch {
	case errors.As(err, &precondition):
		c.JSON(http.StatusBadRequest, gin.H{"error": precondition.Message})
	case errors.As(err, &invalidData):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidData.Message})
	case errors.As(err, &incorrectValue):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      incorrectValue.Error(),
			"field_name": incorrectValue.FieldName,
		})
	case errors.As(err, &invalidValue):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": invalidValue.Message})
	case errors.Is(err, service.ErrWebhookRejected):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "webhook source verification rejected"})
	case errors.Is(err, service.ErrVerifierUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "webhook source verification unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
