package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akylbek/payment-system/status-engine/internal/models"
	"github.com/akylbek/payment-system/status-engine/internal/telemetry"
)

const headerPayloadKey = "header_payload"

// TrustedHeaders validates the trusted gateway headers on every request and
// stores the resulting payload in the request context. A request claiming an
// internal-only confirm source never reaches a handler.
func TrustedHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := models.HeaderPayloadFromHeaders(c.Request.Header)
		if err != nil {
			telemetry.HeaderRejections.Inc()
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.Set(headerPayloadKey, payload)
		c.Next()
	}
}

// HeaderPayloadFromContext returns the payload stored by TrustedHeaders, or
// nil when the middleware did not run.
func HeaderPayloadFromContext(c *gin.Context) *models.HeaderPayload {
	value, ok := c.Get(headerPayloadKey)
	if !ok {
		return nil
	}
	payload, ok := value.(*models.HeaderPayload)
	if !ok {
		return nil
	}
	return payload
}
