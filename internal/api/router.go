package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/akylbek/payment-system/status-engine/internal/handlers"
	"github.com/akylbek/payment-system/status-engine/internal/interfaces"
	"github.com/akylbek/payment-system/status-engine/internal/service"
	"github.com/akylbek/payment-system/status-engine/internal/telemetry"
)

func NewRouter(repo interfaces.PaymentStatusRepository, engine *service.Engine, processor *service.WebhookProcessor) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(telemetry.TracingMiddleware())

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "status-engine"})
	})

	statusHandler := handlers.NewPaymentStatusHandler(repo, engine)
	webhookHandler := handlers.NewWebhookHandler(processor)
	eventHandler := handlers.NewEventHandler(repo)

	// Merchant-facing routes run behind trusted header validation.
	payments := r.Group("/payments", handlers.TrustedHeaders())
	payments.POST("/:id/attempts/:attempt_id/status", statusHandler.UpdateAttemptStatus)
	payments.GET("/:id/status", statusHandler.GetPaymentStatus)

	r.GET("/events", handlers.TrustedHeaders(), eventHandler.ListEvents)

	// Connector notifications carry no trusted headers.
	r.POST("/webhooks/:connector", webhookHandler.HandleWebhook)

	return r
}
