package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WebhooksReceived counts incoming connector webhooks by connector and
	// outcome (processed, duplicate, acknowledged, ignored, rejected).
	WebhooksReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "status_engine_webhooks_received_total",
		Help: "Incoming connector webhooks by connector and outcome.",
	}, []string{"connector", "outcome"})

	// EventsEmitted counts outgoing merchant events by event class.
	EventsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "status_engine_events_emitted_total",
		Help: "Outgoing merchant events by event class.",
	}, []string{"event_class"})

	// AttemptUpdates counts attempt status updates by outcome
	// (applied, invalid, locked).
	AttemptUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "status_engine_attempt_updates_total",
		Help: "Attempt status updates by outcome.",
	}, []string{"outcome"})

	// HeaderRejections counts requests refused by trusted header validation.
	HeaderRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "status_engine_header_rejections_total",
		Help: "Requests rejected by trusted header validation.",
	})
)
