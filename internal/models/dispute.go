package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/akylbek/payment-system/status-engine/internal/apperrors"
)

// DisputeStatus is the lifecycle state of a dispute raised against a payment.
type DisputeStatus string

const (
	DisputeStatusOpened     DisputeStatus = "dispute_opened"
	DisputeStatusExpired    DisputeStatus = "dispute_expired"
	DisputeStatusAccepted   DisputeStatus = "dispute_accepted"
	DisputeStatusCancelled  DisputeStatus = "dispute_cancelled"
	DisputeStatusChallenged DisputeStatus = "dispute_challenged"
	DisputeStatusWon        DisputeStatus = "dispute_won"
	DisputeStatusLost       DisputeStatus = "dispute_lost"
)

// AllDisputeStatuses lists every defined dispute status.
var AllDisputeStatuses = []DisputeStatus{
	DisputeStatusOpened,
	DisputeStatusExpired,
	DisputeStatusAccepted,
	DisputeStatusCancelled,
	DisputeStatusChallenged,
	DisputeStatusWon,
	DisputeStatusLost,
}

// DisputeStage is how far along the card-network process a dispute is.
type DisputeStage string

const (
	DisputeStagePreDispute     DisputeStage = "pre_dispute"
	DisputeStageDispute        DisputeStage = "dispute"
	DisputeStagePreArbitration DisputeStage = "pre_arbitration"
)

// AllDisputeStages lists every defined dispute stage.
var AllDisputeStages = []DisputeStage{
	DisputeStagePreDispute,
	DisputeStageDispute,
	DisputeStagePreArbitration,
}

// ParseDisputeStage validates a raw dispute stage string.
func ParseDisputeStage(value string) (DisputeStage, error) {
	s := DisputeStage(value)
	for _, known := range AllDisputeStages {
		if s == known {
			return s, nil
		}
	}
	return "", &apperrors.IncorrectValueProvided{FieldName: "dispute_stage"}
}

// EventType reports the outgoing event for this dispute status. Every
// dispute transition notifies the merchant, so unlike payments and refunds
// there is no silent case.
func (s DisputeStatus) EventType() EventType {
	switch s {
	case DisputeStatusOpened:
		return EventTypeDisputeOpened
	case DisputeStatusExpired:
		return EventTypeDisputeExpired
	case DisputeStatusAccepted:
		return EventTypeDisputeAccepted
	case DisputeStatusCancelled:
		return EventTypeDisputeCancelled
	case DisputeStatusChallenged:
		return EventTypeDisputeChallenged
	case DisputeStatusWon:
		return EventTypeDisputeWon
	case DisputeStatusLost:
		return EventTypeDisputeLost
	}
	return EventTypeDisputeOpened
}

// DisputeStatusFromWebhookEvent maps an incoming dispute-class webhook event
// to the dispute status it implies. Events outside the dispute domain are
// rejected.
func DisputeStatusFromWebhookEvent(event IncomingWebhookEvent) (DisputeStatus, error) {
	switch event {
	case WebhookEventDisputeOpened:
		return DisputeStatusOpened, nil
	case WebhookEventDisputeExpired:
		return DisputeStatusExpired, nil
	case WebhookEventDisputeAccepted:
		return DisputeStatusAccepted, nil
	case WebhookEventDisputeCancelled:
		return DisputeStatusCancelled, nil
	case WebhookEventDisputeChallenged:
		return DisputeStatusChallenged, nil
	case WebhookEventDisputeWon:
		return DisputeStatusWon, nil
	case WebhookEventDisputeLost:
		return DisputeStatusLost, nil
	}
	return "", &apperrors.IncorrectValueProvided{FieldName: "incoming_webhook_event"}
}

// Dispute is a chargeback or inquiry raised by a cardholder against a
// captured payment.
type Dispute struct {
	DisputeID       string
	PaymentID       string
	AttemptID       string
	MerchantID      string
	Status          DisputeStatus
	Stage           DisputeStage
	Amount          decimal.Decimal
	Currency        string
	Connector       RoutableConnector
	ConnectorReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
