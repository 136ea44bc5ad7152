package models

import (
	"time"

	"github.com/akylbek/payment-system/status-engine/internal/apperrors"
)

// MandateStatus is the lifecycle state of a recurring-payment mandate.
type MandateStatus string

const (
	MandateStatusActive   MandateStatus = "active"
	MandateStatusInactive MandateStatus = "inactive"
	MandateStatusPending  MandateStatus = "pending"
	MandateStatusRevoked  MandateStatus = "revoked"
)

// AllMandateStatuses lists every defined mandate status.
var AllMandateStatuses = []MandateStatus{
	MandateStatusActive,
	MandateStatusInactive,
	MandateStatusPending,
	MandateStatusRevoked,
}

// EventType reports the outgoing event for this mandate status. Pending and
// inactive are intermediate states and raise nothing.
func (s MandateStatus) EventType() (EventType, bool) {
	switch s {
	case MandateStatusActive:
		return EventTypeMandateActive, true
	case MandateStatusRevoked:
		return EventTypeMandateRevoked, true
	case MandateStatusInactive, MandateStatusPending:
		return "", false
	}
	return "", false
}

// MandateStatusFromWebhookEvent maps an incoming mandate-class webhook event
// to the mandate status it implies. Events outside the mandate domain are
// rejected.
func MandateStatusFromWebhookEvent(event IncomingWebhookEvent) (MandateStatus, error) {
	switch event {
	case WebhookEventMandateActive:
		return MandateStatusActive, nil
	case WebhookEventMandateRevoked:
		return MandateStatusRevoked, nil
	}
	return "", &apperrors.IncorrectValueProvided{FieldName: "incoming_webhook_event_type"}
}

// Mandate is a customer's standing authorization for recurring charges.
type Mandate struct {
	MandateID  string
	PaymentID  string
	MerchantID string
	Status     MandateStatus
	Connector  RoutableConnector
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
