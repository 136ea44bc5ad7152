package models

import (
	"encoding/json"
	"time"

	"github.com/akylbek/payment-system/status-engine/internal/apperrors"
)

// EventType identifies an outgoing notification delivered to merchants.
type EventType string

const (
	EventTypePaymentSucceeded  EventType = "payment_succeeded"
	EventTypePaymentFailed     EventType = "payment_failed"
	EventTypePaymentProcessing EventType = "payment_processing"
	EventTypePaymentCancelled  EventType = "payment_cancelled"
	EventTypePaymentAuthorized EventType = "payment_authorized"
	EventTypePaymentCaptured   EventType = "payment_captured"
	EventTypeActionRequired    EventType = "action_required"
	EventTypeRefundSucceeded   EventType = "refund_succeeded"
	EventTypeRefundFailed      EventType = "refund_failed"
	EventTypeDisputeOpened     EventType = "dispute_opened"
	EventTypeDisputeExpired    EventType = "dispute_expired"
	EventTypeDisputeAccepted   EventType = "dispute_accepted"
	EventTypeDisputeCancelled  EventType = "dispute_cancelled"
	EventTypeDisputeChallenged EventType = "dispute_challenged"
	EventTypeDisputeWon        EventType = "dispute_won"
	EventTypeDisputeLost       EventType = "dispute_lost"
	EventTypeMandateActive     EventType = "mandate_active"
	EventTypeMandateRevoked    EventType = "mandate_revoked"
)

// AllEventTypes lists every defined outgoing event type.
var AllEventTypes = []EventType{
	EventTypePaymentSucceeded,
	EventTypePaymentFailed,
	EventTypePaymentProcessing,
	EventTypePaymentCancelled,
	EventTypePaymentAuthorized,
	EventTypePaymentCaptured,
	EventTypeActionRequired,
	EventTypeRefundSucceeded,
	EventTypeRefundFailed,
	EventTypeDisputeOpened,
	EventTypeDisputeExpired,
	EventTypeDisputeAccepted,
	EventTypeDisputeCancelled,
	EventTypeDisputeChallenged,
	EventTypeDisputeWon,
	EventTypeDisputeLost,
	EventTypeMandateActive,
	EventTypeMandateRevoked,
}

// EventClass groups event types by the domain object they describe.
type EventClass string

const (
	EventClassPayment EventClass = "payments"
	EventClassRefund  EventClass = "refunds"
	EventClassDispute EventClass = "disputes"
	EventClassMandate EventClass = "mandates"
)

// Class reports the domain object an event type describes.
func (t EventType) Class() EventClass {
	switch t {
	case EventTypePaymentSucceeded, EventTypePaymentFailed,
		EventTypePaymentProcessing, EventTypePaymentCancelled,
		EventTypePaymentAuthorized, EventTypePaymentCaptured,
		EventTypeActionRequired:
		return EventClassPayment
	case EventTypeRefundSucceeded, EventTypeRefundFailed:
		return EventClassRefund
	case EventTypeDisputeOpened, EventTypeDisputeExpired,
		EventTypeDisputeAccepted, EventTypeDisputeCancelled,
		EventTypeDisputeChallenged, EventTypeDisputeWon, EventTypeDisputeLost:
		return EventClassDispute
	case EventTypeMandateActive, EventTypeMandateRevoked:
		return EventClassMandate
	}
	return EventClassPayment
}

// ObjectType identifies the kind of domain object an event references.
type ObjectType string

const (
	ObjectTypePaymentDetails ObjectType = "payment_details"
	ObjectTypeRefundDetails  ObjectType = "refund_details"
	ObjectTypeDisputeDetails ObjectType = "dispute_details"
	ObjectTypeMandateDetails ObjectType = "mandate_details"
)

// AllObjectTypes lists every defined event object type.
var AllObjectTypes = []ObjectType{
	ObjectTypePaymentDetails,
	ObjectTypeRefundDetails,
	ObjectTypeDisputeDetails,
	ObjectTypeMandateDetails,
}

// ParseObjectType validates a raw object type string.
func ParseObjectType(value string) (ObjectType, error) {
	t := ObjectType(value)
	for _, known := range AllObjectTypes {
		if t == known {
			return t, nil
		}
	}
	return "", &apperrors.IncorrectValueProvided{FieldName: "object_type"}
}

// Event is one recorded outgoing notification.
type Event struct {
	EventID    string          `json:"event_id"`
	EventType  EventType       `json:"event_type"`
	EventClass EventClass      `json:"event_class"`
	ObjectID   string          `json:"object_id"`
	ObjectType ObjectType      `json:"object_type"`
	MerchantID string          `json:"merchant_id"`
	PaymentID  string          `json:"payment_id"`
	Content    json.RawMessage `json:"content,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// EventListConstraints filters an event listing. ObjectID lookups and
// attribute filters are mutually exclusive because an object-scoped listing
// already pins every other attribute.
type EventListConstraints struct {
	ObjectID      string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Limit         int
	Offset        int
}

// Validate rejects constraint combinations that cannot be answered
// coherently.
func (c EventListConstraints) Validate() error {
	if c.ObjectID == "" {
		return nil
	}
	if c.CreatedAfter != nil || c.CreatedBefore != nil || c.Limit != 0 ||
		c.Offset != 0 {
		return &apperrors.PreconditionFailed{
			Message: "object_id must not be combined with other event list filters",
		}
	}
	return nil
}
