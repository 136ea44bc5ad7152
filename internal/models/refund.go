package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/akylbek/payment-system/status-engine/internal/apperrors"
)

// RefundStatus is the lifecycle state of a refund.
type RefundStatus string

const (
	RefundStatusFailure            RefundStatus = "failure"
	RefundStatusManualReview       RefundStatus = "manual_review"
	RefundStatusPending            RefundStatus = "pending"
	RefundStatusSuccess            RefundStatus = "success"
	RefundStatusTransactionFailure RefundStatus = "transaction_failure"
)

// AllRefundStatuses lists every defined refund status.
var AllRefundStatuses = []RefundStatus{
	RefundStatusFailure,
	RefundStatusManualReview,
	RefundStatusPending,
	RefundStatusSuccess,
	RefundStatusTransactionFailure,
}

// EventType reports the outgoing event a transition into this status should
// raise; manual review and transaction failure are internal states and raise
// nothing.
func (s RefundStatus) EventType() (EventType, bool) {
	switch s {
	case RefundStatusSuccess:
		return EventTypeRefundSucceeded, true
	case RefundStatusFailure:
		return EventTypeRefundFailed, true
	case RefundStatusManualReview, RefundStatusPending, RefundStatusTransactionFailure:
		return "", false
	}
	return "", false
}

// RefundStatusFromWebhookEvent maps an incoming refund-class webhook event to
// the refund status it implies. Events outside the refund domain are
// rejected; a connector must not be able to move a refund by sending a
// payment or dispute notification.
func RefundStatusFromWebhookEvent(event IncomingWebhookEvent) (RefundStatus, error) {
	switch event {
	case WebhookEventRefundSuccess:
		return RefundStatusSuccess, nil
	case WebhookEventRefundFailure:
		return RefundStatusFailure, nil
	}
	return "", &apperrors.IncorrectValueProvided{FieldName: "incoming_webhook_event_type"}
}

// Refund is a full or partial return of captured funds.
type Refund struct {
	RefundID   string
	PaymentID  string
	AttemptID  string
	MerchantID string
	Status     RefundStatus
	Amount     decimal.Decimal
	Currency   string
	Connector  RoutableConnector
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
