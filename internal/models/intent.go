package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// IntentStatus is the merchant-facing lifecycle state of a payment intent,
// derived from the status of its active attempt.
type IntentStatus string

const (
	IntentStatusSucceeded                      IntentStatus = "succeeded"
	IntentStatusFailed                         IntentStatus = "failed"
	IntentStatusCancelled                      IntentStatus = "cancelled"
	IntentStatusProcessing                     IntentStatus = "processing"
	IntentStatusRequiresCustomerAction         IntentStatus = "requires_customer_action"
	IntentStatusRequiresMerchantAction         IntentStatus = "requires_merchant_action"
	IntentStatusRequiresPaymentMethod          IntentStatus = "requires_payment_method"
	IntentStatusRequiresConfirmation           IntentStatus = "requires_confirmation"
	IntentStatusRequiresCapture                IntentStatus = "requires_capture"
	IntentStatusPartiallyCaptured              IntentStatus = "partially_captured"
	IntentStatusPartiallyCapturedAndCapturable IntentStatus = "partially_captured_and_capturable"
)

// AllIntentStatuses lists every defined intent status.
var AllIntentStatuses = []IntentStatus{
	IntentStatusSucceeded,
	IntentStatusFailed,
	IntentStatusCancelled,
	IntentStatusProcessing,
	IntentStatusRequiresCustomerAction,
	IntentStatusRequiresMerchantAction,
	IntentStatusRequiresPaymentMethod,
	IntentStatusRequiresConfirmation,
	IntentStatusRequiresCapture,
	IntentStatusPartiallyCaptured,
	IntentStatusPartiallyCapturedAndCapturable,
}

// EventType reports the outgoing event a transition into this status should
// raise. The second result is false for intermediate states that merchants
// never get notified about.
func (s IntentStatus) EventType() (EventType, bool) {
	switch s {
	case IntentStatusSucceeded:
		return EventTypePaymentSucceeded, true
	case IntentStatusFailed:
		return EventTypePaymentFailed, true
	case IntentStatusProcessing:
		return EventTypePaymentProcessing, true
	case IntentStatusRequiresMerchantAction:
		return EventTypeActionRequired, true
	case IntentStatusRequiresCustomerAction:
		return EventTypeActionRequired, true
	case IntentStatusCancelled:
		return EventTypePaymentCancelled, true
	case IntentStatusRequiresCapture:
		return EventTypePaymentAuthorized, true
	case IntentStatusPartiallyCaptured, IntentStatusPartiallyCapturedAndCapturable:
		return EventTypePaymentCaptured, true
	case IntentStatusRequiresPaymentMethod, IntentStatusRequiresConfirmation:
		return "", false
	}
	return "", false
}

// PaymentIntent is the merchant-facing payment record. Its status is always
// derived, never written directly by callers.
type PaymentIntent struct {
	PaymentID       string
	MerchantID      string
	Status          IntentStatus
	Amount          decimal.Decimal
	AmountCaptured  decimal.Decimal
	Currency        string
	ActiveAttemptID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
