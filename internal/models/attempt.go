package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/akylbek/payment-system/status-engine/internal/apperrors"
)

// AttemptStatus is the connector-facing lifecycle state of a single payment
// attempt. Values originate from connector response processing and from the
// attempt update stream; ParseAttemptStatus is the boundary for raw strings.
type AttemptStatus string

const (
	AttemptStatusStarted                     AttemptStatus = "started"
	AttemptStatusAuthenticationFailed        AttemptStatus = "authentication_failed"
	AttemptStatusRouterDeclined              AttemptStatus = "router_declined"
	AttemptStatusAuthenticationPending       AttemptStatus = "authentication_pending"
	AttemptStatusAuthenticationSuccessful    AttemptStatus = "authentication_successful"
	AttemptStatusAuthorized                  AttemptStatus = "authorized"
	AttemptStatusAuthorizationFailed         AttemptStatus = "authorization_failed"
	AttemptStatusCharged                     AttemptStatus = "charged"
	AttemptStatusAuthorizing                 AttemptStatus = "authorizing"
	AttemptStatusCodInitiated                AttemptStatus = "cod_initiated"
	AttemptStatusVoided                      AttemptStatus = "voided"
	AttemptStatusVoidInitiated               AttemptStatus = "void_initiated"
	AttemptStatusCaptureInitiated            AttemptStatus = "capture_initiated"
	AttemptStatusCaptureFailed               AttemptStatus = "capture_failed"
	AttemptStatusVoidFailed                  AttemptStatus = "void_failed"
	AttemptStatusAutoRefunded                AttemptStatus = "auto_refunded"
	AttemptStatusPartialCharged              AttemptStatus = "partial_charged"
	AttemptStatusPartialChargedAndChargeable AttemptStatus = "partial_charged_and_chargeable"
	AttemptStatusUnresolved                  AttemptStatus = "unresolved"
	AttemptStatusPending                     AttemptStatus = "pending"
	AttemptStatusFailure                     AttemptStatus = "failure"
	AttemptStatusPaymentMethodAwaited        AttemptStatus = "payment_method_awaited"
	AttemptStatusConfirmationAwaited         AttemptStatus = "confirmation_awaited"
	AttemptStatusDeviceDataCollectionPending AttemptStatus = "device_data_collection_pending"
)

// AllAttemptStatuses lists every defined attempt status.
var AllAttemptStatuses = []AttemptStatus{
	AttemptStatusStarted,
	AttemptStatusAuthenticationFailed,
	AttemptStatusRouterDeclined,
	AttemptStatusAuthenticationPending,
	AttemptStatusAuthenticationSuccessful,
	AttemptStatusAuthorized,
	AttemptStatusAuthorizationFailed,
	AttemptStatusCharged,
	AttemptStatusAuthorizing,
	AttemptStatusCodInitiated,
	AttemptStatusVoided,
	AttemptStatusVoidInitiated,
	AttemptStatusCaptureInitiated,
	AttemptStatusCaptureFailed,
	AttemptStatusVoidFailed,
	AttemptStatusAutoRefunded,
	AttemptStatusPartialCharged,
	AttemptStatusPartialChargedAndChargeable,
	AttemptStatusUnresolved,
	AttemptStatusPending,
	AttemptStatusFailure,
	AttemptStatusPaymentMethodAwaited,
	AttemptStatusConfirmationAwaited,
	AttemptStatusDeviceDataCollectionPending,
}

// ParseAttemptStatus validates a raw attempt status string.
func ParseAttemptStatus(value string) (AttemptStatus, error) {
	s := AttemptStatus(value)
	for _, known := range AllAttemptStatuses {
		if s == known {
			return s, nil
		}
	}
	return "", &apperrors.IncorrectValueProvided{FieldName: "attempt_status"}
}

// IntentStatus collapses the attempt status into the merchant-facing intent
// status. Outcomes that are operationally distinct to a connector are
// indistinguishable to a merchant and fold into one intent state.
func (s AttemptStatus) IntentStatus() IntentStatus {
	switch s {
	case AttemptStatusCharged, AttemptStatusAutoRefunded:
		return IntentStatusSucceeded
	case AttemptStatusConfirmationAwaited:
		return IntentStatusRequiresConfirmation
	case AttemptStatusPaymentMethodAwaited:
		return IntentStatusRequiresPaymentMethod
	case AttemptStatusAuthorized:
		return IntentStatusRequiresCapture
	case AttemptStatusAuthenticationPending, AttemptStatusDeviceDataCollectionPending:
		return IntentStatusRequiresCustomerAction
	case AttemptStatusUnresolved:
		return IntentStatusRequiresMerchantAction
	case AttemptStatusPartialCharged:
		return IntentStatusPartiallyCaptured
	case AttemptStatusPartialChargedAndChargeable:
		return IntentStatusPartiallyCapturedAndCapturable
	case AttemptStatusStarted, AttemptStatusAuthenticationSuccessful,
		AttemptStatusAuthorizing, AttemptStatusCodInitiated,
		AttemptStatusVoidInitiated, AttemptStatusCaptureInitiated,
		AttemptStatusPending:
		return IntentStatusProcessing
	case AttemptStatusAuthenticationFailed, AttemptStatusAuthorizationFailed,
		AttemptStatusVoidFailed, AttemptStatusRouterDeclined,
		AttemptStatusCaptureFailed, AttemptStatusFailure:
		return IntentStatusFailed
	case AttemptStatusVoided:
		return IntentStatusCancelled
	}
	// Only values that never passed ParseAttemptStatus land here.
	return IntentStatusProcessing
}

// CaptureStatus narrows the attempt status into the restricted state machine
// used when multiple partial captures are in play. Statuses that imply a
// payment-level state are rejected rather than coerced, otherwise the capture
// ledger would record transitions that never happened.
func (s AttemptStatus) CaptureStatus() (CaptureStatus, error) {
	switch s {
	case AttemptStatusCharged, AttemptStatusPartialCharged:
		return CaptureStatusCharged, nil
	case AttemptStatusPending, AttemptStatusCaptureInitiated:
		return CaptureStatusPending, nil
	case AttemptStatusFailure, AttemptStatusCaptureFailed:
		return CaptureStatusFailed, nil
	}
	return "", &apperrors.PreconditionFailed{
		Message: "attempt status must be one of [charged, partial_charged, pending, capture_initiated, failure, capture_failed] for multiple partial captures",
	}
}

// PaymentAttempt is one connector-facing try to execute a charge or
// authorization for a payment.
type PaymentAttempt struct {
	AttemptID         string
	PaymentID         string
	MerchantID        string
	Status            AttemptStatus
	Connector         RoutableConnector
	Amount            decimal.Decimal
	Currency          string
	PaymentMethod     PaymentMethod
	PaymentMethodType PaymentMethodType
	ClientSource      string
	ClientVersion     string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AttemptUpdate is the payload carried by the attempt update stream and by
// the synchronous update endpoint. Enum-typed fields stay raw strings here;
// the engine parses them at the boundary.
type AttemptUpdate struct {
	PaymentID         string          `json:"payment_id"`
	AttemptID         string          `json:"attempt_id"`
	MerchantID        string          `json:"merchant_id"`
	Status            string          `json:"status"`
	Connector         string          `json:"connector"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	PaymentMethodType string          `json:"payment_method_type,omitempty"`
	CaptureID         string          `json:"capture_id,omitempty"`
	CaptureSequence   int             `json:"capture_sequence,omitempty"`
	MultipleCapture   bool            `json:"multiple_capture,omitempty"`
}
