package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/akylbek/payment-system/status-engine/internal/apperrors"
)

// IncomingWebhookEvent is the normalized shape of a connector notification
// after connector-specific decoding. Each value belongs to exactly one
// domain class; the class decides which mapper may consume it.
type IncomingWebhookEvent string

const (
	WebhookEventPaymentSuccess              IncomingWebhookEvent = "payment_intent_success"
	WebhookEventPaymentFailure              IncomingWebhookEvent = "payment_intent_failure"
	WebhookEventPaymentProcessing           IncomingWebhookEvent = "payment_intent_processing"
	WebhookEventPaymentCancelled            IncomingWebhookEvent = "payment_intent_cancelled"
	WebhookEventPaymentPartiallyFunded      IncomingWebhookEvent = "payment_intent_partially_funded"
	WebhookEventPaymentAuthorizationSuccess IncomingWebhookEvent = "payment_intent_authorization_success"
	WebhookEventPaymentAuthorizationFailure IncomingWebhookEvent = "payment_intent_authorization_failure"
	WebhookEventPaymentCaptureSuccess       IncomingWebhookEvent = "payment_intent_capture_success"
	WebhookEventPaymentCaptureFailure       IncomingWebhookEvent = "payment_intent_capture_failure"
	WebhookEventPaymentActionRequired       IncomingWebhookEvent = "payment_action_required"
	WebhookEventSourceChargeable            IncomingWebhookEvent = "source_chargeable"
	WebhookEventRefundSuccess               IncomingWebhookEvent = "refund_success"
	WebhookEventRefundFailure               IncomingWebhookEvent = "refund_failure"
	WebhookEventDisputeOpened               IncomingWebhookEvent = "dispute_opened"
	WebhookEventDisputeExpired              IncomingWebhookEvent = "dispute_expired"
	WebhookEventDisputeAccepted             IncomingWebhookEvent = "dispute_accepted"
	WebhookEventDisputeCancelled            IncomingWebhookEvent = "dispute_cancelled"
	WebhookEventDisputeChallenged           IncomingWebhookEvent = "dispute_challenged"
	WebhookEventDisputeWon                  IncomingWebhookEvent = "dispute_won"
	WebhookEventDisputeLost                 IncomingWebhookEvent = "dispute_lost"
	WebhookEventMandateActive               IncomingWebhookEvent = "mandate_active"
	WebhookEventMandateRevoked              IncomingWebhookEvent = "mandate_revoked"
	WebhookEventEndpointVerification        IncomingWebhookEvent = "endpoint_verification"
	WebhookEventNotSupported                IncomingWebhookEvent = "event_not_supported"
)

// AllIncomingWebhookEvents lists every defined incoming webhook event.
var AllIncomingWebhookEvents = []IncomingWebhookEvent{
	WebhookEventPaymentSuccess,
	WebhookEventPaymentFailure,
	WebhookEventPaymentProcessing,
	WebhookEventPaymentCancelled,
	WebhookEventPaymentPartiallyFunded,
	WebhookEventPaymentAuthorizationSuccess,
	WebhookEventPaymentAuthorizationFailure,
	WebhookEventPaymentCaptureSuccess,
	WebhookEventPaymentCaptureFailure,
	WebhookEventPaymentActionRequired,
	WebhookEventSourceChargeable,
	WebhookEventRefundSuccess,
	WebhookEventRefundFailure,
	WebhookEventDisputeOpened,
	WebhookEventDisputeExpired,
	WebhookEventDisputeAccepted,
	WebhookEventDisputeCancelled,
	WebhookEventDisputeChallenged,
	WebhookEventDisputeWon,
	WebhookEventDisputeLost,
	WebhookEventMandateActive,
	WebhookEventMandateRevoked,
	WebhookEventEndpointVerification,
	WebhookEventNotSupported,
}

// ParseIncomingWebhookEvent validates a raw incoming event string.
func ParseIncomingWebhookEvent(value string) (IncomingWebhookEvent, error) {
	e := IncomingWebhookEvent(value)
	for _, known := range AllIncomingWebhookEvents {
		if e == known {
			return e, nil
		}
	}
	return "", &apperrors.IncorrectValueProvided{FieldName: "event_type"}
}

// WebhookClass groups incoming webhook events by the domain object they
// concern. Control events such as endpoint verification fall outside every
// domain.
type WebhookClass string

const (
	WebhookClassPayment WebhookClass = "payments"
	WebhookClassRefund  WebhookClass = "refunds"
	WebhookClassDispute WebhookClass = "disputes"
	WebhookClassMandate WebhookClass = "mandates"
	WebhookClassControl WebhookClass = "control"
)

// Class reports the domain class of the incoming event.
func (e IncomingWebhookEvent) Class() WebhookClass {
	switch e {
	case WebhookEventPaymentSuccess, WebhookEventPaymentFailure,
		WebhookEventPaymentProcessing, WebhookEventPaymentCancelled,
		WebhookEventPaymentPartiallyFunded,
		WebhookEventPaymentAuthorizationSuccess,
		WebhookEventPaymentAuthorizationFailure,
		WebhookEventPaymentCaptureSuccess, WebhookEventPaymentCaptureFailure,
		WebhookEventPaymentActionRequired, WebhookEventSourceChargeable:
		return WebhookClassPayment
	case WebhookEventRefundSuccess, WebhookEventRefundFailure:
		return WebhookClassRefund
	case WebhookEventDisputeOpened, WebhookEventDisputeExpired,
		WebhookEventDisputeAccepted, WebhookEventDisputeCancelled,
		WebhookEventDisputeChallenged, WebhookEventDisputeWon,
		WebhookEventDisputeLost:
		return WebhookClassDispute
	case WebhookEventMandateActive, WebhookEventMandateRevoked:
		return WebhookClassMandate
	case WebhookEventEndpointVerification, WebhookEventNotSupported:
		return WebhookClassControl
	}
	return WebhookClassControl
}

// IncomingWebhook is the decoded body of a connector notification as posted
// to the webhook endpoint. EventType and ObjectType stay raw strings here;
// the pipeline parses them.
type IncomingWebhook struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	ObjectID     string          `json:"object_id"`
	ObjectType   string          `json:"object_type"`
	MerchantID   string          `json:"merchant_id"`
	PaymentID    string          `json:"payment_id,omitempty"`
	Amount       decimal.Decimal `json:"amount,omitempty"`
	Currency     string          `json:"currency,omitempty"`
	DisputeStage string          `json:"dispute_stage,omitempty"`
	Content      json.RawMessage `json:"content,omitempty"`
}
