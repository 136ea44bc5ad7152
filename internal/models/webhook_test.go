package models

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akylbek/payment-system/status-engine/internal/apperrors"
)

func TestRefundStatusFromWebhookEventDomainIsolation(t *testing.T) {
	expected := map[IncomingWebhookEvent]RefundStatus{
		WebhookEventRefundSuccess: RefundStatusSuccess,
		WebhookEventRefundFailure: RefundStatusFailure,
	}

	for _, event := range AllIncomingWebhookEvents {
		got, err := RefundStatusFromWebhookEvent(event)
		want, ok := expected[event]
		if ok {
			require.NoError(t, err, "event %q", event)
			require.Equal(t, want, got)
			continue
		}
		require.Error(t, err, "event %q must not move a refund", event)
		var incorrect *apperrors.IncorrectValueProvided
		require.ErrorAs(t, err, &incorrect)
		require.Equal(t, "incoming_webhook_event_type", incorrect.FieldName)
	}
}

func TestDisputeStatusFromWebhookEventDomainIsolation(t *testing.T) {
	expected := map[IncomingWebhookEvent]DisputeStatus{
		WebhookEventDisputeOpened:     DisputeStatusOpened,
		WebhookEventDisputeExpired:    DisputeStatusExpired,
		WebhookEventDisputeAccepted:   DisputeStatusAccepted,
		WebhookEventDisputeCancelled:  DisputeStatusCancelled,
		WebhookEventDisputeChallenged: DisputeStatusChallenged,
		WebhookEventDisputeWon:        DisputeStatusWon,
		WebhookEventDisputeLost:       DisputeStatusLost,
	}

	for _, event := range AllIncomingWebhookEvents {
		got, err := DisputeStatusFromWebhookEvent(event)
		want, ok := expected[event]
		if ok {
			require.NoError(t, err, "event %q", event)
			require.Equal(t, want, got)
			continue
		}
		require.Error(t, err, "event %q must not move a dispute", event)
		var incorrect *apperrors.IncorrectValueProvided
		require.ErrorAs(t, err, &incorrect)
		require.Equal(t, "incoming_webhook_event", incorrect.FieldName)
	}
}

func TestMandateStatusFromWebhookEventDomainIsolation(t *testing.T) {
	expected := map[IncomingWebhookEvent]MandateStatus{
		WebhookEventMandateActive:  MandateStatusActive,
		WebhookEventMandateRevoked: MandateStatusRevoked,
	}

	for _, event := range AllIncomingWebhookEvents {
		got, err := MandateStatusFromWebhookEvent(event)
		want, ok := expected[event]
		if ok {
			require.NoError(t, err, "event %q", event)
			require.Equal(t, want, got)
			continue
		}
		require.Error(t, err, "event %q must not move a mandate", event)
		var incorrect *apperrors.IncorrectValueProvided
		require.ErrorAs(t, err, &incorrect)
		require.Equal(t, "incoming_webhook_event_type", incorrect.FieldName)
	}
}

func TestIncomingWebhookEventClassTotal(t *testing.T) {
	expected := map[IncomingWebhookEvent]WebhookClass{
		WebhookEventPaymentSuccess:              WebhookClassPayment,
		WebhookEventPaymentFailure:              WebhookClassPayment,
		WebhookEventPaymentProcessing:           WebhookClassPayment,
		WebhookEventPaymentCancelled:            WebhookClassPayment,
		WebhookEventPaymentPartiallyFunded:      WebhookClassPayment,
		WebhookEventPaymentAuthorizationSuccess: WebhookClassPayment,
		WebhookEventPaymentAuthorizationFailure: WebhookClassPayment,
		WebhookEventPaymentCaptureSuccess:       WebhookClassPayment,
		WebhookEventPaymentCaptureFailure:       WebhookClassPayment,
		WebhookEventPaymentActionRequired:       WebhookClassPayment,
		WebhookEventSourceChargeable:            WebhookClassPayment,
		WebhookEventRefundSuccess:               WebhookClassRefund,
		WebhookEventRefundFailure:               WebhookClassRefund,
		WebhookEventDisputeOpened:               WebhookClassDispute,
		WebhookEventDisputeExpired:              WebhookClassDispute,
		WebhookEventDisputeAccepted:             WebhookClassDispute,
		WebhookEventDisputeCancelled:            WebhookClassDispute,
		WebhookEventDisputeChallenged:           WebhookClassDispute,
		WebhookEventDisputeWon:                  WebhookClassDispute,
		WebhookEventDisputeLost:                 WebhookClassDispute,
		WebhookEventMandateActive:               WebhookClassMandate,
		WebhookEventMandateRevoked:              WebhookClassMandate,
		WebhookEventEndpointVerification:        WebhookClassControl,
		WebhookEventNotSupported:                WebhookClassControl,
	}
	require.Len(t, expected, len(AllIncomingWebhookEvents))

	for _, event := range AllIncomingWebhookEvents {
		require.Equal(t, expected[event], event.Class(), "event %q", event)
	}
}

func TestParseIncomingWebhookEvent(t *testing.T) {
	for _, event := range AllIncomingWebhookEvents {
		parsed, err := ParseIncomingWebhookEvent(string(event))
		require.NoError(t, err)
		require.Equal(t, event, parsed)
	}

	_, err := ParseIncomingWebhookEvent("payment_intent_settled")
	require.Error(t, err)
	var incorrect *apperrors.IncorrectValueProvided
	require.ErrorAs(t, err, &incorrect)
	require.Equal(t, "event_type", incorrect.FieldName)
}
