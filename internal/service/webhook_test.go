package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/akylbek/payment-system/status-engine/internal/apperrors"
	"github.com/akylbek/payment-system/status-engine/internal/models"
)

func refundWebhook() *models.IncomingWebhook {
	return &models.IncomingWebhook{
		EventID:    "whevt_1",
		ObjectID:   "ref_1",
		ObjectType: "refund_details",
		MerchantID: "m_1",
		PaymentID:  "pay_1",
		Amount:     decimal.NewFromInt(50),
		Currency:   "USD",
	}
}

func TestDeriveWebhookOutcomeRefund(t *testing.T) {
	outcome, err := deriveWebhookOutcome(models.RoutableStripe, models.WebhookEventRefundSuccess, refundWebhook())
	require.NoError(t, err)

	require.Equal(t, WebhookOutcomeProcessed, outcome.Kind)
	require.NotNil(t, outcome.Refund)
	require.Equal(t, models.RefundStatusSuccess, outcome.Refund.Status)
	require.Equal(t, "ref_1", outcome.Refund.RefundID)
	require.True(t, outcome.HasEvent)
	require.Equal(t, models.EventTypeRefundSucceeded, outcome.EventType)
}

func TestDeriveWebhookOutcomeDomainIsolation(t *testing.T) {
	// A mandate tag aimed at a refund object must not move the refund.
	_, err := deriveWebhookOutcome(models.RoutableStripe, models.WebhookEventMandateActive, refundWebhook())
	require.Error(t, err)
	var incorrect *apperrors.IncorrectValueProvided
	require.ErrorAs(t, err, &incorrect)
	require.Equal(t, "incoming_webhook_event_type", incorrect.FieldName)
}

func TestDeriveWebhookOutcomeDispute(t *testing.T) {
	webhook := refundWebhook()
	webhook.ObjectID = "disp_1"
	webhook.ObjectType = "dispute_details"
	webhook.DisputeStage = "pre_arbitration"

	outcome, err := deriveWebhookOutcome(models.RoutableAdyen, models.WebhookEventDisputeChallenged, webhook)
	require.NoError(t, err)
	require.NotNil(t, outcome.Dispute)
	require.Equal(t, models.DisputeStatusChallenged, outcome.Dispute.Status)
	require.Equal(t, models.DisputeStagePreArbitration, outcome.Dispute.Stage)
	require.True(t, outcome.HasEvent)
	require.Equal(t, models.EventTypeDisputeChallenged, outcome.EventType)
}

func TestDeriveWebhookOutcomeDisputeStageDefaults(t *testing.T) {
	webhook := refundWebhook()
	webhook.ObjectType = "dispute_details"

	outcome, err := deriveWebhookOutcome(models.RoutableAdyen, models.WebhookEventDisputeOpened, webhook)
	require.NoError(t, err)
	require.Equal(t, models.DisputeStageDispute, outcome.Dispute.Stage)
}

func TestDeriveWebhookOutcomeMandateWithoutEvent(t *testing.T) {
	webhook := refundWebhook()
	webhook.ObjectID = "man_1"
	webhook.ObjectType = "mandate_details"

	outcome, err := deriveWebhookOutcome(models.RoutableStripe, models.WebhookEventMandateRevoked, webhook)
	require.NoError(t, err)
	require.NotNil(t, outcome.Mandate)
	require.Equal(t, models.MandateStatusRevoked, outcome.Mandate.Status)
	require.True(t, outcome.HasEvent)
	require.Equal(t, models.EventTypeMandateRevoked, outcome.EventType)
}

func TestDeriveWebhookOutcomePaymentClassIgnored(t *testing.T) {
	webhook := refundWebhook()
	webhook.ObjectType = "payment_details"

	outcome, err := deriveWebhookOutcome(models.RoutableStripe, models.WebhookEventPaymentSuccess, webhook)
	require.NoError(t, err)
	require.Equal(t, WebhookOutcomeIgnored, outcome.Kind)
	require.False(t, outcome.HasEvent)
	require.Nil(t, outcome.Refund)
}

func TestDeriveWebhookOutcomeControlAcknowledged(t *testing.T) {
	webhook := refundWebhook()
	webhook.ObjectType = ""

	outcome, err := deriveWebhookOutcome(models.RoutableStripe, models.WebhookEventEndpointVerification, webhook)
	require.NoError(t, err)
	require.Equal(t, WebhookOutcomeAcknowledged, outcome.Kind)
	require.False(t, outcome.HasEvent)
}

func TestDeriveWebhookOutcomeUnknownObjectType(t *testing.T) {
	webhook := refundWebhook()
	webhook.ObjectType = "invoice_details"

	_, err := deriveWebhookOutcome(models.RoutableStripe, models.WebhookEventRefundSuccess, webhook)
	require.Error(t, err)
	var incorrect *apperrors.IncorrectValueProvided
	require.ErrorAs(t, err, &incorrect)
	require.Equal(t, "object_type", incorrect.FieldName)
}

// flakyVerifier errors for a configured number of requests, then accepts.
type flakyVerifier struct {
	failures int
	requests int
}

func (f *flakyVerifier) Request(_ string, _ []byte, _ time.Duration) (*nats.Msg, error) {
	f.requests++
	if f.failures > 0 {
		f.failures--
		return nil, errors.New("nats: timeout")
	}
	data, _ := json.Marshal(models.WebhookVerificationResponse{Decision: "accept"})
	return &nats.Msg{Data: data}, nil
}

func TestWebhookRetryAfterVerifierOutage(t *testing.T) {
	repo := &recordingRepo{}
	rdb := newFakeRedis()
	verifier := &flakyVerifier{failures: 1}
	processor := NewWebhookProcessor(repo, rdb, verifier, NewEngine(repo, rdb, &fakeEventSink{}))
	ctx := context.Background()

	webhook := *refundWebhook()
	webhook.EventType = string(models.WebhookEventRefundSuccess)

	// The first delivery dies in verification; it must not leave a dedup
	// claim behind.
	_, err := processor.Process(ctx, "stripe", webhook)
	require.ErrorIs(t, err, ErrVerifierUnavailable)
	require.Empty(t, rdb.keys)
	require.Empty(t, repo.refunds)

	// The connector's retry is a fresh delivery, not a duplicate.
	outcome, err := processor.Process(ctx, "stripe", webhook)
	require.NoError(t, err)
	require.Equal(t, WebhookOutcomeProcessed, outcome)
	require.Len(t, repo.refunds, 1)
	require.Len(t, repo.events, 1)

	// Only now does a redelivery count as seen.
	outcome, err = processor.Process(ctx, "stripe", webhook)
	require.NoError(t, err)
	require.Equal(t, WebhookOutcomeDuplicate, outcome)
	require.Len(t, repo.refunds, 1)
	require.Equal(t, 2, verifier.requests)
}
