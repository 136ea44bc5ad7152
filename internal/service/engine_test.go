package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/akylbek/payment-system/status-engine/internal/apperrors"
	"github.com/akylbek/payment-system/status-engine/internal/models"
)

func validUpdate() *models.AttemptUpdate {
	return &models.AttemptUpdate{
		PaymentID:         "pay_1",
		AttemptID:         "att_1",
		MerchantID:        "m_1",
		Status:            "charged",
		Connector:         "stripe",
		Amount:            decimal.NewFromInt(100),
		Currency:          "USD",
		PaymentMethodType: "google_pay",
	}
}

func TestBuildAttemptRecordsDerivesIntent(t *testing.T) {
	records, err := buildAttemptRecords(validUpdate())
	require.NoError(t, err)

	require.Equal(t, models.AttemptStatusCharged, records.Attempt.Status)
	require.Equal(t, models.RoutableStripe, records.Attempt.Connector)
	require.Equal(t, models.PaymentMethodWallet, records.Attempt.PaymentMethod)
	require.Equal(t, models.IntentStatusSucceeded, records.Intent.Status)
	require.Equal(t, "att_1", records.Intent.ActiveAttemptID)
	require.Nil(t, records.Capture)
}

func TestBuildAttemptRecordsRejectsUnknownStatus(t *testing.T) {
	update := validUpdate()
	update.Status = "settled"

	_, err := buildAttemptRecords(update)
	require.Error(t, err)
	var incorrect *apperrors.IncorrectValueProvided
	require.ErrorAs(t, err, &incorrect)
	require.Equal(t, "attempt_status", incorrect.FieldName)
}

func TestBuildAttemptRecordsRejectsNonRoutableConnector(t *testing.T) {
	update := validUpdate()
	update.Connector = "riskified"

	_, err := buildAttemptRecords(update)
	require.Error(t, err)
	var invalid *apperrors.InvalidValue
	require.ErrorAs(t, err, &invalid)
}

func TestBuildAttemptRecordsMultipleCapture(t *testing.T) {
	update := validUpdate()
	update.Status = "capture_initiated"
	update.MultipleCapture = true
	update.CaptureID = "cap_1"
	update.CaptureSequence = 2

	records, err := buildAttemptRecords(update)
	require.NoError(t, err)
	require.NotNil(t, records.Capture)
	require.Equal(t, "cap_1", records.Capture.CaptureID)
	require.Equal(t, models.CaptureStatusPending, records.Capture.Status)
	require.Equal(t, 2, records.Capture.CaptureSequence)
	require.Equal(t, models.IntentStatusProcessing, records.Intent.Status)
}

func TestBuildAttemptRecordsCaptureNarrowingRejected(t *testing.T) {
	update := validUpdate()
	update.Status = "authorized"
	update.MultipleCapture = true

	_, err := buildAttemptRecords(update)
	require.Error(t, err)
	var precondition *apperrors.PreconditionFailed
	require.ErrorAs(t, err, &precondition)
	require.Contains(t, precondition.Message, "charged")
	require.Contains(t, precondition.Message, "capture_initiated")
}

func TestBuildAttemptRecordsChargedCapture(t *testing.T) {
	update := validUpdate()
	update.MultipleCapture = true
	update.CaptureID = "cap_1"

	records, err := buildAttemptRecords(update)
	require.NoError(t, err)
	require.Equal(t, models.CaptureStatusCharged, records.Capture.Status)
	// The intent row never carries a captured total of its own; it is
	// recomputed from the capture rows after each charged capture.
	require.True(t, records.Intent.AmountCaptured.IsZero())
}

func chargedCapture(captureID string, seq int, amount int64) *models.AttemptUpdate {
	update := validUpdate()
	update.MultipleCapture = true
	update.CaptureID = captureID
	update.CaptureSequence = seq
	update.Amount = decimal.NewFromInt(amount)
	return update
}

func TestProcessAttemptUpdateRecomputesCapturedTotal(t *testing.T) {
	repo := &recordingRepo{}
	engine := NewEngine(repo, newFakeRedis(), &fakeEventSink{})
	ctx := context.Background()

	require.NoError(t, engine.ProcessAttemptUpdate(ctx, chargedCapture("cap_1", 1, 50), nil))
	require.NoError(t, engine.ProcessAttemptUpdate(ctx, chargedCapture("cap_2", 2, 30), nil))

	require.Len(t, repo.captures, 2)
	require.Equal(t, []string{"pay_1", "pay_1"}, repo.recalcFor)
	for _, intent := range repo.intents {
		require.True(t, intent.AmountCaptured.IsZero())
	}
}

func TestProcessAttemptUpdatePendingCaptureLeavesTotalAlone(t *testing.T) {
	repo := &recordingRepo{}
	engine := NewEngine(repo, newFakeRedis(), &fakeEventSink{})

	update := chargedCapture("cap_1", 1, 50)
	update.Status = "capture_initiated"

	require.NoError(t, engine.ProcessAttemptUpdate(context.Background(), update, nil))
	require.Len(t, repo.captures, 1)
	require.Empty(t, repo.recalcFor)
}

func TestProcessAttemptUpdateLockContention(t *testing.T) {
	rdb := newFakeRedis()
	rdb.keys["payment_lock:pay_1"] = true
	engine := NewEngine(&recordingRepo{}, rdb, &fakeEventSink{})

	err := engine.ProcessAttemptUpdate(context.Background(), validUpdate(), nil)
	require.ErrorContains(t, err, "already being processed")
}

func TestProcessAttemptUpdateRedisOutage(t *testing.T) {
	repo := &recordingRepo{}
	engine := NewEngine(repo, downRedis{}, &fakeEventSink{})

	err := engine.ProcessAttemptUpdate(context.Background(), validUpdate(), nil)
	require.ErrorContains(t, err, "acquiring lock")
	require.NotContains(t, err.Error(), "already being processed")
	require.Empty(t, repo.attempts)
}
