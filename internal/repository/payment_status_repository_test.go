package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/akylbek/payment-system/status-engine/internal/apperrors"
	"github.com/akylbek/payment-system/status-engine/internal/models"
)

func TestUpsertAttempt(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO payment_attempts").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPaymentStatusRepository(db)
	err = repo.UpsertAttempt(context.Background(), &models.PaymentAttempt{
		AttemptID:  "att_1",
		PaymentID:  "pay_1",
		MerchantID: "m_1",
		Status:     models.AttemptStatusCharged,
		Connector:  models.RoutableStripe,
		Amount:     decimal.NewFromInt(100),
		Currency:   "USD",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertIntentLeavesCapturedTotalAlone(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// The conflict clause must not touch amount_captured: a status-only
	// update would otherwise reset the captured total.
	mock.ExpectExec(`ON CONFLICT \(payment_id\) DO UPDATE SET status = EXCLUDED.status, active_attempt_id = EXCLUDED.active_attempt_id, updated_at = NOW\(\)$`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPaymentStatusRepository(db)
	err = repo.UpsertIntent(context.Background(), &models.PaymentIntent{
		PaymentID:  "pay_1",
		MerchantID: "m_1",
		Status:     models.IntentStatusProcessing,
		Amount:     decimal.NewFromInt(100),
		Currency:   "USD",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecalculateCapturedAmount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE payment_intents SET amount_captured = \( SELECT COALESCE\(SUM\(amount\), 0\) FROM captures WHERE payment_id = \$1 AND status = \$2 \), updated_at = NOW\(\) WHERE payment_id = \$1`).
		WithArgs("pay_1", models.CaptureStatusCharged).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPaymentStatusRepository(db)
	require.NoError(t, repo.RecalculateCapturedAmount(context.Background(), "pay_1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetIntent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"payment_id", "merchant_id", "status", "amount", "amount_captured",
		"currency", "active_attempt_id", "created_at", "updated_at",
	}).AddRow("pay_1", "m_1", "succeeded", "100", "100", "USD", "att_1", now, now)

	mock.ExpectQuery("SELECT (.+) FROM payment_intents WHERE payment_id").
		WithArgs("pay_1").
		WillReturnRows(rows)

	repo := NewPaymentStatusRepository(db)
	intent, err := repo.GetIntent(context.Background(), "pay_1")
	require.NoError(t, err)
	require.Equal(t, models.IntentStatusSucceeded, intent.Status)
	require.Equal(t, "att_1", intent.ActiveAttemptID)
	require.True(t, intent.Amount.Equal(decimal.NewFromInt(100)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEventsByObjectID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"event_id", "event_type", "event_class", "object_id", "object_type",
		"merchant_id", "payment_id", "content", "created_at",
	}).AddRow("evt_1", "refund_succeeded", "refunds", "ref_1", "refund_details",
		"m_1", "pay_1", []byte(`{}`), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM events WHERE object_id").
		WithArgs("ref_1").
		WillReturnRows(rows)

	repo := NewPaymentStatusRepository(db)
	events, err := repo.ListEvents(context.Background(), models.EventListConstraints{ObjectID: "ref_1"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, models.EventTypeRefundSucceeded, events[0].EventType)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEventsWithFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	after := time.Now().Add(-time.Hour)
	rows := sqlmock.NewRows([]string{
		"event_id", "event_type", "event_class", "object_id", "object_type",
		"merchant_id", "payment_id", "content", "created_at",
	})

	mock.ExpectQuery("SELECT (.+) FROM events WHERE created_at >= (.+) ORDER BY created_at LIMIT").
		WithArgs(after, 10).
		WillReturnRows(rows)

	repo := NewPaymentStatusRepository(db)
	events, err := repo.ListEvents(context.Background(), models.EventListConstraints{
		CreatedAfter: &after,
		Limit:        10,
	})
	require.NoError(t, err)
	require.Empty(t, events)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEventsRejectsMixedConstraints(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPaymentStatusRepository(db)
	_, err = repo.ListEvents(context.Background(), models.EventListConstraints{
		ObjectID: "ref_1",
		Limit:    10,
	})
	require.Error(t, err)
	var precondition *apperrors.PreconditionFailed
	require.ErrorAs(t, err, &precondition)
	require.NoError(t, mock.ExpectationsWereMet())
}
