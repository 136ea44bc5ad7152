package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akylbek/payment-system/status-engine/internal/models"
)

type PaymentStatusRepository struct {
	db *sql.DB
}

func NewPaymentStatusRepository(db *sql.DB) *PaymentStatusRepository {
	return &PaymentStatusRepository{db: db}
}

func (r *PaymentStatusRepository) InitDB() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS payment_intents (
			payment_id VARCHAR(255) PRIMARY KEY,
			merchant_id VARCHAR(255) NOT NULL,
			status VARCHAR(50) NOT NULL,
			amount NUMERIC(19,4) NOT NULL DEFAULT 0,
			amount_captured NUMERIC(19,4) NOT NULL DEFAULT 0,
			currency VARCHAR(3) NOT NULL,
			active_attempt_id VARCHAR(255),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS payment_attempts (
			attempt_id VARCHAR(255) PRIMARY KEY,
			payment_id VARCHAR(255) NOT NULL,
			merchant_id VARCHAR(255) NOT NULL,
			status VARCHAR(50) NOT NULL,
			connector VARCHAR(50) NOT NULL,
			amount NUMERIC(19,4) NOT NULL DEFAULT 0,
			currency VARCHAR(3) NOT NULL,
			payment_method VARCHAR(50),
			payment_method_type VARCHAR(50),
			client_source VARCHAR(255),
			client_version VARCHAR(255),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS captures (
			capture_id VARCHAR(255) PRIMARY KEY,
			payment_id VARCHAR(255) NOT NULL,
			attempt_id VARCHAR(255) NOT NULL,
			status VARCHAR(50) NOT NULL,
			amount NUMERIC(19,4) NOT NULL DEFAULT 0,
			currency VARCHAR(3) NOT NULL,
			connector VARCHAR(50) NOT NULL,
			capture_sequence INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS refunds (
			refund_id VARCHAR(255) PRIMARY KEY,
			payment_id VARCHAR(255),
			attempt_id VARCHAR(255),
			merchant_id VARCHAR(255),
			status VARCHAR(50) NOT NULL,
			amount NUMERIC(19,4) NOT NULL DEFAULT 0,
			currency VARCHAR(3),
			connector VARCHAR(50) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS disputes (
			dispute_id VARCHAR(255) PRIMARY KEY,
			payment_id VARCHAR(255),
			attempt_id VARCHAR(255),
			merchant_id VARCHAR(255),
			status VARCHAR(50) NOT NULL,
			stage VARCHAR(50) NOT NULL,
			amount NUMERIC(19,4) NOT NULL DEFAULT 0,
			currency VARCHAR(3),
			connector VARCHAR(50) NOT NULL,
			connector_reason TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS mandates (
			mandate_id VARCHAR(255) PRIMARY KEY,
			payment_id VARCHAR(255),
			merchant_id VARCHAR(255),
			status VARCHAR(50) NOT NULL,
			connector VARCHAR(50) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			event_id VARCHAR(255) PRIMARY KEY,
			event_type VARCHAR(50) NOT NULL,
			event_class VARCHAR(50) NOT NULL,
			object_id VARCHAR(255) NOT NULL,
			object_type VARCHAR(50) NOT NULL,
			merchant_id VARCHAR(255),
			payment_id VARCHAR(255),
			content JSONB,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_payment_attempts_payment_id ON payment_attempts(payment_id)`,
		`CREATE INDEX IF NOT EXISTS idx_captures_payment_id ON captures(payment_id)`,
		`CREATE INDEX IF NOT EXISTS idx_events_object_id ON events(object_id)`,
		`CREATE INDEX IF NOT EXISTS idx_events_created_at ON events(created_at)`,
	}

	for _, query := range queries {
		if _, err := r.db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

func (r *PaymentStatusRepository) UpsertAttempt(ctx context.Context, attempt *models.PaymentAttempt) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO payment_attempts (attempt_id, payment_id, merchant_id, status, connector, amount, currency, payment_method, payment_method_type, client_source, client_version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (attempt_id) DO UPDATE
		SET status = EXCLUDED.status,
			amount = EXCLUDED.amount,
			client_source = EXCLUDED.client_source,
			client_version = EXCLUDED.client_version,
			updated_at = NOW()
	`, attempt.AttemptID, attempt.PaymentID, attempt.MerchantID, attempt.Status,
		attempt.Connector, attempt.Amount, attempt.Currency, attempt.PaymentMethod,
		attempt.PaymentMethodType, attempt.ClientSource, attempt.ClientVersion)
	return err
}

func (r *PaymentStatusRepository) UpsertIntent(ctx context.Context, intent *models.PaymentIntent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO payment_intents (payment_id, merchant_id, status, amount, amount_captured, currency, active_attempt_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (payment_id) DO UPDATE
		SET status = EXCLUDED.status,
			active_attempt_id = EXCLUDED.active_attempt_id,
			updated_at = NOW()
	`, intent.PaymentID, intent.MerchantID, intent.Status, intent.Amount,
		intent.AmountCaptured, intent.Currency, intent.ActiveAttemptID)
	return err
}

// RecalculateCapturedAmount rebuilds an intent's captured total from its
// charged capture rows. The total is owned by the captures table; intent
// upserts never touch it.
func (r *PaymentStatusRepository) RecalculateCapturedAmount(ctx context.Context, paymentID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE payment_intents
		SET amount_captured = (
			SELECT COALESCE(SUM(amount), 0) FROM captures
			WHERE payment_id = $1 AND status = $2
		),
			updated_at = NOW()
		WHERE payment_id = $1
	`, paymentID, models.CaptureStatusCharged)
	return err
}

func (r *PaymentStatusRepository) GetIntent(ctx context.Context, paymentID string) (*models.PaymentIntent, error) {
	var intent models.PaymentIntent
	err := r.db.QueryRowContext(ctx, `
		SELECT payment_id, merchant_id, status, amount, amount_captured, currency, active_attempt_id, created_at, updated_at
		FROM payment_intents WHERE payment_id = $1
	`, paymentID).Scan(&intent.PaymentID, &intent.MerchantID, &intent.Status,
		&intent.Amount, &intent.AmountCaptured, &intent.Currency,
		&intent.ActiveAttemptID, &intent.CreatedAt, &intent.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &intent, nil
}

func (r *PaymentStatusRepository) ListAttempts(ctx context.Context, paymentID string) ([]models.PaymentAttempt, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT attempt_id, payment_id, merchant_id, status, connector, amount, currency, payment_method, payment_method_type, client_source, client_version, created_at, updated_at
		FROM payment_attempts WHERE payment_id = $1
		ORDER BY created_at
	`, paymentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []models.PaymentAttempt
	for rows.Next() {
		var a models.PaymentAttempt
		if err := rows.Scan(&a.AttemptID, &a.PaymentID, &a.MerchantID, &a.Status,
			&a.Connector, &a.Amount, &a.Currency, &a.PaymentMethod,
			&a.PaymentMethodType, &a.ClientSource, &a.ClientVersion,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

func (r *PaymentStatusRepository) UpsertCapture(ctx context.Context, capture *models.Capture) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO captures (capture_id, payment_id, attempt_id, status, amount, currency, connector, capture_sequence)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (capture_id) DO UPDATE
		SET status = EXCLUDED.status,
			updated_at = NOW()
	`, capture.CaptureID, capture.PaymentID, capture.AttemptID, capture.Status,
		capture.Amount, capture.Currency, capture.Connector, capture.CaptureSequence)
	return err
}

func (r *PaymentStatusRepository) UpsertRefund(ctx context.Context, refund *models.Refund) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO refunds (refund_id, payment_id, attempt_id, merchant_id, status, amount, currency, connector)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (refund_id) DO UPDATE
		SET status = EXCLUDED.status,
			updated_at = NOW()
	`, refund.RefundID, refund.PaymentID, refund.AttemptID, refund.MerchantID,
		refund.Status, refund.Amount, refund.Currency, refund.Connector)
	return err
}

func (r *PaymentStatusRepository) UpsertDispute(ctx context.Context, dispute *models.Dispute) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO disputes (dispute_id, payment_id, attempt_id, merchant_id, status, stage, amount, currency, connector, connector_reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (dispute_id) DO UPDATE
		SET status = EXCLUDED.status,
			stage = EXCLUDED.stage,
			updated_at = NOW()
	`, dispute.DisputeID, dispute.PaymentID, dispute.AttemptID, dispute.MerchantID,
		dispute.Status, dispute.Stage, dispute.Amount, dispute.Currency,
		dispute.Connector, dispute.ConnectorReason)
	return err
}

func (r *PaymentStatusRepository) UpsertMandate(ctx context.Context, mandate *models.Mandate) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO mandates (mandate_id, payment_id, merchant_id, status, connector)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (mandate_id) DO UPDATE
		SET status = EXCLUDED.status,
			updated_at = NOW()
	`, mandate.MandateID, mandate.PaymentID, mandate.MerchantID, mandate.Status,
		mandate.Connector)
	return err
}

func (r *PaymentStatusRepository) InsertEvent(ctx context.Context, event *models.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (event_id, event_type, event_class, object_id, object_type, merchant_id, payment_id, content)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, event.EventID, event.EventType, event.EventClass, event.ObjectID,
		event.ObjectType, event.MerchantID, event.PaymentID, []byte(event.Content))
	return err
}

func (r *PaymentStatusRepository) ListEvents(ctx context.Context, constraints models.EventListConstraints) ([]models.Event, error) {
	if err := constraints.Validate(); err != nil {
		return nil, err
	}

	query := `
		SELECT event_id, event_type, event_class, object_id, object_type, merchant_id, payment_id, content, created_at
		FROM events`
	var args []interface{}

	if constraints.ObjectID != "" {
		query += ` WHERE object_id = $1 ORDER BY created_at`
		args = append(args, constraints.ObjectID)
	} else {
		where := ""
		if constraints.CreatedAfter != nil {
			args = append(args, *constraints.CreatedAfter)
			where = fmt.Sprintf(" WHERE created_at >= $%d", len(args))
		}
		if constraints.CreatedBefore != nil {
			args = append(args, *constraints.CreatedBefore)
			clause := fmt.Sprintf("created_at <= $%d", len(args))
			if where == "" {
				where = " WHERE " + clause
			} else {
				where += " AND " + clause
			}
		}
		query += where + ` ORDER BY created_at`
		limit := constraints.Limit
		if limit <= 0 {
			limit = 100
		}
		args = append(args, limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
		if constraints.Offset > 0 {
			args = append(args, constraints.Offset)
			query += fmt.Sprintf(` OFFSET $%d`, len(args))
		}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		var content []byte
		if err := rows.Scan(&e.EventID, &e.EventType, &e.EventClass, &e.ObjectID,
			&e.ObjectType, &e.MerchantID, &e.PaymentID, &content, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Content = content
		events = append(events, e)
	}
	return events, rows.Err()
}
