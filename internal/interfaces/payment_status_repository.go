package interfaces

import (
	"context"

	"github.com/akylbek/payment-system/status-engine/internal/models"
)

// PaymentStatusRepository defines the contract for status and event data access
type PaymentStatusRepository interface {
	UpsertAttempt(ctx context.Context, attempt *models.PaymentAttempt) error
	UpsertIntent(ctx context.Context, intent *models.PaymentIntent) error
	GetIntent(ctx context.Context, paymentID string) (*models.PaymentIntent, error)
	ListAttempts(ctx context.Context, paymentID string) ([]models.PaymentAttempt, error)
	UpsertCapture(ctx context.Context, capture *models.Capture) error
	RecalculateCapturedAmount(ctx context.Context, paymentID string) error
	UpsertRefund(ctx context.Context, refund *models.Refund) error
	UpsertDispute(ctx context.Context, dispute *models.Dispute) error
	UpsertMandate(ctx context.Context, mandate *models.Mandate) error
	InsertEvent(ctx context.Context, event *models.Event) error
	ListEvents(ctx context.Context, constraints models.EventListConstraints) ([]models.Event, error)
}
