package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/akylbek/payment-system/status-engine/internal/interfaces"
	"github.com/akylbek/payment-system/status-engine/internal/models"
	"github.com/akylbek/payment-system/status-engine/internal/telemetry"
)

// redisOps is the slice of the Redis API the service layer takes payment
// locks and webhook dedup claims with. *redis.Client satisfies it.
type redisOps interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// eventWriter publishes recorded events to the notification stream.
// *kafka.Writer satisfies it.
type eventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Engine applies attempt status updates: it validates the inbound payload,
// derives the merchant-facing intent status, maintains capture rows for
// multi-capture payments and records the outgoing merchant event.
type Engine struct {
	repo        interfaces.PaymentStatusRepository
	redisClient redisOps
	kafkaWriter eventWriter
}

func NewEngine(
	repo interfaces.PaymentStatusRepository,
	redisClient redisOps,
	kafkaWriter eventWriter,
) *Engine {
	return &Engine{
		repo:        repo,
		redisClient: redisClient,
		kafkaWriter: kafkaWriter,
	}
}

func (e *Engine) ConsumeAttemptUpdates(kafkaBrokers string) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{kafkaBrokers},
		Topic:    "payment.attempt.updated",
		GroupID:  "status-engine",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer reader.Close()

	ctx := context.Background()

	telemetry.Logger.Info("Started consuming payment.attempt.updated events")

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			telemetry.Logger.Error("Error reading message from Kafka", zap.Error(err))
			continue
		}

		var update models.AttemptUpdate
		if err := json.Unmarshal(msg.Value, &update); err != nil {
			telemetry.Logger.Error("Error unmarshaling attempt update", zap.Error(err))
			continue
		}

		if err := e.ProcessAttemptUpdate(ctx, &update, nil); err != nil {
			telemetry.Logger.Error("Error processing attempt update",
				zap.String("payment_id", update.PaymentID),
				zap.String("attempt_id", update.AttemptID),
				zap.Error(err),
			)
		}
	}
}

// ProcessAttemptUpdate applies one attempt status update. Updates for the
// same payment are serialized through a Redis lock; the header payload, when
// present, stamps client metadata onto the attempt row.
func (e *Engine) ProcessAttemptUpdate(ctx context.Context, update *models.AttemptUpdate, headers *models.HeaderPayload) error {
	lockKey := fmt.Sprintf("payment_lock:%s", update.PaymentID)
	locked := e.redisClient.SetNX(ctx, lockKey, "1", 30*time.Second)
	if err := locked.Err(); err != nil {
		telemetry.AttemptUpdates.WithLabelValues("redis_error").Inc()
		return fmt.Errorf("acquiring lock for payment %s: %w", update.PaymentID, err)
	}
	if !locked.Val() {
		telemetry.AttemptUpdates.WithLabelValues("locked").Inc()
		return fmt.Errorf("payment %s is already being processed", update.PaymentID)
	}
	defer e.redisClient.Del(ctx, lockKey)

	records, err := buildAttemptRecords(update)
	if err != nil {
		telemetry.AttemptUpdates.WithLabelValues("invalid").Inc()
		return err
	}

	if headers != nil {
		records.Attempt.ClientSource = headers.ClientSource
		records.Attempt.ClientVersion = headers.ClientVersion
	}

	if err := e.repo.UpsertAttempt(ctx, &records.Attempt); err != nil {
		return err
	}
	if err := e.repo.UpsertIntent(ctx, &records.Intent); err != nil {
		return err
	}
	if records.Capture != nil {
		if err := e.repo.UpsertCapture(ctx, records.Capture); err != nil {
			return err
		}
		// The intent's captured total is rebuilt from the capture rows, so a
		// redelivered update cannot double-count and a later non-capture
		// update cannot erase it.
		if records.Capture.Status == models.CaptureStatusCharged {
			if err := e.repo.RecalculateCapturedAmount(ctx, update.PaymentID); err != nil {
				return err
			}
		}
	}

	telemetry.Logger.Info("Attempt status applied",
		zap.String("payment_id", update.PaymentID),
		zap.String("attempt_id", update.AttemptID),
		zap.String("attempt_status", string(records.Attempt.Status)),
		zap.String("intent_status", string(records.Intent.Status)),
	)
	telemetry.AttemptUpdates.WithLabelValues("applied").Inc()

	eventType, ok := records.Intent.Status.EventType()
	if !ok {
		return nil
	}
	content, _ := json.Marshal(map[string]interface{}{
		"payment_id": records.Intent.PaymentID,
		"status":     records.Intent.Status,
		"attempt_id": records.Attempt.AttemptID,
	})
	return e.RecordEvent(ctx, &models.Event{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		EventClass: eventType.Class(),
		ObjectID:   records.Intent.PaymentID,
		ObjectType: models.ObjectTypePaymentDetails,
		MerchantID: records.Intent.MerchantID,
		PaymentID:  records.Intent.PaymentID,
		Content:    content,
	})
}

// RecordEvent persists an outgoing event and hands it to the notification
// dispatcher via Kafka.
func (e *Engine) RecordEvent(ctx context.Context, event *models.Event) error {
	if err := e.repo.InsertEvent(ctx, event); err != nil {
		return err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := e.kafkaWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ObjectID),
		Value: payload,
	}); err != nil {
		return err
	}

	telemetry.EventsEmitted.WithLabelValues(string(event.EventClass)).Inc()
	telemetry.Logger.Info("Event recorded",
		zap.String("event_id", event.EventID),
		zap.String("event_type", string(event.EventType)),
		zap.String("object_id", event.ObjectID),
	)
	return nil
}

// attemptRecords is the validated projection of one attempt update.
type attemptRecords struct {
	Attempt models.PaymentAttempt
	Intent  models.PaymentIntent
	Capture *models.Capture
}

// buildAttemptRecords parses and validates an attempt update into the rows
// it implies. The connector must be routable, the status must parse, and a
// multi-capture update must narrow into the capture state machine.
func buildAttemptRecords(update *models.AttemptUpdate) (*attemptRecords, error) {
	status, err := models.ParseAttemptStatus(update.Status)
	if err != nil {
		return nil, err
	}

	connector, err := models.ParseConnector(update.Connector)
	if err != nil {
		return nil, err
	}
	routable, err := connector.Routable()
	if err != nil {
		return nil, err
	}

	attempt := models.PaymentAttempt{
		AttemptID:  update.AttemptID,
		PaymentID:  update.PaymentID,
		MerchantID: update.MerchantID,
		Status:     status,
		Connector:  routable,
		Amount:     update.Amount,
		Currency:   update.Currency,
	}
	if update.PaymentMethodType != "" {
		pmType, err := models.ParsePaymentMethodType(update.PaymentMethodType)
		if err != nil {
			return nil, err
		}
		attempt.PaymentMethodType = pmType
		attempt.PaymentMethod = pmType.Method()
	}

	records := &attemptRecords{
		Attempt: attempt,
		Intent: models.PaymentIntent{
			PaymentID:       update.PaymentID,
			MerchantID:      update.MerchantID,
			Status:          status.IntentStatus(),
			Amount:          update.Amount,
			Currency:        update.Currency,
			ActiveAttemptID: update.AttemptID,
		},
	}

	if update.MultipleCapture {
		captureStatus, err := status.CaptureStatus()
		if err != nil {
			return nil, err
		}
		captureID := update.CaptureID
		if captureID == "" {
			captureID = fmt.Sprintf("%s_%d", update.AttemptID, update.CaptureSequence)
		}
		records.Capture = &models.Capture{
			CaptureID:       captureID,
			PaymentID:       update.PaymentID,
			AttemptID:       update.AttemptID,
			Status:          captureStatus,
			Amount:          update.Amount,
			Currency:        update.Currency,
			Connector:       routable,
			CaptureSequence: update.CaptureSequence,
		}
	}

	return records, nil
}
