package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/zoobzio/pipz"
	"go.uber.org/zap"

	"github.com/akylbek/payment-system/status-engine/internal/interfaces"
	"github.com/akylbek/payment-system/status-engine/internal/models"
	"github.com/akylbek/payment-system/status-engine/internal/telemetry"
)

// Pipeline outcomes reported by the webhook counter; failed runs are
// counted as "rejected".
const (
	WebhookOutcomeProcessed    = "processed"
	WebhookOutcomeDuplicate    = "duplicate"
	WebhookOutcomeAcknowledged = "acknowledged"
	WebhookOutcomeIgnored      = "ignored"
)

var (
	// ErrWebhookRejected means the verifier refused to vouch for the
	// notification's origin.
	ErrWebhookRejected = errors.New("webhook source verification rejected")

	// ErrVerifierUnavailable means the verifier could not be reached, so no
	// verdict exists either way.
	ErrVerifierUnavailable = errors.New("webhook source verification unavailable")
)

const webhookDedupTTL = 24 * time.Hour

// sourceVerifier is the request/reply surface of the webhook verification
// service. *nats.Conn satisfies it.
type sourceVerifier interface {
	Request(subj string, data []byte, timeout time.Duration) (*nats.Msg, error)
}

// WebhookJob is the unit of work flowing through the webhook pipeline.
type WebhookJob struct {
	RawConnector string
	Webhook      models.IncomingWebhook

	Connector models.RoutableConnector
	Event     models.IncomingWebhookEvent
	Outcome   string

	// dedupKey is set once this run claims the webhook, so a failed run can
	// release the claim.
	dedupKey string
}

// WebhookProcessor ingests connector notifications: it parses and
// deduplicates them, verifies their origin, then dispatches the event to the
// status domain selected by the webhook's object type.
type WebhookProcessor struct {
	repo        interfaces.PaymentStatusRepository
	redisClient redisOps
	nc          sourceVerifier
	engine      *Engine
	pipeline    *pipz.Sequence[*WebhookJob]
}

func NewWebhookProcessor(
	repo interfaces.PaymentStatusRepository,
	redisClient redisOps,
	nc sourceVerifier,
	engine *Engine,
) *WebhookProcessor {
	p := &WebhookProcessor{
		repo:        repo,
		redisClient: redisClient,
		nc:          nc,
		engine:      engine,
	}
	p.pipeline = pipz.NewSequence[*WebhookJob]("incoming_webhook",
		pipz.Apply("parse", p.parse),
		pipz.Apply("dedup", p.dedup),
		pipz.Apply("verify_source", p.verifySource),
		pipz.Apply("dispatch", p.dispatch),
	)
	return p
}

// Process runs one webhook through the pipeline and reports the outcome.
func (p *WebhookProcessor) Process(ctx context.Context, connector string, webhook models.IncomingWebhook) (string, error) {
	job := &WebhookJob{RawConnector: connector, Webhook: webhook}

	result, err := p.pipeline.Process(ctx, job)
	if err != nil {
		// A failed run must not keep its dedup claim, or the connector's
		// retry would be swallowed as a duplicate for the claim's TTL.
		if job.dedupKey != "" {
			p.redisClient.Del(ctx, job.dedupKey)
		}
		telemetry.WebhooksReceived.WithLabelValues(connector, "rejected").Inc()
		return "", err
	}

	telemetry.WebhooksReceived.WithLabelValues(connector, result.Outcome).Inc()
	return result.Outcome, nil
}

func (p *WebhookProcessor) parse(_ context.Context, job *WebhookJob) (*WebhookJob, error) {
	connector, err := models.ParseConnector(job.RawConnector)
	if err != nil {
		return nil, err
	}
	routable, err := connector.Routable()
	if err != nil {
		return nil, err
	}
	job.Connector = routable

	event, err := models.ParseIncomingWebhookEvent(job.Webhook.EventType)
	if err != nil {
		return nil, err
	}
	job.Event = event
	return job, nil
}

func (p *WebhookProcessor) dedup(ctx context.Context, job *WebhookJob) (*WebhookJob, error) {
	key := fmt.Sprintf("webhook_seen:%s:%s:%s", job.Connector, job.Webhook.ObjectID, job.Event)
	fresh := p.redisClient.SetNX(ctx, key, "1", webhookDedupTTL)
	if err := fresh.Err(); err != nil {
		return nil, err
	}
	if fresh.Val() {
		job.dedupKey = key
		return job, nil
	}

	job.Outcome = WebhookOutcomeDuplicate
	telemetry.Logger.Info("Duplicate webhook acknowledged",
		zap.String("connector", string(job.Connector)),
		zap.String("object_id", job.Webhook.ObjectID),
		zap.String("event", string(job.Event)),
	)
	return job, nil
}

func (p *WebhookProcessor) verifySource(_ context.Context, job *WebhookJob) (*WebhookJob, error) {
	if job.Outcome == WebhookOutcomeDuplicate {
		return job, nil
	}

	req := models.WebhookVerificationRequest{
		Connector:  string(job.Connector),
		EventID:    job.Webhook.EventID,
		ObjectID:   job.Webhook.ObjectID,
		MerchantID: job.Webhook.MerchantID,
	}
	reqJSON, _ := json.Marshal(req)

	msg, err := p.nc.Request("webhook.verify", reqJSON, 5*time.Second)
	if err != nil {
		telemetry.Logger.Warn("Webhook verification unavailable",
			zap.String("connector", string(job.Connector)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrVerifierUnavailable, err)
	}

	var resp models.WebhookVerificationResponse
	if err := json.Unmarshal(msg.Data, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVerifierUnavailable, err)
	}
	if resp.Decision != "accept" {
		telemetry.Logger.Warn("Webhook rejected by verifier",
			zap.String("connector", string(job.Connector)),
			zap.String("object_id", job.Webhook.ObjectID),
			zap.String("reason", resp.Reason),
		)
		return nil, ErrWebhookRejected
	}
	return job, nil
}

func (p *WebhookProcessor) dispatch(ctx context.Context, job *WebhookJob) (*WebhookJob, error) {
	if job.Outcome == WebhookOutcomeDuplicate {
		return job, nil
	}

	outcome, err := deriveWebhookOutcome(job.Connector, job.Event, &job.Webhook)
	if err != nil {
		return nil, err
	}
	job.Outcome = outcome.Kind

	if outcome.Refund != nil {
		if err := p.repo.UpsertRefund(ctx, outcome.Refund); err != nil {
			return nil, err
		}
	}
	if outcome.Dispute != nil {
		if err := p.repo.UpsertDispute(ctx, outcome.Dispute); err != nil {
			return nil, err
		}
	}
	if outcome.Mandate != nil {
		if err := p.repo.UpsertMandate(ctx, outcome.Mandate); err != nil {
			return nil, err
		}
	}

	if !outcome.HasEvent {
		telemetry.Logger.Info("Webhook consumed without merchant event",
			zap.String("connector", string(job.Connector)),
			zap.String("event", string(job.Event)),
			zap.String("outcome", job.Outcome),
		)
		return job, nil
	}

	if err := p.engine.RecordEvent(ctx, &models.Event{
		EventID:    uuid.NewString(),
		EventType:  outcome.EventType,
		EventClass: outcome.EventType.Class(),
		ObjectID:   job.Webhook.ObjectID,
		ObjectType: outcome.ObjectType,
		MerchantID: job.Webhook.MerchantID,
		PaymentID:  job.Webhook.PaymentID,
		Content:    job.Webhook.Content,
	}); err != nil {
		return nil, err
	}
	return job, nil
}

// webhookOutcome is what one verified webhook does to the status domains.
type webhookOutcome struct {
	Kind       string
	Refund     *models.Refund
	Dispute    *models.Dispute
	Mandate    *models.Mandate
	EventType  models.EventType
	HasEvent   bool
	ObjectType models.ObjectType
}

// deriveWebhookOutcome maps a verified webhook onto the status rows and the
// merchant event it implies. The object type selects the domain mapper;
// an event tag outside that domain is rejected rather than coerced.
// Payment-class events never touch attempt state, which is owned by the
// attempt update stream. Control events carry no domain meaning at all.
func deriveWebhookOutcome(connector models.RoutableConnector, event models.IncomingWebhookEvent, webhook *models.IncomingWebhook) (*webhookOutcome, error) {
	if event.Class() == models.WebhookClassControl {
		return &webhookOutcome{Kind: WebhookOutcomeAcknowledged}, nil
	}

	objectType, err := models.ParseObjectType(webhook.ObjectType)
	if err != nil {
		return nil, err
	}

	switch objectType {
	case models.ObjectTypeRefundDetails:
		status, err := models.RefundStatusFromWebhookEvent(event)
		if err != nil {
			return nil, err
		}
		eventType, hasEvent := status.EventType()
		return &webhookOutcome{
			Kind: WebhookOutcomeProcessed,
			Refund: &models.Refund{
				RefundID:   webhook.ObjectID,
				PaymentID:  webhook.PaymentID,
				MerchantID: webhook.MerchantID,
				Status:     status,
				Amount:     webhook.Amount,
				Currency:   webhook.Currency,
				Connector:  connector,
			},
			EventType:  eventType,
			HasEvent:   hasEvent,
			ObjectType: objectType,
		}, nil

	case models.ObjectTypeDisputeDetails:
		status, err := models.DisputeStatusFromWebhookEvent(event)
		if err != nil {
			return nil, err
		}
		stage := models.DisputeStageDispute
		if webhook.DisputeStage != "" {
			stage, err = models.ParseDisputeStage(webhook.DisputeStage)
			if err != nil {
				return nil, err
			}
		}
		return &webhookOutcome{
			Kind: WebhookOutcomeProcessed,
			Dispute: &models.Dispute{
				DisputeID:  webhook.ObjectID,
				PaymentID:  webhook.PaymentID,
				MerchantID: webhook.MerchantID,
				Status:     status,
				Stage:      stage,
				Amount:     webhook.Amount,
				Currency:   webhook.Currency,
				Connector:  connector,
			},
			EventType:  status.EventType(),
			HasEvent:   true,
			ObjectType: objectType,
		}, nil

	case models.ObjectTypeMandateDetails:
		status, err := models.MandateStatusFromWebhookEvent(event)
		if err != nil {
			return nil, err
		}
		eventType, hasEvent := status.EventType()
		return &webhookOutcome{
			Kind: WebhookOutcomeProcessed,
			Mandate: &models.Mandate{
				MandateID:  webhook.ObjectID,
				PaymentID:  webhook.PaymentID,
				MerchantID: webhook.MerchantID,
				Status:     status,
				Connector:  connector,
			},
			EventType:  eventType,
			HasEvent:   hasEvent,
			ObjectType: objectType,
		}, nil

	case models.ObjectTypePaymentDetails:
		return &webhookOutcome{Kind: WebhookOutcomeIgnored, ObjectType: objectType}, nil
	}

	return &webhookOutcome{Kind: WebhookOutcomeAcknowledged, ObjectType: objectType}, nil
}
