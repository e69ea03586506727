package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/TharukaFdo/Internal-Job-Board-Codespa/internal/errors"
	"github.com/TharukaFdo/Internal-Job-Board-Codespa/internal/models"
	"github.com/TharukaFdo/Internal-Job-Board-Codespa/internal/telemetry"
)

var tracer = telemetry.GetTracer("jobboard/events")

const (
	JobCreatedSubject = "jobs.created"
)

// Publisher announces board activity to interested downstream consumers.
// Publishing is best-effort: a create never fails because the bus is down.
type Publisher interface {
	PublishJobCreated(ctx context.Context, job *models.Job) error
	Close()
}

type natsPublisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

// NewPublisher connects to NATS when a URL is configured and returns a no-op
// publisher otherwise, so the board runs standalone without a bus.
func NewPublisher(natsURL string, connTimeout time.Duration, logger *zap.Logger) (Publisher, error) {
	if natsURL == "" {
		logger.Info("NATS_URL not set, job events disabled")
		return noopPublisher{}, nil
	}

	opts := []nats.Option{
		nats.Timeout(connTimeout),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
	}

	conn, err := nats.Connect(natsURL, opts...)
	if err != nil {
		return nil, errors.Internal("connecting to NATS", err)
	}

	return &natsPublisher{
		conn:   conn,
		logger: logger,
	}, nil
}

func (p *natsPublisher) PublishJobCreated(ctx context.Context, job *models.Job) error {
	_, span := tracer.Start(ctx, "PublishJobCreated")
	defer span.End()

	data, err := json.Marshal(job)
	if err != nil {
		span.RecordError(err)
		return errors.Internal("marshaling job posting", err)
	}

	span.SetAttributes(
		telemetry.String("nats.subject", JobCreatedSubject),
		telemetry.Int("message.size", len(data)),
	)

	if err := p.conn.Publish(JobCreatedSubject, data); err != nil {
		span.RecordError(err)
		p.logger.Error("failed to publish job created event",
			zap.String("id", job.ID),
			zap.Error(err))
		return errors.Internal("publishing to NATS", err)
	}

	p.logger.Debug("published job created event",
		zap.String("id", job.ID),
		zap.String("subject", JobCreatedSubject))
	return nil
}

func (p *natsPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}

type noopPublisher struct{}

func (noopPublisher) PublishJobCreated(ctx context.Context, job *models.Job) error { return nil }

func (noopPublisher) Close() {}
