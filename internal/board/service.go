package board

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TharukaFdo/Internal-Job-Board-Codespa/internal/errors"
	"github.com/TharukaFdo/Internal-Job-Board-Codespa/internal/events"
	"github.com/TharukaFdo/Internal-Job-Board-Codespa/internal/models"
	"github.com/TharukaFdo/Internal-Job-Board-Codespa/internal/store"
	"github.com/TharukaFdo/Internal-Job-Board-Codespa/internal/telemetry"
)

var tracer = telemetry.GetTracer("jobboard/board")

const (
	msgValidation   = "Title and Department must not be empty"
	msgLoadFailed   = "Failed to load job postings"
	msgCreateFailed = "Failed to create job posting"
)

// CreateInput is a new posting as submitted by the client. Description is
// optional and defaults to empty.
type CreateInput struct {
	Title       string `json:"title"`
	Department  string `json:"department"`
	Description string `json:"description"`
}

// Service owns the posting rules: validation, id and timestamp assignment,
// and mapping store failures to user-safe messages.
type Service struct {
	store     store.Store
	publisher events.Publisher
	logger    *zap.Logger
}

func NewService(store store.Store, publisher events.Publisher, logger *zap.Logger) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

// List returns every posting, newest first. An empty board is an empty
// slice, not an error.
func (s *Service) List(ctx context.Context) ([]models.Job, error) {
	ctx, span := tracer.Start(ctx, "Service.List")
	defer span.End()

	jobs, err := s.store.ListNewestFirst(ctx)
	if err != nil {
		span.RecordError(err)
		s.logger.Error("failed to list job postings", zap.Error(err))
		return nil, errors.Unavailable(msgLoadFailed, err)
	}

	span.SetAttributes(telemetry.Int("jobs.count", len(jobs)))
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

// Create validates and persists one posting, returning the stored record
// with its assigned id and creation time. Duplicate submissions create
// duplicate records; there is no idempotency key.
func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Job, error) {
	ctx, span := tracer.Start(ctx, "Service.Create")
	defer span.End()

	title := strings.TrimSpace(input.Title)
	department := strings.TrimSpace(input.Department)
	if title == "" || department == "" {
		return nil, errors.InvalidInput(msgValidation, nil)
	}

	job := models.Job{
		ID:          uuid.NewString(),
		Title:       title,
		Department:  department,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.store.Insert(ctx, job); err != nil {
		span.RecordError(err)
		s.logger.Error("failed to create job posting",
			zap.String("title", title),
			zap.Error(err))
		return nil, errors.Internal(msgCreateFailed, err)
	}

	if err := s.publisher.PublishJobCreated(ctx, &job); err != nil {
		// Best-effort: the record is already durable.
		s.logger.Warn("failed to publish job created event",
			zap.String("id", job.ID),
			zap.Error(err))
	}

	s.logger.Info("created job posting",
		zap.String("id", job.ID),
		zap.String("title", job.Title),
		zap.String("department", job.Department))
	return &job, nil
}
