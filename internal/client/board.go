package client

import (
	"context"
	stderrors "errors"
	"sync"

	"go.uber.org/zap"

	"github.com/TharukaFdo/Internal-Job-Board-Codespa/internal/models"
)

const (
	FieldTitle       = "title"
	FieldDepartment  = "department"
	FieldDescription = "description"

	maxTitleLen       = 120
	maxDepartmentLen  = 120
	maxDescriptionLen = 1000

	loadErrorMessage      = "Sorry, could not load jobs right now."
	submitFallbackMessage = "Failed to create job posting."
)

// Status tracks one async operation of the board view.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusLoading    Status = "loading"
	StatusSubmitting Status = "submitting"
)

// Form holds the new-posting fields as typed by the user.
type Form struct {
	Title       string
	Department  string
	Description string
}

// Board is the view state behind the job board page: the rendered list, the
// form, and the independent load and submit error slots. A mutex stands in
// for the UI event loop; load and submit may overlap each other but a
// submission never overlaps itself.
type Board struct {
	api    *Client
	logger *zap.Logger

	mu           sync.Mutex
	jobs         []models.Job
	loadStatus   Status
	loadError    string
	form         Form
	submitStatus Status
	submitError  string
}

func NewBoard(api *Client, logger *zap.Logger) *Board {
	return &Board{
		api:          api,
		logger:       logger,
		jobs:         []models.Job{},
		loadStatus:   StatusIdle,
		submitStatus: StatusIdle,
	}
}

// LoadJobs refreshes the list from the server, replacing it verbatim on
// success. On failure the current list stays as it was.
func (b *Board) LoadJobs(ctx context.Context) {
	b.mu.Lock()
	b.loadStatus = StatusLoading
	b.loadError = ""
	b.mu.Unlock()

	jobs, err := b.api.ListJobs(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.loadStatus = StatusIdle
	if err != nil {
		b.logger.Error("failed to fetch jobs", zap.Error(err))
		b.loadError = loadErrorMessage
		return
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	b.jobs = jobs
}

// UpdateField mutates one form field. No validation happens here beyond the
// input-control length caps; the server owns the real rules.
func (b *Board) UpdateField(name, value string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch name {
	case FieldTitle:
		b.form.Title = clamp(value, maxTitleLen)
	case FieldDepartment:
		b.form.Department = clamp(value, maxDepartmentLen)
	case FieldDescription:
		b.form.Description = clamp(value, maxDescriptionLen)
	}
}

// Submit sends the current form. It is a no-op while a prior submission is
// still in flight. On success the server's canonical record is prepended and
// the form cleared; on failure the form is kept so the user can retry.
func (b *Board) Submit(ctx context.Context) {
	b.mu.Lock()
	if b.submitStatus == StatusSubmitting {
		b.mu.Unlock()
		return
	}
	b.submitStatus = StatusSubmitting
	b.submitError = ""
	input := CreateJobRequest{
		Title:       b.form.Title,
		Department:  b.form.Department,
		Description: b.form.Description,
	}
	b.mu.Unlock()

	job, err := b.api.CreateJob(ctx, input)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.submitStatus = StatusIdle
	if err != nil {
		b.logger.Error("failed to submit job", zap.Error(err))
		b.submitError = submitMessage(err)
		return
	}
	b.jobs = append([]models.Job{*job}, b.jobs...)
	b.form = Form{}
}

func (b *Board) Jobs() []models.Job {
	b.mu.Lock()
	defer b.mu.Unlock()
	jobs := make([]models.Job, len(b.jobs))
	copy(jobs, b.jobs)
	return jobs
}

func (b *Board) Form() Form {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.form
}

func (b *Board) LoadStatus() (Status, string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loadStatus, b.loadError
}

func (b *Board) SubmitStatus() (Status, string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.submitStatus, b.submitError
}

func submitMessage(err error) string {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return submitFallbackMessage
}

func clamp(value string, max int) string {
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	return string(runes[:max])
}
