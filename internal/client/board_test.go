package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/TharukaFdo/Internal-Job-Board-Codespa/internal/models"
)

// stubAPI is a scripted job board server, one response per expectation,
// mirroring the real wire contract.
type stubAPI struct {
	mu       sync.Mutex
	jobs     []models.Job
	listErr  bool
	onCreate func(w http.ResponseWriter, r *http.Request)
}

func (s *stubAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/jobs", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			s.onCreate(w, r)
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.listErr {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "Failed to load job postings"})
			return
		}
		json.NewEncoder(w).Encode(s.jobs)
	})
	return mux
}

func newTestBoard(t *testing.T, api *stubAPI) (*Board, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	return NewBoard(NewClient(srv.URL, srv.Client()), zap.NewNop()), srv
}

func TestBoard_LoadJobs(t *testing.T) {
	created := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	api := &stubAPI{jobs: []models.Job{
		{ID: "1", Title: "Backend Engineer", Department: "Platform", CreatedAt: created},
	}}
	board, _ := newTestBoard(t, api)

	board.LoadJobs(context.Background())

	status, loadErr := board.LoadStatus()
	if status != StatusIdle || loadErr != "" {
		t.Fatalf("load status = %q err %q, want idle with no error", status, loadErr)
	}
	jobs := board.Jobs()
	if len(jobs) != 1 || jobs[0].Title != "Backend Engineer" {
		t.Errorf("jobs = %+v", jobs)
	}
}

func TestBoard_LoadJobs_EmptyBoard(t *testing.T) {
	board, _ := newTestBoard(t, &stubAPI{})

	board.LoadJobs(context.Background())

	jobs := board.Jobs()
	if jobs == nil || len(jobs) != 0 {
		t.Errorf("jobs = %#v, want empty slice", jobs)
	}
}

func TestBoard_LoadJobs_FailureKeepsList(t *testing.T) {
	api := &stubAPI{jobs: []models.Job{{ID: "1", Title: "Kept", Department: "Ops"}}}
	board, _ := newTestBoard(t, api)

	board.LoadJobs(context.Background())
	api.mu.Lock()
	api.listErr = true
	api.mu.Unlock()
	board.LoadJobs(context.Background())

	_, loadErr := board.LoadStatus()
	if loadErr != loadErrorMessage {
		t.Errorf("load error = %q, want %q", loadErr, loadErrorMessage)
	}
	jobs := board.Jobs()
	if len(jobs) != 1 || jobs[0].Title != "Kept" {
		t.Errorf("jobs = %+v, want the previously loaded list", jobs)
	}
}

func TestBoard_SubmitSuccess_ClearsFormAndPrepends(t *testing.T) {
	created := time.Date(2025, time.March, 2, 10, 0, 0, 0, time.UTC)
	api := &stubAPI{
		jobs: []models.Job{{ID: "1", Title: "Existing", Department: "Ops", CreatedAt: created.Add(-time.Hour)}},
	}
	api.onCreate = func(w http.ResponseWriter, r *http.Request) {
		var input CreateJobRequest
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		// The server returns the canonical record: trimmed, with id and
		// createdAt assigned.
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Job{
			ID:          "2",
			Title:       strings.TrimSpace(input.Title),
			Department:  strings.TrimSpace(input.Department),
			Description: input.Description,
			CreatedAt:   created,
		})
	}
	board, _ := newTestBoard(t, api)
	board.LoadJobs(context.Background())

	board.UpdateField(FieldTitle, "  QA Engineer ")
	board.UpdateField(FieldDepartment, "Quality")
	board.UpdateField(FieldDescription, "Test plans")
	board.Submit(context.Background())

	status, submitErr := board.SubmitStatus()
	if status != StatusIdle || submitErr != "" {
		t.Fatalf("submit status = %q err %q, want idle with no error", status, submitErr)
	}
	if form := board.Form(); form != (Form{}) {
		t.Errorf("form = %+v, want cleared", form)
	}
	jobs := board.Jobs()
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(jobs))
	}
	// The server-returned record is displayed, not the raw form input.
	if jobs[0].ID != "2" || jobs[0].Title != "QA Engineer" {
		t.Errorf("jobs[0] = %+v", jobs[0])
	}
	if jobs[1].ID != "1" {
		t.Errorf("jobs[1] = %+v, want the earlier posting", jobs[1])
	}
}

func TestBoard_SubmitFailure_KeepsFormAndList(t *testing.T) {
	api := &stubAPI{}
	api.onCreate = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "Failed to create job posting"})
	}
	board, _ := newTestBoard(t, api)
	board.LoadJobs(context.Background())

	board.UpdateField(FieldTitle, "SRE")
	board.UpdateField(FieldDepartment, "Infra")
	board.Submit(context.Background())

	_, submitErr := board.SubmitStatus()
	if submitErr != "Failed to create job posting" {
		t.Errorf("submit error = %q", submitErr)
	}
	form := board.Form()
	if form.Title != "SRE" || form.Department != "Infra" {
		t.Errorf("form = %+v, want fields retained", form)
	}
	if len(board.Jobs()) != 0 {
		t.Errorf("jobs = %+v, want unchanged empty list", board.Jobs())
	}
}

func TestBoard_SubmitValidationMessagePassedThrough(t *testing.T) {
	api := &stubAPI{}
	api.onCreate = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Title and Department must not be empty"})
	}
	board, _ := newTestBoard(t, api)

	board.Submit(context.Background())

	_, submitErr := board.SubmitStatus()
	if submitErr != "Title and Department must not be empty" {
		t.Errorf("submit error = %q", submitErr)
	}
}

func TestBoard_SubmitErrorIndependentOfLoadError(t *testing.T) {
	api := &stubAPI{listErr: true}
	api.onCreate = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Job{ID: "1", Title: "SRE", Department: "Infra"})
	}
	board, _ := newTestBoard(t, api)

	board.LoadJobs(context.Background())
	board.UpdateField(FieldTitle, "SRE")
	board.UpdateField(FieldDepartment, "Infra")
	board.Submit(context.Background())

	_, loadErr := board.LoadStatus()
	if loadErr != loadErrorMessage {
		t.Errorf("load error = %q, want it untouched by the submit", loadErr)
	}
	_, submitErr := board.SubmitStatus()
	if submitErr != "" {
		t.Errorf("submit error = %q, want none", submitErr)
	}
}

func TestBoard_DoubleSubmitSendsOneRequest(t *testing.T) {
	var requests atomic.Int32
	arrived := make(chan struct{})
	release := make(chan struct{})

	api := &stubAPI{}
	api.onCreate = func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			close(arrived)
			<-release
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Job{ID: "1", Title: "SRE", Department: "Infra"})
	}
	board, _ := newTestBoard(t, api)
	board.UpdateField(FieldTitle, "SRE")
	board.UpdateField(FieldDepartment, "Infra")

	done := make(chan struct{})
	go func() {
		board.Submit(context.Background())
		close(done)
	}()

	<-arrived
	// Second click while the first submission is still in flight.
	board.Submit(context.Background())
	close(release)
	<-done

	if got := requests.Load(); got != 1 {
		t.Errorf("sent %d create requests, want 1", got)
	}
}

func TestBoard_UpdateFieldClampsLength(t *testing.T) {
	board, _ := newTestBoard(t, &stubAPI{})

	board.UpdateField(FieldTitle, strings.Repeat("a", 200))
	board.UpdateField(FieldDescription, strings.Repeat("b", 1200))

	form := board.Form()
	if len(form.Title) != 120 {
		t.Errorf("title length = %d, want 120", len(form.Title))
	}
	if len(form.Description) != 1000 {
		t.Errorf("description length = %d, want 1000", len(form.Description))
	}
}

func TestBoard_UpdateFieldUnknownNameIgnored(t *testing.T) {
	board, _ := newTestBoard(t, &stubAPI{})

	board.UpdateField("salary", "lots")

	if form := board.Form(); form != (Form{}) {
		t.Errorf("form = %+v, want untouched", form)
	}
}
