package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/TharukaFdo/Internal-Job-Board-Codespa/internal/models"
)

// CreateJobRequest is the POST /api/jobs body. Values are sent as typed;
// trimming is the server's job so records are trimmed exactly once.
type CreateJobRequest struct {
	Title       string `json:"title"`
	Department  string `json:"department"`
	Description string `json:"description"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// APIError is a non-2xx response from the board API, carrying the
// server-provided message when one was decodable.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// Client talks to the board API over its REST contract.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
	}
}

func (c *Client) ListJobs(ctx context.Context) ([]models.Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/jobs", nil)
	if err != nil {
		return nil, fmt.Errorf("create list request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send list request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read list response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, payload)
	}

	var jobs []models.Job
	if err := json.Unmarshal(payload, &jobs); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	return jobs, nil
}

func (c *Client) CreateJob(ctx context.Context, input CreateJobRequest) (*models.Job, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("encode create request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/jobs", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send create request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read create response: %w", err)
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp.StatusCode, payload)
	}

	var job models.Job
	if err := json.Unmarshal(payload, &job); err != nil {
		return nil, fmt.Errorf("decode create response: %w", err)
	}
	return &job, nil
}

func apiError(status int, payload []byte) error {
	var parsed errorResponse
	_ = json.Unmarshal(payload, &parsed)
	return &APIError{StatusCode: status, Message: parsed.Message}
}
