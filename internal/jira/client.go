package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tempo_fetcher/internal/retry"
)

// Config holds Jira client configuration. BaseURL is the org-templated
// Jira Cloud root, e.g. https://acme.atlassian.net.
type Config struct {
	BaseURL   string
	UserEmail string
	APIToken  string
	Timeout   time.Duration
	Retry     retry.Policy
	// MaxConsecutiveFailures aborts the long worklog-id pagination loop once
	// that many continuation fetches fail in a row, reporting a partial
	// result instead of spinning on a cursor that never advances.
	MaxConsecutiveFailures int
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	userEmail      string
	apiToken       string
	retry          retry.Policy
	maxConsecutive int
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.MaxConsecutiveFailures <= 0 {
		cfg.MaxConsecutiveFailures = 5
	}
	return &Client{
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		userEmail:      cfg.UserEmail,
		apiToken:       cfg.APIToken,
		retry:          cfg.Retry,
		maxConsecutive: cfg.MaxConsecutiveFailures,
		logger:         logger.With("client", "jira"),
	}
}

// StatusError is a non-2xx answer from the Jira API.
type StatusError struct {
	Endpoint string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("jira api %s [%d] - %s", e.Endpoint, e.Code, e.Body)
}

// DecodeError is a malformed body on a 2xx answer.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("jira api %s: invalid response body: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (c *Client) doJSON(ctx context.Context, method, path string, params url.Values, body, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.userEmail, c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Endpoint: path, Code: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Endpoint: path, Err: err}
	}
	return nil
}
