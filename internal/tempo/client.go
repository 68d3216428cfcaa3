package tempo

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

// Config holds Tempo client configuration.
type Config struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration
	Retry    retry.Policy
	// MapChunkSize bounds one id-mapping request; the upstream documents 500.
	MapChunkSize int
}

// Client talks to the Tempo v4 REST API. All state is per-instance so tests
// can run several isolated clients against fixture servers.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	token        string
	retry        retry.Policy
	mapChunkSize int
	logger       *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.MapChunkSize <= 0 {
		cfg.MapChunkSize = 500
	}
	return &Client{
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		token:        cfg.APIToken,
		retry:        cfg.Retry,
		mapChunkSize: cfg.MapChunkSize,
		logger:       logger.With("client", "tempo"),
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*Page, error) {
	return c.do(ctx, http.MethodGet, path, params, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) (*Page, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any) (*Page, error) {
	raw, err := c.doRaw(ctx, method, path, params, body)
	if err != nil {
		return nil, err
	}

	var page Page
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, &DecodeError{Endpoint: path, Err: err}
	}
	return &page, nil
}

func (c *Client) doRaw(ctx context.Context, method, path string, params url.Values, body any) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		u += sep + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Endpoint: path, Code: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	return raw, nil
}

// collectPages walks the metadata.next cursor starting at first until the
// final page, fetching each page through the retry policy. fetch receives the
// relative path of the page to request; the paginator itself never retries.
// Records come back in upstream page order.
func (c *Client) collectPages(ctx context.Context, first string, fetch func(path string) (*Page, error)) ([]json.RawMessage, error) {
	var out []json.RawMessage
	path := first
	prevTotal := -1

	for {
		var page *Page
		err := c.retry.Do(ctx, c.logger, path, func() error {
			var ferr error
			page, ferr = fetch(path)
			return ferr
		})
		if err != nil {
			return nil, err
		}

		if page.Metadata.Count != 0 && page.Metadata.Count != len(page.Results) {
			c.logger.Warn("page count disagrees with payload size",
				"endpoint", path,
				"count", page.Metadata.Count,
				"results", len(page.Results),
			)
		}
		if prevTotal >= 0 && page.Metadata.Total < prevTotal {
			c.logger.Warn("total shrank between pages",
				"endpoint", path,
				"was", prevTotal,
				"now", page.Metadata.Total,
			)
		}
		prevTotal = page.Metadata.Total

		out = append(out, page.Results...)

		next := page.Metadata.NextPath(c.baseURL)
		if next == "" {
			return out, nil
		}
		path = next
	}
}
