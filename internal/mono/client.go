// Package mono is a client for the Monobank personal statement API with
// bounded retry and classified failures.
package mono

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"monozvit/internal/core"
	applog "monozvit/internal/log"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://api.monobank.ua"

// maxAttempts bounds the whole retry budget; classified transient failures
// are retried with the escalating retryDelays schedule.
const maxAttempts = 3

var retryDelays = [...]time.Duration{5 * time.Second, 15 * time.Second, 30 * time.Second}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *applog.Logger
	sleep      func(ctx context.Context, d time.Duration) error
}

type Option func(*Client)

// WithBaseURL overrides the API host, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the transport, e.g. to set a timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithSleep replaces the backoff sleep, so tests don't wait out the schedule.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Client) {
		c.sleep = sleep
	}
}

func New(token string, logger *applog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger.WithComponent(applog.ComponentMono),
		sleep:      sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Statement fetches the account's transactions for the [rng.From, rng.To)
// window, ordered as the API returns them.
//
// Transient failures (429, 5xx, transport errors) are retried with delays of
// 5s, 15s and 30s up to three attempts total; 401/403 and unclassified
// statuses fail immediately. The last classified error is surfaced once the
// budget is exhausted.
func (c *Client) Statement(ctx context.Context, accountID string, rng core.TimeRange) ([]core.Transaction, error) {
	url := fmt.Sprintf("%s/personal/statement/%s/%d/%d", c.baseURL, accountID, rng.From, rng.To)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		transactions, retriable, err := c.fetch(ctx, url, attempt)
		if err == nil {
			return transactions, nil
		}
		if !retriable {
			return nil, err
		}
		lastErr = err
		if attempt == maxAttempts {
			break
		}

		delay := retryDelays[attempt-1]
		c.logger.WarnContext(ctx, "statement request failed, retrying",
			applog.FieldError, err.Error(),
			applog.FieldAttempt, attempt,
			applog.FieldDelay, delay.String())
		if err := c.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
	return nil, lastErr
}

// fetch performs one request and classifies the outcome. The returned flag
// reports whether the failure is transient and worth another attempt.
func (c *Client) fetch(ctx context.Context, url string, attempt int) ([]core.Transaction, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("monobank: build request: %w", err)
	}
	req.Header.Set("X-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("monobank: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, false, &AuthError{Status: resp.StatusCode}

	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, true, &RateLimitError{Attempts: attempt}

	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, true, &ServerError{Status: resp.StatusCode, Attempts: attempt}

	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, false, &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var transactions []core.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&transactions); err != nil {
		return nil, true, fmt.Errorf("monobank: decode statement: %w", err)
	}
	return transactions, false, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
