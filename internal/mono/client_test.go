package mono

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monozvit/internal/core"
	applog "monozvit/internal/log"
)

func testLogger() *applog.Logger {
	return applog.New(applog.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
}

// scriptedServer returns each status in sequence; a 200 responds with body.
func scriptedServer(t *testing.T, statuses []int, body string) (*httptest.Server, *[]*http.Request) {
	t.Helper()
	var requests []*http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Clone(context.Background()))
		status := statuses[len(requests)-1]
		if status == http.StatusOK {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
			return
		}
		http.Error(w, http.StatusText(status), status)
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func newTestClient(t *testing.T, baseURL string, sleeps *[]time.Duration) *Client {
	t.Helper()
	return New("secret-token", testLogger(),
		WithBaseURL(baseURL),
		WithSleep(func(_ context.Context, d time.Duration) error {
			*sleeps = append(*sleeps, d)
			return nil
		}))
}

func TestStatementSuccess(t *testing.T) {
	body := `[
		{"id":"a1","time":1710500000,"description":"Кава","mcc":5814,"amount":-4500,"operationAmount":-4500,"currencyCode":980,"commissionRate":0,"balance":100000},
		{"id":"b2","time":1710501000,"description":"Зарплата","mcc":0,"amount":250000,"operationAmount":250000,"currencyCode":980,"commissionRate":0,"balance":350000,"hold":true}
	]`
	srv, requests := scriptedServer(t, []int{200}, body)

	var sleeps []time.Duration
	client := newTestClient(t, srv.URL, &sleeps)

	transactions, err := client.Statement(context.Background(), "acc-1", core.TimeRange{From: 1710453600, To: 1710540000})
	require.NoError(t, err)

	require.Len(t, transactions, 2)
	assert.Equal(t, "a1", transactions[0].ID)
	assert.Equal(t, int64(-4500), transactions[0].Amount)
	assert.Equal(t, 5814, transactions[0].MCC)
	assert.True(t, transactions[1].Hold)
	assert.Empty(t, sleeps)

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, "secret-token", req.Header.Get("X-Token"))
	assert.Equal(t, "/personal/statement/acc-1/1710453600/1710540000", req.URL.Path)
}

func TestStatementRetriesRateLimitThenSucceeds(t *testing.T) {
	srv, requests := scriptedServer(t, []int{429, 429, 200}, `[]`)

	var sleeps []time.Duration
	client := newTestClient(t, srv.URL, &sleeps)

	_, err := client.Statement(context.Background(), "acc-1", core.TimeRange{})
	require.NoError(t, err)

	assert.Len(t, *requests, 3)
	// Exactly two delayed retries, escalating schedule.
	assert.Equal(t, []time.Duration{5 * time.Second, 15 * time.Second}, sleeps)
}

func TestStatementRateLimitExhausted(t *testing.T) {
	srv, requests := scriptedServer(t, []int{429, 429, 429}, "")

	var sleeps []time.Duration
	client := newTestClient(t, srv.URL, &sleeps)

	_, err := client.Statement(context.Background(), "acc-1", core.TimeRange{})

	var rateErr *RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, 3, rateErr.Attempts)
	assert.Len(t, *requests, 3)
	assert.Equal(t, []time.Duration{5 * time.Second, 15 * time.Second}, sleeps)
}

func TestStatementAuthErrorShortCircuits(t *testing.T) {
	for _, status := range []int{401, 403} {
		srv, requests := scriptedServer(t, []int{status, status, status}, "")

		var sleeps []time.Duration
		client := newTestClient(t, srv.URL, &sleeps)

		_, err := client.Statement(context.Background(), "acc-1", core.TimeRange{})

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, status, authErr.Status)
		// Never consumes the retry budget.
		assert.Len(t, *requests, 1)
		assert.Empty(t, sleeps)
	}
}

func TestStatementServerErrorExhausted(t *testing.T) {
	srv, requests := scriptedServer(t, []int{503, 503, 503}, "")

	var sleeps []time.Duration
	client := newTestClient(t, srv.URL, &sleeps)

	_, err := client.Statement(context.Background(), "acc-1", core.TimeRange{})

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, 503, serverErr.Status)
	assert.Equal(t, 3, serverErr.Attempts)
	assert.Len(t, *requests, 3)
}

func TestStatementServerErrorThenSuccess(t *testing.T) {
	srv, requests := scriptedServer(t, []int{500, 200}, `[]`)

	var sleeps []time.Duration
	client := newTestClient(t, srv.URL, &sleeps)

	_, err := client.Statement(context.Background(), "acc-1", core.TimeRange{})
	require.NoError(t, err)
	assert.Len(t, *requests, 2)
	assert.Equal(t, []time.Duration{5 * time.Second}, sleeps)
}

func TestStatementUnclassifiedStatusFailsImmediately(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errorDescription":"bad range"}`))
	}))
	t.Cleanup(srv.Close)

	var sleeps []time.Duration
	client := newTestClient(t, srv.URL, &sleeps)

	_, err := client.Statement(context.Background(), "acc-1", core.TimeRange{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Contains(t, apiErr.Body, "bad range")
	assert.Empty(t, sleeps)
}

func TestStatementTransportErrorRetriesThenSurfacesLast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // every request now fails at the transport level

	var sleeps []time.Duration
	client := newTestClient(t, srv.URL, &sleeps)

	_, err := client.Statement(context.Background(), "acc-1", core.TimeRange{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
	assert.Equal(t, []time.Duration{5 * time.Second, 15 * time.Second}, sleeps)
}

func TestStatementSleepHonorsContext(t *testing.T) {
	srv, _ := scriptedServer(t, []int{429, 429, 429}, "")

	ctx, cancel := context.WithCancel(context.Background())
	client := New("secret-token", testLogger(),
		WithBaseURL(srv.URL),
		WithSleep(func(ctx context.Context, _ time.Duration) error {
			cancel()
			return ctx.Err()
		}))

	_, err := client.Statement(ctx, "acc-1", core.TimeRange{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, (&AuthError{Status: 401}).Error(), "MONO_TOKEN")
	assert.Contains(t, (&RateLimitError{Attempts: 3}).Error(), "rate limit")
	assert.Contains(t, (&ServerError{Status: 502, Attempts: 3}).Error(), "502")
	assert.True(t, errors.As(error(&APIError{Status: 418}), new(*APIError)))
}
