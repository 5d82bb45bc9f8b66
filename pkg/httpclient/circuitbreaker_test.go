package httpclient

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cbTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func quickBreakerConfig(name string) CircuitBreakerConfig {
	cfg := DefaultCircuitBreakerConfig(name)
	cfg.MinRequests = 3
	cfg.FailureRatio = 0.5
	cfg.Timeout = 50 * time.Millisecond
	return cfg
}

func TestCircuitBreaker_SuccessPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewCircuitBreakerClient(New(fastConfig(0)), quickBreakerConfig("cb-success"), cbTestLogger())

	resp, err := c.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, gobreaker.StateClosed, c.State())
}

func TestCircuitBreaker_5xxCountsAsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("backend down"))
	}))
	defer srv.Close()

	c := NewCircuitBreakerClient(New(fastConfig(0)), quickBreakerConfig("cb-5xx"), cbTestLogger())

	_, err := c.Get(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server error 502")
	assert.Contains(t, err.Error(), "backend down")
}

func TestCircuitBreaker_TripsAfterRepeatedFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewCircuitBreakerClient(New(fastConfig(0)), quickBreakerConfig("cb-trips"), cbTestLogger())

	for i := 0; i < 5; i++ {
		_, _ = c.Get(context.Background(), srv.URL)
	}

	assert.Equal(t, gobreaker.StateOpen, c.State())

	_, err := c.Get(context.Background(), srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestCircuitBreaker_FallbackInvokedWhenOpen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	base := NewCircuitBreakerClient(New(fastConfig(0)), quickBreakerConfig("cb-fallback"), cbTestLogger())
	c := base.WithFallback(func(ctx context.Context, err error) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString(`{"data":[]}`)),
			Header:     http.Header{"Content-Type": []string{"application/json"}},
		}, nil
	})

	for i := 0; i < 5; i++ {
		_, _ = c.Get(context.Background(), srv.URL)
	}
	require.Equal(t, gobreaker.StateOpen, c.State())

	resp, err := c.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"data":[]}`, string(body))
}

func TestCircuitBreaker_RecoversAfterTimeout(t *testing.T) {
	healthy := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if healthy {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewCircuitBreakerClient(New(fastConfig(0)), quickBreakerConfig("cb-recovers"), cbTestLogger())

	for i := 0; i < 5; i++ {
		_, _ = c.Get(context.Background(), srv.URL)
	}
	require.Equal(t, gobreaker.StateOpen, c.State())

	healthy = true
	time.Sleep(60 * time.Millisecond)

	resp, err := c.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
