package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/supernav/pkg/metric"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestNew_Defaults(t *testing.T) {
	s := New().(*server)

	assert.Equal(t, DefaultPort, s.port)
	assert.Equal(t, DefaultReadTimeout, s.readTimeout)
	assert.Equal(t, DefaultWriteTimeout, s.writeTimeout)
	assert.Equal(t, DefaultIdleTimeout, s.idleTimeout)
	assert.Equal(t, DefaultShutdownTimeout, s.shutdownTimeout)
	assert.Equal(t, DefaultMaxHeaderBytes, s.maxHeaderBytes)
	assert.NotNil(t, s.Registry())
	assert.False(t, s.IsRunning())
}

func TestNew_Options(t *testing.T) {
	s := New(
		WithPort(8080),
		WithReadTimeout(time.Second),
		WithWriteTimeout(2*time.Second),
		WithIdleTimeout(3*time.Second),
		WithShutdownTimeout(4*time.Second),
		WithMaxHeaderBytes(1024),
		WithTLS(TLSConfig{CertFile: "c.pem", KeyFile: "k.pem"}),
	).(*server)

	assert.Equal(t, 8080, s.port)
	assert.Equal(t, time.Second, s.readTimeout)
	assert.Equal(t, 2*time.Second, s.writeTimeout)
	assert.Equal(t, 3*time.Second, s.idleTimeout)
	assert.Equal(t, 4*time.Second, s.shutdownTimeout)
	assert.Equal(t, 1024, s.maxHeaderBytes)
	require.NotNil(t, s.tlsConfig)
	assert.Equal(t, "c.pem", s.tlsConfig.CertFile)
}

func TestWithSimpleHealth(t *testing.T) {
	s := New(WithSimpleHealth())

	rec := get(t, s.Handler(), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	assert.Equal(t, http.StatusNotFound, get(t, s.Handler(), "/nope").Code)
}

func TestWithPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	nav := metric.NewNavigation(reg)
	nav.Searches.Increment("hit")

	s := New(WithRegistry(reg), WithPrometheusMetrics())

	rec := get(t, s.Handler(), "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `supernav_searches_total{outcome="hit"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestWithHandlerAndRoutes(t *testing.T) {
	s := New(
		WithHandler("/hello", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("hi"))
		})),
		WithRoutes(func(r chi.Router) {
			r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(chi.URLParam(r, "id")))
			})
		}),
	)

	assert.Equal(t, "hi", get(t, s.Handler(), "/hello").Body.String())
	assert.Equal(t, "reports", get(t, s.Handler(), "/items/reports").Body.String())
}

func TestServe_GracefulShutdown(t *testing.T) {
	s := New(WithPort(0), WithShutdownTimeout(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()

	require.Eventually(t, s.IsRunning, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.False(t, s.IsRunning())
}

func TestServe_BadTLS(t *testing.T) {
	s := New(WithPort(0), WithTLS(TLSConfig{CertFile: "missing.pem", KeyFile: "missing.key"}))

	err := s.Serve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load TLS certificate")
}
