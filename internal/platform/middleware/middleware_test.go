// Copyright (c) 2026 Melodia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/melodia/internal/platform/ctxutil"
	"github.com/taibuivan/melodia/internal/platform/middleware"
)

type corsConfig struct {
	development bool
}

func (c corsConfig) IsDevelopment() bool  { return c.development }
func (c corsConfig) OriginSuffix() string { return "melodia.app" }

func okHandler(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
}

/*
TestRequestID verifies that a client-supplied ID is echoed and a missing one is generated.
*/
func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	}))

	// 1. Client-provided ID
	request := httptest.NewRequest(http.MethodGet, "/singers/", nil)
	request.Header.Set("X-Request-ID", "abc-123")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", recorder.Header().Get("X-Request-ID"))

	// 2. Generated ID
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/singers/", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, recorder.Header().Get("X-Request-ID"))
}

/*
TestRateLimit verifies that a client is rejected once its burst is spent.
*/
func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimit(ctx, 0.0001, 2)(http.HandlerFunc(okHandler))

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		request := httptest.NewRequest(http.MethodGet, "/singers/", nil)
		request.Header.Set("X-Real-IP", "10.0.0.1")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		statuses = append(statuses, recorder.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)

	// Another client has its own bucket
	request := httptest.NewRequest(http.MethodGet, "/singers/", nil)
	request.Header.Set("X-Real-IP", "10.0.0.2")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestPanicRecovery verifies that a panicking handler yields a JSON 500.
*/
func TestPanicRecovery(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	handler := middleware.PanicRecovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/singers/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"code":"INTERNAL_SERVER_ERROR","detail":"An unexpected error occurred"}`, recorder.Body.String())
}

/*
TestCORS verifies the production origin policy and pre-flight handling.
*/
func TestCORS(t *testing.T) {
	handler := middleware.CORS(corsConfig{development: false})(http.HandlerFunc(okHandler))

	// 1. Allowed origin, pre-flight
	request := httptest.NewRequest(http.MethodOptions, "/singers/", nil)
	request.Header.Set("Origin", "https://www.melodia.app")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "https://www.melodia.app", recorder.Header().Get("Access-Control-Allow-Origin"))

	// 2. Foreign origin gets no CORS headers
	request = httptest.NewRequest(http.MethodGet, "/singers/", nil)
	request.Header.Set("Origin", "https://evil.example")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

/*
TestRealIP verifies proxy header precedence.
*/
func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "192.168.1.10:5555"
	assert.Equal(t, "192.168.1.10", middleware.RealIP(request))

	request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", middleware.RealIP(request))

	request.Header.Set("X-Real-IP", "198.51.100.1")
	assert.Equal(t, "198.51.100.1", middleware.RealIP(request))
}

/*
TestMetrics verifies that requests are counted under their route pattern.
*/
func TestMetrics(t *testing.T) {
	metrics := middleware.NewMetrics()

	router := chi.NewRouter()
	router.Use(metrics.Middleware())
	router.Get("/singers/{artist_id}", okHandler)

	for _, path := range []string{"/singers/1", "/singers/2", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	recorder := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	body := recorder.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",route="/singers/{artist_id}",status="200"} 2`)
	assert.Contains(t, body, `http_requests_total{method="GET",route="unmatched",status="404"} 1`)
}
