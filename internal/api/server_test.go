// Copyright (c) 2026 Melodia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/melodia/internal/api"
	"github.com/taibuivan/melodia/internal/core/album"
	"github.com/taibuivan/melodia/internal/core/artist"
	"github.com/taibuivan/melodia/internal/core/track"
	"github.com/taibuivan/melodia/internal/platform/config"
	"github.com/taibuivan/melodia/internal/platform/middleware"
	"github.com/taibuivan/melodia/internal/platform/sqlite"
	"github.com/taibuivan/melodia/internal/platform/sqlite/sqlitetest"
)

func newTestServer(t *testing.T, deps api.HealthDependencies) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := sqlitetest.Seeded(t)

	if deps.CheckDatabase == nil {
		deps.DatabaseName = "sqlite"
		deps.CheckDatabase = func(ctx context.Context) error { return sqlite.Ping(ctx, db) }
	}

	service := artist.NewService(
		artist.NewGormRepository(db),
		album.NewGormRepository(db),
		track.NewGormRepository(db),
		logger,
	)
	liveness, readiness := api.NewHealthHandlers(deps, logger)

	cfg := &config.Config{ServerPort: "0", Environment: "test", AllowedOriginSuffix: "melodia.app"}
	server := api.NewServer(ctx, cfg, logger, middleware.NewMetrics(), api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Artist:    artist.NewHandler(service),
	})
	return server.Handler()
}

func serve(handler http.Handler, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, path, nil)
	request.RemoteAddr = "127.0.0.1:40000"
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestServer_Routes verifies the public surface through the full middleware chain.
*/
func TestServer_Routes(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	tests := []struct {
		path   string
		status int
	}{
		{"/singers/", http.StatusOK},
		{"/singers/1/", http.StatusOK},
		{"/singer/1/", http.StatusOK},
		{"/singers/999/", http.StatusNotFound},
		{"/singer/999/", http.StatusNotFound},
		{"/health", http.StatusOK},
		{"/ready", http.StatusOK},
		{"/albums/", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			recorder := serve(handler, tt.path)
			assert.Equal(t, tt.status, recorder.Code)
			assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
		})
	}

	// Requests above are visible in the metrics endpoint
	recorder := serve(handler, "/metrics")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `route="/singers/{artist_id}",status="404"`)
}

/*
TestServer_ReadinessDegraded verifies that a failing dependency turns /ready into a 503.
*/
func TestServer_ReadinessDegraded(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{
		DatabaseName:  "postgres",
		CheckDatabase: func(context.Context) error { return nil },
		CheckCache:    func(context.Context) error { return errors.New("redis: ping failed") },
	})

	recorder := serve(handler, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.JSONEq(t, `{"data": {
		"status": "degraded",
		"checks": [
			{"name": "postgres", "ok": true},
			{"name": "redis", "ok": false, "error": "redis: ping failed"}
		]
	}}`, recorder.Body.String())
}
