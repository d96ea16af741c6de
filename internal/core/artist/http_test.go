// Copyright (c) 2026 Melodia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/melodia/internal/core/album"
	"github.com/taibuivan/melodia/internal/core/artist"
	"github.com/taibuivan/melodia/internal/core/track"
	"github.com/taibuivan/melodia/internal/platform/respond"
	"github.com/taibuivan/melodia/internal/platform/sqlite/sqlitetest"
)

// newRouter wires the handler against the seeded in-memory catalogue.
func newRouter(t *testing.T) http.Handler {
	t.Helper()
	db := sqlitetest.Seeded(t)

	service := artist.NewService(
		artist.NewGormRepository(db),
		album.NewGormRepository(db),
		track.NewGormRepository(db),
		discardLogger(),
	)

	router := chi.NewRouter()
	router.Use(chimw.StripSlashes)
	artist.NewHandler(service).RegisterRoutes(router)
	return router
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

/*
TestHandler_ListArtists verifies GET /singers/ returns every artist.
*/
func TestHandler_ListArtists(t *testing.T) {
	router := newRouter(t)

	for _, path := range []string{"/singers/", "/singers"} {
		recorder := get(t, router, path)
		require.Equal(t, http.StatusOK, recorder.Code, path)

		assert.JSONEq(t, `[
			{"id": 1, "name": "AC/DC"},
			{"id": 3, "name": "Aaron Goldberg"},
			{"id": 2, "name": "Accept"}
		]`, recorder.Body.String())
	}
}

/*
TestHandler_ListAlbums verifies GET /singers/{artist_id}/ for an existing artist.
*/
func TestHandler_ListAlbums(t *testing.T) {
	recorder := get(t, newRouter(t), "/singers/1/")
	require.Equal(t, http.StatusOK, recorder.Code)

	assert.JSONEq(t, `[
		{"id": 10, "title": "For Those About To Rock We Salute You"},
		{"id": 11, "title": "Let There Be Rock"}
	]`, recorder.Body.String())
}

/*
TestHandler_EmptyListings verifies that an artist with no albums yields 200 and [].
*/
func TestHandler_EmptyListings(t *testing.T) {
	router := newRouter(t)

	for _, path := range []string{"/singers/3/", "/singer/3/"} {
		recorder := get(t, router, path)
		require.Equal(t, http.StatusOK, recorder.Code, path)
		assert.JSONEq(t, `[]`, recorder.Body.String(), path)
	}
}

/*
TestHandler_ListTracks verifies GET /singer/{artist_id}/ returns track info.
*/
func TestHandler_ListTracks(t *testing.T) {
	recorder := get(t, newRouter(t), "/singer/2/")
	require.Equal(t, http.StatusOK, recorder.Code)

	assert.JSONEq(t, `[{
		"id": 2,
		"name": "Balls to the Wall",
		"album_id": 20,
		"composer": null,
		"milliseconds": 342562,
		"bytes": null,
		"unit_price": "0.99"
	}]`, recorder.Body.String())
}

/*
TestHandler_UnknownArtist verifies the 404 contract on both artist-scoped endpoints.
*/
func TestHandler_UnknownArtist(t *testing.T) {
	router := newRouter(t)

	for _, path := range []string{"/singers/999/", "/singer/999/"} {
		recorder := get(t, router, path)
		require.Equal(t, http.StatusNotFound, recorder.Code, path)

		var body respond.ErrorEnvelope
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "Artist with id 999 not found", body.Detail)
		assert.Equal(t, "NOT_FOUND", body.Code)
	}
}

/*
TestHandler_MalformedID verifies that a non-positive or non-numeric id is a 400.
*/
func TestHandler_MalformedID(t *testing.T) {
	router := newRouter(t)

	for _, path := range []string{"/singers/abc/", "/singer/0/", "/singers/-5"} {
		recorder := get(t, router, path)
		require.Equal(t, http.StatusBadRequest, recorder.Code, path)

		var body respond.ErrorEnvelope
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "VALIDATION_ERROR", body.Code)
		require.Len(t, body.Fields, 1)
		assert.Equal(t, artist.FieldArtistID, body.Fields[0].Field)
	}
}
