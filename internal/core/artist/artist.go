// Copyright (c) 2026 Melodia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package artist serves the read-only singer endpoints: the artist listing
// and the per-artist album and track listings.
//
// The handler owns the HTTP surface, the [Service] runs the existence check
// before any child listing, and the repositories (pgx, GORM, Redis cache)
// are injected through constructors.
package artist

import (
	"errors"

	"github.com/taibuivan/melodia/internal/platform/apperr"
)

// Artist is the performer summary exposed by the catalogue.
type Artist struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// FieldArtistID is both the route parameter and the validation field name.
const FieldArtistID = "artist_id"

// ErrNotFound is the cause carried by the 404 returned for an unknown artist.
var ErrNotFound = errors.New("artist not found")

// NotFoundError builds the client-facing 404 for the given artist id.
func NotFoundError(id int) *apperr.AppError {
	return apperr.NotFoundf("Artist with id %d not found", id).WithCause(ErrNotFound)
}
