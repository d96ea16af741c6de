// Copyright (c) 2026 Melodia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sqlitetest provides an in-memory catalogue database for repository tests.
package sqlitetest

import (
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/taibuivan/melodia/internal/platform/database/schema"
	"github.com/taibuivan/melodia/internal/platform/sqlite"
)

// Fixture identifiers.
const (
	ArtistACDC     = 1
	ArtistAccept   = 2
	ArtistSilent   = 3 // has no albums and therefore no tracks
	AlbumForThose  = 10
	AlbumLetThere  = 11
	AlbumBallsWall = 20
)

// New returns a migrated, empty in-memory database closed at test cleanup.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := sqlite.Open(":memory:", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	require.NoError(t, sqlite.Migrate(db))
	return db
}

// Seeded returns an in-memory database populated with a small catalogue.
//
// Artists are inserted out of name order so ordering assertions are meaningful.
func Seeded(t testing.TB) *gorm.DB {
	t.Helper()
	db := New(t)

	composer := "Angus Young, Malcolm Young, Brian Johnson"
	size := 11170334

	artists := []schema.ArtistModel{
		{ID: ArtistACDC, Name: "AC/DC"},
		{ID: ArtistAccept, Name: "Accept"},
		{ID: ArtistSilent, Name: "Aaron Goldberg"},
	}
	require.NoError(t, db.Create(&artists).Error)

	albums := []schema.AlbumModel{
		{ID: AlbumLetThere, Title: "Let There Be Rock", ArtistID: ArtistACDC},
		{ID: AlbumForThose, Title: "For Those About To Rock We Salute You", ArtistID: ArtistACDC},
		{ID: AlbumBallsWall, Title: "Balls to the Wall", ArtistID: ArtistAccept},
	}
	require.NoError(t, db.Create(&albums).Error)

	tracks := []schema.TrackModel{
		{ID: 1, Name: "For Those About To Rock (We Salute You)", AlbumID: AlbumForThose, Composer: &composer, Milliseconds: 343719, Bytes: &size, UnitPrice: decimal.RequireFromString("0.99")},
		{ID: 2, Name: "Balls to the Wall", AlbumID: AlbumBallsWall, Milliseconds: 342562, UnitPrice: decimal.RequireFromString("0.99")},
		{ID: 6, Name: "Put The Finger On You", AlbumID: AlbumForThose, Composer: &composer, Milliseconds: 205662, UnitPrice: decimal.RequireFromString("0.99")},
		{ID: 15, Name: "Go Down", AlbumID: AlbumLetThere, Composer: &composer, Milliseconds: 331180, UnitPrice: decimal.RequireFromString("1.29")},
	}
	require.NoError(t, db.Create(&tracks).Error)

	return db
}
