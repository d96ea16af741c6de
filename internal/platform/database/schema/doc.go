// Copyright (c) 2026 Melodia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema centralizes table and column names for the catalogue so that
// SQL built by the pgx repositories and the GORM models never drift apart.
//
// Table and column names are unqualified so the same definitions work for
// PostgreSQL (public schema) and SQLite.
package schema

// Models lists every GORM model, in dependency order, for auto-migration.
func Models() []any {
	return []any{&ArtistModel{}, &AlbumModel{}, &TrackModel{}}
}
