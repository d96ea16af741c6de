// Copyright (c) 2026 Melodia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/melodia/internal/platform/database/schema"
	"github.com/taibuivan/melodia/internal/platform/sqlite"
	"github.com/taibuivan/melodia/internal/platform/sqlite/sqlitetest"
)

/*
TestMigrate verifies that every catalogue table exists after auto-migration.
*/
func TestMigrate(t *testing.T) {
	db := sqlitetest.New(t)

	for _, table := range []string{schema.Artist.Table, schema.Album.Table, schema.Track.Table} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	// Re-running is a no-op
	require.NoError(t, sqlite.Migrate(db))
}

/*
TestPing verifies the health probe against a live and a closed database.
*/
func TestPing(t *testing.T) {
	db := sqlitetest.New(t)
	require.NoError(t, sqlite.Ping(context.Background(), db))

	require.NoError(t, sqlite.Close(db))
	assert.Error(t, sqlite.Ping(context.Background(), db))
}
