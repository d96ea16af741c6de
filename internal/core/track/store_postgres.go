package track

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/melodia/internal/platform/database/schema"
	"github.com/taibuivan/melodia/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListByArtist(context context.Context, artistID int) ([]*Track, error) {
	query := fmt.Sprintf(`
		SELECT t.%s, t.%s, t.%s, t.%s, t.%s, t.%s, t.%s
		FROM %s t
		JOIN %s a ON a.%s = t.%s
		WHERE a.%s = $1
		ORDER BY t.%s ASC
	`,
		schema.Track.ID, schema.Track.Name, schema.Track.AlbumID, schema.Track.Composer,
		schema.Track.Milliseconds, schema.Track.Bytes, schema.Track.UnitPrice,
		schema.Track.Table,
		schema.Album.Table, schema.Album.ID, schema.Track.AlbumID,
		schema.Album.ArtistID,
		schema.Track.ID,
	)

	rows, err := repository.db.Query(context, query, artistID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tracks")
	}
	defer rows.Close()

	tracks := make([]*Track, 0)
	for rows.Next() {
		t := &Track{}
		if err := rows.Scan(&t.ID, &t.Name, &t.AlbumID, &t.Composer, &t.Milliseconds, &t.Bytes, &t.UnitPrice); err != nil {
			return nil, dberr.Wrap(err, "scan_track")
		}
		tracks = append(tracks, t)
	}

	return tracks, dberr.Wrap(rows.Err(), "list_tracks")
}
