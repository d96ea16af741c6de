package album

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

func (repository *PostgresRepository) ListByArtist(context context.Context, artistID int) ([]*Album, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		schema.Album.ID, schema.Album.Title,
		schema.Album.Table,
		schema.Album.ArtistID,
		schema.Album.ID,
	)

	rows, err := repository.db.Query(context, query, artistID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_albums")
	}
	defer rows.Close()

	albums := make([]*Album, 0)
	for rows.Next() {
		a := &Album{}
		if err := rows.Scan(&a.ID, &a.Title); err != nil {
			return nil, dberr.Wrap(err, "scan_album")
		}
		albums = append(albums, a)
	}

	return albums, dberr.Wrap(rows.Err(), "list_albums")
}
