package artist

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

func (repository *PostgresRepository) ListArtists(context context.Context) ([]*Artist, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		ORDER BY %s ASC, %s ASC
	`,
		schema.Artist.ID, schema.Artist.Name,
		schema.Artist.Table,
		schema.Artist.Name, schema.Artist.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_artists")
	}
	defer rows.Close()

	artists := make([]*Artist, 0)
	for rows.Next() {
		a := &Artist{}
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_artist")
		}
		artists = append(artists, a)
	}

	return artists, dberr.Wrap(rows.Err(), "list_artists")
}

func (repository *PostgresRepository) GetArtist(context context.Context, id int) (*Artist, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Artist.ID, schema.Artist.Name,
		schema.Artist.Table,
		schema.Artist.ID,
	)

	a := &Artist{}
	if err := repository.db.QueryRow(context, query, id).Scan(&a.ID, &a.Name); err != nil {
		return nil, dberr.Wrap(err, "get_artist")
	}
	return a, nil
}
