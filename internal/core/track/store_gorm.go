package track

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/taibuivan/melodia/internal/platform/database/schema"
	"github.com/taibuivan/melodia/internal/platform/dberr"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (repository *GormRepository) ListByArtist(context context.Context, artistID int) ([]*Track, error) {
	join := fmt.Sprintf("JOIN %s ON %s = %s",
		schema.Album.Table, schema.Album.Qualified(schema.Album.ID), schema.Track.Qualified(schema.Track.AlbumID),
	)

	var rows []schema.TrackModel
	err := repository.db.WithContext(context).
		Select(schema.Track.Table+".*").
		Joins(join).
		Where(schema.Album.Qualified(schema.Album.ArtistID)+" = ?", artistID).
		Order(schema.Track.Qualified(schema.Track.ID) + " ASC").
		Find(&rows).Error
	if err != nil {
		return nil, dberr.Wrap(err, "list_tracks")
	}

	tracks := make([]*Track, 0, len(rows))
	for _, row := range rows {
		tracks = append(tracks, &Track{
			ID:           row.ID,
			Name:         row.Name,
			AlbumID:      row.AlbumID,
			Composer:     row.Composer,
			Milliseconds: row.Milliseconds,
			Bytes:        row.Bytes,
			UnitPrice:    row.UnitPrice,
		})
	}
	return tracks, nil
}
