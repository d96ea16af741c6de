package artist

import (
	"context"

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

func (repository *GormRepository) ListArtists(context context.Context) ([]*Artist, error) {
	var rows []schema.ArtistModel
	err := repository.db.WithContext(context).
		Order(schema.Artist.Name + " ASC").
		Order(schema.Artist.ID + " ASC").
		Find(&rows).Error
	if err != nil {
		return nil, dberr.Wrap(err, "list_artists")
	}

	artists := make([]*Artist, 0, len(rows))
	for _, row := range rows {
		artists = append(artists, &Artist{ID: row.ID, Name: row.Name})
	}
	return artists, nil
}

func (repository *GormRepository) GetArtist(context context.Context, id int) (*Artist, error) {
	var row schema.ArtistModel
	err := repository.db.WithContext(context).
		Where(schema.Artist.ID+" = ?", id).
		First(&row).Error
	if err != nil {
		return nil, dberr.Wrap(err, "get_artist")
	}
	return &Artist{ID: row.ID, Name: row.Name}, nil
}
