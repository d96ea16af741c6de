package album

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

func (repository *GormRepository) ListByArtist(context context.Context, artistID int) ([]*Album, error) {
	var rows []schema.AlbumModel
	err := repository.db.WithContext(context).
		Where(schema.Album.ArtistID+" = ?", artistID).
		Order(schema.Album.ID + " ASC").
		Find(&rows).Error
	if err != nil {
		return nil, dberr.Wrap(err, "list_albums")
	}

	albums := make([]*Album, 0, len(rows))
	for _, row := range rows {
		albums = append(albums, &Album{ID: row.ID, Title: row.Title})
	}
	return albums, nil
}
