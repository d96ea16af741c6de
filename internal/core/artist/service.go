package artist

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/melodia/internal/core/album"
	"github.com/taibuivan/melodia/internal/core/track"
	"github.com/taibuivan/melodia/internal/platform/dberr"
)

// Service answers the three catalogue listings. Every method makes at most
// two repository calls: an existence check and a list fetch.
type Service struct {
	artists Repository
	albums  album.Repository
	tracks  track.Repository
	logger  *slog.Logger
}

func NewService(artists Repository, albums album.Repository, tracks track.Repository, logger *slog.Logger) *Service {
	return &Service{
		artists: artists,
		albums:  albums,
		tracks:  tracks,
		logger:  logger,
	}
}

func (service *Service) ListArtists(context context.Context) ([]*Artist, error) {
	return service.artists.ListArtists(context)
}

// ListAlbums returns the albums of an existing artist, or a 404 [apperr.AppError]
// wrapping [ErrNotFound].
func (service *Service) ListAlbums(context context.Context, artistID int) ([]*album.Album, error) {
	if err := service.requireArtist(context, artistID); err != nil {
		return nil, err
	}
	return service.albums.ListByArtist(context, artistID)
}

// ListTracks returns the tracks of an existing artist, or a 404 [apperr.AppError]
// wrapping [ErrNotFound].
func (service *Service) ListTracks(context context.Context, artistID int) ([]*track.Track, error) {
	if err := service.requireArtist(context, artistID); err != nil {
		return nil, err
	}
	return service.tracks.ListByArtist(context, artistID)
}

func (service *Service) requireArtist(context context.Context, id int) error {
	_, err := service.artists.GetArtist(context, id)
	if errors.Is(err, dberr.ErrNotFound) {
		service.logger.DebugContext(context, "artist_not_found", slog.Int("artist_id", id))
		return NotFoundError(id)
	}
	return err
}
