package album

import "context"

type Repository interface {
	// ListByArtist returns the artist's albums ordered by id. An artist
	// without albums yields an empty slice, not an error.
	ListByArtist(context context.Context, artistID int) ([]*Album, error)
}
