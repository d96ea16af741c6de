package track

import "context"

type Repository interface {
	// ListByArtist returns every track on the artist's albums ordered by id.
	// An artist without tracks yields an empty slice, not an error.
	ListByArtist(context context.Context, artistID int) ([]*Track, error)
}
