package artist

import "context"

type Repository interface {
	// ListArtists returns every artist ordered by name, then id.
	ListArtists(context context.Context) ([]*Artist, error)
	// GetArtist returns dberr.ErrNotFound when no artist has the given id.
	GetArtist(context context.Context, id int) (*Artist, error)
}
