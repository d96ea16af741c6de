package artist

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"
)

// Cache is the byte store behind [CachedRepository]; found is false on a miss.
type Cache interface {
	Get(context context.Context, key string) (value []byte, found bool, err error)
	Set(context context.Context, key string, value []byte, ttl time.Duration) error
}

const (
	cacheKeyAll    = "artists:all"
	cacheKeyPrefix = "artist:"
)

// CachedRepository is a read-through cache in front of another [Repository].
//
// Cache failures never fail a request: they are logged and the call falls
// through to the wrapped repository. Not-found results are not cached.
type CachedRepository struct {
	next   Repository
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedRepository(next Repository, cache Cache, ttl time.Duration, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (repository *CachedRepository) ListArtists(context context.Context) ([]*Artist, error) {
	return readThrough(context, repository, cacheKeyAll, func() ([]*Artist, error) {
		return repository.next.ListArtists(context)
	})
}

func (repository *CachedRepository) GetArtist(context context.Context, id int) (*Artist, error) {
	return readThrough(context, repository, cacheKeyPrefix+strconv.Itoa(id), func() (*Artist, error) {
		return repository.next.GetArtist(context, id)
	})
}

func readThrough[T any](context context.Context, repository *CachedRepository, key string, load func() (T, error)) (T, error) {
	payload, found, err := repository.cache.Get(context, key)
	if err != nil {
		repository.logger.WarnContext(context, "artist_cache_get_failed", slog.String("key", key), slog.Any("error", err))
	}

	if found {
		var cached T
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
		repository.logger.WarnContext(context, "artist_cache_corrupt", slog.String("key", key))
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	payload, err = json.Marshal(value)
	if err == nil {
		err = repository.cache.Set(context, key, payload, repository.ttl)
	}
	if err != nil {
		repository.logger.WarnContext(context, "artist_cache_set_failed", slog.String("key", key), slog.Any("error", err))
	}

	return value, nil
}
