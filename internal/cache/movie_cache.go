// Package cache keeps read-mostly catalog results in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/movie-api/internal/domain"
)

const (
	keyList           = "list"
	keyTitle          = "title:"
	keyGenre          = "genre:"
	keyDirector       = "director:"
	keyDirectorMovies = "director-movies:"
)

// MovieCache caches catalog lookups as JSON values with a fixed TTL.
type MovieCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewMovieCache returns a new MovieCache.
func NewMovieCache(rdb *redis.Client, prefix string, ttl time.Duration) *MovieCache {
	return &MovieCache{rdb: rdb, prefix: prefix, ttl: ttl}
}

// GetList returns the cached catalog, or nil on a miss.
func (c *MovieCache) GetList(ctx context.Context) ([]domain.Movie, error) {
	var movies []domain.Movie
	if ok, err := c.get(ctx, keyList, &movies); err != nil || !ok {
		return nil, err
	}
	return movies, nil
}

// SetList stores the catalog.
func (c *MovieCache) SetList(ctx context.Context, movies []domain.Movie) error {
	return c.set(ctx, keyList, movies)
}

// GetMovie returns a cached movie by title, or nil on a miss.
func (c *MovieCache) GetMovie(ctx context.Context, title string) (*domain.Movie, error) {
	var movie domain.Movie
	if ok, err := c.get(ctx, keyTitle+normalize(title), &movie); err != nil || !ok {
		return nil, err
	}
	return &movie, nil
}

// SetMovie stores a movie under its title.
func (c *MovieCache) SetMovie(ctx context.Context, movie *domain.Movie) error {
	return c.set(ctx, keyTitle+normalize(movie.Title), movie)
}

// GetGenre returns a cached genre, or nil on a miss.
func (c *MovieCache) GetGenre(ctx context.Context, name string) (*domain.Genre, error) {
	var genre domain.Genre
	if ok, err := c.get(ctx, keyGenre+normalize(name), &genre); err != nil || !ok {
		return nil, err
	}
	return &genre, nil
}

// SetGenre stores a genre.
func (c *MovieCache) SetGenre(ctx context.Context, genre *domain.Genre) error {
	return c.set(ctx, keyGenre+normalize(genre.Name), genre)
}

// GetDirector returns a cached director, or nil on a miss.
func (c *MovieCache) GetDirector(ctx context.Context, name string) (*domain.Director, error) {
	var director domain.Director
	if ok, err := c.get(ctx, keyDirector+normalize(name), &director); err != nil || !ok {
		return nil, err
	}
	return &director, nil
}

// SetDirector stores a director.
func (c *MovieCache) SetDirector(ctx context.Context, director *domain.Director) error {
	return c.set(ctx, keyDirector+normalize(director.Name), director)
}

// GetDirectorMovies returns the cached movie list of a director, or nil on a miss.
func (c *MovieCache) GetDirectorMovies(ctx context.Context, name string) ([]domain.Movie, error) {
	var movies []domain.Movie
	if ok, err := c.get(ctx, keyDirectorMovies+normalize(name), &movies); err != nil || !ok {
		return nil, err
	}
	return movies, nil
}

// SetDirectorMovies stores the movie list of a director.
func (c *MovieCache) SetDirectorMovies(ctx context.Context, name string, movies []domain.Movie) error {
	return c.set(ctx, keyDirectorMovies+normalize(name), movies)
}

// Key returns the full Redis key for a cache entry.
func (c *MovieCache) Key(parts ...string) string {
	return c.prefix + strings.Join(parts, "")
}

func (c *MovieCache) get(ctx context.Context, key string, dest any) (bool, error) {
	b, err := c.rdb.Get(ctx, c.Key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

func (c *MovieCache) set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, c.Key(key), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
