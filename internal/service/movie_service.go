package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/movie-api/internal/cache"
	"github.com/spec-kit/movie-api/internal/domain"
	"github.com/spec-kit/movie-api/internal/repository"
	apperrors "github.com/spec-kit/movie-api/pkg/util/errorutil"
)

// MovieService serves catalog reads, consulting the cache first when one is configured.
type MovieService struct {
	movies repository.MovieRepository
	cache  *cache.MovieCache
	logger *zap.Logger
}

// NewMovieService builds the service. movieCache may be nil.
func NewMovieService(movies repository.MovieRepository, movieCache *cache.MovieCache, logger *zap.Logger) *MovieService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MovieService{movies: movies, cache: movieCache, logger: logger}
}

// List returns the whole catalog ordered by title.
func (s *MovieService) List(ctx context.Context) ([]domain.Movie, error) {
	if s.cache != nil {
		cached, err := s.cache.GetList(ctx)
		if err != nil {
			s.cacheFailed("get list", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	movies, err := s.movies.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if s.cache != nil {
		if err := s.cache.SetList(ctx, movies); err != nil {
			s.cacheFailed("set list", err)
		}
	}
	return movies, nil
}

// GetByTitle returns the movie with the exact title.
func (s *MovieService) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	if s.cache != nil {
		cached, err := s.cache.GetMovie(ctx, title)
		if err != nil {
			s.cacheFailed("get movie", err)
		} else if cached != nil && cached.Title == title {
			return cached, nil
		}
	}

	movie, err := s.movies.GetByTitle(ctx, title)
	if err != nil {
		return nil, notFoundOr(err, "movie", map[string]any{"title": title})
	}
	if s.cache != nil {
		if err := s.cache.SetMovie(ctx, movie); err != nil {
			s.cacheFailed("set movie", err)
		}
	}
	return movie, nil
}

// GetGenre returns the genre with the given name.
func (s *MovieService) GetGenre(ctx context.Context, name string) (*domain.Genre, error) {
	if s.cache != nil {
		cached, err := s.cache.GetGenre(ctx, name)
		if err != nil {
			s.cacheFailed("get genre", err)
		} else if cached != nil && cached.Name == name {
			return cached, nil
		}
	}

	genre, err := s.movies.GetGenre(ctx, name)
	if err != nil {
		return nil, notFoundOr(err, "genre", map[string]any{"genre": name})
	}
	if s.cache != nil {
		if err := s.cache.SetGenre(ctx, genre); err != nil {
			s.cacheFailed("set genre", err)
		}
	}
	return genre, nil
}

// GetDirector returns the director with the given name.
func (s *MovieService) GetDirector(ctx context.Context, name string) (*domain.Director, error) {
	if s.cache != nil {
		cached, err := s.cache.GetDirector(ctx, name)
		if err != nil {
			s.cacheFailed("get director", err)
		} else if cached != nil && cached.Name == name {
			return cached, nil
		}
	}

	director, err := s.movies.GetDirector(ctx, name)
	if err != nil {
		return nil, notFoundOr(err, "director", map[string]any{"director": name})
	}
	if s.cache != nil {
		if err := s.cache.SetDirector(ctx, director); err != nil {
			s.cacheFailed("set director", err)
		}
	}
	return director, nil
}

// ListByDirector returns the director's movies. An unknown director is not found.
func (s *MovieService) ListByDirector(ctx context.Context, name string) ([]domain.Movie, error) {
	if s.cache != nil {
		cached, err := s.cache.GetDirectorMovies(ctx, name)
		if err != nil {
			s.cacheFailed("get director movies", err)
		} else if len(cached) > 0 && cached[0].Director.Name == name {
			return cached, nil
		}
	}

	movies, err := s.movies.ListByDirector(ctx, name)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if len(movies) == 0 {
		return nil, apperrors.NewNotFound("director", map[string]any{"director": name})
	}
	if s.cache != nil {
		if err := s.cache.SetDirectorMovies(ctx, name, movies); err != nil {
			s.cacheFailed("set director movies", err)
		}
	}
	return movies, nil
}

func (s *MovieService) cacheFailed(op string, err error) {
	s.logger.Warn("movie cache unavailable", zap.String("op", op), zap.Error(err))
}

func notFoundOr(err error, resource string, details map[string]any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound(resource, details)
	}
	return apperrors.MapError(err)
}
