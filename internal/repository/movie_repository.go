package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/movie-api/internal/domain"
)

// MovieRepository defines read access to the movie catalog.
type MovieRepository interface {
	List(ctx context.Context) ([]domain.Movie, error)
	GetByID(ctx context.Context, id string) (*domain.Movie, error)
	GetByTitle(ctx context.Context, title string) (*domain.Movie, error)
	GetGenre(ctx context.Context, name string) (*domain.Genre, error)
	GetDirector(ctx context.Context, name string) (*domain.Director, error)
	ListByDirector(ctx context.Context, name string) ([]domain.Movie, error)
}

type movieRepository struct {
	db DBTX
}

// NewMovieRepository returns a Postgres-backed implementation.
func NewMovieRepository(db DBTX) MovieRepository {
	return &movieRepository{db: db}
}

const movieColumns = `
        id::text, title, description, genre_name, genre_description,
        director_name, director_bio, director_birth_year, director_death_year,
        image_path, featured`

func (r *movieRepository) List(ctx context.Context) ([]domain.Movie, error) {
	return r.list(ctx, `SELECT`+movieColumns+` FROM movies ORDER BY title`)
}

func (r *movieRepository) ListByDirector(ctx context.Context, name string) ([]domain.Movie, error) {
	return r.list(ctx, `SELECT`+movieColumns+` FROM movies WHERE director_name=$1 ORDER BY title`, name)
}

func (r *movieRepository) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, pgx.ErrNoRows
	}
	return scanMovie(r.db.QueryRow(ctx, `SELECT`+movieColumns+` FROM movies WHERE id=$1`, id))
}

func (r *movieRepository) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	return scanMovie(r.db.QueryRow(ctx, `SELECT`+movieColumns+` FROM movies WHERE title=$1`, title))
}

func (r *movieRepository) GetGenre(ctx context.Context, name string) (*domain.Genre, error) {
	const query = `
        SELECT genre_name, genre_description
        FROM movies WHERE genre_name=$1 LIMIT 1`

	var genre domain.Genre
	if err := r.db.QueryRow(ctx, query, name).Scan(&genre.Name, &genre.Description); err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *movieRepository) GetDirector(ctx context.Context, name string) (*domain.Director, error) {
	const query = `
        SELECT director_name, director_bio, director_birth_year, director_death_year
        FROM movies WHERE director_name=$1 LIMIT 1`

	var director domain.Director
	if err := r.db.QueryRow(ctx, query, name).Scan(
		&director.Name,
		&director.Bio,
		&director.BirthYear,
		&director.DeathYear,
	); err != nil {
		return nil, err
	}
	return &director, nil
}

func (r *movieRepository) list(ctx context.Context, query string, args ...any) ([]domain.Movie, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make([]domain.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, *movie)
	}
	return movies, rows.Err()
}

func scanMovie(row pgx.Row) (*domain.Movie, error) {
	var movie domain.Movie
	if err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Genre.Name,
		&movie.Genre.Description,
		&movie.Director.Name,
		&movie.Director.Bio,
		&movie.Director.BirthYear,
		&movie.Director.DeathYear,
		&movie.ImagePath,
		&movie.Featured,
	); err != nil {
		return nil, err
	}
	return &movie, nil
}
