package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/movie-api/internal/api/dto"
	"github.com/spec-kit/movie-api/internal/service"
)

// MoviesHandler exposes catalog endpoints.
type MoviesHandler struct {
	movies *service.MovieService
}

// NewMoviesHandler constructs handler.
func NewMoviesHandler(movies *service.MovieService) *MoviesHandler {
	return &MoviesHandler{movies: movies}
}

// List handles GET /movies.
func (h *MoviesHandler) List(c *fiber.Ctx) error {
	movies, err := h.movies.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewMovieList(movies))
}

// Get handles GET /movies/:title.
func (h *MoviesHandler) Get(c *fiber.Ctx) error {
	movie, err := h.movies.GetByTitle(c.UserContext(), param(c, "title"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewMovieResponse(movie))
}

// Genre handles GET /movies/genres/:genreName.
func (h *MoviesHandler) Genre(c *fiber.Ctx) error {
	genre, err := h.movies.GetGenre(c.UserContext(), param(c, "genreName"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewGenreResponse(genre))
}

// Director handles GET /movies/directors/:directorName.
func (h *MoviesHandler) Director(c *fiber.Ctx) error {
	director, err := h.movies.GetDirector(c.UserContext(), param(c, "directorName"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewDirectorResponse(director))
}

// DirectorMovies handles GET /movies/directors/:directorName/movielist.
func (h *MoviesHandler) DirectorMovies(c *fiber.Ctx) error {
	movies, err := h.movies.ListByDirector(c.UserContext(), param(c, "directorName"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewMovieList(movies))
}

// param returns a path parameter with percent-escapes decoded, so titles may contain spaces.
func param(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
