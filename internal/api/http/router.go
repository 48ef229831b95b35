package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/movie-api/internal/api/http/handlers"
	"github.com/spec-kit/movie-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Accounts  *handlers.AccountsHandler
	Movies    *handlers.MoviesHandler
	Guard     *auth.Guard
	StaticDir string
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Welcome)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	app.Post("/login", cfg.Auth.Login)
	app.Post("/users", cfg.Accounts.Register)

	users := app.Group("/users", cfg.Guard.Handle)
	users.Get("", cfg.Accounts.List)
	users.Get("/:username", cfg.Accounts.Get)

	self := users.Group("/:username", auth.RequireSelf("username"))
	self.Put("", cfg.Accounts.Update)
	self.Delete("", cfg.Accounts.Delete)
	self.Post("/movies/:movieID", cfg.Accounts.AddFavorite)
	self.Delete("/movies/:movieID", cfg.Accounts.RemoveFavorite)

	movies := app.Group("/movies", cfg.Guard.Handle)
	movies.Get("", cfg.Movies.List)
	movies.Get("/genres/:genreName", cfg.Movies.Genre)
	movies.Get("/directors/:directorName", cfg.Movies.Director)
	movies.Get("/directors/:directorName/movielist", cfg.Movies.DirectorMovies)
	movies.Get("/:title", cfg.Movies.Get)

	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
	}
}
