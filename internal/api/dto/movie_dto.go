package dto

import "github.com/spec-kit/movie-api/internal/domain"

// GenreResponse is the wire view of a genre.
type GenreResponse struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

// DirectorResponse is the wire view of a director. Death is null for living directors.
type DirectorResponse struct {
	Name  string `json:"Name"`
	Bio   string `json:"Bio"`
	Birth int    `json:"Birth"`
	Death *int   `json:"Death"`
}

// MovieResponse is the wire view of a movie.
type MovieResponse struct {
	ID          string           `json:"_id"`
	Title       string           `json:"Title"`
	Description string           `json:"Description"`
	Genre       GenreResponse    `json:"Genre"`
	Director    DirectorResponse `json:"Director"`
	ImagePath   string           `json:"ImagePath"`
	Featured    bool             `json:"Featured"`
}

func NewGenreResponse(g *domain.Genre) GenreResponse {
	return GenreResponse{Name: g.Name, Description: g.Description}
}

func NewDirectorResponse(d *domain.Director) DirectorResponse {
	return DirectorResponse{Name: d.Name, Bio: d.Bio, Birth: d.BirthYear, Death: d.DeathYear}
}

func NewMovieResponse(m *domain.Movie) MovieResponse {
	return MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Genre:       NewGenreResponse(&m.Genre),
		Director:    NewDirectorResponse(&m.Director),
		ImagePath:   m.ImagePath,
		Featured:    m.Featured,
	}
}

func NewMovieList(movies []domain.Movie) []MovieResponse {
	out := make([]MovieResponse, 0, len(movies))
	for i := range movies {
		out = append(out, NewMovieResponse(&movies[i]))
	}
	return out
}
