package domain

// Genre groups movies by kind.
type Genre struct {
	Name        string
	Description string
}

// Director is embedded in every movie they directed.
type Director struct {
	Name      string
	Bio       string
	BirthYear int
	DeathYear *int
}

// Movie is a catalog entry.
type Movie struct {
	ID          string
	Title       string
	Description string
	Genre       Genre
	Director    Director
	ImagePath   string
	Featured    bool
}
