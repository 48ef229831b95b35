package repository

import "github.com/spec-kit/movie-api/internal/domain"

// SeedMovies is the starter catalog. The Postgres seed migration inserts the same rows.
func SeedMovies() []domain.Movie {
	return []domain.Movie{
		{
			ID:          "0b8f0f4e-6a3c-4a53-9d2e-2f1c7d2f9a01",
			Title:       "Carol",
			Description: "In 1950s New York, an aspiring photographer falls for an older woman going through a difficult divorce.",
			Genre: domain.Genre{
				Name:        "Drama",
				Description: "Stories driven by conflict and emotion, rooted in everyday situations rather than spectacle.",
			},
			Director: domain.Director{
				Name:      "Todd Haynes",
				Bio:       "American filmmaker whose work examines musicians, dysfunctional societies and blurred gender roles.",
				BirthYear: 1961,
			},
			ImagePath: "https://www.vintagemovieposters.co.uk/wp-content/uploads/2015/12/IMG_0913.jpg",
			Featured:  true,
		},
		{
			ID:          "5d2c1a7b-3e4f-4b8a-8c6d-7e9f0a1b2c02",
			Title:       "Popstar: Never Stop Never Stopping",
			Description: "After his solo album flops, a former boy band member does everything he can to stay famous.",
			Genre: domain.Genre{
				Name:        "Comedy",
				Description: "Films built around events meant to make the audience laugh, from macabre to zany.",
			},
			Director: domain.Director{
				Name:      "Akiva Schaffer",
				Bio:       "American director, comedian and writer, member of The Lonely Island.",
				BirthYear: 1977,
			},
			ImagePath: "https://www.filmstories.co.uk/wp-content/uploads/2021/05/popstar-never-stop.jpg",
		},
		{
			ID:          "9a4e6c8d-1b2f-4d3e-a5b6-c7d8e9f0a103",
			Title:       "Moulin Rouge",
			Description: "A poor poet in 1890s Paris falls for a courtesan and nightclub star whom a jealous duke covets.",
			Genre: domain.Genre{
				Name:        "Musical",
				Description: "Stories whose characters sing songs and perform dance numbers.",
			},
			Director: domain.Director{
				Name:      "Baz Luhrmann",
				Bio:       "Australian writer, director and producer working across film, opera, theatre and music.",
				BirthYear: 1962,
			},
			ImagePath: "https://movieposters.ie/wp-content/uploads/2013/01/MQUAD_MR_.jpg",
		},
	}
}
