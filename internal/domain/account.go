package domain

import "time"

// Account is a registered user of the catalog.
type Account struct {
	ID             string
	Username       string
	PasswordHash   string
	Email          string
	Birthday       *time.Time
	FavoriteMovies []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasFavorite reports whether movieID is on the account's list.
func (a *Account) HasFavorite(movieID string) bool {
	for _, id := range a.FavoriteMovies {
		if id == movieID {
			return true
		}
	}
	return false
}
