package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/movie-api/internal/domain"
)

var (
	_ AccountRepository = (*MemoryAccountRepository)(nil)
	_ MovieRepository   = (*MemoryMovieRepository)(nil)
)

// MemoryAccountRepository keeps accounts in process memory. Used with STORAGE_DRIVER=memory and in tests.
type MemoryAccountRepository struct {
	mu     sync.RWMutex
	byID   map[string]*domain.Account
	byName map[string]string
}

// NewMemoryAccountRepository returns an empty in-memory account store.
func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		byID:   make(map[string]*domain.Account),
		byName: make(map[string]string),
	}
}

func (r *MemoryAccountRepository) Create(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[account.Username]; taken {
		return ErrDuplicate
	}
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now
	if account.FavoriteMovies == nil {
		account.FavoriteMovies = []string{}
	}

	r.byID[account.ID] = cloneAccount(account)
	r.byName[account.Username] = account.ID
	return nil
}

func (r *MemoryAccountRepository) Update(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[account.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	if ownerID, taken := r.byName[account.Username]; taken && ownerID != account.ID {
		return ErrDuplicate
	}

	delete(r.byName, stored.Username)
	stored.Username = account.Username
	stored.PasswordHash = account.PasswordHash
	stored.Email = account.Email
	stored.Birthday = account.Birthday
	stored.UpdatedAt = time.Now().UTC()
	r.byName[stored.Username] = stored.ID

	account.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *MemoryAccountRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	delete(r.byName, stored.Username)
	delete(r.byID, id)
	return nil
}

func (r *MemoryAccountRepository) GetByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return cloneAccount(stored), nil
}

func (r *MemoryAccountRepository) GetByUsername(_ context.Context, username string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return cloneAccount(r.byID[id]), nil
}

func (r *MemoryAccountRepository) List(_ context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(r.byID))
	for _, stored := range r.byID {
		accounts = append(accounts, *cloneAccount(stored))
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Username < accounts[j].Username })
	return accounts, nil
}

func (r *MemoryAccountRepository) AddFavorite(_ context.Context, accountID, movieID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[accountID]
	if !ok {
		return pgx.ErrNoRows
	}
	if !stored.HasFavorite(movieID) {
		stored.FavoriteMovies = append(stored.FavoriteMovies, movieID)
	}
	return nil
}

func (r *MemoryAccountRepository) RemoveFavorite(_ context.Context, accountID, movieID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[accountID]
	if !ok {
		return pgx.ErrNoRows
	}
	kept := stored.FavoriteMovies[:0]
	for _, id := range stored.FavoriteMovies {
		if id != movieID {
			kept = append(kept, id)
		}
	}
	stored.FavoriteMovies = kept
	return nil
}

func cloneAccount(a *domain.Account) *domain.Account {
	c := *a
	c.FavoriteMovies = append([]string{}, a.FavoriteMovies...)
	if a.Birthday != nil {
		b := *a.Birthday
		c.Birthday = &b
	}
	return &c
}

// MemoryMovieRepository serves a fixed catalog from memory.
type MemoryMovieRepository struct {
	movies []domain.Movie
}

// NewMemoryMovieRepository returns a catalog holding the given movies, sorted by title.
func NewMemoryMovieRepository(movies []domain.Movie) *MemoryMovieRepository {
	sorted := append([]domain.Movie{}, movies...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Title < sorted[j].Title })
	return &MemoryMovieRepository{movies: sorted}
}

func (r *MemoryMovieRepository) List(_ context.Context) ([]domain.Movie, error) {
	return append([]domain.Movie{}, r.movies...), nil
}

func (r *MemoryMovieRepository) GetByID(_ context.Context, id string) (*domain.Movie, error) {
	return r.find(func(m domain.Movie) bool { return m.ID == id })
}

func (r *MemoryMovieRepository) GetByTitle(_ context.Context, title string) (*domain.Movie, error) {
	return r.find(func(m domain.Movie) bool { return m.Title == title })
}

func (r *MemoryMovieRepository) GetGenre(_ context.Context, name string) (*domain.Genre, error) {
	movie, err := r.find(func(m domain.Movie) bool { return m.Genre.Name == name })
	if err != nil {
		return nil, err
	}
	return &movie.Genre, nil
}

func (r *MemoryMovieRepository) GetDirector(_ context.Context, name string) (*domain.Director, error) {
	movie, err := r.find(func(m domain.Movie) bool { return m.Director.Name == name })
	if err != nil {
		return nil, err
	}
	return &movie.Director, nil
}

func (r *MemoryMovieRepository) ListByDirector(_ context.Context, name string) ([]domain.Movie, error) {
	movies := make([]domain.Movie, 0)
	for _, m := range r.movies {
		if m.Director.Name == name {
			movies = append(movies, m)
		}
	}
	return movies, nil
}

func (r *MemoryMovieRepository) find(match func(domain.Movie) bool) (*domain.Movie, error) {
	for _, m := range r.movies {
		if match(m) {
			movie := m
			return &movie, nil
		}
	}
	return nil, pgx.ErrNoRows
}
