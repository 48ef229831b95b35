package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/movie-api/internal/auth"
	"github.com/spec-kit/movie-api/internal/domain"
	"github.com/spec-kit/movie-api/internal/events"
	"github.com/spec-kit/movie-api/internal/repository"
	apperrors "github.com/spec-kit/movie-api/pkg/util/errorutil"
)

// AccountService manages accounts and their favorite movies.
type AccountService struct {
	accounts   repository.AccountRepository
	movies     repository.MovieRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	bcryptCost int
}

// AccountDependencies bundles what AccountService needs.
type AccountDependencies struct {
	AccountRepo repository.AccountRepository
	MovieRepo   repository.MovieRepository
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
	BcryptCost  int
}

// RegisterInput describes a new account.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Birthday *time.Time
}

// UpdateInput describes a partial account update. Nil fields are left unchanged.
type UpdateInput struct {
	Username *string
	Password *string
	Email    *string
	Birthday *time.Time
}

// NewAccountService builds the service.
func NewAccountService(deps AccountDependencies) *AccountService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountService{
		accounts:   deps.AccountRepo,
		movies:     deps.MovieRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		bcryptCost: deps.BcryptCost,
	}
}

// Register hashes the password and stores a new account.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*domain.Account, error) {
	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	account := &domain.Account{
		Username:       input.Username,
		PasswordHash:   hash,
		Email:          input.Email,
		Birthday:       input.Birthday,
		FavoriteMovies: []string{},
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict(input.Username+" already exists", map[string]any{"username": input.Username})
		}
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{Type: events.EventAccountRegistered, AccountID: account.ID, Username: account.Username})
	return account, nil
}

// Get returns the account with the given username.
func (s *AccountService) Get(ctx context.Context, username string) (*domain.Account, error) {
	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"username": username})
		}
		return nil, apperrors.MapError(err)
	}
	return account, nil
}

// List returns every account ordered by username.
func (s *AccountService) List(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return accounts, nil
}

// Update applies the non-nil fields of input. A new password is re-hashed.
func (s *AccountService) Update(ctx context.Context, username string, input UpdateInput) (*domain.Account, error) {
	account, err := s.Get(ctx, username)
	if err != nil {
		return nil, err
	}

	var fields []string
	if input.Username != nil && *input.Username != account.Username {
		account.Username = *input.Username
		fields = append(fields, "Username")
	}
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password, s.bcryptCost)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		account.PasswordHash = hash
		fields = append(fields, "Password")
	}
	if input.Email != nil && *input.Email != account.Email {
		account.Email = *input.Email
		fields = append(fields, "Email")
	}
	if input.Birthday != nil {
		account.Birthday = input.Birthday
		fields = append(fields, "Birthday")
	}
	if len(fields) == 0 {
		return account, nil
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, apperrors.NewConflict(account.Username+" already exists", map[string]any{"username": account.Username})
		case errors.Is(err, pgx.ErrNoRows):
			return nil, apperrors.NewNotFound("user", map[string]any{"username": username})
		}
		return nil, apperrors.MapError(err)
	}

	payload := events.AccountUpdatedPayload{Fields: fields}
	if account.Username != username {
		payload.OldUsername = username
	}
	s.publish(ctx, events.Event{Type: events.EventAccountUpdated, AccountID: account.ID, Username: account.Username, Payload: payload})
	return account, nil
}

// Delete removes the account and its favorites.
func (s *AccountService) Delete(ctx context.Context, username string) error {
	account, err := s.Get(ctx, username)
	if err != nil {
		return err
	}
	if err := s.accounts.Delete(ctx, account.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", map[string]any{"username": username})
		}
		return apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{Type: events.EventAccountDeleted, AccountID: account.ID, Username: account.Username})
	return nil
}

// AddFavorite puts a catalog movie on the account's list. Adding it twice is a no-op.
func (s *AccountService) AddFavorite(ctx context.Context, username, movieID string) (*domain.Account, error) {
	account, err := s.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("movie", map[string]any{"movie_id": movieID})
		}
		return nil, apperrors.MapError(err)
	}
	if account.HasFavorite(movie.ID) {
		return account, nil
	}

	if err := s.accounts.AddFavorite(ctx, account.ID, movie.ID); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.Event{
		Type:      events.EventFavoriteAdded,
		AccountID: account.ID,
		Username:  account.Username,
		Payload:   events.FavoritePayload{MovieID: movie.ID, Title: movie.Title},
	})
	return s.Get(ctx, username)
}

// RemoveFavorite takes a movie off the account's list. Removing an absent movie is a no-op.
func (s *AccountService) RemoveFavorite(ctx context.Context, username, movieID string) (*domain.Account, error) {
	account, err := s.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	if !account.HasFavorite(movieID) {
		return account, nil
	}

	if err := s.accounts.RemoveFavorite(ctx, account.ID, movieID); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.Event{
		Type:      events.EventFavoriteRemoved,
		AccountID: account.ID,
		Username:  account.Username,
		Payload:   events.FavoritePayload{MovieID: movieID},
	})
	return s.Get(ctx, username)
}

func (s *AccountService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
