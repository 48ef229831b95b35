package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/movie-api/internal/auth"
	"github.com/spec-kit/movie-api/internal/config"
	"github.com/spec-kit/movie-api/internal/domain"
	"github.com/spec-kit/movie-api/internal/events"
	"github.com/spec-kit/movie-api/internal/repository"
	apperrors "github.com/spec-kit/movie-api/pkg/util/errorutil"
)

const (
	carolID   = "0b8f0f4e-6a3c-4a53-9d2e-2f1c7d2f9a01"
	popstarID = "5d2c1a7b-3e4f-4b8a-8c6d-7e9f0a1b2c02"
)

type fixture struct {
	accounts *repository.MemoryAccountRepository
	movies   *repository.MemoryMovieRepository
	events   []events.Event
	svc      *AccountService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		accounts: repository.NewMemoryAccountRepository(),
		movies:   repository.NewMemoryMovieRepository(repository.SeedMovies()),
	}
	dispatcher := events.NewInMemoryDispatcher()
	for _, et := range []events.EventType{
		events.EventAccountRegistered,
		events.EventAccountUpdated,
		events.EventAccountDeleted,
		events.EventFavoriteAdded,
		events.EventFavoriteRemoved,
	} {
		dispatcher.Subscribe(et, func(_ context.Context, e events.Event) error {
			f.events = append(f.events, e)
			return nil
		})
	}
	f.svc = NewAccountService(AccountDependencies{
		AccountRepo: f.accounts,
		MovieRepo:   f.movies,
		Dispatcher:  dispatcher,
		BcryptCost:  bcrypt.MinCost,
	})
	return f
}

func (f *fixture) register(t *testing.T, username, password string) *domain.Account {
	t.Helper()
	account, err := f.svc.Register(context.Background(), RegisterInput{
		Username: username,
		Password: password,
		Email:    username + "@example.com",
	})
	require.NoError(t, err)
	return account
}

func statusOf(err error) int {
	return apperrors.ToDomainError(err).HTTPStatus
}

func TestAccountService_Register(t *testing.T) {
	f := newFixture(t)
	birthday := time.Date(1990, 4, 1, 0, 0, 0, 0, time.UTC)

	account, err := f.svc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Password: "correct",
		Email:    "alice@example.com",
		Birthday: &birthday,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, account.ID)
	assert.NotEqual(t, "correct", account.PasswordHash)
	assert.NoError(t, auth.ComparePassword(account.PasswordHash, "correct"))
	assert.Empty(t, account.FavoriteMovies)

	_, err = f.svc.Register(context.Background(), RegisterInput{Username: "alice", Password: "other"})
	assert.Equal(t, http.StatusConflict, statusOf(err))

	require.Len(t, f.events, 1)
	assert.Equal(t, events.EventAccountRegistered, f.events[0].Type)
	assert.Equal(t, account.ID, f.events[0].AccountID)
}

func TestAccountService_GetAndList(t *testing.T) {
	f := newFixture(t)
	f.register(t, "bobby", "pw")
	f.register(t, "alice", "pw")

	account, err := f.svc.Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)

	_, err = f.svc.Get(context.Background(), "nobody")
	assert.Equal(t, http.StatusNotFound, statusOf(err))

	accounts, err := f.svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "alice", accounts[0].Username)
	assert.Equal(t, "bobby", accounts[1].Username)
}

func TestAccountService_Update(t *testing.T) {
	f := newFixture(t)
	original := f.register(t, "alice", "correct")
	f.register(t, "bobby", "pw")
	ctx := context.Background()

	newName := "alice2"
	newPassword := "changed"
	updated, err := f.svc.Update(ctx, "alice", UpdateInput{Username: &newName, Password: &newPassword})
	require.NoError(t, err)
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.NoError(t, auth.ComparePassword(updated.PasswordHash, "changed"))

	_, err = f.svc.Get(ctx, "alice")
	assert.Equal(t, http.StatusNotFound, statusOf(err))

	taken := "bobby"
	_, err = f.svc.Update(ctx, "alice2", UpdateInput{Username: &taken})
	assert.Equal(t, http.StatusConflict, statusOf(err))

	last := f.events[len(f.events)-1]
	assert.Equal(t, events.EventAccountUpdated, last.Type)
	payload, ok := last.Payload.(events.AccountUpdatedPayload)
	require.True(t, ok)
	assert.Equal(t, []string{"Username", "Password"}, payload.Fields)
	assert.Equal(t, "alice", payload.OldUsername)

	before := len(f.events)
	same, err := f.svc.Update(ctx, "alice2", UpdateInput{})
	require.NoError(t, err)
	assert.Equal(t, "alice2", same.Username)
	assert.Len(t, f.events, before)
}

func TestAccountService_Delete(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice", "pw")
	ctx := context.Background()

	require.NoError(t, f.svc.Delete(ctx, "alice"))
	_, err := f.svc.Get(ctx, "alice")
	assert.Equal(t, http.StatusNotFound, statusOf(err))
	assert.Equal(t, http.StatusNotFound, statusOf(f.svc.Delete(ctx, "alice")))
}

func TestAccountService_Favorites(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice", "pw")
	ctx := context.Background()

	account, err := f.svc.AddFavorite(ctx, "alice", carolID)
	require.NoError(t, err)
	assert.Equal(t, []string{carolID}, account.FavoriteMovies)

	account, err = f.svc.AddFavorite(ctx, "alice", carolID)
	require.NoError(t, err)
	assert.Equal(t, []string{carolID}, account.FavoriteMovies)

	account, err = f.svc.AddFavorite(ctx, "alice", popstarID)
	require.NoError(t, err)
	assert.Equal(t, []string{carolID, popstarID}, account.FavoriteMovies)

	_, err = f.svc.AddFavorite(ctx, "alice", "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, http.StatusNotFound, statusOf(err))

	_, err = f.svc.AddFavorite(ctx, "nobody", carolID)
	assert.Equal(t, http.StatusNotFound, statusOf(err))

	account, err = f.svc.RemoveFavorite(ctx, "alice", carolID)
	require.NoError(t, err)
	assert.Equal(t, []string{popstarID}, account.FavoriteMovies)

	account, err = f.svc.RemoveFavorite(ctx, "alice", carolID)
	require.NoError(t, err)
	assert.Equal(t, []string{popstarID}, account.FavoriteMovies)

	var added, removed int
	for _, e := range f.events {
		switch e.Type {
		case events.EventFavoriteAdded:
			added++
		case events.EventFavoriteRemoved:
			removed++
		}
	}
	assert.Equal(t, 2, added)
	assert.Equal(t, 1, removed)
}

func TestAuthService_Login(t *testing.T) {
	f := newFixture(t)
	alice := f.register(t, "alice", "correct")
	svc := NewAuthService(config.AuthConfig{JWTSecret: "secret", TokenTTLHours: 168}, f.accounts)
	ctx := context.Background()

	account, token, exp, err := svc.Login(ctx, auth.Credential{Username: "alice", Password: "correct"})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, account.ID)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), exp, 2*time.Second)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)

	_, _, _, err = svc.Login(ctx, auth.Credential{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrIncorrectPassword)

	_, _, _, err = svc.Login(ctx, auth.Credential{Username: "mallory", Password: "correct"})
	assert.ErrorIs(t, err, auth.ErrIncorrectUsername)

	assert.Equal(t, "local", svc.LocalStrategy().Name())
	assert.Equal(t, "bearer", svc.BearerStrategy().Name())
}

func TestAccountService_StoreFailure(t *testing.T) {
	svc := NewAccountService(AccountDependencies{AccountRepo: brokenAccounts{}, BcryptCost: bcrypt.MinCost})

	_, err := svc.Get(context.Background(), "alice")
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
	assert.Equal(t, "internal server error", domainErr.Message)
}

var errBroken = errors.New("pool closed")

type brokenAccounts struct {
	repository.AccountRepository
}

func (brokenAccounts) GetByUsername(context.Context, string) (*domain.Account, error) {
	return nil, errBroken
}
