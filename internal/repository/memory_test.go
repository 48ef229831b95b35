package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/movie-api/internal/domain"
)

func TestMemoryAccountRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()

	alice := &domain.Account{Username: "alice", PasswordHash: "hash", Email: "alice@example.com"}
	require.NoError(t, repo.Create(ctx, alice))
	require.NotEmpty(t, alice.ID)
	assert.False(t, alice.CreatedAt.IsZero())

	err := repo.Create(ctx, &domain.Account{Username: "alice"})
	assert.ErrorIs(t, err, ErrDuplicate)

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)
	assert.Equal(t, []string{}, got.FavoriteMovies)

	got.Username = "alice2"
	require.NoError(t, repo.Update(ctx, got))

	_, err = repo.GetByUsername(ctx, "alice")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	renamed, err := repo.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice2", renamed.Username)

	require.NoError(t, repo.Delete(ctx, alice.ID))
	_, err = repo.GetByID(ctx, alice.ID)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.ErrorIs(t, repo.Delete(ctx, alice.ID), pgx.ErrNoRows)
}

func TestMemoryAccountRepository_UpdateRejectsTakenUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()

	alice := &domain.Account{Username: "alice"}
	bob := &domain.Account{Username: "bobby"}
	require.NoError(t, repo.Create(ctx, alice))
	require.NoError(t, repo.Create(ctx, bob))

	bob.Username = "alice"
	assert.ErrorIs(t, repo.Update(ctx, bob), ErrDuplicate)
}

func TestMemoryAccountRepository_Favorites(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()

	account := &domain.Account{Username: "alice"}
	require.NoError(t, repo.Create(ctx, account))

	require.NoError(t, repo.AddFavorite(ctx, account.ID, "m1"))
	require.NoError(t, repo.AddFavorite(ctx, account.ID, "m2"))
	require.NoError(t, repo.AddFavorite(ctx, account.ID, "m1"))

	got, err := repo.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"m1", "m2"}, got.FavoriteMovies)

	require.NoError(t, repo.RemoveFavorite(ctx, account.ID, "m1"))
	got, err = repo.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"m2"}, got.FavoriteMovies)

	assert.ErrorIs(t, repo.AddFavorite(ctx, "missing", "m1"), pgx.ErrNoRows)
}

func TestMemoryAccountRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository()

	account := &domain.Account{Username: "alice"}
	require.NoError(t, repo.Create(ctx, account))

	got, err := repo.GetByID(ctx, account.ID)
	require.NoError(t, err)
	got.FavoriteMovies = append(got.FavoriteMovies, "leak")
	got.Email = "changed@example.com"

	again, err := repo.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Empty(t, again.FavoriteMovies)
	assert.Empty(t, again.Email)
}

func TestMemoryMovieRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMovieRepository(SeedMovies())

	movies, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 3)
	assert.Equal(t, "Carol", movies[0].Title)
	assert.Equal(t, "Moulin Rouge", movies[1].Title)

	movie, err := repo.GetByTitle(ctx, "Carol")
	require.NoError(t, err)
	assert.Equal(t, "Todd Haynes", movie.Director.Name)

	byID, err := repo.GetByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carol", byID.Title)

	genre, err := repo.GetGenre(ctx, "Comedy")
	require.NoError(t, err)
	assert.Equal(t, "Comedy", genre.Name)

	director, err := repo.GetDirector(ctx, "Baz Luhrmann")
	require.NoError(t, err)
	assert.Equal(t, 1962, director.BirthYear)
	assert.Nil(t, director.DeathYear)

	byDirector, err := repo.ListByDirector(ctx, "Akiva Schaffer")
	require.NoError(t, err)
	require.Len(t, byDirector, 1)

	empty, err := repo.ListByDirector(ctx, "Nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = repo.GetByTitle(ctx, "Missing")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	_, err = repo.GetGenre(ctx, "Western")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	_, err = repo.GetDirector(ctx, "Nobody")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
