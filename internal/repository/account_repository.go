package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/movie-api/internal/domain"
)

// AccountRepository defines persistence access for accounts and their favorites.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	Update(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	AddFavorite(ctx context.Context, accountID, movieID string) error
	RemoveFavorite(ctx context.Context, accountID, movieID string) error
}

type accountRepository struct {
	db DBTX
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(db DBTX) AccountRepository {
	return &accountRepository{db: db}
}

const accountColumns = `
        u.id::text, u.username, u.password_hash, u.email, u.birthday, u.created_at, u.updated_at,
        ARRAY(SELECT f.movie_id::text FROM user_favorites f WHERE f.user_id = u.id ORDER BY f.added_at)`

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const query = `
        INSERT INTO users (id, username, password_hash, email, birthday)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, updated_at`

	id := account.ID
	if id == "" {
		id = uuid.NewString()
	}
	var createdAt, updatedAt time.Time
	err := r.db.QueryRow(ctx, query,
		id,
		account.Username,
		account.PasswordHash,
		account.Email,
		account.Birthday,
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		return mapWriteError(err)
	}
	account.ID = id
	account.CreatedAt = createdAt
	account.UpdatedAt = updatedAt
	if account.FavoriteMovies == nil {
		account.FavoriteMovies = []string{}
	}
	return nil
}

func (r *accountRepository) Update(ctx context.Context, account *domain.Account) error {
	const query = `
        UPDATE users SET username=$1, password_hash=$2, email=$3, birthday=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.db.Exec(ctx, query,
		account.Username,
		account.PasswordHash,
		account.Email,
		account.Birthday,
		account.ID,
	)
	if err != nil {
		return mapWriteError(err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return pgx.ErrNoRows
	}
	cmd, err := r.db.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, pgx.ErrNoRows
	}
	return r.getOne(ctx, `SELECT`+accountColumns+` FROM users u WHERE u.id=$1`, id)
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.getOne(ctx, `SELECT`+accountColumns+` FROM users u WHERE u.username=$1`, username)
}

func (r *accountRepository) List(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.db.Query(ctx, `SELECT`+accountColumns+` FROM users u ORDER BY u.username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	return accounts, rows.Err()
}

func (r *accountRepository) AddFavorite(ctx context.Context, accountID, movieID string) error {
	const query = `
        INSERT INTO user_favorites (user_id, movie_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id, movie_id) DO NOTHING`

	_, err := r.db.Exec(ctx, query, accountID, movieID)
	return err
}

func (r *accountRepository) RemoveFavorite(ctx context.Context, accountID, movieID string) error {
	if _, err := uuid.Parse(movieID); err != nil {
		return nil
	}
	_, err := r.db.Exec(ctx, `DELETE FROM user_favorites WHERE user_id=$1 AND movie_id=$2`, accountID, movieID)
	return err
}

func (r *accountRepository) getOne(ctx context.Context, query string, arg string) (*domain.Account, error) {
	return scanAccount(r.db.QueryRow(ctx, query, arg))
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	if err := row.Scan(
		&account.ID,
		&account.Username,
		&account.PasswordHash,
		&account.Email,
		&account.Birthday,
		&account.CreatedAt,
		&account.UpdatedAt,
		&account.FavoriteMovies,
	); err != nil {
		return nil, err
	}
	if account.FavoriteMovies == nil {
		account.FavoriteMovies = []string{}
	}
	return &account, nil
}
