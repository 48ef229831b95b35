package dto

import (
	"time"

	"github.com/spec-kit/movie-api/internal/domain"
)

// DateLayout is the wire format of birthdays.
const DateLayout = "2006-01-02"

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Username string `json:"Username" form:"Username" validate:"required,min=5,alphanum"`
	Password string `json:"Password" form:"Password" validate:"required"`
	Email    string `json:"Email" form:"Email" validate:"required,email"`
	Birthday string `json:"Birthday" form:"Birthday" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateAccountRequest payload for partial updates. Omitted fields stay unchanged.
type UpdateAccountRequest struct {
	Username *string `json:"Username" form:"Username" validate:"omitempty,min=5,alphanum"`
	Password *string `json:"Password" form:"Password" validate:"omitempty,min=1"`
	Email    *string `json:"Email" form:"Email" validate:"omitempty,email"`
	Birthday *string `json:"Birthday" form:"Birthday" validate:"omitempty,datetime=2006-01-02"`
}

// AccountResponse is the public view of an account. The password hash is never included.
type AccountResponse struct {
	ID             string   `json:"_id"`
	Username       string   `json:"Username"`
	Email          string   `json:"Email"`
	Birthday       *string  `json:"Birthday"`
	FavoriteMovies []string `json:"FavoriteMovies"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	User  AccountResponse `json:"user"`
	Token string          `json:"token"`
}

// LoginFailure is returned for every rejected login.
type LoginFailure struct {
	Message string `json:"message"`
	User    bool   `json:"user"`
}

// LoginFailureMessage does not reveal whether the username or the password was wrong.
const LoginFailureMessage = "Something is not right"

// NewAccountResponse maps a domain account.
func NewAccountResponse(account *domain.Account) AccountResponse {
	resp := AccountResponse{
		ID:             account.ID,
		Username:       account.Username,
		Email:          account.Email,
		FavoriteMovies: account.FavoriteMovies,
	}
	if resp.FavoriteMovies == nil {
		resp.FavoriteMovies = []string{}
	}
	if account.Birthday != nil {
		b := account.Birthday.Format(DateLayout)
		resp.Birthday = &b
	}
	return resp
}

// NewAccountList maps a slice of domain accounts.
func NewAccountList(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, NewAccountResponse(&accounts[i]))
	}
	return out
}

// ParseDate parses a validated birthday. An empty string yields nil.
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
