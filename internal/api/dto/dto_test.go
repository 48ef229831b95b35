package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/movie-api/internal/domain"
	apperrors "github.com/spec-kit/movie-api/pkg/util/errorutil"
)

func strPtr(s string) *string { return &s }

func TestValidate_Register(t *testing.T) {
	tests := []struct {
		name   string
		req    RegisterRequest
		fields []string
	}{
		{
			name: "valid",
			req:  RegisterRequest{Username: "alice1", Password: "pw", Email: "alice@example.com", Birthday: "1990-04-01"},
		},
		{
			name:   "short username",
			req:    RegisterRequest{Username: "al", Password: "pw", Email: "alice@example.com"},
			fields: []string{"Username"},
		},
		{
			name:   "non alphanumeric username",
			req:    RegisterRequest{Username: "alice_1", Password: "pw", Email: "alice@example.com"},
			fields: []string{"Username"},
		},
		{
			name:   "missing password and bad email",
			req:    RegisterRequest{Username: "alice1", Email: "nope"},
			fields: []string{"Password", "Email"},
		},
		{
			name:   "bad birthday",
			req:    RegisterRequest{Username: "alice1", Password: "pw", Email: "alice@example.com", Birthday: "01/04/1990"},
			fields: []string{"Birthday"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}
			domainErr := apperrors.ToDomainError(err)
			assert.Equal(t, 400, domainErr.HTTPStatus)
			assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
			assert.Len(t, domainErr.Details, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, domainErr.Details, f)
			}
		})
	}
}

func TestValidate_UpdateOptionalFields(t *testing.T) {
	assert.NoError(t, Validate(UpdateAccountRequest{}))
	assert.NoError(t, Validate(UpdateAccountRequest{Email: strPtr("new@example.com")}))
	assert.Error(t, Validate(UpdateAccountRequest{Username: strPtr("abc")}))
	assert.Error(t, Validate(UpdateAccountRequest{Password: strPtr("")}))
}

func TestNewAccountResponse(t *testing.T) {
	birthday := time.Date(1990, 4, 1, 0, 0, 0, 0, time.UTC)
	resp := NewAccountResponse(&domain.Account{
		ID:           "id-1",
		Username:     "alice",
		PasswordHash: "$2a$10$secret",
		Email:        "alice@example.com",
		Birthday:     &birthday,
	})

	assert.Equal(t, "id-1", resp.ID)
	require.NotNil(t, resp.Birthday)
	assert.Equal(t, "1990-04-01", *resp.Birthday)
	assert.NotNil(t, resp.FavoriteMovies)

	noBirthday := NewAccountResponse(&domain.Account{ID: "id-2"})
	assert.Nil(t, noBirthday.Birthday)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseDate("2001-12-31")
	require.NoError(t, err)
	assert.Equal(t, 2001, d.Year())

	_, err = ParseDate("yesterday")
	assert.Error(t, err)
}
