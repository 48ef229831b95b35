package auth

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is the parent of every credential or token rejection.
// Errors that do not wrap it are infrastructure failures.
var ErrUnauthenticated = errors.New("unauthenticated")

var (
	ErrNoCredentials     = fmt.Errorf("%w: no credentials presented", ErrUnauthenticated)
	ErrIncorrectUsername = fmt.Errorf("%w: incorrect username", ErrUnauthenticated)
	ErrIncorrectPassword = fmt.Errorf("%w: incorrect password", ErrUnauthenticated)
	ErrMalformedHeader   = fmt.Errorf("%w: malformed authorization header", ErrUnauthenticated)
	ErrInvalidToken      = fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	ErrExpiredToken      = fmt.Errorf("%w: token has expired", ErrUnauthenticated)
	ErrAccountNotFound   = fmt.Errorf("%w: account no longer exists", ErrUnauthenticated)
)
