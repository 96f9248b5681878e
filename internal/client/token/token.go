// Package token reads claims out of session tokens without verifying them.
// The backend is the trust boundary; the client only needs the expiry to
// scope the session cookie.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed = errors.New("malformed token")
	ErrNoExpiry  = errors.New("token has no expiry claim")
)

// Claims decodes the token payload.
func Claims(tok string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return claims, nil
}

// ExpiresAt returns the exp claim (seconds since epoch) as a time.
func ExpiresAt(tok string) (time.Time, error) {
	claims, err := Claims(tok)
	if err != nil {
		return time.Time{}, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}
	return exp.Time, nil
}
