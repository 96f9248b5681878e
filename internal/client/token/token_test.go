package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return s
}

func TestExpiresAt(t *testing.T) {
	exp := time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC)
	tok := sign(t, jwt.MapClaims{"exp": exp.Unix(), "wallet": "0xabc"})

	got, err := ExpiresAt(tok)
	require.NoError(t, err)
	assert.True(t, got.Equal(exp), "got %s", got)
}

func TestExpiresAt_DoesNotVerifySignature(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := sign(t, jwt.MapClaims{"exp": exp.Unix()})

	// Corrupt the signature segment: the claims must still decode.
	tampered := tok[:len(tok)-2] + "xx"
	got, err := ExpiresAt(tampered)
	require.NoError(t, err)
	assert.True(t, got.Equal(exp))
}

func TestExpiresAt_NoExpiry(t *testing.T) {
	tok := sign(t, jwt.MapClaims{"wallet": "0xabc"})

	_, err := ExpiresAt(tok)
	require.ErrorIs(t, err, ErrNoExpiry)
}

func TestExpiresAt_BadExpiryType(t *testing.T) {
	tok := sign(t, jwt.MapClaims{"exp": "tomorrow"})

	_, err := ExpiresAt(tok)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestExpiresAt_Garbage(t *testing.T) {
	_, err := ExpiresAt("not-a-jwt")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestClaims(t *testing.T) {
	tok := sign(t, jwt.MapClaims{"wallet": "0xabc", "exp": 1})

	c, err := Claims(tok)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", c["wallet"])
}
