package client

import (
	"context"

	"github.com/dmitrijs2005/walletsession/internal/client/models"
)

// AuthRequest is the body of POST /profile/auth.
type AuthRequest struct {
	Wallet  string `json:"wallet"`
	Msg     string `json:"msg"`
	Sign    string `json:"sign"`
	RefCode string `json:"refcode"`
}

// AuthResult is a successful auth exchange: the session token and the
// profile with the token member already removed.
type AuthResult struct {
	Token   string
	Profile *models.Profile
}

type Client interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	Authenticate(ctx context.Context, req AuthRequest) (*AuthResult, error)
}

// TokenSource returns the current session token, if any.
type TokenSource func(ctx context.Context) (string, bool, error)
