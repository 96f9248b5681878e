package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/walletsession/internal/client/models"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenSource
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// NewHTTPClient builds a client for the backend rooted at baseURL. tokens may
// be nil, in which case no Authorization header is sent.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend url %q must be absolute", baseURL)
	}
	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	data, err := c.do(ctx, http.MethodGet, "/profile", nil)
	if err != nil {
		return nil, err
	}

	var p models.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: decode profile: %v", ErrUnexpectedResponse, err)
	}
	return &p, nil
}

func (c *HTTPClient) Authenticate(ctx context.Context, req AuthRequest) (*AuthResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	data, err := c.do(ctx, http.MethodPost, "/profile/auth", body)
	if err != nil {
		return nil, err
	}

	var withToken struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(data, &withToken); err != nil {
		return nil, fmt.Errorf("%w: decode auth result: %v", ErrUnexpectedResponse, err)
	}
	if withToken.Token == "" {
		return nil, fmt.Errorf("%w: auth result has no token", ErrUnexpectedResponse)
	}

	var p models.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: decode profile: %v", ErrUnexpectedResponse, err)
	}
	return &AuthResult{Token: withToken.Token, Profile: &p}, nil
}

// do performs the call and returns the "data" member of the response.
func (c *HTTPClient) do(ctx context.Context, method, path string, body []byte) (json.RawMessage, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		tok, ok, err := c.tokens(ctx)
		if err != nil {
			return nil, fmt.Errorf("read session token: %w", err)
		}
		if ok {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp); err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnexpectedResponse, method, path, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, fmt.Errorf("%w: %s %s: empty data", ErrUnexpectedResponse, method, path)
	}
	return env.Data, nil
}

func mapStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s", ErrUnavailable, resp.Status)
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s; body: %s", ErrUnexpectedResponse, resp.Status, strings.TrimSpace(string(b)))
	}
}
