package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method    string
	path      string
	auth      string
	requestID string
	body      []byte
}

type callLog struct {
	mu    sync.Mutex
	calls []recorded
}

func (l *callLog) all() []recorded {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]recorded(nil), l.calls...)
}

func newServer(t *testing.T, status int, body string) (*httptest.Server, *callLog) {
	t.Helper()
	log := &callLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		log.mu.Lock()
		defer log.mu.Unlock()
		log.calls = append(log.calls, recorded{
			method:    r.Method,
			path:      r.URL.Path,
			auth:      r.Header.Get("Authorization"),
			requestID: r.Header.Get(RequestIDHeader),
			body:      b,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, log
}

func staticToken(tok string) TokenSource {
	return func(context.Context) (string, bool, error) { return tok, tok != "", nil }
}

func TestNewHTTPClient_RejectsRelativeURL(t *testing.T) {
	_, err := NewHTTPClient("api/v1", time.Second, nil)
	require.Error(t, err)
}

func TestGetProfile_Success_SendsBearerAndRequestID(t *testing.T) {
	srv, calls := newServer(t, http.StatusOK, `{"data":{"wallet":"0xAbC","points":3}}`)
	c, err := NewHTTPClient(srv.URL+"/", time.Second, staticToken("T1"))
	require.NoError(t, err)

	p, err := c.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0xAbC", p.Wallet)
	assert.Contains(t, p.Fields, "points")

	require.Len(t, calls.all(), 1)
	got := calls.all()[0]
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/profile", got.path)
	assert.Equal(t, "Bearer T1", got.auth)
	_, err = uuid.Parse(got.requestID)
	assert.NoError(t, err)
}

func TestGetProfile_NoTokenNoHeader(t *testing.T) {
	srv, calls := newServer(t, http.StatusOK, `{"data":{"wallet":"0xabc"}}`)
	c, err := NewHTTPClient(srv.URL, time.Second, staticToken(""))
	require.NoError(t, err)

	_, err = c.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Empty(t, calls.all()[0].auth)
}

func TestGetProfile_TokenSourceError(t *testing.T) {
	srv, calls := newServer(t, http.StatusOK, `{"data":{}}`)
	boom := errors.New("jar broken")
	c, err := NewHTTPClient(srv.URL, time.Second, func(context.Context) (string, bool, error) { return "", false, boom })
	require.NoError(t, err)

	_, err = c.GetProfile(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Empty(t, calls.all())
}

func TestAuthenticate_SplitsTokenFromProfile(t *testing.T) {
	srv, calls := newServer(t, http.StatusOK, `{"data":{"wallet":"0xabc","token":"JWT","nick":"n"}}`)
	c, err := NewHTTPClient(srv.URL, time.Second, nil)
	require.NoError(t, err)

	res, err := c.Authenticate(context.Background(), AuthRequest{
		Wallet: "0xabc", Msg: "app.example - connect wallet", Sign: "0xsig", RefCode: "",
	})
	require.NoError(t, err)
	assert.Equal(t, "JWT", res.Token)
	assert.Equal(t, "0xabc", res.Profile.Wallet)
	assert.NotContains(t, res.Profile.Fields, "token")

	got := calls.all()[0]
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/profile/auth", got.path)
	var sent map[string]string
	require.NoError(t, json.Unmarshal(got.body, &sent))
	assert.Equal(t, map[string]string{
		"wallet":  "0xabc",
		"msg":     "app.example - connect wallet",
		"sign":    "0xsig",
		"refcode": "",
	}, sent)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"data":{"wallet":"0xabc"}}`)
	c, err := NewHTTPClient(srv.URL, time.Second, nil)
	require.NoError(t, err)

	_, err = c.Authenticate(context.Background(), AuthRequest{Wallet: "0xabc"})
	require.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, `{}`, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, `{}`, ErrUnauthorized},
		{"server error", http.StatusBadGateway, `{}`, ErrUnavailable},
		{"bad request", http.StatusBadRequest, `{"error":"bad sign"}`, ErrUnexpectedResponse},
		{"bad json", http.StatusOK, `not json`, ErrUnexpectedResponse},
		{"null data", http.StatusOK, `{"data":null}`, ErrUnexpectedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t, tt.status, tt.body)
			c, err := NewHTTPClient(srv.URL, time.Second, nil)
			require.NoError(t, err)

			_, err = c.GetProfile(context.Background())
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTransportFailure_IsUnavailable(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{}`)
	url := srv.URL
	srv.Close()

	c, err := NewHTTPClient(url, time.Second, nil)
	require.NoError(t, err)

	_, err = c.GetProfile(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}
