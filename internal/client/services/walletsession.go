// Package services contains application services for the wallet session
// client. This file defines WalletSession: wallet connection, signature-based
// verification, the auth exchange and the session cookie lifecycle.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/dmitrijs2005/walletsession/internal/client/client"
	"github.com/dmitrijs2005/walletsession/internal/client/models"
	"github.com/dmitrijs2005/walletsession/internal/client/state"
	"github.com/dmitrijs2005/walletsession/internal/client/token"
	"github.com/dmitrijs2005/walletsession/internal/client/wallet"
	"github.com/dmitrijs2005/walletsession/internal/logging"
	"golang.org/x/sync/singleflight"
)

const (
	SessionCookieName  = "jwt"
	ReferralStorageKey = "refcode"
	DefaultVerifyDelay = 999 * time.Millisecond

	connectMessageSuffix = " - connect wallet"
)

var ErrLoginInProgress = errors.New("login already in progress")

// CookieStore is the part of the cookie jar WalletSession needs.
type CookieStore interface {
	Create(ctx context.Context, name, value string, expires time.Time) error
	Read(ctx context.Context, name string) (string, bool, error)
	Delete(ctx context.Context, name string) error
}

// LocalStore is the part of local storage WalletSession needs.
type LocalStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

// Deps are the collaborators of a WalletSession.
type Deps struct {
	API      client.Client
	Wallet   wallet.Connector
	Modal    wallet.Modal
	Cookies  CookieStore
	Local    LocalStore
	Profiles *state.ProfileStore
	Logger   logging.Logger
}

// Options tune a WalletSession. WebsiteURL is required; its host is bound
// into the signed message.
type Options struct {
	WebsiteURL  string
	VerifyDelay time.Duration
}

// Snapshot is what a UI needs to render the session.
type Snapshot struct {
	Address string
	Profile *models.Profile
	State   State
}

// WalletSession drives the wallet login flow:
//
//	connect -> sign "<domain> - connect wallet" -> POST /profile/auth
//	        -> session cookie -> shared profile
//
// It reacts to address changes from the wallet connector. Verification is
// debounced: every trigger replaces the pending timer, so a burst of
// address changes yields a single signature prompt.
//
// Invariant: the profile is set from an exchange only right after the
// session cookie was written, and Logout deletes the cookie and clears the
// profile together.
type WalletSession struct {
	api      client.Client
	wallet   wallet.Connector
	modal    wallet.Modal
	cookies  CookieStore
	local    LocalStore
	profiles *state.ProfileStore
	log      logging.Logger

	message string
	delay   time.Duration

	boot singleflight.Group

	// bg scopes work started by callbacks (signing, exchange, profile load).
	bg     context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu           sync.Mutex
	state        State
	address      string
	timer        *time.Timer
	timerGen     uint64
	lastReferral string
	unsubscribe  func()
	closed       bool
}

// ConnectMessage returns the message a wallet signs to log in to the site
// at websiteURL: "<host> - connect wallet".
func ConnectMessage(websiteURL string) (string, error) {
	u, err := url.Parse(websiteURL)
	if err != nil {
		return "", fmt.Errorf("parse website url: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("website url %q has no host", websiteURL)
	}
	return u.Host + connectMessageSuffix, nil
}

func NewWalletSession(deps Deps, opts Options) (*WalletSession, error) {
	if deps.API == nil || deps.Wallet == nil || deps.Modal == nil || deps.Cookies == nil || deps.Local == nil {
		return nil, errors.New("wallet session: missing dependency")
	}

	msg, err := ConnectMessage(opts.WebsiteURL)
	if err != nil {
		return nil, err
	}

	delay := opts.VerifyDelay
	if delay <= 0 {
		delay = DefaultVerifyDelay
	}

	profiles := deps.Profiles
	if profiles == nil {
		profiles = state.NewProfileStore()
	}
	var log logging.Logger = logging.Discard()
	if deps.Logger != nil {
		log = deps.Logger
	}

	bg, cancel := context.WithCancel(context.Background())

	return &WalletSession{
		api:      deps.API,
		wallet:   deps.Wallet,
		modal:    deps.Modal,
		cookies:  deps.Cookies,
		local:    deps.Local,
		profiles: profiles,
		log:      log.With("component", "wallet_session"),
		message:  msg,
		delay:    delay,
		bg:       bg,
		cancel:   cancel,
	}, nil
}

// Start subscribes to the wallet connector. An already connected wallet is
// treated like a fresh address change.
func (s *WalletSession) Start(ctx context.Context) {
	unsubscribe := s.wallet.Subscribe(s.onAddressChange)

	s.mu.Lock()
	s.unsubscribe = unsubscribe
	s.mu.Unlock()

	s.log.Debug(ctx, "wallet session started")
	s.onAddressChange(s.wallet.Address())
}

// Close stops the pending verification, detaches from the wallet and waits
// for background work to finish. In-flight network calls are cancelled.
func (s *WalletSession) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.stopTimerLocked()
	unsubscribe := s.unsubscribe
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	s.cancel()
	s.wg.Wait()
}

func (s *WalletSession) Profiles() *state.ProfileStore {
	return s.profiles
}

func (s *WalletSession) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *WalletSession) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Address: s.address, Profile: s.profiles.Get(), State: s.state}
}

// Bootstrap loads the profile when a session cookie exists. Concurrent calls
// share one request; the caller's ctx only bounds how long it waits, the
// request itself runs until it completes or the session is closed. Failures
// are logged and leave the profile untouched.
func (s *WalletSession) Bootstrap(ctx context.Context) error {
	ch := s.boot.DoChan("profile", func() (any, error) {
		return nil, s.loadProfile(s.bg)
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *WalletSession) loadProfile(ctx context.Context) error {
	_, ok, err := s.cookies.Read(ctx, SessionCookieName)
	if err != nil {
		s.log.Error(ctx, "session cookie read failed", "error", err)
		return err
	}
	if !ok {
		return nil
	}

	p, err := s.api.GetProfile(ctx)
	if err != nil {
		s.log.Error(ctx, "profile load failed", "error", err)
		return err
	}

	s.profiles.Set(p)
	s.markVerifiedIfOwned(p)
	s.log.Info(ctx, "profile loaded", "wallet", p.Wallet)
	return nil
}

// Login connects a wallet through the modal, or, when one is already
// connected, verifies it. Overlapping modal attempts are refused with
// ErrLoginInProgress.
func (s *WalletSession) Login(ctx context.Context) error {
	s.mu.Lock()
	if s.state == StateModalOpen {
		s.mu.Unlock()
		return ErrLoginInProgress
	}
	if s.address != "" {
		s.scheduleVerifyLocked()
		s.mu.Unlock()
		return nil
	}
	s.state = StateModalOpen
	s.mu.Unlock()

	if err := s.modal.Open(ctx); err != nil {
		s.mu.Lock()
		if s.state == StateModalOpen {
			s.state = StateDisconnected
		}
		s.mu.Unlock()
		s.log.Warn(ctx, "wallet modal failed", "error", err)
		return err
	}
	return nil
}

// Logout disconnects the wallet, deletes the session cookie and clears the
// profile, whatever the current state.
func (s *WalletSession) Logout(ctx context.Context) error {
	s.wallet.Disconnect()

	err := s.cookies.Delete(ctx, SessionCookieName)
	if err != nil {
		s.log.Error(ctx, "session cookie delete failed", "error", err)
	}
	s.profiles.Clear()

	s.mu.Lock()
	s.stopTimerLocked()
	s.address = ""
	s.state = StateDisconnected
	s.mu.Unlock()

	s.log.Info(ctx, "logged out")
	return err
}

func (s *WalletSession) onAddressChange(address string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.address = address
	switch {
	case address == "":
		s.state = StateDisconnected
	case s.profiles.Get().OwnedBy(address):
		s.state = StateConnectedVerified
	default:
		s.state = StateConnectedUnverified
	}
	s.scheduleVerifyLocked()
}

func (s *WalletSession) scheduleVerifyLocked() {
	s.stopTimerLocked()
	s.timerGen++
	gen := s.timerGen
	s.timer = time.AfterFunc(s.delay, func() { s.verify(gen) })
}

func (s *WalletSession) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.timerGen++
}

// verify runs when the debounce timer fires. A superseded timer that fired
// before it could be stopped sees a newer generation and does nothing.
func (s *WalletSession) verify(gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.timerGen {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	address := s.address
	s.mu.Unlock()

	ctx := s.bg
	if address == "" {
		return
	}
	if s.profiles.Get().OwnedBy(address) {
		return
	}
	_, ok, err := s.cookies.Read(ctx, SessionCookieName)
	if err != nil {
		s.log.Error(ctx, "session cookie read failed", "error", err)
		return
	}
	if ok {
		return
	}

	s.requestSignature(address)
}

func (s *WalletSession) requestSignature(address string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		ctx := s.bg

		s.log.Info(ctx, "signature requested", "wallet", address)
		sig, err := s.wallet.SignMessage(ctx, s.message)
		if err != nil {
			s.onSignatureError(ctx, err)
			return
		}
		s.onSignature(ctx, address, s.message, sig)
	}()
}

func (s *WalletSession) onSignatureError(ctx context.Context, err error) {
	s.log.Error(ctx, "signature request failed", "error", err)
	s.wallet.Disconnect()
}

// onSignature exchanges a signature for a session. Any failure leaves the
// cookie and the profile as they were.
func (s *WalletSession) onSignature(ctx context.Context, address, message, signature string) {
	refcode, _, err := s.local.Get(ctx, ReferralStorageKey)
	if err != nil {
		s.log.Warn(ctx, "referral read failed", "error", err)
		refcode = ""
	}

	res, err := s.api.Authenticate(ctx, client.AuthRequest{
		Wallet:  address,
		Msg:     message,
		Sign:    signature,
		RefCode: refcode,
	})
	if err != nil {
		s.log.Error(ctx, "auth exchange failed", "error", err)
		return
	}

	expires, err := token.ExpiresAt(res.Token)
	if err != nil {
		s.log.Error(ctx, "session token rejected", "error", err)
		return
	}

	if err := s.cookies.Create(ctx, SessionCookieName, res.Token, expires); err != nil {
		s.log.Error(ctx, "session cookie write failed", "error", err)
		return
	}

	s.profiles.Set(res.Profile)
	s.markVerifiedIfOwned(res.Profile)
	s.log.Info(ctx, "wallet verified", "wallet", res.Profile.Wallet, "expires", expires)
}

func (s *WalletSession) markVerifiedIfOwned(p *models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateConnectedUnverified && p.OwnedBy(s.address) {
		s.state = StateConnectedVerified
	}
}
