package services

import (
	"context"
	"net/url"
)

// ReferralQueryParam is the launch-URL query parameter carrying a referral code.
const ReferralQueryParam = "ref"

// ReferralFromURL returns the referral code in rawURL's query, or "".
func ReferralFromURL(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Query().Get(ReferralQueryParam)
}

// CaptureReferral stores a referral code in local storage, overwriting any
// previous one. Empty codes are ignored, as is a repeat of the last code
// captured by this session.
func (s *WalletSession) CaptureReferral(ctx context.Context, code string) error {
	if code == "" {
		return nil
	}

	s.mu.Lock()
	same := code == s.lastReferral
	s.mu.Unlock()
	if same {
		return nil
	}

	if err := s.local.Set(ctx, ReferralStorageKey, code); err != nil {
		s.log.Error(ctx, "referral capture failed", "error", err)
		return err
	}

	s.mu.Lock()
	s.lastReferral = code
	s.mu.Unlock()

	s.log.Debug(ctx, "referral captured", "refcode", code)
	return nil
}
