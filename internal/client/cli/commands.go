package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/walletsession/internal/client/services"
)

func (a *App) Login(ctx context.Context) error {
	err := a.session.Login(ctx)
	switch {
	case errors.Is(err, services.ErrLoginInProgress):
		printlnFn("Login already in progress")
	case err != nil:
		printlnFn("Login failed:", err.Error())
	default:
		if addr := a.session.Snapshot().Address; addr != "" {
			printlnFn("Wallet connected:", addr)
		}
	}
	return err
}

func (a *App) Logout(ctx context.Context) error {
	a.approver.decide(false)
	err := a.session.Logout(ctx)
	if err != nil {
		printlnFn("Logged out, but the session cookie could not be removed:", err.Error())
		return err
	}
	printlnFn("Logged out")
	return nil
}

func (a *App) Status(ctx context.Context) error {
	snap := a.session.Snapshot()
	printlnFn("State:", snap.State.String())
	if snap.Address != "" {
		printlnFn("Address:", snap.Address)
	}
	printlnFn("Chain RPC:", a.modal.RPCEndpoint())
	if msg, ok := a.approver.pendingMessage(); ok {
		printlnFn(fmt.Sprintf("Pending signature: %q", msg))
	}
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	p := a.session.Profiles().Get()
	if p == nil {
		printlnFn("No profile loaded")
		return nil
	}
	printlnFn("Wallet:", p.Wallet)
	for _, name := range p.FieldNames() {
		printlnFn(fmt.Sprintf("  %s: %s", name, strings.TrimSpace(string(p.Fields[name]))))
	}
	return nil
}

func (a *App) Ref(ctx context.Context, code string) error {
	if err := a.session.CaptureReferral(ctx, code); err != nil {
		printlnFn("Could not store referral code:", err.Error())
		return err
	}
	printlnFn("Referral code stored")
	return nil
}

func (a *App) Sign(ctx context.Context) error {
	if !a.approver.decide(true) {
		printlnFn("No signature request pending")
	}
	return nil
}

func (a *App) Reject(ctx context.Context) error {
	if !a.approver.decide(false) {
		printlnFn("No signature request pending")
	}
	return nil
}
