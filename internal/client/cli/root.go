package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/walletsession/internal/client/services"
)

func (a *App) getStatus() string {
	return formatStatus(a.session.Snapshot())
}

func formatStatus(s services.Snapshot) string {
	if s.Address == "" {
		return fmt.Sprintf("(%s)", s.State)
	}
	return fmt.Sprintf("(%s %s)", shortAddress(s.Address), s.State)
}

// shortAddress renders 0x1234...abcd.
func shortAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

// Root captures the launch referral, restores any existing session and runs
// the REPL on stdin.
func (a *App) Root(ctx context.Context) {
	printlnFn("Wallet session CLI (type 'help' for commands)")

	if code := services.ReferralFromURL(a.config.LaunchURL); code != "" {
		_ = a.session.CaptureReferral(ctx, code)
	}

	a.session.Start(ctx)
	if err := a.session.Bootstrap(ctx); err != nil {
		printlnFn("Could not restore session:", err.Error())
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
