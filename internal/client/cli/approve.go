package cli

import (
	"context"
	"fmt"
	"sync"
)

// approver turns a wallet signature request into a REPL question. The wallet
// blocks in Approve until the user answers with "sign" or "reject".
type approver struct {
	mu      sync.Mutex
	pending chan bool
	message string
}

func (p *approver) Approve(ctx context.Context, message string) (bool, error) {
	ch := make(chan bool, 1)

	p.mu.Lock()
	p.pending = ch
	p.message = message
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		if p.pending == ch {
			p.pending = nil
			p.message = ""
		}
		p.mu.Unlock()
	}()

	printlnFn(fmt.Sprintf("Wallet signature requested: %q. Type 'sign' to approve or 'reject' to decline.", message))

	select {
	case ok := <-ch:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// decide answers the pending request. It reports false when nothing is pending.
func (p *approver) decide(ok bool) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pending == nil {
		return false
	}
	p.pending <- ok
	p.pending = nil
	p.message = ""
	return true
}

func (p *approver) pendingMessage() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.message, p.pending != nil
}
