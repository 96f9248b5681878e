package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprover_Decide(t *testing.T) {
	silencePrintln(t)
	p := &approver{}

	assert.False(t, p.decide(true), "nothing pending")

	for _, want := range []bool{true, false} {
		res := make(chan bool, 1)
		go func() {
			ok, err := p.Approve(context.Background(), "app.example - connect wallet")
			assert.NoError(t, err)
			res <- ok
		}()

		require.Eventually(t, func() bool {
			_, ok := p.pendingMessage()
			return ok
		}, time.Second, time.Millisecond)

		msg, _ := p.pendingMessage()
		assert.Equal(t, "app.example - connect wallet", msg)
		require.True(t, p.decide(want))
		assert.Equal(t, want, <-res)

		_, pending := p.pendingMessage()
		assert.False(t, pending)
	}
}

func TestApprover_ContextCancel(t *testing.T) {
	silencePrintln(t)
	p := &approver{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := p.Approve(ctx, "m")
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
	assert.False(t, p.decide(true))
}
