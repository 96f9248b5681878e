// Package wallet defines the wallet connector and wallet-selection modal the
// session controller drives, plus a private-key backed implementation of both
// for terminal hosts.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

var (
	ErrNotConnected         = errors.New("wallet not connected")
	ErrRejected             = errors.New("signature request rejected")
	ErrUnsupportedConnector = errors.New("unsupported connector")
)

// Connector is a connected (or connectable) wallet.
type Connector interface {
	// Address returns the connected address, or "" when disconnected.
	Address() string
	// SignMessage produces a personal_sign signature over message.
	SignMessage(ctx context.Context, message string) (string, error)
	Disconnect()
	// Subscribe registers fn for address changes; "" means disconnected.
	Subscribe(fn func(address string)) (unsubscribe func())
}

// Modal lets the user pick and connect a wallet. A successful Open results
// in an address change on the connector.
type Modal interface {
	Open(ctx context.Context) error
}

type ConnectorKind string

const (
	ConnectorInjected      ConnectorKind = "injected"
	ConnectorWalletConnect ConnectorKind = "walletconnect"
)

// ModalConfig is the connector list offered by the modal and the RPC
// endpoint per chain id.
type ModalConfig struct {
	Connectors []ConnectorKind
	RPC        map[int64]string
	ChainID    int64
}

func (c ModalConfig) Validate() error {
	if len(c.Connectors) == 0 {
		return errors.New("modal: no connectors configured")
	}
	for _, k := range c.Connectors {
		if k != ConnectorInjected && k != ConnectorWalletConnect {
			return fmt.Errorf("modal: %w %q", ErrUnsupportedConnector, k)
		}
	}
	if _, ok := c.RPC[c.ChainID]; !ok {
		return fmt.Errorf("modal: no rpc endpoint for chain %d", c.ChainID)
	}
	return nil
}

func (c ModalConfig) Offers(k ConnectorKind) bool {
	return slices.Contains(c.Connectors, k)
}
