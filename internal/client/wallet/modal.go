package wallet

import (
	"context"
	"fmt"
)

// KeyReader obtains a hex private key from the user.
type KeyReader func(ctx context.Context) (string, error)

// KeyModal is a Modal for terminal hosts: it offers the injected connector
// only, backed by a KeyWallet and a private key supplied by readKey.
// WalletConnect needs a relay and a QR pairing flow, which a terminal modal
// does not provide.
type KeyModal struct {
	cfg     ModalConfig
	wallet  *KeyWallet
	readKey KeyReader
}

func NewKeyModal(cfg ModalConfig, w *KeyWallet, readKey KeyReader) (*KeyModal, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &KeyModal{cfg: cfg, wallet: w, readKey: readKey}, nil
}

func (m *KeyModal) Open(ctx context.Context) error {
	if !m.cfg.Offers(ConnectorInjected) {
		return fmt.Errorf("%w: terminal modal needs the %q connector", ErrUnsupportedConnector, ConnectorInjected)
	}

	key, err := m.readKey(ctx)
	if err != nil {
		return fmt.Errorf("read wallet key: %w", err)
	}
	return m.wallet.Connect(key, m.cfg.ChainID)
}

// RPCEndpoint returns the endpoint configured for the active chain.
func (m *KeyModal) RPCEndpoint() string {
	return m.cfg.RPC[m.cfg.ChainID]
}
