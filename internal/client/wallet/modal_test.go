package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModalConfig() ModalConfig {
	return ModalConfig{
		Connectors: []ConnectorKind{ConnectorInjected, ConnectorWalletConnect},
		RPC: map[int64]string{
			1:   "https://rpc.mainnet.example",
			137: "https://rpc.polygon.example",
		},
		ChainID: 137,
	}
}

func TestModalConfig_Validate(t *testing.T) {
	require.NoError(t, testModalConfig().Validate())

	c := testModalConfig()
	c.Connectors = nil
	require.Error(t, c.Validate())

	c = testModalConfig()
	c.Connectors = []ConnectorKind{"ledger"}
	require.ErrorIs(t, c.Validate(), ErrUnsupportedConnector)

	c = testModalConfig()
	c.ChainID = 10
	require.ErrorContains(t, c.Validate(), "no rpc endpoint for chain 10")
}

func TestKeyModal_OpenConnectsWallet(t *testing.T) {
	w := NewKeyWallet(nil)
	m, err := NewKeyModal(testModalConfig(), w, func(context.Context) (string, error) { return testKey, nil })
	require.NoError(t, err)

	require.NoError(t, m.Open(context.Background()))
	assert.Equal(t, testAddress, w.Address())
	assert.Equal(t, int64(137), w.ChainID())
	assert.Equal(t, "https://rpc.polygon.example", m.RPCEndpoint())
}

func TestKeyModal_ReadKeyError(t *testing.T) {
	boom := errors.New("eof")
	w := NewKeyWallet(nil)
	m, err := NewKeyModal(testModalConfig(), w, func(context.Context) (string, error) { return "", boom })
	require.NoError(t, err)

	require.ErrorIs(t, m.Open(context.Background()), boom)
	assert.Empty(t, w.Address())
}

func TestKeyModal_WalletConnectOnly(t *testing.T) {
	c := testModalConfig()
	c.Connectors = []ConnectorKind{ConnectorWalletConnect}
	m, err := NewKeyModal(c, NewKeyWallet(nil), func(context.Context) (string, error) { return testKey, nil })
	require.NoError(t, err)

	require.ErrorIs(t, m.Open(context.Background()), ErrUnsupportedConnector)
}

func TestNewKeyModal_InvalidConfig(t *testing.T) {
	c := testModalConfig()
	c.RPC = nil
	_, err := NewKeyModal(c, NewKeyWallet(nil), nil)
	require.Error(t, err)
}
