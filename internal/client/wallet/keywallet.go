package wallet

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ApproveFunc asks the user whether message may be signed.
type ApproveFunc func(ctx context.Context, message string) (bool, error)

// KeyWallet is a Connector holding a secp256k1 private key in memory. It
// signs with EIP-191 personal_sign.
type KeyWallet struct {
	mu      sync.Mutex
	key     *ecdsa.PrivateKey
	address common.Address
	chainID int64
	approve ApproveFunc

	subs   map[uint64]func(string)
	nextID uint64
}

// NewKeyWallet returns a disconnected wallet. approve may be nil, in which
// case every signature request is approved.
func NewKeyWallet(approve ApproveFunc) *KeyWallet {
	return &KeyWallet{approve: approve, subs: make(map[uint64]func(string))}
}

// Connect loads a hex private key (with or without 0x) and announces the
// derived address to subscribers.
func (w *KeyWallet) Connect(hexKey string, chainID int64) error {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return fmt.Errorf("parsing private key: %w", err)
	}

	w.mu.Lock()
	w.key = key
	w.address = crypto.PubkeyToAddress(key.PublicKey)
	w.chainID = chainID
	addr := w.address.Hex()
	subs := w.snapshotSubs()
	w.mu.Unlock()

	for _, fn := range subs {
		fn(addr)
	}
	return nil
}

func (w *KeyWallet) Address() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.key == nil {
		return ""
	}
	return w.address.Hex()
}

func (w *KeyWallet) ChainID() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.chainID
}

func (w *KeyWallet) SignMessage(ctx context.Context, message string) (string, error) {
	w.mu.Lock()
	key := w.key
	w.mu.Unlock()
	if key == nil {
		return "", ErrNotConnected
	}

	if w.approve != nil {
		ok, err := w.approve(ctx, message)
		if err != nil {
			return "", fmt.Errorf("approval: %w", err)
		}
		if !ok {
			return "", ErrRejected
		}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sig, err := crypto.Sign(personalHash([]byte(message)), key)
	if err != nil {
		return "", fmt.Errorf("signing message: %w", err)
	}
	sig[64] += 27

	return "0x" + hex.EncodeToString(sig), nil
}

func (w *KeyWallet) Disconnect() {
	w.mu.Lock()
	if w.key == nil {
		w.mu.Unlock()
		return
	}
	w.key = nil
	w.address = common.Address{}
	subs := w.snapshotSubs()
	w.mu.Unlock()

	for _, fn := range subs {
		fn("")
	}
}

func (w *KeyWallet) Subscribe(fn func(address string)) (unsubscribe func()) {
	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.subs[id] = fn
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		delete(w.subs, id)
		w.mu.Unlock()
	}
}

func (w *KeyWallet) snapshotSubs() []func(string) {
	out := make([]func(string), 0, len(w.subs))
	for _, fn := range w.subs {
		out = append(out, fn)
	}
	return out
}

// RecoverAddress returns the address that produced a personal_sign
// signature over message.
func RecoverAddress(message, signature string) (string, error) {
	sig, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return "", fmt.Errorf("decoding signature: %w", err)
	}
	if len(sig) != crypto.SignatureLength {
		return "", fmt.Errorf("signature must be %d bytes, got %d", crypto.SignatureLength, len(sig))
	}
	if sig[64] >= 27 {
		sig[64] -= 27
	}

	pub, err := crypto.SigToPub(personalHash([]byte(message)), sig)
	if err != nil {
		return "", fmt.Errorf("recovering public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pub).Hex(), nil
}

// personalHash is keccak256("\x19Ethereum Signed Message:\n" + len(msg) + msg).
func personalHash(msg []byte) []byte {
	prefix := fmt.Sprintf("\x19Ethereum Signed Message:\n%d", len(msg))
	return crypto.Keccak256([]byte(prefix), msg)
}
