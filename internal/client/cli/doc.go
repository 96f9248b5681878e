// Package cli provides the interactive wallet session client.
//
// It wires configuration, the SQLite-backed cookie jar and local storage, the
// profile API client, a private-key wallet with its modal, and the
// WalletSession controller, then runs a REPL. Typical flow: capture a referral
// from the launch URL, restore the session from the cookie jar, "login" to
// connect a wallet, answer the signature request with "sign".
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
