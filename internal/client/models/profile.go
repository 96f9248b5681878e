// Package models defines the client-side data models of the wallet session.
package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Profile is the server-held account record of an authenticated wallet.
//
// Wallet is decoded into its own field; every other JSON member is kept
// verbatim in Fields so server additions survive a round trip. A "token"
// member is never kept.
type Profile struct {
	Wallet string
	Fields map[string]json.RawMessage
}

func (p *Profile) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	p.Wallet = ""
	if w, ok := raw["wallet"]; ok && string(w) != "null" {
		if err := json.Unmarshal(w, &p.Wallet); err != nil {
			return fmt.Errorf("profile wallet: %w", err)
		}
	}
	delete(raw, "wallet")
	delete(raw, "token")

	p.Fields = raw
	return nil
}

func (p Profile) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(p.Fields)+1)
	for k, v := range p.Fields {
		out[k] = v
	}
	w, err := json.Marshal(p.Wallet)
	if err != nil {
		return nil, err
	}
	out["wallet"] = w
	return json.Marshal(out)
}

// OwnedBy reports whether address is the profile's wallet, ignoring case.
// An empty address never matches.
func (p *Profile) OwnedBy(address string) bool {
	if p == nil || address == "" {
		return false
	}
	return strings.EqualFold(p.Wallet, address)
}

// Field decodes the named extra field into v. It returns false when the
// field is absent.
func (p *Profile) Field(name string, v any) (bool, error) {
	raw, ok := p.Fields[name]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

// FieldNames returns the extra field names in sorted order.
func (p *Profile) FieldNames() []string {
	names := make([]string, 0, len(p.Fields))
	for k := range p.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy. Clone of nil is nil.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := &Profile{Wallet: p.Wallet}
	if p.Fields != nil {
		c.Fields = make(map[string]json.RawMessage, len(p.Fields))
		for k, v := range p.Fields {
			c.Fields[k] = append(json.RawMessage(nil), v...)
		}
	}
	return c
}
