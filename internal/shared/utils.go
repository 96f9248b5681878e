// Package shared provides helpers for handling sensitive byte slices.
package shared

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Use it to drop private keys read from a file or the terminal once they have
// been parsed.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
