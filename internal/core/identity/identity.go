// Package identity generates entity identifiers.
//
// An identifier is a random 128-bit value (UUID version 4 layout) encoded as
// 32 uppercase hexadecimal characters. Generation holds no shared state.
package identity

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// Length is the number of characters in every generated identifier.
const Length = 32

// Generator produces a fresh identifier on every call.
type Generator func() string

// New returns a fresh identifier.
func New() string {
	id := uuid.New()
	return strings.ToUpper(hex.EncodeToString(id[:]))
}

// Valid reports whether s has the shape of a generated identifier.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}
