// Package id generates the public identifiers handed out by the API: user,
// investment and ledger record ids are all 32-char lowercase hex strings
// backed by 16 random bytes.
package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns a fresh identifier, exactly 32 lowercase hex characters
// with no separators or prefix.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
