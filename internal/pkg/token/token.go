package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const entropyBytes = 24

// Prefixes keep hold tokens distinguishable from signed sessions in logs.
const (
	PrefixDecision = "dec_"
	PrefixCheckout = "chk_"
)

// New returns prefix followed by 48 hex characters of crypto randomness.
func New(prefix string) (string, error) {
	buf := make([]byte, entropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return prefix + hex.EncodeToString(buf), nil
}

// LooksOpaque reports whether s was minted by New with a known prefix.
func LooksOpaque(s string) bool {
	if len(s) != len(PrefixDecision)+entropyBytes*2 {
		return false
	}
	p := s[:len(PrefixDecision)]
	if p != PrefixDecision && p != PrefixCheckout {
		return false
	}
	_, err := hex.DecodeString(s[len(PrefixDecision):])
	return err == nil
}
