// Package address re-encodes Substrate account addresses for a target
// network.
package address

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/vedhavyas/go-subkey/v2"
)

const PublicKeyLength = 32

var (
	ErrEmpty       = errors.New("no address")
	ErrUndecodable = errors.New("address is neither ss58 nor a 32 byte hex public key")
)

// PublicKey decodes raw, given either as an SS58 address of any format or
// as a 0x prefixed hex public key.
func PublicKey(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmpty
	}

	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		pub, err := hex.DecodeString(raw[2:])
		if err != nil || len(pub) != PublicKeyLength {
			return nil, ErrUndecodable
		}
		return pub, nil
	}

	_, pub, err := subkey.SS58Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", raw, err)
	}
	if len(pub) != PublicKeyLength {
		return nil, ErrUndecodable
	}
	return pub, nil
}

// Derive returns raw re-encoded with the given SS58 format. Any failure,
// including an empty raw, yields ok == false: callers treat that exactly
// like "no account selected".
func Derive(raw string, format uint16) (addr string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			addr, ok = "", false
		}
	}()

	pub, err := PublicKey(raw)
	if err != nil {
		return "", false
	}
	return subkey.SS58Encode(pub, format), true
}

// Valid reports whether raw can be derived at all.
func Valid(raw string) bool {
	_, err := PublicKey(raw)
	return err == nil
}
