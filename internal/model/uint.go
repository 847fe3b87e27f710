// Package model defines decoded State Chain RPC payloads.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// Uint is an unsigned on-chain integer of arbitrary width (U64, U128, U256).
// Nodes encode these as JSON numbers, 0x-prefixed hex strings or decimal strings.
type Uint struct {
	v big.Int
}

// NewUint wraps v.
func NewUint(v uint64) Uint {
	var u Uint
	u.v.SetUint64(v)
	return u
}

// ParseUint parses a decimal or 0x-prefixed hex string.
func ParseUint(s string) (Uint, error) {
	var u Uint
	s = strings.TrimSpace(s)
	base := 10
	digits := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		digits = s[2:]
	}
	if digits == "" {
		return u, fmt.Errorf("parse uint %q: empty", s)
	}
	if _, ok := u.v.SetString(digits, base); !ok {
		return u, fmt.Errorf("parse uint %q: invalid digits", s)
	}
	if u.v.Sign() < 0 {
		return u, fmt.Errorf("parse uint %q: negative", s)
	}
	return u, nil
}

// Big returns a copy of the value.
func (u Uint) Big() *big.Int {
	return new(big.Int).Set(&u.v)
}

// Uint64 returns the value if it fits into 64 bits.
func (u Uint) Uint64() (uint64, error) {
	if !u.v.IsUint64() {
		return 0, fmt.Errorf("value %s out of uint64 range", u.v.String())
	}
	return u.v.Uint64(), nil
}

// IsZero reports whether the value is zero.
func (u Uint) IsZero() bool {
	return u.v.Sign() == 0
}

func (u Uint) String() string {
	return u.v.String()
}

// UnmarshalJSON accepts numbers, hex strings and decimal strings. null leaves the value unchanged.
func (u *Uint) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode uint: %w", err)
		}
		parsed, err := ParseUint(s)
		if err != nil {
			return err
		}
		*u = parsed
		return nil
	}
	parsed, err := ParseUint(string(data))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalJSON encodes the value as a decimal string so that it survives JSON consumers limited to float64.
func (u Uint) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.v.String())
}
