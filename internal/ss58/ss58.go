// Package ss58 encodes and decodes Substrate SS58 account addresses.
package ss58

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/blake2b"
)

const (
	// ChainflipPrefix is the network prefix of State Chain addresses ("cF...").
	ChainflipPrefix uint16 = 2112
	// GenericPrefix is the generic Substrate network prefix.
	GenericPrefix uint16 = 42

	// AccountIDLen is the length of a State Chain account id.
	AccountIDLen = 32

	checksumLen = 2
	maxPrefix   = 16383
)

var checksumPreimage = []byte("SS58PRE")

// ErrInvalidAddress is returned for strings that are not well-formed SS58 account addresses.
var ErrInvalidAddress = errors.New("invalid ss58 address")

// Decode returns the network prefix and the 32-byte account id encoded in addr.
func Decode(addr string) (uint16, []byte, error) {
	raw := base58.Decode(addr)
	if len(raw) == 0 {
		return 0, nil, fmt.Errorf("%w: not base58", ErrInvalidAddress)
	}

	prefix, prefixLen, err := decodePrefix(raw)
	if err != nil {
		return 0, nil, err
	}
	if len(raw) != prefixLen+AccountIDLen+checksumLen {
		return 0, nil, fmt.Errorf("%w: unexpected length %d", ErrInvalidAddress, len(raw))
	}

	body := raw[:prefixLen+AccountIDLen]
	if !bytes.Equal(checksum(body), raw[len(body):]) {
		return 0, nil, fmt.Errorf("%w: checksum mismatch", ErrInvalidAddress)
	}

	id := make([]byte, AccountIDLen)
	copy(id, body[prefixLen:])
	return prefix, id, nil
}

// Encode renders a 32-byte account id under the given network prefix.
func Encode(prefix uint16, accountID []byte) (string, error) {
	if len(accountID) != AccountIDLen {
		return "", fmt.Errorf("%w: account id must be %d bytes, got %d", ErrInvalidAddress, AccountIDLen, len(accountID))
	}
	if prefix > maxPrefix {
		return "", fmt.Errorf("%w: prefix %d out of range", ErrInvalidAddress, prefix)
	}

	body := append(encodePrefix(prefix), accountID...)
	return base58.Encode(append(body, checksum(body)...)), nil
}

// Valid reports whether addr is a well-formed account address under prefix.
func Valid(addr string, prefix uint16) bool {
	got, _, err := Decode(addr)
	return err == nil && got == prefix
}

func encodePrefix(prefix uint16) []byte {
	if prefix < 64 {
		return []byte{byte(prefix)}
	}
	return []byte{
		byte((prefix&0xfc)>>2) | 0x40,
		byte(prefix>>8) | byte(prefix&0x03)<<6,
	}
}

func decodePrefix(raw []byte) (uint16, int, error) {
	switch {
	case raw[0] < 64:
		return uint16(raw[0]), 1, nil
	case raw[0] < 128:
		if len(raw) < 2 {
			return 0, 0, fmt.Errorf("%w: truncated prefix", ErrInvalidAddress)
		}
		lower := uint16(raw[0]&0x3f)<<2 | uint16(raw[1]>>6)
		upper := uint16(raw[1] & 0x3f)
		return lower | upper<<8, 2, nil
	default:
		return 0, 0, fmt.Errorf("%w: reserved prefix byte %#x", ErrInvalidAddress, raw[0])
	}
}

func checksum(body []byte) []byte {
	h, _ := blake2b.New512(nil)
	h.Write(checksumPreimage)
	h.Write(body)
	return h.Sum(nil)[:checksumLen]
}
