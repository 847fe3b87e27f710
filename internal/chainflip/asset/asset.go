// Package asset defines Chainflip asset symbols, their decimal scales and raw on-chain amounts.
package asset

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// ErrUnknownAsset is returned when a symbol is not present in a registry.
var ErrUnknownAsset = errors.New("unknown asset")

// Symbol is a normalized (upper-case) asset ticker.
type Symbol string

// Assets known to the default registry.
const (
	USDC Symbol = "USDC"
	ETH  Symbol = "ETH"
	BTC  Symbol = "BTC"
	DOT  Symbol = "DOT"
	FLIP Symbol = "FLIP"
)

// Normalize converts user input into a registry lookup key.
func Normalize(s string) Symbol {
	return Symbol(strings.ToUpper(strings.TrimSpace(s)))
}

var defaultScales = map[Symbol]uint8{
	USDC: 6,
	ETH:  18,
	BTC:  8,
	DOT:  10,
	FLIP: 18,
}

// Registry maps asset symbols to the number of fractional digits of their smallest unit.
// A Registry is immutable once built.
type Registry struct {
	scales map[Symbol]uint8
}

// New builds a registry from the provided table. The table is copied.
func New(scales map[Symbol]uint8) Registry {
	m := make(map[Symbol]uint8, len(scales))
	for s, scale := range scales {
		m[s] = scale
	}
	return Registry{scales: m}
}

// Default returns the registry of assets known to the State Chain.
func Default() Registry {
	return New(defaultScales)
}

// ScaleOf returns the scale of symbol. Lookup is exact; callers normalize input first.
func (r Registry) ScaleOf(symbol Symbol) (uint8, error) {
	scale, ok := r.scales[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAsset, symbol)
	}
	return scale, nil
}

// Has reports whether symbol is registered.
func (r Registry) Has(symbol Symbol) bool {
	_, ok := r.scales[symbol]
	return ok
}

// With returns a new registry containing the receiver's entries overridden by extra.
func (r Registry) With(extra map[Symbol]uint8) Registry {
	m := make(map[Symbol]uint8, len(r.scales)+len(extra))
	for s, scale := range r.scales {
		m[s] = scale
	}
	for s, scale := range extra {
		m[s] = scale
	}
	return Registry{scales: m}
}

// Symbols returns the registered symbols in lexical order.
func (r Registry) Symbols() []Symbol {
	out := make([]Symbol, 0, len(r.scales))
	for s := range r.scales {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Amount is an unscaled on-chain integer bound to the asset it is denominated in.
type Amount struct {
	Asset Symbol
	Raw   *big.Int
}

// NewAmount binds raw to symbol.
func NewAmount(symbol Symbol, raw *big.Int) Amount {
	return Amount{Asset: symbol, Raw: raw}
}

// String renders the raw integer with its symbol, e.g. "1000000 USDC".
func (a Amount) String() string {
	if a.Raw == nil {
		return "<nil> " + string(a.Asset)
	}
	return a.Raw.String() + " " + string(a.Asset)
}

// BalanceGroup is a set of amounts held under one key, typically a chain name.
type BalanceGroup struct {
	Holder  string
	Amounts []Amount
}

// Balances is an ordered two-level balance listing: holder -> asset -> amount.
type Balances []BalanceGroup
