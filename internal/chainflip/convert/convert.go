// Package convert turns raw on-chain integers and price ticks into human-readable values.
package convert

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/goodnatureofminers/jitcord/internal/chainflip/asset"
	"github.com/shopspring/decimal"
)

// ErrNegativeAmount is returned for raw amounts that are negative or missing.
var ErrNegativeAmount = errors.New("raw amount must be a non-negative integer")

// Scales resolves the decimal scale of an asset.
type Scales interface {
	ScaleOf(symbol asset.Symbol) (uint8, error)
}

// Converter scales raw amounts and ticks using an injected asset table.
type Converter struct {
	scales Scales
}

// NewConverter constructs a Converter backed by scales.
func NewConverter(scales Scales) *Converter {
	return &Converter{scales: scales}
}

// ToDecimal returns raw / 10^scale(symbol) without any rounding.
func (c *Converter) ToDecimal(raw *big.Int, symbol asset.Symbol) (decimal.Decimal, error) {
	if raw == nil || raw.Sign() < 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: %v %s", ErrNegativeAmount, raw, symbol)
	}
	scale, err := c.scales.ScaleOf(symbol)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromBigInt(raw, -int32(scale)), nil
}

// Amount converts an asset-bound amount.
func (c *Converter) Amount(a asset.Amount) (decimal.Decimal, error) {
	return c.ToDecimal(a.Raw, a.Asset)
}
