// Package display renders addresses and balances for compact chat output.
package display

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/jitcord/internal/chainflip/asset"
	"github.com/shopspring/decimal"
)

// Ellipsis joins the kept ends of a shortened address.
const Ellipsis = "..."

const keep = 4

// ErrAddressTooShort is returned when an address has too few characters to shorten.
var ErrAddressTooShort = errors.New("address too short to shorten")

// Shorten keeps the first and last four characters of addr, e.g. "cFJj...L8BE".
// The result is for display only.
func Shorten(addr string) (string, error) {
	runes := []rune(addr)
	if len(runes) < 2*keep+1 {
		return "", fmt.Errorf("%w: %d characters", ErrAddressTooShort, len(runes))
	}
	return string(runes[:keep]) + Ellipsis + string(runes[len(runes)-keep:]), nil
}

// ShortenOrFull returns the shortened address, or addr itself when it is too short.
func ShortenOrFull(addr string) string {
	short, err := Shorten(addr)
	if err != nil {
		return addr
	}
	return short
}

// Amounts converts raw amounts to decimals.
type Amounts interface {
	Amount(a asset.Amount) (decimal.Decimal, error)
}

// InvalidAmount stands in for an amount that cannot be converted at all.
const InvalidAmount = "invalid amount"

// FormatAmount renders a converted amount, or the raw integer marked "(raw)" when its asset is unknown.
func FormatAmount(conv Amounts, a asset.Amount) string {
	d, err := conv.Amount(a)
	switch {
	case err == nil:
		return d.String()
	case errors.Is(err, asset.ErrUnknownAsset):
		return a.Raw.String() + " (raw)"
	default:
		return InvalidAmount
	}
}

// FormatBalances renders a holder -> asset -> amount listing, one group per header line,
// in the order of b.
func FormatBalances(conv Amounts, b asset.Balances) string {
	var sb strings.Builder
	for i, group := range b {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(group.Holder)
		for _, a := range group.Amounts {
			sb.WriteString("\n  ")
			sb.WriteString(string(a.Asset))
			sb.WriteString(": ")
			sb.WriteString(FormatAmount(conv, a))
		}
	}
	return sb.String()
}
