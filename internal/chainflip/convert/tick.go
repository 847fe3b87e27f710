package convert

import (
	"math"

	"github.com/goodnatureofminers/jitcord/internal/chainflip/asset"
)

// tickBase is the geometric step between adjacent price ticks.
const tickBase = 1.0001

// TickToPrice returns the price of one base unit in quote units at tick.
// Float precision is enough for display; extreme ticks may yield +Inf or 0.
func (c *Converter) TickToPrice(tick int32, base, quote asset.Symbol) (float64, error) {
	baseScale, err := c.scales.ScaleOf(base)
	if err != nil {
		return 0, err
	}
	quoteScale, err := c.scales.ScaleOf(quote)
	if err != nil {
		return 0, err
	}
	return math.Pow(tickBase, float64(tick)) * math.Pow10(int(baseScale)-int(quoteScale)), nil
}
