package service

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/jitcord/internal/chainflip/asset"
	"github.com/goodnatureofminers/jitcord/internal/chainflip/display"
	"github.com/goodnatureofminers/jitcord/internal/model"
)

// DefaultQuote is the quote asset used when none is given.
const DefaultQuote = asset.USDC

// PoolOrders returns the best bid and ask of the base/quote pool. An empty quote means DefaultQuote.
func (s *QueryService) PoolOrders(ctx context.Context, base, quote string) (OrdersView, error) {
	b := asset.Normalize(base)
	q := DefaultQuote
	if normalized := asset.Normalize(quote); normalized != "" {
		q = normalized
	}
	for _, sym := range []asset.Symbol{b, q} {
		if _, err := s.registry.ScaleOf(sym); err != nil {
			return OrdersView{}, err
		}
	}

	orders, err := s.node.PoolOrders(ctx, b, q)
	if err != nil {
		return OrdersView{}, fmt.Errorf("get %s/%s pool orders: %w", b, q, err)
	}

	view := OrdersView{
		Base:        b,
		Quote:       q,
		RangeOrders: len(orders.RangeOrders),
	}
	// Bids sell the quote asset, asks sell the base asset.
	if len(orders.LimitOrders.Bids) > 0 {
		bid, err := s.orderView(orders.LimitOrders.Bids[0], b, q, q)
		if err != nil {
			return OrdersView{}, fmt.Errorf("highest bid: %w", err)
		}
		view.HighestBid = &bid
	}
	if len(orders.LimitOrders.Asks) > 0 {
		ask, err := s.orderView(orders.LimitOrders.Asks[0], b, q, b)
		if err != nil {
			return OrdersView{}, fmt.Errorf("lowest ask: %w", err)
		}
		view.LowestAsk = &ask
	}
	return view, nil
}

func (s *QueryService) orderView(o model.LimitOrder, base, quote, sold asset.Symbol) (OrderView, error) {
	price, err := s.conv.TickToPrice(o.Tick, base, quote)
	if err != nil {
		return OrderView{}, err
	}
	sell, err := s.conv.ToDecimal(o.SellAmount.Big(), sold)
	if err != nil {
		return OrderView{}, err
	}
	fees, err := s.conv.ToDecimal(o.FeesEarned.Big(), sold)
	if err != nil {
		return OrderView{}, err
	}
	original, err := s.conv.ToDecimal(o.OriginalSellAmount.Big(), sold)
	if err != nil {
		return OrderView{}, err
	}
	return OrderView{
		LP:                 display.ShortenOrFull(o.LP),
		ID:                 o.ID.String(),
		Tick:               o.Tick,
		Price:              price,
		SellAsset:          sold,
		SellAmount:         sell,
		FeesEarned:         fees,
		OriginalSellAmount: original,
	}, nil
}
