package model

// LimitOrder is a resting fixed-price order of a liquidity provider.
type LimitOrder struct {
	LP                 string `json:"lp"`
	ID                 Uint   `json:"id"`
	Tick               int32  `json:"tick"`
	SellAmount         Uint   `json:"sell_amount"`
	FeesEarned         Uint   `json:"fees_earned"`
	OriginalSellAmount Uint   `json:"original_sell_amount"`
}

// TickRange bounds a range order.
type TickRange struct {
	Start int32 `json:"start"`
	End   int32 `json:"end"`
}

// PoolPair holds one value per side of a pool.
type PoolPair struct {
	Base  Uint `json:"base"`
	Quote Uint `json:"quote"`
}

// RangeOrder is a liquidity position over a tick range.
type RangeOrder struct {
	LP         string    `json:"lp"`
	ID         Uint      `json:"id"`
	Range      TickRange `json:"range"`
	Liquidity  Uint      `json:"liquidity"`
	FeesEarned PoolPair  `json:"fees_earned"`
}

// AskBid lists limit orders per side, best price first.
type AskBid struct {
	Asks []LimitOrder `json:"asks"`
	Bids []LimitOrder `json:"bids"`
}

// PoolOrders is the cf_pool_orders result.
type PoolOrders struct {
	LimitOrders AskBid       `json:"limit_orders"`
	RangeOrders []RangeOrder `json:"range_orders"`
}
