package service

import (
	"time"

	"github.com/goodnatureofminers/jitcord/internal/chainflip/account"
	"github.com/goodnatureofminers/jitcord/internal/chainflip/asset"
	"github.com/shopspring/decimal"
)

// StatusView summarizes node health.
type StatusView struct {
	Version string
	Peers   uint32
	Synced  bool
}

// AuctionView summarizes the validator auction.
type AuctionView struct {
	// MinActiveBid is in FLIP; nil when the node reports no active bid.
	MinActiveBid *decimal.Decimal
	CurrentBlock uint64
	CurrentEpoch uint32
	// NextRotation is nil when the epoch counters are inconsistent.
	NextRotation *time.Time
}

// AccountView is a resolved and classified account.
type AccountView struct {
	ID string
	// Alias is empty when the account was addressed directly.
	Alias  string
	Record account.Record
}

// OrderView is a limit order converted to asset units.
type OrderView struct {
	LP                 string
	ID                 string
	Tick               int32
	Price              float64
	SellAsset          asset.Symbol
	SellAmount         decimal.Decimal
	FeesEarned         decimal.Decimal
	OriginalSellAmount decimal.Decimal
}

// OrdersView is the top of a pool's order book.
type OrdersView struct {
	Base  asset.Symbol
	Quote asset.Symbol
	// HighestBid and LowestAsk are nil when that side has no orders.
	HighestBid  *OrderView
	LowestAsk   *OrderView
	RangeOrders int
}
