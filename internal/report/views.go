package report

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/jitcord/internal/chainflip/account"
	"github.com/goodnatureofminers/jitcord/internal/chainflip/asset"
	"github.com/goodnatureofminers/jitcord/internal/chainflip/display"
	"github.com/goodnatureofminers/jitcord/internal/service"
)

// RotationLayout formats the estimated rotation instant.
const RotationLayout = "2006-01-02 15:04:05 UTC"

// Replies for failures that are the user's concern rather than the node's.
const (
	NotFoundText           = "Not found"
	UnsupportedAccountText = "unsupported account type"
	UnknownAssetText       = "unknown asset"
	RotationUnavailable    = "rotation estimate unavailable"
	RequestFailedText      = "request failed"
	NoOrdersText           = "no orders"
)

// Version renders the node version.
func Version(v string) Message {
	m := Message{Title: "Version", Colour: DarkGreen}
	m.field("Version", v)
	return m
}

// Status renders node health.
func Status(v service.StatusView) Message {
	m := Message{Title: "System Status", Colour: DarkGrey}
	m.field("Version", v.Version)
	m.field("Peers", strconv.FormatUint(uint64(v.Peers), 10))
	m.field("Synced", strconv.FormatBool(v.Synced))
	return m
}

// Auction renders the auction state.
func Auction(v service.AuctionView) Message {
	m := Message{Title: "Auction State", Colour: DarkGrey}
	bid := "none"
	if v.MinActiveBid != nil {
		bid = v.MinActiveBid.Round(3).String()
	}
	m.field("Min. Active Bid", bid)
	m.field("Current block", strconv.FormatUint(v.CurrentBlock, 10))
	m.field("Current epoch", strconv.FormatUint(uint64(v.CurrentEpoch), 10))
	rotation := RotationUnavailable
	if v.NextRotation != nil {
		rotation = v.NextRotation.UTC().Format(RotationLayout)
	}
	m.field("Next rotation", rotation)
	return m
}

// Account renders a classified account with the fields of its role.
func Account(v service.AccountView, conv display.Amounts) Message {
	m := Message{Title: "Account Search", Colour: DarkGrey}
	m.field("Account", display.ShortenOrFull(v.ID))
	if v.Alias != "" {
		m.field("Vanity Name", v.Alias)
	}
	m.field("Role", roleName(v.Record.Role()))
	m.field("Balance", flip(conv, v.Record.Balance()))

	switch r := v.Record.(type) {
	case account.Validator:
		m.field("Bond", flip(conv, r.Bond))
		m.field("Online", strconv.FormatBool(r.IsOnline))
		m.field("Bidding", strconv.FormatBool(r.IsBidding))
		m.field("Qualified", strconv.FormatBool(r.IsQualified))
		m.field("Authority", strconv.FormatBool(r.IsCurrentAuthority))
		m.field("Backup", strconv.FormatBool(r.IsCurrentBackup))
		m.field("Reputation", strconv.FormatInt(int64(r.ReputationPoints), 10))
		m.field("Last heartbeat", strconv.FormatUint(uint64(r.LastHeartbeat), 10))
		if len(r.KeyholderEpochs) > 0 {
			m.field("Keyholder epochs", joinUints(r.KeyholderEpochs))
		}
		if r.BoundRedeemAddress != nil {
			m.field("Bound Redeem Address", *r.BoundRedeemAddress)
		}
		if r.APYBasisPoints != nil {
			m.field("APY", formatBasisPoints(*r.APYBasisPoints))
		}
		if len(r.RestrictedBalances) > 0 {
			m.block("Restricted balances", restricted(conv, r.RestrictedBalances))
		}
	case account.LiquidityProvider:
		if len(r.Balances) > 0 {
			m.block("Balances", display.FormatBalances(conv, r.Balances))
		}
		if len(r.EarnedFees) > 0 {
			m.block("Earned fees", display.FormatBalances(conv, r.EarnedFees))
		}
		if len(r.RefundAddresses) > 0 {
			m.block("Refund addresses", refundAddresses(r.RefundAddresses))
		}
	case account.Broker:
		if len(r.EarnedFees) > 0 {
			m.block("Earned fees", display.FormatBalances(conv, r.EarnedFees))
		}
	}
	return m
}

// Orders renders the top of the book: highest bid, lowest ask and a pool summary.
func Orders(v service.OrdersView) []Message {
	pair := string(v.Base) + "/" + string(v.Quote)
	summary := Message{Title: pair, Colour: DarkGrey}
	summary.field("Range orders", strconv.Itoa(v.RangeOrders))
	return []Message{
		order("Highest Bid", DarkGreen, v.HighestBid),
		order("Lowest Ask", DarkRed, v.LowestAsk),
		summary,
	}
}

// Error renders a failed query. Node and transport failures collapse into a generic reply.
func Error(err error) Message {
	m := Message{Title: "Error", Colour: DarkRed}
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		m.Description = NotFoundText
	case errors.Is(err, account.ErrUnrecognizedRole):
		m.Description = UnsupportedAccountText
	case errors.Is(err, asset.ErrUnknownAsset):
		m.Description = UnknownAssetText
	default:
		m.Description = RequestFailedText
	}
	return m
}

func order(title string, colour Colour, o *service.OrderView) Message {
	m := Message{Title: title, Colour: colour}
	if o == nil {
		m.Description = NoOrdersText
		return m
	}
	m.field("LP", o.LP)
	m.field("ID", o.ID)
	m.field("Tick", strconv.FormatInt(int64(o.Tick), 10))
	m.field("Price", formatPrice(o.Price))
	m.field("Sell amount", o.SellAmount.String()+" "+string(o.SellAsset))
	m.field("Fees earned", o.FeesEarned.String()+" "+string(o.SellAsset))
	return m
}

func flip(conv display.Amounts, a asset.Amount) string {
	return display.FormatAmount(conv, a) + " " + string(a.Asset)
}

func restricted(conv display.Amounts, balances map[string]asset.Amount) string {
	keys := make([]string, 0, len(balances))
	for k := range balances {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, display.ShortenOrFull(k)+": "+flip(conv, balances[k]))
	}
	return strings.Join(lines, "\n")
}

func refundAddresses(addrs map[string]string) string {
	chains := make([]string, 0, len(addrs))
	for c := range addrs {
		chains = append(chains, c)
	}
	sort.Strings(chains)
	lines := make([]string, 0, len(chains))
	for _, c := range chains {
		lines = append(lines, c+": "+display.ShortenOrFull(addrs[c]))
	}
	return strings.Join(lines, "\n")
}

func roleName(r account.Role) string {
	switch r {
	case account.RoleUnregistered:
		return "Unregistered"
	case account.RoleBroker:
		return "Broker"
	case account.RoleLiquidityProvider:
		return "Liquidity Provider"
	case account.RoleValidator:
		return "Validator"
	default:
		return string(r)
	}
}

func formatPrice(p float64) string {
	if math.IsInf(p, 0) || math.IsNaN(p) || p == 0 {
		return strconv.FormatFloat(p, 'g', -1, 64) + " (out of display range)"
	}
	return strconv.FormatFloat(p, 'g', 8, 64)
}

func formatBasisPoints(bp uint32) string {
	return strconv.FormatUint(uint64(bp/100), 10) + "." + twoDigits(bp%100) + "%"
}

func twoDigits(v uint32) string {
	if v < 10 {
		return "0" + strconv.FormatUint(uint64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

func joinUints(vs []uint32) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, ", ")
}
