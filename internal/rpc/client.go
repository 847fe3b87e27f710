package rpc

import (
	"context"
	"time"

	"github.com/goodnatureofminers/jitcord/internal/chainflip/asset"
	"github.com/goodnatureofminers/jitcord/internal/model"
)

// Node RPC methods.
const (
	MethodSystemVersion         = "system_version"
	MethodSystemHealth          = "system_health"
	MethodChainGetHeader        = "chain_getHeader"
	MethodAuctionState          = "cf_auction_state"
	MethodCurrentEpoch          = "cf_current_epoch"
	MethodCurrentEpochStartedAt = "cf_current_epoch_started_at"
	MethodAccounts              = "cf_accounts"
	MethodAccountInfo           = "cf_account_info"
	MethodAccountInfoV2         = "cf_account_info_v2"
	MethodPoolOrders            = "cf_pool_orders"
)

// Client exposes the node methods with typed results.
type Client struct {
	transport   Transport
	callTimeout time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithCallTimeout bounds every node call; zero leaves calls bounded only by the caller's context.
func WithCallTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.callTimeout = d
	}
}

// NewClient constructs a Client over transport.
func NewClient(transport Transport, opts ...ClientOption) *Client {
	c := &Client{transport: transport}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) call(ctx context.Context, method string, params []any, result any) error {
	if c.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.callTimeout)
		defer cancel()
	}
	return c.transport.Call(ctx, method, params, result)
}

// Close closes the underlying transport.
func (c *Client) Close() error {
	return c.transport.Close()
}

// SystemVersion returns the node software version.
func (c *Client) SystemVersion(ctx context.Context) (string, error) {
	var v string
	if err := c.call(ctx, MethodSystemVersion, nil, &v); err != nil {
		return "", err
	}
	return v, nil
}

// SystemHealth returns peer and sync status.
func (c *Client) SystemHealth(ctx context.Context) (model.SystemHealth, error) {
	var h model.SystemHealth
	err := c.call(ctx, MethodSystemHealth, nil, &h)
	return h, err
}

// ChainHeader returns the header of the best block.
func (c *Client) ChainHeader(ctx context.Context) (model.BlockHeader, error) {
	var h model.BlockHeader
	err := c.call(ctx, MethodChainGetHeader, nil, &h)
	return h, err
}

// AuctionState returns the current auction parameters.
func (c *Client) AuctionState(ctx context.Context) (model.AuctionState, error) {
	var s model.AuctionState
	err := c.call(ctx, MethodAuctionState, nil, &s)
	return s, err
}

// CurrentEpoch returns the current epoch index.
func (c *Client) CurrentEpoch(ctx context.Context) (uint32, error) {
	var e uint32
	err := c.call(ctx, MethodCurrentEpoch, nil, &e)
	return e, err
}

// CurrentEpochStartedAt returns the block the current epoch started at.
func (c *Client) CurrentEpochStartedAt(ctx context.Context) (uint32, error) {
	var b uint32
	err := c.call(ctx, MethodCurrentEpochStartedAt, nil, &b)
	return b, err
}

// Accounts lists (account id, alias) pairs known to the node.
func (c *Client) Accounts(ctx context.Context) (model.AccountList, error) {
	var l model.AccountList
	if err := c.call(ctx, MethodAccounts, nil, &l); err != nil {
		return nil, err
	}
	return l, nil
}

// AccountInfo returns the role-tagged account record.
func (c *Client) AccountInfo(ctx context.Context, accountID string) (model.AccountInfo, error) {
	var info model.AccountInfo
	err := c.call(ctx, MethodAccountInfo, []any{accountID}, &info)
	return info, err
}

// AccountInfoV2 returns the flat account record served by older nodes.
func (c *Client) AccountInfoV2(ctx context.Context, accountID string) (model.LegacyAccountInfo, error) {
	var info model.LegacyAccountInfo
	err := c.call(ctx, MethodAccountInfoV2, []any{accountID}, &info)
	return info, err
}

// PoolOrders returns the order book of the base/quote pool.
func (c *Client) PoolOrders(ctx context.Context, base, quote asset.Symbol) (model.PoolOrders, error) {
	var o model.PoolOrders
	err := c.call(ctx, MethodPoolOrders, []any{string(base), string(quote)}, &o)
	return o, err
}
