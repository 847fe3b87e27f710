package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/jitcord/internal/chainflip/asset"
	"github.com/goodnatureofminers/jitcord/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	NodeClient interface {
		SystemVersion(ctx context.Context) (string, error)
		SystemHealth(ctx context.Context) (model.SystemHealth, error)
		ChainHeader(ctx context.Context) (model.BlockHeader, error)
		AuctionState(ctx context.Context) (model.AuctionState, error)
		CurrentEpoch(ctx context.Context) (uint32, error)
		CurrentEpochStartedAt(ctx context.Context) (uint32, error)
		Accounts(ctx context.Context) (model.AccountList, error)
		AccountInfo(ctx context.Context, accountID string) (model.AccountInfo, error)
		AccountInfoV2(ctx context.Context, accountID string) (model.LegacyAccountInfo, error)
		PoolOrders(ctx context.Context, base, quote asset.Symbol) (model.PoolOrders, error)
	}
	Clock interface {
		Now() time.Time
	}
)
