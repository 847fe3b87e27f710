package transport

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/goodnatureofminers/jitcord/internal/service"
)

type (
	QueryService interface {
		Version(ctx context.Context) (string, error)
		Status(ctx context.Context) (service.StatusView, error)
		Auction(ctx context.Context) (service.AuctionView, error)
		AccountInfo(ctx context.Context, name string) (service.AccountView, error)
		PoolOrders(ctx context.Context, base, quote string) (service.OrdersView, error)
	}
	Metrics interface {
		Observe(route string, code int, started time.Time)
	}
)
