// Command cf-query answers the bot's State Chain commands from the terminal.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/jitcord/internal/chainflip/asset"
	"github.com/goodnatureofminers/jitcord/internal/chainflip/display"
	"github.com/goodnatureofminers/jitcord/internal/clock"
	"github.com/goodnatureofminers/jitcord/internal/metrics"
	"github.com/goodnatureofminers/jitcord/internal/report"
	"github.com/goodnatureofminers/jitcord/internal/rpc"
	"github.com/goodnatureofminers/jitcord/internal/service"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	Target      string        `long:"target" env:"JITCORD_TARGET" description:"State Chain node RPC endpoint (http, https, ws or wss)" required:"true"`
	Network     string        `long:"network" env:"JITCORD_NETWORK" description:"network label for metrics" default:"mainnet"`
	Timeout     time.Duration `long:"timeout" env:"JITCORD_TIMEOUT" description:"timeout for the whole query" default:"30s"`
	BlockTime   time.Duration `long:"block-time" env:"JITCORD_BLOCK_TIME" description:"expected block interval" default:"6s"`
	AssetsFile  string        `long:"assets-file" env:"JITCORD_ASSETS_FILE" description:"YAML file with additional asset scales"`
	MetricsAddr string        `long:"metrics-addr" env:"JITCORD_METRICS_ADDR" description:"address for metrics server while the query runs"`
	JSON        bool          `long:"json" description:"print messages as JSON"`

	Version     struct{} `command:"version" description:"Show the node version"`
	Status      struct{} `command:"status" description:"Show node version, peers and sync state"`
	Auction     struct{} `command:"auction" description:"Show auction state and the estimated next rotation"`
	AccountInfo struct {
		Args struct {
			Name string `positional-arg-name:"name" description:"account address, id or alias substring" required:"yes"`
		} `positional-args:"yes"`
	} `command:"account-info" description:"Show an account by address or name"`
	LPOrders struct {
		Args struct {
			Base  string `positional-arg-name:"base" description:"base asset" required:"yes"`
			Quote string `positional-arg-name:"quote" description:"quote asset (default USDC)"`
		} `positional-args:"yes"`
	} `command:"lp-orders" description:"Show the best bid and ask of a pool"`
}

type querier interface {
	Version(ctx context.Context) (string, error)
	Status(ctx context.Context) (service.StatusView, error)
	Auction(ctx context.Context) (service.AuctionView, error)
	AccountInfo(ctx context.Context, name string) (service.AccountView, error)
	PoolOrders(ctx context.Context, base, quote string) (service.OrdersView, error)
}

func main() {
	os.Exit(start(os.Args[1:], os.Stdout))
}

// start runs one command and returns the process exit code once the logger is flushed.
func start(args []string, out io.Writer) int {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return 0
		}
		return 2
	}

	if err := run(ctx, cfg, parser.Active.Name, out, logger); err != nil {
		logger.Error("query failed", zap.String("command", parser.Active.Name), zap.Error(err))
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg config, command string, out io.Writer, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	registry, err := loadRegistry(cfg.AssetsFile)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	transport, err := rpc.NewTransport(ctx, cfg.Target, &http.Client{Timeout: cfg.Timeout})
	if err != nil {
		return fmt.Errorf("init node transport: %w", err)
	}
	client := rpc.NewClient(rpc.NewObservedTransport(transport, metrics.NewRPCClient(cfg.Network)))
	defer func() {
		if err := client.Close(); err != nil {
			logger.Warn("close node transport", zap.Error(err))
		}
	}()

	svc := service.NewQueryService(client, registry, clock.System{}, cfg.BlockTime, logger)

	messages, queryErr := execute(ctx, svc, svc.Converter(), command, cfg)
	if queryErr != nil {
		messages = []report.Message{report.Error(queryErr)}
	}
	if err := writeMessages(out, cfg.JSON, messages); err != nil {
		return err
	}
	return queryErr
}

func execute(ctx context.Context, svc querier, conv display.Amounts, command string, cfg config) ([]report.Message, error) {
	switch command {
	case "version":
		v, err := svc.Version(ctx)
		if err != nil {
			return nil, err
		}
		return []report.Message{report.Version(v)}, nil
	case "status":
		v, err := svc.Status(ctx)
		if err != nil {
			return nil, err
		}
		return []report.Message{report.Status(v)}, nil
	case "auction":
		v, err := svc.Auction(ctx)
		if err != nil {
			return nil, err
		}
		return []report.Message{report.Auction(v)}, nil
	case "account-info":
		v, err := svc.AccountInfo(ctx, cfg.AccountInfo.Args.Name)
		if err != nil {
			return nil, err
		}
		return []report.Message{report.Account(v, conv)}, nil
	case "lp-orders":
		v, err := svc.PoolOrders(ctx, cfg.LPOrders.Args.Base, cfg.LPOrders.Args.Quote)
		if err != nil {
			return nil, err
		}
		return report.Orders(v), nil
	default:
		return nil, fmt.Errorf("unknown command %q", command)
	}
}

func loadRegistry(path string) (asset.Registry, error) {
	registry := asset.Default()
	if path == "" {
		return registry, nil
	}
	extra, err := asset.LoadFile(path)
	if err != nil {
		return asset.Registry{}, fmt.Errorf("load assets: %w", err)
	}
	return registry.With(extra), nil
}

func writeMessages(out io.Writer, asJSON bool, messages []report.Message) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(messages)
	}
	_, err := io.WriteString(out, report.Text(messages...))
	return err
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
