// Command api-gateway serves the bot's State Chain replies over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/jitcord/internal/chainflip/asset"
	"github.com/goodnatureofminers/jitcord/internal/clock"
	"github.com/goodnatureofminers/jitcord/internal/metrics"
	"github.com/goodnatureofminers/jitcord/internal/rpc"
	"github.com/goodnatureofminers/jitcord/internal/service"
	"github.com/goodnatureofminers/jitcord/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type config struct {
	Addr       string        `long:"addr" env:"JITCORD_GATEWAY_ADDR" description:"HTTP listen address" default:":8001"`
	Target     string        `long:"target" env:"JITCORD_TARGET" description:"State Chain node RPC endpoint (http, https, ws or wss)" required:"true"`
	Network    string        `long:"network" env:"JITCORD_NETWORK" description:"network label for metrics" default:"mainnet"`
	RPCTimeout time.Duration `long:"rpc-timeout" env:"JITCORD_RPC_TIMEOUT" description:"timeout for a single node request" default:"15s"`
	BlockTime  time.Duration `long:"block-time" env:"JITCORD_BLOCK_TIME" description:"expected block interval" default:"6s"`
	AssetsFile string        `long:"assets-file" env:"JITCORD_ASSETS_FILE" description:"YAML file with additional asset scales"`
}

func main() {
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

	if _, err := flags.ParseArgs(&cfg, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("api gateway failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	registry := asset.Default()
	if cfg.AssetsFile != "" {
		extra, err := asset.LoadFile(cfg.AssetsFile)
		if err != nil {
			return fmt.Errorf("load assets: %w", err)
		}
		registry = registry.With(extra)
	}

	nodeTransport, err := rpc.NewTransport(ctx, cfg.Target, &http.Client{Timeout: cfg.RPCTimeout})
	if err != nil {
		return fmt.Errorf("init node transport: %w", err)
	}
	client := rpc.NewClient(
		rpc.NewObservedTransport(nodeTransport, metrics.NewRPCClient(cfg.Network)),
		rpc.WithCallTimeout(cfg.RPCTimeout),
	)
	defer func() {
		if err := client.Close(); err != nil {
			logger.Warn("close node transport", zap.Error(err))
		}
	}()

	svc := service.NewQueryService(client, registry, clock.System{}, cfg.BlockTime, logger)
	handler := transport.NewGatewayHandler(svc, svc.Converter(), metrics.NewHTTPHandler(), logger)

	mux := http.NewServeMux()
	mux.Handle("/", handler.Routes())
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RPCTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.Addr), zap.String("target", cfg.Target))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}
