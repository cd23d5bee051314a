package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/income-scanner/internal/config"
	"github.com/goodnatureofminers/income-scanner/internal/ledger"
	"github.com/goodnatureofminers/income-scanner/internal/metrics"
	"github.com/goodnatureofminers/income-scanner/internal/model"
	"github.com/goodnatureofminers/income-scanner/internal/scanner"
	"github.com/goodnatureofminers/income-scanner/internal/store"
	"github.com/goodnatureofminers/income-scanner/internal/transport"
)

type appConfig struct {
	Network       string        `long:"network" env:"SCANNER_NETWORK" description:"ledger network name" default:"mainnet"`
	RPCURL        string        `long:"rpc-url" env:"SCANNER_RPC_URL" description:"ledger node RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser       string        `long:"rpc-user" env:"SCANNER_RPC_USER" description:"ledger node RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"SCANNER_RPC_PASSWORD" description:"ledger node RPC password"`
	RPCRateLimit  int           `long:"rpc-rate-limit" env:"SCANNER_RPC_RATE_LIMIT" description:"max RPC requests per second" default:"20"`
	DBPath        string        `long:"db-path" env:"SCANNER_DB_PATH" description:"sqlite database path" default:"income-scanner.db"`
	AddressesFile string        `long:"addresses-file" env:"SCANNER_ADDRESSES_FILE" description:"watched addresses JSON file" required:"true"`
	StartHeight   uint64        `long:"start-height" env:"SCANNER_START_HEIGHT" description:"height to resume from when the store is empty"`
	PollInterval  time.Duration `long:"poll-interval" env:"SCANNER_POLL_INTERVAL" description:"delay between tip polls when caught up" default:"30s"`
	OpsAddr       string        `long:"ops-addr" env:"SCANNER_OPS_ADDR" description:"metrics/health HTTP listen address" default:":8001"`
}

func main() {
	cfg := appConfig{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("income scanner failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg appConfig, logger *zap.Logger) error {
	network := model.Network(cfg.Network)

	addresses, err := config.LoadAddresses(cfg.AddressesFile)
	if err != nil {
		return fmt.Errorf("load addresses: %w", err)
	}

	txStore, err := store.Open(cfg.DBPath, metrics.NewSQLiteStore())
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if closeErr := txStore.Close(); closeErr != nil {
			logger.Error("close store", zap.Error(closeErr))
		}
	}()

	rpc, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init ledger rpc client: %w", err)
	}
	defer func() {
		rpc.Shutdown()
		rpc.WaitForShutdown()
	}()

	node := ledger.NewNodeClient(rpc, cfg.RPCRateLimit, metrics.NewLedgerRPC(network))
	client, err := ledger.NewClient(node, network, logger.Named("ledger"))
	if err != nil {
		return fmt.Errorf("init ledger client: %w", err)
	}

	engine, err := scanner.New(
		client,
		txStore,
		addresses,
		scanner.Config{
			StartHeight:  cfg.StartHeight,
			PollInterval: cfg.PollInterval,
		},
		metrics.NewScanEngine(network),
		logger.Named("scanner").With(zap.String("network", cfg.Network)),
	)
	if err != nil {
		return fmt.Errorf("init scan engine: %w", err)
	}

	opsServer := &http.Server{
		Addr:              cfg.OpsAddr,
		Handler:           transport.NewOpsHandler(logger.Named("ops")),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		logger.Info("starting ops HTTP server", zap.String("addr", cfg.OpsAddr))
		if serveErr := opsServer.ListenAndServe(); !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("ops HTTP server failed", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down ops HTTP server")
		if shutdownErr := opsServer.Shutdown(context.Background()); shutdownErr != nil {
			logger.Error("shutdown ops HTTP server", zap.Error(shutdownErr))
		}
	}()

	return engine.Run(ctx)
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	connCfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}

	return rpcclient.New(connCfg, nil)
}
