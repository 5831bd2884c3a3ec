package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/scavengerhunt-backend/internal/config"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/confirmation"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/ledger"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/metrics"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/model"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/solanapay"
	"github.com/goodnatureofminers/scavengerhunt-backend/pkg/workerpool"
)

type appConfig struct {
	BaseURL     string        `long:"base-url" env:"DISPLAY_BASE_URL" description:"public URL of the api gateway" required:"true"`
	Locations   []uint32      `long:"location" env:"DISPLAY_LOCATIONS" env-delim:"," description:"location index to display, repeatable"`
	Mint        bool          `long:"mint" env:"DISPLAY_MINT" description:"display the mint point"`
	Cluster     string        `long:"cluster" env:"DISPLAY_CLUSTER" description:"devnet, testnet, mainnet-beta or localnet" default:"devnet"`
	RPCURL      string        `long:"rpc-url" env:"DISPLAY_RPC_URL" description:"Solana RPC URL, defaults to the cluster's public endpoint"`
	RPCRPS      int           `long:"rpc-rps" env:"DISPLAY_RPC_RPS" description:"max RPC calls per second, 0 disables the limit" default:"0"`
	Interval    time.Duration `long:"interval" env:"DISPLAY_INTERVAL" description:"pause between reference lookups" default:"1.5s"`
	PNGDir      string        `long:"png-dir" env:"DISPLAY_PNG_DIR" description:"directory to write QR code PNGs to, disabled when empty"`
	PNGSize     int           `long:"png-size" env:"DISPLAY_PNG_SIZE" description:"QR code PNG size in pixels" default:"512"`
	MetricsAddr string        `long:"metrics-addr" env:"DISPLAY_METRICS_ADDR" description:"addr to serve /metrics on, disabled when empty"`
}

// view is one QR code shown at a location or at the mint point.
type view struct {
	name       string
	endpoint   string
	locationID uint32
	label      string
	message    string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := config.LoadEnvFiles(".env.local", ".env"); err != nil {
		logger.Fatal("Failed to load env files", zap.Error(err))
	}
	cfg := appConfig{}
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("location display failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg appConfig, logger *zap.Logger) error {
	views := buildViews(cfg)
	if len(views) == 0 {
		return errors.New("nothing to display, pass --location or --mint")
	}
	cluster, err := model.ParseCluster(cfg.Cluster)
	if err != nil {
		return err
	}
	endpoint := cfg.RPCURL
	if endpoint == "" {
		if endpoint, err = ledger.ClusterEndpoint(cluster); err != nil {
			return err
		}
	}
	if cfg.PNGDir != "" {
		if err := os.MkdirAll(cfg.PNGDir, 0o755); err != nil {
			return fmt.Errorf("create png dir: %w", err)
		}
	}
	if cfg.MetricsAddr != "" {
		stopMetrics := serveMetrics(cfg.MetricsAddr, logger)
		defer stopMetrics()
	}

	rpcClient := rpc.New(endpoint)
	defer func() {
		_ = rpcClient.Close()
	}()
	finder := ledger.NewReferenceFinder(
		ledger.NewObservedClient(rpcClient, cfg.RPCRPS, metrics.NewLedgerClient(cluster)),
		rpc.CommitmentConfirmed,
	)

	screen := &screen{}
	logger.Info("Starting location display", zap.Int("views", len(views)), zap.String("rpc", endpoint))
	err = workerpool.Process(ctx, len(views), views, func(ctx context.Context, v view) error {
		viewLogger := logger.Named(v.name)
		poller, err := confirmation.NewPoller(finder, metrics.NewConfirmationPoller(v.name), confirmation.Config{
			Interval: cfg.Interval,
			OnReference: func(reference solana.PublicKey) {
				if err := present(cfg, v, reference, screen); err != nil {
					viewLogger.Error("Failed to render QR code", zap.Error(err))
				}
			},
		}, viewLogger)
		if err != nil {
			return fmt.Errorf("%s: %w", v.name, err)
		}
		if err := poller.Run(ctx); err != nil {
			return fmt.Errorf("%s: %w", v.name, err)
		}
		return nil
	})
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		logger.Info("Location display stopped")
		return nil
	}
	return err
}

func buildViews(cfg appConfig) []view {
	views := make([]view, 0, len(cfg.Locations)+1)
	for _, id := range cfg.Locations {
		views = append(views, view{
			name:       fmt.Sprintf("location-%d", id),
			endpoint:   "api/checkIn",
			locationID: id,
			label:      fmt.Sprintf("Location %d", id),
			message:    fmt.Sprintf("Check in at location %d", id),
		})
	}
	if cfg.Mint {
		views = append(views, view{
			name:     "mint",
			endpoint: "api/mintNft",
			label:    "Mint Nft",
			message:  "Scan to mint your NFT",
		})
	}
	return views
}

// screen serializes terminal output of concurrently running views.
type screen struct {
	mu sync.Mutex
}

func (s *screen) show(title, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(os.Stdout, "\n%s\n%s\n", title, content)
}

func present(cfg appConfig, v view, reference solana.PublicKey, s *screen) error {
	link, err := solanapay.TransactionRequestLink(cfg.BaseURL, v.endpoint, reference, v.locationID)
	if err != nil {
		return err
	}
	content, err := solanapay.EncodeTransactionRequestURL(link, v.label, v.message)
	if err != nil {
		return err
	}
	art, err := solanapay.RenderTerminal(content)
	if err != nil {
		return err
	}
	s.show(fmt.Sprintf("%s  %s", v.label, content), art)

	if cfg.PNGDir == "" {
		return nil
	}
	png, err := solanapay.RenderPNG(content, cfg.PNGSize)
	if err != nil {
		return err
	}
	path := filepath.Join(cfg.PNGDir, v.name+".png")
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, png, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	return os.Rename(tmp, path)
}

func serveMetrics(addr string, logger *zap.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	s := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server stopped", zap.Error(err))
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	}
}
