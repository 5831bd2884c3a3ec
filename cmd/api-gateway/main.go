package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/scavengerhunt-backend/internal/config"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/events"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/hunt"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/ledger"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/metrics"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/model"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/service"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/transport"
)

type appConfig struct {
	Addr     string `long:"addr" env:"API_GATEWAY_ADDR" description:"gRPC health service addr" default:":8000"`
	RestAddr string `long:"rest-addr" env:"API_GATEWAY_REST_ADDR" description:"HTTP addr" default:":8001"`

	Authority string `long:"authority" env:"EVENT_ORGANIZER" description:"organizer keypair as a JSON byte array or base58" required:"true"`

	Cluster string `long:"cluster" env:"HUNT_CLUSTER" description:"devnet, testnet, mainnet-beta or localnet" default:"devnet"`
	RPCURL  string `long:"rpc-url" env:"HUNT_RPC_URL" description:"Solana RPC URL, defaults to the cluster's public endpoint"`
	RPCRPS  int    `long:"rpc-rps" env:"HUNT_RPC_RPS" description:"max RPC calls per second, 0 disables the limit" default:"0"`

	ProgramID    string `long:"program-id" env:"HUNT_PROGRAM_ID" description:"scavenger hunt program" default:"9gQfxMKfELeAjLmAoriLpkVPSHd7xb36cBfYXDXX27xE"`
	NFTProgramID string `long:"nft-program-id" env:"HUNT_NFT_PROGRAM_ID" description:"collectible program" default:"5aia16UteFJBDNNW3RBqtxRqVKULCBKgppjPafEvTzG1"`
	Game         string `long:"game" env:"HUNT_GAME" description:"game id, a random one is generated when empty"`

	LocationsFile string `long:"locations-file" env:"HUNT_LOCATIONS_FILE" description:"YAML file with the location registry"`
	Locations     int    `long:"locations" env:"HUNT_LOCATIONS" description:"number of locations to generate when no file is given" default:"3"`

	NFTURI    string `long:"nft-uri" env:"HUNT_NFT_URI" description:"collectible metadata uri" default:"https://arweave.net/XfydVQOpCJaBHiDzgg60vg3IRWLROdp0338atyv_Cl4"`
	NFTName   string `long:"nft-name" env:"HUNT_NFT_NAME" description:"collectible name" default:"Pikachu"`
	NFTSymbol string `long:"nft-symbol" env:"HUNT_NFT_SYMBOL" description:"collectible symbol"`

	ClickhouseDSN      string        `long:"clickhouse-dsn" env:"HUNT_CLICKHOUSE_DSN" description:"ClickHouse DSN for hunt analytics, disabled when empty"`
	EventFlushSize     int           `long:"event-flush-size" env:"HUNT_EVENT_FLUSH_SIZE" description:"events per ClickHouse insert" default:"500"`
	EventFlushInterval time.Duration `long:"event-flush-interval" env:"HUNT_EVENT_FLUSH_INTERVAL" description:"max delay before buffered events are written" default:"5s"`

	RateLimitPerMinute float64       `long:"rate-limit" env:"HUNT_RATE_LIMIT" description:"POST requests per minute per client" default:"60"`
	RateLimitBurst     int           `long:"rate-limit-burst" env:"HUNT_RATE_LIMIT_BURST" description:"POST burst per client" default:"10"`
	RequestTimeout     time.Duration `long:"request-timeout" env:"HUNT_REQUEST_TIMEOUT" description:"deadline for building one transaction" default:"10s"`
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
	grpcZap.ReplaceGrpcLoggerV2(logger)

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
		logger.Fatal("api gateway failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg appConfig, logger *zap.Logger) error {
	authority, err := config.LoadAuthority(cfg.Authority)
	if err != nil {
		return err
	}
	cluster, err := model.ParseCluster(cfg.Cluster)
	if err != nil {
		return err
	}
	registry, err := loadRegistry(cfg, logger)
	if err != nil {
		return err
	}
	programID, err := solana.PublicKeyFromBase58(cfg.ProgramID)
	if err != nil {
		return fmt.Errorf("parse program id: %w", err)
	}
	nftProgramID, err := solana.PublicKeyFromBase58(cfg.NFTProgramID)
	if err != nil {
		return fmt.Errorf("parse nft program id: %w", err)
	}
	game := solana.NewWallet().PublicKey()
	if cfg.Game != "" {
		if game, err = solana.PublicKeyFromBase58(cfg.Game); err != nil {
			return fmt.Errorf("parse game id: %w", err)
		}
	}

	endpoint := cfg.RPCURL
	if endpoint == "" {
		if endpoint, err = ledger.ClusterEndpoint(cluster); err != nil {
			return err
		}
	}
	rpcClient := rpc.New(endpoint)
	defer func() {
		_ = rpcClient.Close()
	}()
	ledgerClient := ledger.NewObservedClient(rpcClient, cfg.RPCRPS, metrics.NewLedgerClient(cluster))

	recorder, stopRecorder, err := newEventRecorder(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer stopRecorder()

	huntProgram := ledger.NewHuntProgram(programID, game)
	checkpoints := ledger.NewCheckpointSource(ledgerClient, rpc.CommitmentConfirmed)
	checkIn := service.NewCheckInService(
		registry,
		huntProgram,
		ledger.NewProgressStore(ledgerClient, huntProgram, rpc.CommitmentConfirmed),
		checkpoints,
		authority,
		recorder,
		cluster,
		logger.Named("checkIn"),
	)
	mint := service.NewMintService(
		ledger.NewCollectibleProgram(nftProgramID, model.CollectibleMetadata{
			URI:    cfg.NFTURI,
			Name:   cfg.NFTName,
			Symbol: cfg.NFTSymbol,
		}),
		checkpoints,
		recorder,
		cluster,
		game,
		logger.Named("mint"),
	)

	logger.Info("Scavenger hunt configured",
		zap.String("cluster", string(cluster)),
		zap.String("rpc", endpoint),
		zap.Stringer("program", programID),
		zap.Stringer("game", game),
		zap.Stringer("authority", authority.PublicKey()),
		zap.Int("locations", registry.Len()),
	)

	grpcServer := transport.NewGRPCServer(logger.Named("grpc"))
	health := transport.NewHealth(grpcServer)
	socket, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("gRPC server stopped", zap.Error(serveErr))
		}
	}()
	defer grpcServer.GracefulStop()

	healthGateway, closeGateway, err := transport.NewHealthGateway(cfg.Addr)
	if err != nil {
		return err
	}
	defer func() {
		_ = closeGateway()
	}()

	router := transport.NewRouter(transport.RouterConfig{
		CheckIn: transport.NewCheckInHandler(checkIn, metrics.NewTransactionRequests("check_in"), logger.Named("checkInHandler")),
		Mint:    transport.NewMintHandler(mint, metrics.NewTransactionRequests("mint_nft"), logger.Named("mintHandler")),
		Health:  healthGateway,
		RateLimiter: transport.NewRateLimiter(transport.RateLimit{
			RequestsPerMinute: cfg.RateLimitPerMinute,
			Burst:             cfg.RateLimitBurst,
		}, logger.Named("rateLimiter")),
		RequestTimeout: cfg.RequestTimeout,
		Logger:         logger.Named("http"),
	})

	s := &http.Server{
		Addr:              cfg.RestAddr,
		Handler:           cors.Default().Handler(router),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		<-ctx.Done()
		health.Shutdown()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	health.SetServing()
	logger.Info("Starting HTTP server", zap.String("addr", cfg.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	// ListenAndServe returns as soon as Shutdown starts; in-flight requests may still record events.
	<-drained
	return nil
}

func loadRegistry(cfg appConfig, logger *zap.Logger) (*hunt.Registry, error) {
	if cfg.LocationsFile != "" {
		return hunt.LoadRegistryFile(cfg.LocationsFile)
	}
	registry, err := hunt.GenerateRegistry(cfg.Locations)
	if err != nil {
		return nil, err
	}
	for _, location := range registry.Locations() {
		logger.Info("Generated location", zap.Uint32("index", location.Index), zap.Stringer("key", location.Key))
	}
	return registry, nil
}

func newEventRecorder(ctx context.Context, cfg appConfig, logger *zap.Logger) (service.EventRecorder, func(), error) {
	if cfg.ClickhouseDSN == "" {
		logger.Info("ClickHouse DSN not set, hunt events are not stored")
		return events.NopRecorder{}, func() {}, nil
	}
	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewEventRepository())
	if err != nil {
		return nil, nil, fmt.Errorf("init event repository: %w", err)
	}
	if err := repo.Ping(ctx); err != nil {
		_ = repo.Close()
		return nil, nil, err
	}
	recorder := events.NewBatchRecorder(repo, metrics.NewEventRepository(), events.BatchConfig{
		FlushSize:     cfg.EventFlushSize,
		FlushInterval: cfg.EventFlushInterval,
	}, logger.Named("events"))
	// The recorder outlives the signal; Stop flushes it once the HTTP server has drained.
	recorder.Start(context.WithoutCancel(ctx))
	return recorder, func() {
		recorder.Stop()
		_ = repo.Close()
	}, nil
}
