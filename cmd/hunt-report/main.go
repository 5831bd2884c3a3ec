package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/scavengerhunt-backend/internal/config"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/metrics"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/repository/clickhouse"
)

type appConfig struct {
	ClickhouseDSN string `long:"clickhouse-dsn" env:"HUNT_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Game          string `long:"game" env:"HUNT_GAME" description:"game id to report on" required:"true"`
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

	if err := run(ctx, cfg); err != nil {
		logger.Fatal("hunt report failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg appConfig) error {
	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewEventRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		_ = repo.Close()
	}()

	counts, err := repo.ParticipantCheckIns(ctx, cfg.Game)
	if err != nil {
		return err
	}
	return writeReport(os.Stdout, counts)
}

// writeReport prints participants by check-ins, most advanced first.
func writeReport(out io.Writer, counts map[string]uint64) error {
	participants := make([]string, 0, len(counts))
	for participant := range counts {
		participants = append(participants, participant)
	}
	sort.Slice(participants, func(i, j int) bool {
		a, b := participants[i], participants[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		return a < b
	})

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PARTICIPANT\tCHECK-INS")
	for _, participant := range participants {
		fmt.Fprintf(w, "%s\t%d\n", participant, counts[participant])
	}
	return w.Flush()
}
