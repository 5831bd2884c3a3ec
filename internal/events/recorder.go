// Package events buffers hunt events for analytics storage.
package events

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/scavengerhunt-backend/internal/model"
	"github.com/goodnatureofminers/scavengerhunt-backend/pkg/batcher"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertHuntEvents(ctx context.Context, events []model.HuntEvent) error
	}
	DropMetrics interface {
		ObserveDropped()
	}
)

// BatchConfig tunes buffering of events.
type BatchConfig struct {
	FlushSize     int
	FlushInterval time.Duration
	FlushRPS      int
}

// BatchRecorder writes events to the repository in batches. Record never blocks; events that do
// not fit into the buffer are dropped and counted.
type BatchRecorder struct {
	batcher *batcher.Batcher[model.HuntEvent]
	metrics DropMetrics
	logger  *zap.Logger
}

// NewBatchRecorder constructs a recorder. Call Start before recording and Stop on shutdown.
func NewBatchRecorder(repo Repository, metrics DropMetrics, cfg BatchConfig, logger *zap.Logger) *BatchRecorder {
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = 500
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	return &BatchRecorder{
		batcher: batcher.New[model.HuntEvent](
			logger.Named("batcher"),
			repo.InsertHuntEvents,
			cfg.FlushSize,
			cfg.FlushInterval,
			cfg.FlushRPS,
		),
		metrics: metrics,
		logger:  logger,
	}
}

// Start begins flushing in the background.
func (r *BatchRecorder) Start(ctx context.Context) {
	r.batcher.Start(ctx)
}

// Stop flushes buffered events and stops the background loop.
func (r *BatchRecorder) Stop() {
	r.batcher.Stop()
}

// Record queues event for storage.
func (r *BatchRecorder) Record(event model.HuntEvent) {
	if r.batcher.TryAdd(event) {
		return
	}
	r.metrics.ObserveDropped()
	r.logger.Warn("hunt event dropped",
		zap.String("kind", string(event.Kind)),
		zap.String("participant", event.Participant),
	)
}

// NopRecorder discards events. It is used when no analytics storage is configured.
type NopRecorder struct{}

// Record does nothing.
func (NopRecorder) Record(model.HuntEvent) {}
