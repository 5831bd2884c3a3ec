// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// finalFlushTimeout bounds the flush performed while shutting down.
const finalFlushTimeout = 10 * time.Second

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	itemsCh       chan T
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher. rps limits flushes per second; rps <= 0 disables the limit.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, flushSize int, flushInterval time.Duration, rps int) *Batcher[T] {
	if flushSize <= 0 {
		flushSize = 1
	}
	rl := ratelimit.NewUnlimited()
	if rps > 0 {
		rl = ratelimit.New(rps)
	}
	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		itemsCh:       make(chan T, flushSize*2),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		rl:            rl,
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop stops the background loop and flushes everything still buffered, including items queued
// after the Start context was canceled. It is safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
		b.wg.Wait()
		b.drain(context.Background(), nil)
	})
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.itemsCh <- item:
		return nil
	}
}

// TryAdd queues an item without blocking. It reports false when the buffer is full or the
// batcher is stopped.
func (b *Batcher[T]) TryAdd(item T) bool {
	select {
	case <-b.stop:
		return false
	default:
	}

	select {
	case b.itemsCh <- item:
		return true
	default:
		return false
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	for {
		select {
		case <-ctx.Done():
			b.drain(ctx, buf)
			return

		case <-b.stop:
			b.drain(ctx, buf)
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				buf = b.flush(ctx, buf)
			}

		case <-ticker.C:
			buf = b.flush(ctx, buf)
		}
	}
}

// flush hands buf to the callback and returns it emptied.
func (b *Batcher[T]) flush(ctx context.Context, buf []T) []T {
	if len(buf) == 0 {
		return buf
	}

	b.rl.Take()
	if err := b.flushCallback(ctx, buf); err != nil {
		b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
	} else {
		b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
	}
	return buf[:0]
}

// drain flushes buf and everything still queued with a context that outlives ctx.
func (b *Batcher[T]) drain(ctx context.Context, buf []T) {
	final, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalFlushTimeout)
	defer cancel()
	for {
		select {
		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				buf = b.flush(final, buf)
			}
		default:
			b.flush(final, buf)
			return
		}
	}
}
