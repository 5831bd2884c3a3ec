package confirmation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/scavengerhunt-backend/internal/clock"
	"github.com/goodnatureofminers/scavengerhunt-backend/internal/ledger"
)

// DefaultInterval is the pause between two reference lookups.
const DefaultInterval = 1500 * time.Millisecond

// Config describes one view. Callbacks run on the poller goroutine.
type Config struct {
	Interval time.Duration
	// OnReference is called with the initial reference and after every rotation.
	OnReference func(reference solana.PublicKey)
	// OnConfirmed is called once per confirmed reference, after the rotation.
	OnConfirmed func(reference solana.PublicKey, signature solana.Signature)
}

// Poller looks up the current reference on a fixed interval and rotates it once a transaction
// carrying it is confirmed. The next lookup is scheduled only after the previous one returns.
type Poller struct {
	finder       ReferenceFinder
	metrics      TickMetrics
	interval     time.Duration
	onReference  func(solana.PublicKey)
	onConfirmed  func(solana.PublicKey, solana.Signature)
	newReference func() (solana.PublicKey, error)
	sleep        clock.SleepFunc
	logger       *zap.Logger

	mu      sync.RWMutex
	current solana.PublicKey
}

// NewPoller creates a poller holding a fresh reference.
func NewPoller(finder ReferenceFinder, metrics TickMetrics, cfg Config, logger *zap.Logger) (*Poller, error) {
	reference, err := ledger.NewReference()
	if err != nil {
		return nil, err
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		finder:       finder,
		metrics:      metrics,
		interval:     interval,
		onReference:  cfg.OnReference,
		onConfirmed:  cfg.OnConfirmed,
		newReference: ledger.NewReference,
		sleep:        clock.SleepWithContext,
		logger:       logger,
		current:      reference,
	}, nil
}

// Reference returns the reference the view should currently display.
func (p *Poller) Reference() solana.PublicKey {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Run polls until ctx is canceled. Lookup failures are logged and retried on the next tick;
// only a failure to generate a new reference stops the loop.
func (p *Poller) Run(ctx context.Context) error {
	if p.onReference != nil {
		p.onReference(p.Reference())
	}
	for {
		if err := p.sleep(ctx, p.interval); err != nil {
			return nil
		}
		if err := p.tick(ctx); err != nil {
			return err
		}
	}
}

func (p *Poller) tick(ctx context.Context) error {
	reference := p.Reference()
	started := time.Now()

	signature, err := p.finder.FindReference(ctx, reference)
	switch {
	case errors.Is(err, ledger.ErrReferenceNotFound):
		p.metrics.ObserveTick(false, nil, started)
		p.logger.Debug("reference not confirmed yet", zap.Stringer("reference", reference))
		return nil
	case err != nil:
		if ctx.Err() != nil {
			return nil
		}
		p.metrics.ObserveTick(false, err, started)
		p.logger.Warn("reference lookup failed", zap.Stringer("reference", reference), zap.Error(err))
		return nil
	}
	p.metrics.ObserveTick(true, nil, started)

	next, err := p.newReference()
	if err != nil {
		return fmt.Errorf("rotate reference: %w", err)
	}
	p.mu.Lock()
	p.current = next
	p.mu.Unlock()

	p.logger.Info("Transaction Confirmed",
		zap.Stringer("reference", reference),
		zap.Stringer("signature", signature),
	)
	if p.onReference != nil {
		p.onReference(next)
	}
	if p.onConfirmed != nil {
		p.onConfirmed(reference, signature)
	}
	return nil
}

// Handle controls a poller started with Start.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// Start runs the poller in the background until the handle is stopped or ctx is canceled.
func (p *Poller) Start(ctx context.Context) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(h.done)
		h.err = p.Run(ctx)
	}()
	return h
}

// Done is closed once the poller has exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Stop cancels the poller and waits for it to exit. It is safe to call more than once.
func (h *Handle) Stop() error {
	h.cancel()
	<-h.done
	return h.err
}
