package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	appmatches "github.com/preston-bernstein/football-fixtures-service/internal/app/matches"
	"github.com/preston-bernstein/football-fixtures-service/internal/logging"
	"github.com/preston-bernstein/football-fixtures-service/internal/metrics"
)

const defaultInterval = 2 * time.Minute

// readyFailureThreshold is how many consecutive failed loads flip readiness off.
const readyFailureThreshold = 3

// Loader performs one full match load.
type Loader interface {
	Load(ctx context.Context) error
}

// Poller runs a load on start and then on an interval.
type Poller struct {
	loader   Loader
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < readyFailureThreshold
}

// New constructs a Poller with sane defaults.
func New(loader Loader, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		loader:   loader,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial load to warm data on boot.
		_ = p.loadOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				_ = p.loadOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// Refresh runs one load immediately, outside the ticker, and returns its outcome.
func (p *Poller) Refresh(ctx context.Context) error {
	return p.loadOnce(ctx)
}

func (p *Poller) loadOnce(ctx context.Context) error {
	start := p.now()
	p.recordAttempt(start)
	if p.loader == nil {
		err := errors.New("poller has no loader")
		p.recordFailure(err, start)
		return err
	}

	err := p.loader.Load(ctx)
	p.metrics.RecordPollerCycle(time.Since(start), err)

	switch {
	case err == nil:
		p.recordSuccess(start)
		logging.Debug(p.logger, "poller refreshed matches", logging.FieldDurationMS, time.Since(start).Milliseconds())
	case errors.Is(err, appmatches.ErrStaleLoad):
		// A newer load already committed; nothing failed.
		logging.Debug(p.logger, "poller load superseded")
	case errors.Is(err, context.Canceled) && ctx.Err() != nil:
		logging.Debug(p.logger, "poller load canceled")
	default:
		logging.Error(p.logger, "poller load failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
	}
	return err
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
