/*
scheduler.go - Periodic cache flusher

PURPOSE:
  Drops the engine's classification cache on a fixed interval so that a
  long-running server does not keep memoized days for record sets nobody
  asks about any more.

DESIGN:
  - Runs a background goroutine driven by a ticker
  - An interval of zero (or less) leaves the flusher disabled
  - Start and Stop are idempotent

CONFIGURATION:
  - cache.flush_interval: How often to flush (default: 0, disabled)

USAGE:
  flusher := NewCacheFlusher(engine, interval, logger)
  flusher.Start()
  // ... later
  flusher.Stop()

SEE ALSO:
  - handlers.go: ClearCache endpoint (manual flush)
  - attendance/engine.go: Engine.ClearCache
*/
package api

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// flusher is the part of the engine the CacheFlusher needs.
type flusher interface {
	ClearCache()
}

// CacheFlusher clears the classification cache periodically.
type CacheFlusher struct {
	Target   flusher
	Interval time.Duration
	Logger   *zap.Logger

	ticker  *time.Ticker
	stop    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	flushes int
}

// NewCacheFlusher creates a flusher. It does nothing until Start.
func NewCacheFlusher(target flusher, interval time.Duration, logger *zap.Logger) *CacheFlusher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheFlusher{
		Target:   target,
		Interval: interval,
		Logger:   logger.Named("cache-flusher"),
	}
}

// Start begins flushing. It is a no-op when disabled or already running.
func (cf *CacheFlusher) Start() {
	cf.mu.Lock()
	defer cf.mu.Unlock()

	if cf.Interval <= 0 {
		cf.Logger.Info("disabled, not starting")
		return
	}
	if cf.ticker != nil {
		return
	}

	cf.ticker = time.NewTicker(cf.Interval)
	cf.stop = make(chan struct{})
	cf.wg.Add(1)

	go cf.run(cf.ticker, cf.stop)

	cf.Logger.Info("started", zap.Duration("interval", cf.Interval))
}

// Stop halts the flusher and waits for the goroutine to exit.
func (cf *CacheFlusher) Stop() {
	cf.mu.Lock()
	ticker, stop := cf.ticker, cf.stop
	cf.ticker, cf.stop = nil, nil
	cf.mu.Unlock()

	if ticker == nil {
		return
	}
	ticker.Stop()
	close(stop)
	cf.wg.Wait()
	cf.Logger.Info("stopped", zap.Int("flushes", cf.Flushes()))
}

// Flushes reports how many periodic flushes have run.
func (cf *CacheFlusher) Flushes() int {
	cf.mu.Lock()
	defer cf.mu.Unlock()
	return cf.flushes
}

func (cf *CacheFlusher) run(ticker *time.Ticker, stop <-chan struct{}) {
	defer cf.wg.Done()

	for {
		select {
		case <-ticker.C:
			cf.flush()
		case <-stop:
			return
		}
	}
}

func (cf *CacheFlusher) flush() {
	cf.Target.ClearCache()

	cf.mu.Lock()
	cf.flushes++
	n := cf.flushes
	cf.mu.Unlock()

	cf.Logger.Debug("cache flushed", zap.Int("flushes", n))
}
