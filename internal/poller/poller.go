// Package poller implements the change-detecting emit loop behind the
// helper's listen mode. Each tick rebuilds the serialized snapshot and
// writes it out only when it differs from the previously emitted one,
// so downstream consumers only see state transitions.
package poller

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Source produces the current serialized snapshot.
type Source func() string

// Poller drives a Source on a fixed cadence and emits on change. The
// previously emitted serialization is the loop's only state; ticks run
// to completion before the next one is considered, so no locking of
// that state is needed.
type Poller struct {
	logger   *zap.Logger
	source   Source
	out      io.Writer
	interval time.Duration

	last    string
	emitted bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a Poller emitting to out at the given interval.
func New(logger *zap.Logger, source Source, out io.Writer, interval time.Duration) *Poller {
	return &Poller{
		logger:   logger,
		source:   source,
		out:      out,
		interval: interval,
	}
}

// Tick runs one poll cycle: build, compare, emit on difference. The
// very first cycle always emits. Reports whether a line was written.
func (p *Poller) Tick() bool {
	current := p.source()
	if p.emitted && current == p.last {
		return false
	}

	fmt.Fprintln(p.out, current)
	p.last = current
	p.emitted = true
	return true
}

// Run polls until ctx is cancelled. A degraded cycle simply emits
// whatever the source produced; the loop itself never fails.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("Poll loop started", zap.Duration("interval", p.interval))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Poll loop stopped")
			return
		case <-ticker.C:
			if p.Tick() {
				p.logger.Debug("State changed, snapshot emitted")
			}
		}
	}
}

// Start launches Run in a goroutine and returns immediately.
func (p *Poller) Start(context.Context) error {
	runCtx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.Run(runCtx)
	}()
	return nil
}

// Stop cancels the loop and waits for the in-flight cycle to finish.
func (p *Poller) Stop(context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
	return nil
}
