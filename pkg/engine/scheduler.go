package engine

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

// Scheduler drives the engine pipeline on two timers: a one-shot startup
// delay so the first nudge doesn't fire immediately on activation, and a
// recurring interval for the rest of the session. Stop cancels both; no
// timer state survives a restart, the schedule begins again from the
// startup delay.
type Scheduler struct {
	engine *Engine

	startupDelay time.Duration
	interval     time.Duration

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// SchedulerConfig holds scheduler timing configuration
type SchedulerConfig struct {
	StartupDelay time.Duration
	Interval     time.Duration
}

// NewScheduler creates a scheduler for the engine with the given timings
func NewScheduler(engine *Engine, cfg SchedulerConfig) *Scheduler {
	if cfg.StartupDelay == 0 {
		cfg.StartupDelay = 15 * time.Second
	}
	if cfg.Interval == 0 {
		cfg.Interval = 5 * time.Minute
	}

	return &Scheduler{
		engine:       engine,
		startupDelay: cfg.StartupDelay,
		interval:     cfg.Interval,
	}
}

// Start begins the timer loop. Safe to call once per scheduler instance.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.run(ctx)

	lgr.Printf("[INFO] scheduler started, first tick in %v, then every %v", s.startupDelay, s.interval)
}

// Stop cancels both timers and waits for an in-flight tick to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// run fires the one-shot startup tick, then switches to the recurring ticker
func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	startup := time.NewTimer(s.startupDelay)
	defer startup.Stop()

	select {
	case <-ctx.Done():
		return
	case <-startup.C:
		s.tick(ctx)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs one pipeline pass, logging failures without stopping the loop.
// Missed or late ticks are not compensated; the next tick simply
// re-evaluates the gates against the current time.
func (s *Scheduler) tick(ctx context.Context) {
	if err := s.engine.Tick(ctx); err != nil {
		lgr.Printf("[WARN] tick failed: %v", err)
	}
}

// TickNow triggers an immediate pipeline pass outside the timers
func (s *Scheduler) TickNow(ctx context.Context) error {
	return s.engine.Tick(ctx)
}
