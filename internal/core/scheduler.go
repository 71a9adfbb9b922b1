package core

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

// DefaultTickInterval is how often room snapshots are pushed to members.
const DefaultTickInterval = 100 * time.Millisecond

// Scheduler periodically snapshots every room and broadcasts the result.
// Moves only reach other clients through these snapshots.
type Scheduler struct {
	registry    *Registry
	broadcaster *Broadcaster
	clock       clock.Clock
	interval    time.Duration
	log         *zerolog.Logger

	ticks atomic.Uint64
}

// NewScheduler builds a scheduler. A nil clk uses the wall clock.
func NewScheduler(registry *Registry, broadcaster *Broadcaster, clk clock.Clock, interval time.Duration, logger *zerolog.Logger) *Scheduler {
	if clk == nil {
		clk = clock.New()
	}
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Scheduler{
		registry:    registry,
		broadcaster: broadcaster,
		clock:       clk,
		interval:    interval,
		log:         logger,
	}
}

// Run drives Tick at the configured interval until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := s.clock.Ticker(s.interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.interval).Msg("tick scheduler started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Uint64("ticks", s.ticks.Load()).Msg("tick scheduler stopped")
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick runs one snapshot-and-broadcast cycle synchronously and returns the
// number of rooms that received a state event.
func (s *Scheduler) Tick() int {
	s.ticks.Add(1)
	if n := s.registry.Sweep(); n > 0 {
		s.log.Debug().Int("rooms", n).Msg("reclaimed empty rooms")
	}

	sent := 0
	for _, name := range s.registry.Rooms() {
		if s.broadcaster.RelayState(name) {
			sent++
		}
	}
	return sent
}

// Ticks returns how many ticks have run.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks.Load()
}
