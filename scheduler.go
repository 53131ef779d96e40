package feather2d

import (
	"context"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultFixedTick is the simulated duration of one physics tick, in seconds
	DefaultFixedTick = 1.0 / 60.0
	// DefaultMaxFrameDelta bounds how much time a single frame may catch up after a stall
	DefaultMaxFrameDelta = 0.1
)

// Scheduler accumulates variable frame time into fixed physics ticks.
// FixedUpdate runs once per tick with the fixed tick, then Update runs once per frame with the frame delta.
type Scheduler struct {
	FixedTick     float64
	MaxFrameDelta float64

	FixedUpdate func(dt float64)
	Update      func(frameDelta float64)

	accumulator float64
	last        time.Time
	ticks       uint64
}

func NewScheduler(fixedUpdate, update func(float64)) *Scheduler {
	return &Scheduler{
		FixedTick:     DefaultFixedTick,
		MaxFrameDelta: DefaultMaxFrameDelta,
		FixedUpdate:   fixedUpdate,
		Update:        update,
	}
}

// Frame measures the time elapsed since the previous call and advances the simulation.
// The first call only records the timestamp.
func (s *Scheduler) Frame(now time.Time) int {
	if s.last.IsZero() {
		s.last = now
		return s.Advance(0)
	}

	frameDelta := now.Sub(s.last).Seconds()
	s.last = now

	return s.Advance(frameDelta)
}

// Advance adds frameDelta, clamped to [0, MaxFrameDelta], to the accumulator and runs
// as many fixed ticks as it holds. The remainder carries over to the next frame.
// It returns the number of ticks run.
func (s *Scheduler) Advance(frameDelta float64) int {
	if s.FixedTick <= 0 {
		s.FixedTick = DefaultFixedTick
	}
	if s.MaxFrameDelta <= 0 {
		s.MaxFrameDelta = DefaultMaxFrameDelta
	}

	frameDelta = mgl64.Clamp(frameDelta, 0, s.MaxFrameDelta)
	s.accumulator += frameDelta

	ticks := 0
	for s.accumulator >= s.FixedTick {
		if s.FixedUpdate != nil {
			s.FixedUpdate(s.FixedTick)
		}
		s.accumulator -= s.FixedTick
		ticks++
	}
	s.ticks += uint64(ticks)

	if s.Update != nil {
		s.Update(frameDelta)
	}

	return ticks
}

// Run drives Frame from the wall clock every frameTime until ctx is done
func (s *Scheduler) Run(ctx context.Context, frameTime time.Duration) error {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	s.Frame(time.Now())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			s.Frame(now)
		}
	}
}

// Accumulator returns the simulated time not yet consumed by a tick
func (s *Scheduler) Accumulator() float64 {
	return s.accumulator
}

// Alpha returns how far the accumulator is into the next tick, in [0, 1), for render interpolation
func (s *Scheduler) Alpha() float64 {
	return s.accumulator / s.FixedTick
}

// Ticks returns the total number of fixed ticks run
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}
