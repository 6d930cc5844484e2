package input

import "time"

// Clock supplies tick timing. Now is measured from an arbitrary start and
// never decreases; Delta is the length of the previous tick.
type Clock interface {
	Now() time.Duration
	Delta() time.Duration
}

// previousNow is the time the previous tick started.
func previousNow(c Clock) time.Duration {
	return c.Now() - c.Delta()
}

// ManualClock is a Clock driven by hand. The zero value starts at 0.
type ManualClock struct {
	now   time.Duration
	delta time.Duration
}

func NewManualClock() *ManualClock {
	return &ManualClock{}
}

func (c *ManualClock) Now() time.Duration   { return c.now }
func (c *ManualClock) Delta() time.Duration { return c.delta }

// Advance moves the clock forward by d and records d as the last tick length.
// Negative values are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	c.now += d
	c.delta = d
}

// Set jumps to t. Moving backwards is ignored.
func (c *ManualClock) Set(t time.Duration) {
	if t < c.now {
		return
	}
	c.delta = t - c.now
	c.now = t
}

// FrameClock advances by a fixed step each Tick, for hosts that run at a
// fixed tick rate.
type FrameClock struct {
	step  time.Duration
	now   time.Duration
	ticks int64
}

func NewFrameClock(step time.Duration) *FrameClock {
	return &FrameClock{step: step}
}

// NewFrameClockTPS builds a FrameClock for tps ticks per second.
func NewFrameClockTPS(tps int) *FrameClock {
	if tps <= 0 {
		tps = 60
	}
	return NewFrameClock(time.Second / time.Duration(tps))
}

func (c *FrameClock) Tick() {
	c.ticks++
	c.now = time.Duration(c.ticks) * c.step
}

func (c *FrameClock) Ticks() int64 { return c.ticks }

func (c *FrameClock) Now() time.Duration { return c.now }

func (c *FrameClock) Delta() time.Duration {
	if c.ticks == 0 {
		return 0
	}
	return c.step
}
