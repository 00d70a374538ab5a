package store

import "time"

// TickClock conta ticks lógicos desde a sua criação. Cada Simulation tem o
// seu; é passado explicitamente para quem carimba eventos.
type TickClock struct {
	start time.Time
	tick  time.Duration
	now   func() time.Time
}

func NewTickClock(tick time.Duration) *TickClock {
	return &TickClock{start: time.Now(), tick: tick, now: time.Now}
}

// Tick implementa domain.Clock. Com tick <= 0 é sempre 0.
func (c *TickClock) Tick() int64 {
	if c.tick <= 0 {
		return 0
	}
	return int64(c.now().Sub(c.start) / c.tick)
}
