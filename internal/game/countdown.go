// Package game holds the per-question countdown clock.
package game

import (
	"sync"
	"time"
)

// Countdown is a single-owner decrementing clock. At most one run is active
// at a time; Start supersedes any previous run. Each run carries a
// generation token so a stale ticker can never fire an expiry against a
// question that has already moved on.
type Countdown struct {
	mu        sync.Mutex
	gen       uint64
	remaining int
	running   bool
}

// Start begins a fresh countdown of limit ticks, one tick per interval.
// When the clock reaches zero while still current, onExpire is invoked
// exactly once. The returned generation token identifies this run.
func (c *Countdown) Start(limit int, interval time.Duration, onExpire func()) uint64 {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.remaining = limit
	c.running = true
	c.mu.Unlock()

	go c.run(gen, interval, onExpire)
	return gen
}

func (c *Countdown) run(gen uint64, interval time.Duration, onExpire func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		if gen != c.gen || !c.running {
			// Superseded by a newer run or stopped by a manual answer.
			c.mu.Unlock()
			return
		}
		c.remaining--
		if c.remaining <= 0 {
			c.remaining = 0
			c.running = false
			c.mu.Unlock()
			onExpire()
			return
		}
		c.mu.Unlock()
	}
}

// Stop cancels the active run and reports the ticks remaining at that
// moment. Reports false if the clock already expired or was never started.
func (c *Countdown) Stop() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return 0, false
	}
	c.running = false
	return c.remaining, true
}

// Remaining reports the current tick count without affecting the run.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Generation reports the token of the most recent run.
func (c *Countdown) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}
