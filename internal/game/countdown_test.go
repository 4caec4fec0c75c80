package game

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestCountdownExpires(t *testing.T) {
	var c Countdown
	expired := make(chan struct{})

	c.Start(3, 2*time.Millisecond, func() { close(expired) })

	select {
	case <-expired:
	case <-time.After(time.Second):
		t.Fatalf("countdown never expired")
	}
	if got := c.Remaining(); got != 0 {
		t.Fatalf("expected 0 remaining after expiry, got %d", got)
	}
	if _, ok := c.Stop(); ok {
		t.Fatalf("expected stop after expiry to report not running")
	}
}

func TestCountdownStopCapturesRemaining(t *testing.T) {
	var c Countdown
	c.Start(20, time.Hour, func() {
		t.Errorf("expiry fired despite manual stop")
	})

	remaining, ok := c.Stop()
	if !ok {
		t.Fatalf("expected running countdown")
	}
	if remaining != 20 {
		t.Fatalf("expected full 20 ticks remaining, got %d", remaining)
	}

	// A second stop is a no-op.
	if _, ok := c.Stop(); ok {
		t.Fatalf("expected second stop to report not running")
	}
}

func TestCountdownStartSupersedesPriorRun(t *testing.T) {
	var c Countdown
	var stale atomic.Int32

	first := c.Start(1, 5*time.Millisecond, func() { stale.Add(1) })
	second := c.Start(1000, 5*time.Millisecond, func() {})
	if second == first {
		t.Fatalf("expected a fresh generation token")
	}

	// Give the first run's ticker time to fire; the generation guard must
	// keep it from expiring.
	time.Sleep(30 * time.Millisecond)
	if stale.Load() != 0 {
		t.Fatalf("stale run fired %d times", stale.Load())
	}
	if got := c.Generation(); got != second {
		t.Fatalf("expected generation %d, got %d", second, got)
	}
}

func TestCountdownNoExpiryAfterStopEvenIfTickerFires(t *testing.T) {
	var c Countdown
	var fired atomic.Int32

	c.Start(2, 3*time.Millisecond, func() { fired.Add(1) })
	if _, ok := c.Stop(); !ok {
		t.Fatalf("expected running countdown")
	}

	time.Sleep(30 * time.Millisecond)
	if fired.Load() != 0 {
		t.Fatalf("expiry fired %d times after manual stop", fired.Load())
	}
}
