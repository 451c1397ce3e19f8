package countdown

import (
	"testing"
	"time"
)

func TestTimerCountsDown(t *testing.T) {
	base := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	timer := New(5 * time.Minute)

	timer.Start(base)
	if done := timer.Tick(base.Add(time.Minute)); done {
		t.Error("Tick() = true before reaching zero")
	}
	if got := timer.Remaining(); got != 4*time.Minute {
		t.Errorf("Remaining() = %v, want 4m", got)
	}
}

func TestTimerFinishesExactlyOnce(t *testing.T) {
	base := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	timer := New(10 * time.Second)
	timer.Start(base)

	if done := timer.Tick(base.Add(15 * time.Second)); !done {
		t.Fatal("Tick() = false on the tick that reached zero")
	}
	if got := timer.Remaining(); got != 0 {
		t.Errorf("Remaining() = %v, want 0 (saturating)", got)
	}
	if timer.Running() {
		t.Error("Running() = true after finishing")
	}
	if !timer.Finished() {
		t.Error("Finished() = false after reaching zero")
	}

	// Completion fires once, even if callers keep ticking.
	timer.Start(base.Add(16 * time.Second))
	if done := timer.Tick(base.Add(17 * time.Second)); done {
		t.Error("Tick() = true a second time")
	}
}

func TestTimerPauseResume(t *testing.T) {
	base := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	timer := New(time.Minute)

	timer.Start(base)
	timer.Pause(base.Add(20 * time.Second))
	if got := timer.Remaining(); got != 40*time.Second {
		t.Errorf("Remaining() after pause = %v, want 40s", got)
	}

	// Paused time does not count.
	timer.Start(base.Add(time.Hour))
	if done := timer.Tick(base.Add(time.Hour + 10*time.Second)); done {
		t.Error("Tick() = true with 30s remaining")
	}
	if got := timer.Remaining(); got != 30*time.Second {
		t.Errorf("Remaining() after resume = %v, want 30s", got)
	}
}

func TestTimerReset(t *testing.T) {
	base := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	timer := New(time.Minute)
	timer.Start(base)
	timer.Tick(base.Add(2 * time.Minute))

	timer.Reset()
	if got := timer.Remaining(); got != time.Minute {
		t.Errorf("Remaining() after reset = %v, want 1m", got)
	}
	if timer.Finished() {
		t.Error("Finished() = true after reset")
	}

	// A reset timer can complete again.
	timer.Start(base.Add(3 * time.Minute))
	if done := timer.Tick(base.Add(5 * time.Minute)); !done {
		t.Error("Tick() = false after reset and re-run")
	}
}

func TestTimerSetDuration(t *testing.T) {
	timer := New(5 * time.Minute)
	timer.SetDuration(90 * time.Second)

	if got := timer.Duration(); got != 90*time.Second {
		t.Errorf("Duration() = %v, want 90s", got)
	}
	if got := timer.Remaining(); got != 90*time.Second {
		t.Errorf("Remaining() = %v, want 90s", got)
	}
}
