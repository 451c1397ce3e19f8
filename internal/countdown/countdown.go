// Package countdown implements the timer state machine.
package countdown

import "time"

// Timer counts a fixed duration down to zero.
// All methods take the current time explicitly so callers control the clock.
type Timer struct {
	duration  time.Duration
	remaining time.Duration
	running   bool
	lastTick  time.Time
	finished  bool
}

// New creates a stopped timer with the full duration remaining.
func New(duration time.Duration) *Timer {
	return &Timer{
		duration:  duration,
		remaining: duration,
	}
}

// Start begins (or resumes) the countdown. Starting a running or finished
// timer is a no-op.
func (t *Timer) Start(now time.Time) {
	if t.running || t.finished {
		return
	}
	t.lastTick = now
	t.running = true
}

// Pause halts the countdown, applying the time elapsed since the last tick.
func (t *Timer) Pause(now time.Time) {
	if !t.running {
		return
	}
	t.advance(now)
	t.running = false
}

// Reset stops the timer and restores the full duration.
func (t *Timer) Reset() {
	t.remaining = t.duration
	t.running = false
	t.finished = false
}

// SetDuration stops the timer and installs a new duration with the full
// time remaining.
func (t *Timer) SetDuration(duration time.Duration) {
	t.duration = duration
	t.Reset()
}

// Tick advances the countdown to now. Returns true exactly once, on the
// tick that reaches zero.
func (t *Timer) Tick(now time.Time) bool {
	if !t.running {
		return false
	}
	t.advance(now)
	if t.remaining > 0 {
		return false
	}
	t.running = false
	if t.finished {
		return false
	}
	t.finished = true
	return true
}

// advance subtracts the elapsed time since the last tick, saturating at zero.
func (t *Timer) advance(now time.Time) {
	elapsed := now.Sub(t.lastTick)
	t.lastTick = now
	if elapsed <= 0 {
		return
	}
	if elapsed >= t.remaining {
		t.remaining = 0
		return
	}
	t.remaining -= elapsed
}

// Remaining returns the time left on the countdown.
func (t *Timer) Remaining() time.Duration {
	return t.remaining
}

// Duration returns the configured countdown duration.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Running reports whether the countdown is ticking.
func (t *Timer) Running() bool {
	return t.running
}

// Finished reports whether the countdown has reached zero.
func (t *Timer) Finished() bool {
	return t.finished
}
