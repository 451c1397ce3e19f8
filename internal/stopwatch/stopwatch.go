// Package stopwatch implements the elapsed-time state machine.
package stopwatch

import "time"

// Stopwatch accumulates elapsed time across start/stop cycles.
// All methods take the current time explicitly so callers control the clock.
type Stopwatch struct {
	accumulated time.Duration
	startedAt   time.Time
	running     bool
	laps        []time.Duration
}

// New creates a stopped stopwatch at zero.
func New() *Stopwatch {
	return &Stopwatch{}
}

// Start begins (or resumes) timing. Starting a running stopwatch is a no-op.
func (s *Stopwatch) Start(now time.Time) {
	if s.running {
		return
	}
	s.startedAt = now
	s.running = true
}

// Stop halts timing and returns the total elapsed time.
// Stopping a stopped stopwatch returns the accumulated total.
func (s *Stopwatch) Stop(now time.Time) time.Duration {
	if s.running {
		s.accumulated += now.Sub(s.startedAt)
		s.running = false
	}
	return s.accumulated
}

// Reset stops the stopwatch and clears the elapsed time and laps.
func (s *Stopwatch) Reset() {
	s.accumulated = 0
	s.running = false
	s.laps = nil
}

// Lap records the current elapsed time and returns it.
func (s *Stopwatch) Lap(now time.Time) time.Duration {
	elapsed := s.Elapsed(now)
	s.laps = append(s.laps, elapsed)
	return elapsed
}

// Elapsed returns the total elapsed time as of now.
func (s *Stopwatch) Elapsed(now time.Time) time.Duration {
	if !s.running {
		return s.accumulated
	}
	return s.accumulated + now.Sub(s.startedAt)
}

// Running reports whether the stopwatch is timing.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Laps returns the recorded lap times, oldest first.
func (s *Stopwatch) Laps() []time.Duration {
	return s.laps
}
