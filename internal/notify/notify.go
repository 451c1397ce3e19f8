// Package notify delivers desktop notifications for clock events.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Notifier raises user-facing notifications for timer and alarm events.
type Notifier interface {
	// AlarmFired announces a ringing alarm.
	AlarmFired(label, clock string) error
	// AlarmSet confirms a newly created alarm.
	AlarmSet(clock string) error
	// TimerFinished announces a countdown reaching zero.
	TimerFinished() error
	// StopwatchStopped reports the final elapsed time of a stopped stopwatch.
	StopwatchStopped(final string) error
}

// Desktop delivers notifications through the platform notification service.
type Desktop struct {
	appName string
	beeps   bool
}

// NewDesktop creates a Desktop notifier. When beeps is true, urgent events
// also play an audible tone sequence.
func NewDesktop(appName string, beeps bool) *Desktop {
	return &Desktop{appName: appName, beeps: beeps}
}

func (d *Desktop) AlarmFired(label, clock string) error {
	title := "Alarm"
	if label != "" {
		title = fmt.Sprintf("Alarm: %s", label)
	}
	if d.beeps {
		playAsync(alarmSequence)
	}
	if err := beeep.Alert(title, fmt.Sprintf("It is %s", clock), "alarm-symbolic"); err != nil {
		return fmt.Errorf("sending alarm notification: %w", err)
	}
	return nil
}

func (d *Desktop) AlarmSet(clock string) error {
	if err := beeep.Notify("Alarm set", fmt.Sprintf("Will ring at %s", clock), "alarm-symbolic"); err != nil {
		return fmt.Errorf("sending alarm-set notification: %w", err)
	}
	return nil
}

func (d *Desktop) TimerFinished() error {
	if d.beeps {
		playAsync(timerSequence)
	}
	if err := beeep.Alert("Timer", "Time is up", "timer-symbolic"); err != nil {
		return fmt.Errorf("sending timer notification: %w", err)
	}
	return nil
}

func (d *Desktop) StopwatchStopped(final string) error {
	if d.beeps {
		playAsync(stopwatchSequence)
	}
	if err := beeep.Notify("Stopwatch", fmt.Sprintf("Stopped at %s", final), "chronometer-symbolic"); err != nil {
		return fmt.Errorf("sending stopwatch notification: %w", err)
	}
	return nil
}

// Silent drops every notification. Used when --quiet is set and in tests.
type Silent struct{}

func (Silent) AlarmFired(label, clock string) error { return nil }
func (Silent) AlarmSet(clock string) error          { return nil }
func (Silent) TimerFinished() error                 { return nil }
func (Silent) StopwatchStopped(final string) error  { return nil }
