// Package scheduler fires alarms when their wall-clock time arrives.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/moon-mind/chime/internal/alarms"
	"github.com/moon-mind/chime/internal/notify"
)

const defaultInterval = time.Second

// minuteKey identifies a wall-clock minute so an alarm fires at most once
// per minute regardless of how often the scheduler polls.
func minuteKey(now time.Time) string {
	return now.Format("2006-01-02T15:04")
}

// Scheduler polls the alarm store and notifies when an enabled alarm's
// time of day matches the current minute.
type Scheduler struct {
	store    *alarms.Store
	notifier notify.Notifier

	now      func() time.Time
	interval time.Duration

	// fired maps alarm ID to the last minute it rang.
	fired map[string]string

	// OnFire, when set, is called after each alarm rings. Used by the
	// daemon to log fired alarms.
	OnFire func(alarm *alarms.Alarm, at time.Time)
}

// New creates a scheduler polling every second.
func New(store *alarms.Store, notifier notify.Notifier) *Scheduler {
	return &Scheduler{
		store:    store,
		notifier: notifier,
		now:      time.Now,
		interval: defaultInterval,
		fired:    make(map[string]string),
	}
}

// Run polls until the context is cancelled. Check errors are returned only
// when the store itself fails; notification failures are reported through
// the returned error of the final check.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.CheckOnce(s.now()); err != nil {
				return err
			}
		}
	}
}

// CheckOnce evaluates every enabled alarm against now, firing those whose
// time of day matches the current minute and which have not already fired
// this minute.
func (s *Scheduler) CheckOnce(now time.Time) error {
	list, err := s.store.List()
	if err != nil {
		return fmt.Errorf("checking alarms: %w", err)
	}

	key := minuteKey(now)
	for _, alarm := range list {
		if !alarm.Enabled {
			continue
		}
		if alarm.Hour != now.Hour() || alarm.Minute != now.Minute() {
			continue
		}
		if alarm.Repeats() && !alarm.RepeatsOn(now.Weekday()) {
			continue
		}
		if s.fired[alarm.ID] == key {
			continue
		}
		s.fired[alarm.ID] = key
		s.fire(alarm, now)
	}
	return nil
}

func (s *Scheduler) fire(alarm *alarms.Alarm, now time.Time) {
	// Notification failures must not stop the scheduler.
	_ = s.notifier.AlarmFired(alarm.Label, alarm.TimeOfDay())

	if !alarm.Repeats() {
		// One-shot alarms ring once and disable themselves.
		_, _ = s.store.SetEnabled(alarm.ID, false, now)
	}

	if s.OnFire != nil {
		s.OnFire(alarm, now)
	}
}

// ResetFired clears the fired-minute memory. The daemon calls this on
// reload so edited alarms are re-evaluated immediately.
func (s *Scheduler) ResetFired() {
	s.fired = make(map[string]string)
}
