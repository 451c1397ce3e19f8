package alarms

import (
	"time"

	"github.com/moon-mind/chime/internal/config"
)

// Store provides read/write access to the persisted alarm set.
type Store struct {
	files *FileStorage
}

// NewStore creates a Store backed by the given file storage.
func NewStore(files *FileStorage) *Store {
	return &Store{files: files}
}

// NewDefaultStore creates a Store using the alarms directory under the
// chime config dir.
func NewDefaultStore() *Store {
	return NewStore(NewFileStorage(config.AlarmsDir()))
}

// Dir returns the storage directory path.
func (s *Store) Dir() string {
	return s.files.Dir()
}

// Add persists a new alarm. Fails with a conflict error if an alarm with
// the same ID already exists.
func (s *Store) Add(alarm *Alarm) error {
	return s.files.WriteAlarm(alarm, false)
}

// Get returns the alarm with the given ID.
func (s *Store) Get(id string) (*Alarm, error) {
	return s.files.ReadAlarm(id)
}

// List returns all alarms sorted by time of day.
func (s *Store) List() ([]*Alarm, error) {
	list, err := s.files.ListAlarms()
	if err != nil {
		return nil, err
	}
	SortByTimeOfDay(list)
	return list, nil
}

// ListWithStats returns all alarms sorted by time of day, plus statistics
// about skipped files.
func (s *Store) ListWithStats() ([]*Alarm, *ListStats, error) {
	list, stats, err := s.files.ListAlarmsWithStats()
	if err != nil {
		return nil, nil, err
	}
	SortByTimeOfDay(list)
	return list, stats, nil
}

// Update overwrites an existing alarm, stamping UpdatedAt.
func (s *Store) Update(alarm *Alarm, now time.Time) error {
	if !s.files.AlarmExists(alarm.ID) {
		// Surfaces the not-found user error.
		if _, err := s.files.ReadAlarm(alarm.ID); err != nil {
			return err
		}
	}
	alarm.UpdatedAt = now
	return s.files.WriteAlarm(alarm, true)
}

// Remove deletes the alarm with the given ID.
func (s *Store) Remove(id string) error {
	return s.files.DeleteAlarm(id)
}

// SetEnabled flips the enabled state of an alarm and persists it.
// Returns the updated alarm.
func (s *Store) SetEnabled(id string, enabled bool, now time.Time) (*Alarm, error) {
	alarm, err := s.files.ReadAlarm(id)
	if err != nil {
		return nil, err
	}
	alarm.Enabled = enabled
	alarm.UpdatedAt = now
	if err := s.files.WriteAlarm(alarm, true); err != nil {
		return nil, err
	}
	return alarm, nil
}

// Toggle flips the enabled state of an alarm and persists it.
// Returns the updated alarm.
func (s *Store) Toggle(id string, now time.Time) (*Alarm, error) {
	alarm, err := s.files.ReadAlarm(id)
	if err != nil {
		return nil, err
	}
	return s.SetEnabled(id, !alarm.Enabled, now)
}

// Next returns the enabled alarm that fires soonest after now, along with
// its firing time. Returns (nil, zero) when no enabled alarms exist.
func (s *Store) Next(now time.Time) (*Alarm, time.Time, error) {
	list, err := s.List()
	if err != nil {
		return nil, time.Time{}, err
	}

	var best *Alarm
	var bestAt time.Time
	for _, alarm := range list {
		if !alarm.Enabled {
			continue
		}
		at := alarm.NextOccurrence(now)
		if best == nil || at.Before(bestAt) {
			best = alarm
			bestAt = at
		}
	}
	return best, bestAt, nil
}
