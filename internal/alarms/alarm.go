// Package alarms provides the alarm schema, validation, persistence, and
// next-occurrence computation for chime.
package alarms

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SchemaVersion is the current schema version for chime alarm records.
const SchemaVersion = "chime.alarm/v1"

// KindAlarm is the kind identifier for alarm records.
const KindAlarm = "alarm"

// idPrefix is the prefix for all alarm IDs.
const idPrefix = "al_"

// shortIDLength is the number of UUID characters used in an alarm ID.
const shortIDLength = 8

// ErrNotChimeAlarm indicates a file that is valid JSON but not a chime alarm.
var ErrNotChimeAlarm = errors.New("not a chime alarm record")

// Alarm represents a persisted alarm.
type Alarm struct {
	Schema    string    `json:"schema"`
	Kind      string    `json:"kind"`
	ID        string    `json:"id"`
	Hour      int       `json:"hour"`
	Minute    int       `json:"minute"`
	Label     string    `json:"label,omitempty"`
	Enabled   bool      `json:"enabled"`
	Repeat    []string  `json:"repeat,omitempty"` // weekday names, "mon".."sun"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// weekdayNames maps canonical day names to time.Weekday.
var weekdayNames = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
	"sun": time.Sunday,
}

// ValidationError is returned when alarm validation fails.
type ValidationError struct {
	Fields  []string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

// NewID creates a fresh alarm ID.
// Format: al_<8 hex chars from a random UUID>
func NewID() string {
	return idPrefix + uuid.NewString()[:shortIDLength]
}

// New creates an enabled alarm at the given time of day with a fresh ID.
func New(hour, minute int, label string, now time.Time) *Alarm {
	return &Alarm{
		Schema:    SchemaVersion,
		Kind:      KindAlarm,
		ID:        NewID(),
		Hour:      hour,
		Minute:    minute,
		Label:     label,
		Enabled:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks that all required fields are present and in range.
// Returns a ValidationError listing the offending fields.
func (a *Alarm) Validate() error {
	var bad []string

	if a.Schema == "" {
		bad = append(bad, "schema")
	}
	if a.Kind == "" {
		bad = append(bad, "kind")
	}
	if a.ID == "" {
		bad = append(bad, "id")
	}
	if a.Hour < 0 || a.Hour > 23 {
		bad = append(bad, "hour")
	}
	if a.Minute < 0 || a.Minute > 59 {
		bad = append(bad, "minute")
	}
	if a.CreatedAt.IsZero() {
		bad = append(bad, "created_at")
	}
	if a.UpdatedAt.IsZero() {
		bad = append(bad, "updated_at")
	}
	for _, day := range a.Repeat {
		if _, ok := weekdayNames[day]; !ok {
			bad = append(bad, "repeat")
			break
		}
	}

	if len(bad) > 0 {
		return &ValidationError{
			Fields:  bad,
			Message: "missing or invalid fields",
		}
	}
	return nil
}

// TimeOfDay returns the alarm time as "HH:MM" in 24-hour form.
func (a *Alarm) TimeOfDay() string {
	return fmt.Sprintf("%02d:%02d", a.Hour, a.Minute)
}

// Repeats reports whether the alarm recurs on at least one weekday.
func (a *Alarm) Repeats() bool {
	return len(a.Repeat) > 0
}

// RepeatsOn reports whether the alarm recurs on the given weekday.
func (a *Alarm) RepeatsOn(day time.Weekday) bool {
	for _, name := range a.Repeat {
		if weekdayNames[name] == day {
			return true
		}
	}
	return false
}

// NextOccurrence returns the next time the alarm would fire, strictly after
// now. One-shot alarms fire today if the time is still ahead, otherwise
// tomorrow. Repeating alarms fire on the next matching weekday.
func (a *Alarm) NextOccurrence(now time.Time) time.Time {
	candidate := time.Date(now.Year(), now.Month(), now.Day(), a.Hour, a.Minute, 0, 0, now.Location())

	if !a.Repeats() {
		if candidate.After(now) {
			return candidate
		}
		return candidate.AddDate(0, 0, 1)
	}

	for day := 0; day < 8; day++ {
		next := candidate.AddDate(0, 0, day)
		if next.After(now) && a.RepeatsOn(next.Weekday()) {
			return next
		}
	}
	// Unreachable for a validated alarm: a repeating alarm matches within 7 days.
	return time.Time{}
}

// ToJSON serializes the alarm to JSON.
func (a *Alarm) ToJSON() ([]byte, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("serializing alarm to JSON: %w", err)
	}
	return data, nil
}

// FromJSON deserializes an alarm from JSON.
// Returns ErrNotChimeAlarm if the data carries a different schema.
func FromJSON(data []byte) (*Alarm, error) {
	if len(data) == 0 {
		return nil, errors.New("empty JSON data")
	}

	var alarm Alarm
	if err := json.Unmarshal(data, &alarm); err != nil {
		return nil, fmt.Errorf("parsing alarm JSON: %w", err)
	}

	if alarm.Schema != SchemaVersion {
		return nil, fmt.Errorf("%w: schema %q", ErrNotChimeAlarm, alarm.Schema)
	}

	return &alarm, nil
}

// SortByTimeOfDay sorts alarms by hour, then minute, then label.
func SortByTimeOfDay(list []*Alarm) {
	slices.SortFunc(list, func(a, b *Alarm) int {
		if a.Hour != b.Hour {
			return a.Hour - b.Hour
		}
		if a.Minute != b.Minute {
			return a.Minute - b.Minute
		}
		return strings.Compare(a.Label, b.Label)
	})
}
