// Package clock computes world-clock readings across time zones.
package clock

import (
	"fmt"
	"slices"
	"time"
)

// Zone is a time zone the user wants displayed.
type Zone struct {
	Name  string // IANA zone name, e.g. "Asia/Tokyo"
	Label string // display label, defaults to the name
}

// Reading is the wall-clock state of one zone at a reference instant.
type Reading struct {
	Zone          Zone
	Time          time.Time // the instant expressed in the zone
	OffsetSeconds int       // UTC offset at that instant
	DayDelta      int       // calendar-day difference to the reference zone
}

// Resolve loads the IANA location for a zone name.
func Resolve(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q", name)
	}
	return loc, nil
}

// Take computes readings for all zones at the given instant, sorted by UTC
// offset (westmost first). The day delta is relative to the instant's own
// location. An empty zone list falls back to the local zone.
func Take(now time.Time, zones []Zone) ([]Reading, error) {
	if len(zones) == 0 {
		zones = []Zone{{Name: "Local", Label: "Local"}}
	}

	readings := make([]Reading, 0, len(zones))
	for _, zone := range zones {
		loc := time.Local
		if zone.Name != "Local" {
			var err error
			loc, err = Resolve(zone.Name)
			if err != nil {
				return nil, err
			}
		}

		inZone := now.In(loc)
		_, offset := inZone.Zone()
		readings = append(readings, Reading{
			Zone:          labeled(zone),
			Time:          inZone,
			OffsetSeconds: offset,
			DayDelta:      dayDelta(now, inZone),
		})
	}

	slices.SortStableFunc(readings, func(a, b Reading) int {
		return a.OffsetSeconds - b.OffsetSeconds
	})
	return readings, nil
}

// labeled fills in a default label.
func labeled(zone Zone) Zone {
	if zone.Label == "" {
		zone.Label = zone.Name
	}
	return zone
}

// dayDelta returns the calendar-day difference between a zone's wall clock
// and the reference instant's wall clock.
func dayDelta(ref, inZone time.Time) int {
	refDay := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	zoneDay := time.Date(inZone.Year(), inZone.Month(), inZone.Day(), 0, 0, 0, 0, time.UTC)
	return int(zoneDay.Sub(refDay).Hours() / 24)
}

// DayLabel renders a day delta for display.
func DayLabel(delta int) string {
	switch delta {
	case -1:
		return "Yesterday"
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("%+dd", delta)
	}
}

// FormatWallClock renders a time in the configured clock format
// ("24h" or "12h").
func FormatWallClock(t time.Time, format string) string {
	if format == "12h" {
		return t.Format("3:04:05 PM")
	}
	return t.Format("15:04:05")
}

// FormatOffset renders a UTC offset in "UTC+09:00" form.
func FormatOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}
