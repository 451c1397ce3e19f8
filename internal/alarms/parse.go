package alarms

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// clockTimeRegex matches 24-hour and 12-hour clock times:
// "7:30", "07:30", "19:05", "7:30am", "11:15 PM".
var clockTimeRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(?i:(am|pm))?$`)

// ParseClockTime parses a wall-clock time into hour and minute.
// Accepts:
//   - 24-hour: "07:30", "19:05"
//   - 12-hour: "7:30am", "11:15 PM" (12am is midnight, 12pm is noon)
func ParseClockTime(value string) (hour, minute int, err error) {
	matches := clockTimeRegex.FindStringSubmatch(strings.TrimSpace(value))
	if matches == nil {
		return 0, 0, fmt.Errorf("invalid time %q; use HH:MM or H:MMam/pm", value)
	}

	hour, _ = strconv.Atoi(matches[1])
	minute, _ = strconv.Atoi(matches[2])
	meridiem := strings.ToLower(matches[3])

	if minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", value)
	}

	switch meridiem {
	case "":
		if hour > 23 {
			return 0, 0, fmt.Errorf("invalid hour in %q", value)
		}
	case "am":
		if hour < 1 || hour > 12 {
			return 0, 0, fmt.Errorf("invalid hour in %q", value)
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, 0, fmt.Errorf("invalid hour in %q", value)
		}
		if hour != 12 {
			hour += 12
		}
	}

	return hour, minute, nil
}

// repeatAliases expands shorthand repeat specs to day lists.
var repeatAliases = map[string][]string{
	"daily":    {"mon", "tue", "wed", "thu", "fri", "sat", "sun"},
	"weekdays": {"mon", "tue", "wed", "thu", "fri"},
	"weekends": {"sat", "sun"},
}

// canonicalDayOrder lists day names in display order, Monday first.
var canonicalDayOrder = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// ParseRepeatDays parses a repeat specification into canonical day names.
// Accepts a comma-separated day list ("mon,wed,fri"), full day names
// ("monday"), or the aliases "daily", "weekdays", "weekends".
// Returns days deduplicated, in Monday-first order.
func ParseRepeatDays(spec string) ([]string, error) {
	spec = strings.ToLower(strings.TrimSpace(spec))
	if spec == "" {
		return nil, nil
	}

	if days, ok := repeatAliases[spec]; ok {
		return days, nil
	}

	seen := make(map[string]bool)
	for _, part := range strings.Split(spec, ",") {
		day := strings.TrimSpace(part)
		if len(day) > 3 {
			day = day[:3]
		}
		if _, ok := weekdayNames[day]; !ok {
			return nil, fmt.Errorf("unknown day %q; use mon..sun, daily, weekdays, or weekends", strings.TrimSpace(part))
		}
		seen[day] = true
	}

	var days []string
	for _, day := range canonicalDayOrder {
		if seen[day] {
			days = append(days, day)
		}
	}
	return days, nil
}
