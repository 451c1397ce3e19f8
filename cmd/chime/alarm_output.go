// Package main provides the entry point for the chime CLI.
package main

import (
	"strings"
	"time"

	"github.com/moon-mind/chime/internal/alarms"
	"github.com/moon-mind/chime/internal/output"
)

// printAlarmTable renders alarms as a table.
func printAlarmTable(printer *output.Printer, list []*alarms.Alarm) {
	rows := make([][]string, 0, len(list))
	for _, alarm := range list {
		rows = append(rows, []string{
			alarm.ID,
			alarm.TimeOfDay(),
			alarm.Label,
			formatRepeat(alarm),
			formatEnabled(alarm.Enabled),
		})
	}
	printer.Table([]string{"ID", "TIME", "LABEL", "REPEAT", "STATE"}, rows)
}

// printAlarmDetail renders a single alarm with all fields.
func printAlarmDetail(printer *output.Printer, alarm *alarms.Alarm) {
	printer.Section("Alarm " + alarm.ID)
	printer.KeyValue("Time", alarm.TimeOfDay())
	if alarm.Label != "" {
		printer.KeyValue("Label", alarm.Label)
	}
	printer.KeyValue("Repeat", formatRepeat(alarm))
	printer.KeyValue("State", formatEnabled(alarm.Enabled))
	if alarm.Enabled {
		printer.KeyValue("Fires", alarm.NextOccurrence(time.Now()).Format("Mon Jan 2 15:04"))
	}
	printer.KeyValue("Created", alarm.CreatedAt.Format(time.RFC3339))
	printer.KeyValue("Updated", alarm.UpdatedAt.Format(time.RFC3339))
}

// formatRepeat renders repeat days for human output.
func formatRepeat(alarm *alarms.Alarm) string {
	if !alarm.Repeats() {
		return "once"
	}
	return strings.Join(alarm.Repeat, ",")
}

// formatEnabled renders the armed state for human output.
func formatEnabled(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
