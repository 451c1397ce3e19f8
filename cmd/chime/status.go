// Package main provides the entry point for the chime CLI.
package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/moon-mind/chime/internal/alarms"
	"github.com/moon-mind/chime/internal/bridge"
	"github.com/moon-mind/chime/internal/output"
)

// statusResult holds the data for status output.
type statusResult struct {
	DaemonRunning bool       `json:"daemon_running"`
	PID           int        `json:"pid,omitempty"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	AlarmCount    int        `json:"alarm_count"`
	EnabledCount  int        `json:"enabled_count"`
	NextID        string     `json:"next_id,omitempty"`
	NextLabel     string     `json:"next_label,omitempty"`
	NextFiresAt   *time.Time `json:"next_fires_at,omitempty"`
}

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daemon and alarm state",
		Long: `Show whether the alarm daemon is running and what it will fire next.

Queries the daemon over its control socket. When no daemon is running,
falls back to reading the alarm store directly.

Examples:
  chime status
  chime status --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd)
		},
	}
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	result, err := gatherStatus()
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printHumanStatus(printer, result)
	return nil
}

// gatherStatus queries the daemon, falling back to the store when it is
// not running.
func gatherStatus() (*statusResult, error) {
	client := bridge.NewClient()
	if daemonStatus, err := client.Status(); err == nil {
		result := &statusResult{
			DaemonRunning: true,
			PID:           daemonStatus.PID,
			StartedAt:     &daemonStatus.StartedAt,
			AlarmCount:    daemonStatus.AlarmCount,
			EnabledCount:  daemonStatus.EnabledCount,
		}
		if daemonStatus.NextAlarm != nil {
			result.NextID = daemonStatus.NextAlarm.ID
			result.NextLabel = daemonStatus.NextAlarm.Label
			result.NextFiresAt = &daemonStatus.NextAlarm.FiresAt
		}
		return result, nil
	}

	// No daemon: read the store directly.
	store := alarms.NewDefaultStore()
	list, err := store.List()
	if err != nil {
		return nil, err
	}

	result := &statusResult{AlarmCount: len(list)}
	for _, alarm := range list {
		if alarm.Enabled {
			result.EnabledCount++
		}
	}

	next, at, err := store.Next(time.Now())
	if err != nil {
		return nil, err
	}
	if next != nil {
		result.NextID = next.ID
		result.NextLabel = next.Label
		result.NextFiresAt = &at
	}
	return result, nil
}

// printHumanStatus outputs status in human-readable format.
func printHumanStatus(printer *output.Printer, result *statusResult) {
	printer.Section("Daemon")
	printer.KeyValue("Running", formatBool(result.DaemonRunning))
	if result.DaemonRunning {
		printer.KeyValue("PID", strconv.Itoa(result.PID))
		printer.KeyValue("Started", result.StartedAt.Format(time.RFC3339))
	} else {
		printer.Println("Start it with 'chime daemon' to have alarms fire.")
	}

	printer.Section("Alarms")
	printer.KeyValue("Total", strconv.Itoa(result.AlarmCount))
	printer.KeyValue("Enabled", strconv.Itoa(result.EnabledCount))
	if result.NextFiresAt != nil {
		label := result.NextLabel
		if label == "" {
			label = result.NextID
		}
		printer.KeyValue("Next", label+" at "+result.NextFiresAt.Format("Mon Jan 2 15:04"))
	}
}

// formatBool returns a human-readable boolean string.
func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
