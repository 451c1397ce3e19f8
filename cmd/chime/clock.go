// Package main provides the entry point for the chime CLI.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/moon-mind/chime/internal/clock"
	"github.com/moon-mind/chime/internal/config"
	"github.com/moon-mind/chime/internal/output"
)

// clockRow holds one zone reading for JSON output.
type clockRow struct {
	Zone   string `json:"zone"`
	Label  string `json:"label"`
	Time   string `json:"time"`
	Offset string `json:"offset"`
	Day    string `json:"day"`
}

// newClockCmd creates the clock command.
func newClockCmd() *cobra.Command {
	var zoneFlags []string
	var formatFlag string
	var watchFlag bool

	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Show the current time across zones",
		Long: `Show the current time in one or more time zones.

Without --zone, shows the zones configured via 'chime zones add', or the
local time when none are configured. Zones are sorted by UTC offset.

Examples:
  chime clock                          # Configured zones (or local time)
  chime clock --zone Europe/Berlin     # One specific zone
  chime clock -z UTC -z Asia/Tokyo     # Several zones
  chime clock --watch                  # Refresh every second until Ctrl+C
  chime clock --json                   # Machine-readable readings`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClock(cmd, zoneFlags, formatFlag, watchFlag)
		},
	}
	cmd.Flags().StringArrayVarP(&zoneFlags, "zone", "z", nil, "IANA zone to display (repeatable)")
	cmd.Flags().StringVar(&formatFlag, "format", "", "Clock format: 24h or 12h (defaults to settings)")
	cmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Redraw every second until interrupted")
	return cmd
}

// runClock executes the clock command.
func runClock(cmd *cobra.Command, zoneNames []string, format string, watch bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	settings, err := config.LoadSettings(config.Dir())
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("loading settings", err)
		printer.Error(sysErr)
		return sysErr
	}

	if format == "" {
		format = settings.ClockFormat
	}
	if format != "24h" && format != "12h" {
		userErr := output.NewUserError(fmt.Sprintf("invalid format %q: must be 24h or 12h", format))
		printer.Error(userErr)
		return userErr
	}

	zones := resolveZoneArgs(zoneNames, settings)

	if watch && !printer.IsJSON() {
		return watchClock(cmd, printer, zones, format)
	}

	readings, err := clock.Take(time.Now(), zones)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"format":   format,
			"readings": toClockRows(readings, format),
		})
	}

	printReadings(printer, readings, format)
	return nil
}

// resolveZoneArgs converts --zone flags (or configured settings) to clock zones.
func resolveZoneArgs(zoneNames []string, settings *config.Settings) []clock.Zone {
	if len(zoneNames) > 0 {
		zones := make([]clock.Zone, 0, len(zoneNames))
		for _, name := range zoneNames {
			zones = append(zones, clock.Zone{Name: name})
		}
		return zones
	}

	zones := make([]clock.Zone, 0, len(settings.Zones))
	for _, z := range settings.Zones {
		zones = append(zones, clock.Zone{Name: z.Name, Label: z.Label})
	}
	return zones
}

// watchClock redraws the clock table every second until the context ends.
func watchClock(cmd *cobra.Command, printer *output.Printer, zones []clock.Zone, format string) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		readings, err := clock.Take(time.Now(), zones)
		if err != nil {
			userErr := output.NewUserError(err.Error())
			printer.Error(userErr)
			return userErr
		}

		// Clear screen and move the cursor home before each redraw.
		printer.Print("\x1b[2J\x1b[H")
		printReadings(printer, readings, format)

		select {
		case <-cmd.Context().Done():
			return nil
		case <-ticker.C:
		}
	}
}

// printReadings renders the readings as a table.
func printReadings(printer *output.Printer, readings []clock.Reading, format string) {
	rows := make([][]string, 0, len(readings))
	for _, r := range readings {
		rows = append(rows, []string{
			r.Zone.Label,
			printer.Display(clock.FormatWallClock(r.Time, format)),
			clock.FormatOffset(r.OffsetSeconds),
			clock.DayLabel(r.DayDelta),
		})
	}
	printer.Table([]string{"ZONE", "TIME", "OFFSET", "DAY"}, rows)
}

// toClockRows converts readings to the JSON row shape.
func toClockRows(readings []clock.Reading, format string) []clockRow {
	rows := make([]clockRow, 0, len(readings))
	for _, r := range readings {
		rows = append(rows, clockRow{
			Zone:   r.Zone.Name,
			Label:  r.Zone.Label,
			Time:   clock.FormatWallClock(r.Time, format),
			Offset: clock.FormatOffset(r.OffsetSeconds),
			Day:    clock.DayLabel(r.DayDelta),
		})
	}
	return rows
}
