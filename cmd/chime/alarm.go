// Package main provides the entry point for the chime CLI.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/moon-mind/chime/internal/alarms"
	"github.com/moon-mind/chime/internal/notify"
	"github.com/moon-mind/chime/internal/output"
)

// newAlarmCmd creates the alarm command with its subcommands.
func newAlarmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alarm",
		Short: "Manage alarms",
		Long: `Manage alarms fired by the chime daemon.

Alarms are stored as one JSON file each under the chime config directory.
A running 'chime daemon' fires them with a desktop notification; one-shot
alarms disable themselves after ringing, repeating alarms stay armed.

Examples:
  chime alarm add 07:30 --label "wake up" --repeat weekdays
  chime alarm add "9:15 PM"
  chime alarm list
  chime alarm toggle al_1a2b3c4d
  chime alarm remove al_1a2b3c4d`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAlarmList(cmd)
		},
	}
	cmd.AddCommand(newAlarmAddCmd())
	cmd.AddCommand(newAlarmListCmd())
	cmd.AddCommand(newAlarmShowCmd())
	cmd.AddCommand(newAlarmEditCmd())
	cmd.AddCommand(newAlarmRemoveCmd())
	cmd.AddCommand(newAlarmToggleCmd())
	return cmd
}

func newAlarmAddCmd() *cobra.Command {
	var labelFlag, repeatFlag string
	var disabledFlag, quietFlag bool

	cmd := &cobra.Command{
		Use:   "add <time>",
		Short: "Create a new alarm",
		Long: `Create a new alarm at a time of day.

The time accepts 24-hour (07:30, 19:05) and 12-hour (7:30 AM, 9 PM is not
supported, minutes are required) forms. Repeat days accept comma-separated
day names plus the shorthands daily, weekdays, and weekends.

Examples:
  chime alarm add 07:30
  chime alarm add "7:30 PM" --label dinner
  chime alarm add 06:45 --repeat mon,wed,fri
  chime alarm add 10:00 --repeat weekends --disabled`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlarmAdd(cmd, args[0], labelFlag, repeatFlag, disabledFlag, quietFlag)
		},
	}
	cmd.Flags().StringVarP(&labelFlag, "label", "l", "", "Label shown when the alarm fires")
	cmd.Flags().StringVarP(&repeatFlag, "repeat", "r", "", "Repeat days (mon,tue,... or daily/weekdays/weekends)")
	cmd.Flags().BoolVar(&disabledFlag, "disabled", false, "Create the alarm disarmed")
	cmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Skip the confirmation notification")
	return cmd
}

func newAlarmListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List alarms sorted by time of day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAlarmList(cmd)
		},
	}
}

func newAlarmShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Display a single alarm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlarmShow(cmd, args[0])
		},
	}
}

func newAlarmEditCmd() *cobra.Command {
	var timeFlag, labelFlag, repeatFlag string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Modify an existing alarm",
		Long: `Modify an existing alarm. Only the given flags change.

Pass --repeat "" to turn a repeating alarm into a one-shot.

Examples:
  chime alarm edit al_1a2b3c4d --time 08:00
  chime alarm edit al_1a2b3c4d --label "school run" --repeat weekdays`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlarmEdit(cmd, args[0], timeFlag, labelFlag, repeatFlag)
		},
	}
	cmd.Flags().StringVarP(&timeFlag, "time", "t", "", "New time of day")
	cmd.Flags().StringVarP(&labelFlag, "label", "l", "", "New label")
	cmd.Flags().StringVarP(&repeatFlag, "repeat", "r", "", "New repeat days")
	return cmd
}

func newAlarmRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete an alarm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlarmRemove(cmd, args[0])
		},
	}
}

func newAlarmToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Arm or disarm an alarm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlarmToggle(cmd, args[0])
		},
	}
}

// runAlarmAdd executes the alarm add command.
func runAlarmAdd(cmd *cobra.Command, timeArg, label, repeat string, disabled, quiet bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	hour, minute, err := alarms.ParseClockTime(timeArg)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	alarm := alarms.New(hour, minute, strings.TrimSpace(label), time.Now())
	if repeat != "" {
		days, err := alarms.ParseRepeatDays(repeat)
		if err != nil {
			userErr := output.NewUserError(err.Error())
			printer.Error(userErr)
			return userErr
		}
		alarm.Repeat = days
	}
	if disabled {
		alarm.Enabled = false
	}

	store := alarms.NewDefaultStore()
	if err := store.Add(alarm); err != nil {
		printer.Error(err)
		return err
	}

	// Confirmation notification, best effort.
	if !quiet && alarm.Enabled {
		_ = notify.NewDesktop("chime", false).AlarmSet(alarm.TimeOfDay())
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"alarm": alarm})
	}

	next := alarm.NextOccurrence(time.Now())
	printer.Success(map[string]any{
		"message": fmt.Sprintf("Alarm %s set for %s", alarm.ID, alarm.TimeOfDay()),
	})
	if alarm.Enabled {
		printer.KeyValue("Fires", next.Format("Mon Jan 2 15:04"))
	} else {
		printer.KeyValue("State", "disabled")
	}
	return nil
}

// runAlarmList executes the alarm list command.
func runAlarmList(cmd *cobra.Command) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	store := alarms.NewDefaultStore()
	list, stats, err := store.ListWithStats()
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"count":  len(list),
			"alarms": list,
		})
	}

	if len(list) == 0 {
		printer.Println("No alarms. Create one with 'chime alarm add <time>'.")
		return nil
	}

	printAlarmTable(printer, list)
	if stats.Skipped > 0 {
		printer.Warn("skipped %d unreadable file(s) in %s", stats.Skipped, store.Dir())
	}
	return nil
}

// runAlarmShow executes the alarm show command.
func runAlarmShow(cmd *cobra.Command, id string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	store := alarms.NewDefaultStore()
	alarm, err := store.Get(id)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"alarm": alarm})
	}

	printAlarmDetail(printer, alarm)
	return nil
}

// runAlarmEdit executes the alarm edit command.
func runAlarmEdit(cmd *cobra.Command, id, timeArg, label, repeat string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	if timeArg == "" && !cmd.Flags().Changed("label") && !cmd.Flags().Changed("repeat") {
		userErr := output.NewUserError("nothing to change: pass --time, --label, or --repeat")
		printer.Error(userErr)
		return userErr
	}

	store := alarms.NewDefaultStore()
	alarm, err := store.Get(id)
	if err != nil {
		printer.Error(err)
		return err
	}

	if timeArg != "" {
		hour, minute, err := alarms.ParseClockTime(timeArg)
		if err != nil {
			userErr := output.NewUserError(err.Error())
			printer.Error(userErr)
			return userErr
		}
		alarm.Hour = hour
		alarm.Minute = minute
	}
	if cmd.Flags().Changed("label") {
		alarm.Label = strings.TrimSpace(label)
	}
	if cmd.Flags().Changed("repeat") {
		if repeat == "" {
			alarm.Repeat = nil
		} else {
			days, err := alarms.ParseRepeatDays(repeat)
			if err != nil {
				userErr := output.NewUserError(err.Error())
				printer.Error(userErr)
				return userErr
			}
			alarm.Repeat = days
		}
	}

	if err := store.Update(alarm, time.Now()); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"alarm": alarm})
	}
	return printer.Success(map[string]any{
		"message": fmt.Sprintf("Updated alarm %s", alarm.ID),
	})
}

// runAlarmRemove executes the alarm remove command.
func runAlarmRemove(cmd *cobra.Command, id string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	store := alarms.NewDefaultStore()
	if err := store.Remove(id); err != nil {
		printer.Error(err)
		return err
	}

	return printer.Success(map[string]any{
		"message": fmt.Sprintf("Removed alarm %s", id),
		"removed": id,
	})
}

// runAlarmToggle executes the alarm toggle command.
func runAlarmToggle(cmd *cobra.Command, id string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	store := alarms.NewDefaultStore()
	alarm, err := store.Toggle(id, time.Now())
	if err != nil {
		printer.Error(err)
		return err
	}

	state := "disabled"
	if alarm.Enabled {
		state = "enabled"
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"alarm": alarm})
	}
	return printer.Success(map[string]any{
		"message": fmt.Sprintf("Alarm %s is now %s", alarm.ID, state),
	})
}
