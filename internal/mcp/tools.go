package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/moon-mind/chime/internal/alarms"
)

// --- Shared types ---

// AlarmSummary is a simplified alarm for output.
type AlarmSummary struct {
	ID      string   `json:"id"               jsonschema:"alarm ID"`
	Time    string   `json:"time"             jsonschema:"time of day in HH:MM"`
	Label   string   `json:"label,omitempty"  jsonschema:"alarm label"`
	Enabled bool     `json:"enabled"          jsonschema:"whether the alarm is armed"`
	Repeat  []string `json:"repeat,omitempty" jsonschema:"repeat days (three-letter, mon first)"`
}

func toAlarmSummary(alarm *alarms.Alarm) AlarmSummary {
	return AlarmSummary{
		ID:      alarm.ID,
		Time:    alarm.TimeOfDay(),
		Label:   alarm.Label,
		Enabled: alarm.Enabled,
		Repeat:  alarm.Repeat,
	}
}

// --- Status tool ---

// StatusInput is the input for the status tool (no parameters needed).
type StatusInput struct{}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	AlarmsDir    string        `json:"alarms_dir"           jsonschema:"alarm storage directory"`
	AlarmCount   int           `json:"alarm_count"          jsonschema:"total number of alarms"`
	EnabledCount int           `json:"enabled_count"        jsonschema:"number of enabled alarms"`
	NextAlarm    *AlarmSummary `json:"next_alarm,omitempty" jsonschema:"the alarm firing soonest"`
	NextFiresAt  string        `json:"next_fires_at,omitempty" jsonschema:"when the next alarm fires (RFC 3339)"`
}

func handleStatus(store *alarms.Store) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		list, err := store.List()
		if err != nil {
			return nil, StatusOutput{}, fmt.Errorf("listing alarms: %w", err)
		}

		enabled := 0
		for _, alarm := range list {
			if alarm.Enabled {
				enabled++
			}
		}

		out := StatusOutput{
			AlarmsDir:    store.Dir(),
			AlarmCount:   len(list),
			EnabledCount: enabled,
		}

		next, at, err := store.Next(time.Now())
		if err != nil {
			return nil, StatusOutput{}, fmt.Errorf("finding next alarm: %w", err)
		}
		if next != nil {
			summary := toAlarmSummary(next)
			out.NextAlarm = &summary
			out.NextFiresAt = at.Format(time.RFC3339)
		}

		return nil, out, nil
	}
}

// --- List tool ---

// ListAlarmsInput is the input for the list_alarms tool (no parameters needed).
type ListAlarmsInput struct{}

// ListAlarmsOutput is the output for the list_alarms tool.
type ListAlarmsOutput struct {
	Count  int            `json:"count"            jsonschema:"total number of alarms"`
	Alarms []AlarmSummary `json:"alarms,omitempty" jsonschema:"alarms sorted by time of day"`
}

func handleListAlarms(store *alarms.Store) mcp.ToolHandlerFor[ListAlarmsInput, ListAlarmsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListAlarmsInput) (*mcp.CallToolResult, ListAlarmsOutput, error) {
		list, err := store.List()
		if err != nil {
			return nil, ListAlarmsOutput{}, fmt.Errorf("listing alarms: %w", err)
		}

		out := ListAlarmsOutput{Count: len(list)}
		for _, alarm := range list {
			out.Alarms = append(out.Alarms, toAlarmSummary(alarm))
		}
		return nil, out, nil
	}
}

// --- Next tool ---

// NextAlarmInput is the input for the next_alarm tool (no parameters needed).
type NextAlarmInput struct{}

// NextAlarmOutput is the output for the next_alarm tool.
type NextAlarmOutput struct {
	Alarm   *AlarmSummary `json:"alarm,omitempty"    jsonschema:"the alarm firing soonest"`
	FiresAt string        `json:"fires_at,omitempty" jsonschema:"when it fires (RFC 3339)"`
	Message string        `json:"message,omitempty"  jsonschema:"set when no enabled alarms exist"`
}

func handleNextAlarm(store *alarms.Store) mcp.ToolHandlerFor[NextAlarmInput, NextAlarmOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ NextAlarmInput) (*mcp.CallToolResult, NextAlarmOutput, error) {
		next, at, err := store.Next(time.Now())
		if err != nil {
			return nil, NextAlarmOutput{}, fmt.Errorf("finding next alarm: %w", err)
		}
		if next == nil {
			return nil, NextAlarmOutput{Message: "no enabled alarms"}, nil
		}

		summary := toAlarmSummary(next)
		return nil, NextAlarmOutput{
			Alarm:   &summary,
			FiresAt: at.Format(time.RFC3339),
		}, nil
	}
}

// --- Add tool ---

// AddAlarmInput is the input for the add_alarm tool.
type AddAlarmInput struct {
	Time     string `json:"time"               jsonschema:"time of day, 24-hour HH:MM or 12-hour like 7:30 PM"`
	Label    string `json:"label,omitempty"    jsonschema:"optional alarm label"`
	Repeat   string `json:"repeat,omitempty"   jsonschema:"repeat days: comma-separated day names, or daily/weekdays/weekends"`
	Disabled bool   `json:"disabled,omitempty" jsonschema:"create the alarm disarmed"`
}

// AddAlarmOutput is the output for the add_alarm tool.
type AddAlarmOutput struct {
	Alarm AlarmSummary `json:"alarm" jsonschema:"the created alarm"`
}

func handleAddAlarm(store *alarms.Store) mcp.ToolHandlerFor[AddAlarmInput, AddAlarmOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input AddAlarmInput) (*mcp.CallToolResult, AddAlarmOutput, error) {
		hour, minute, err := alarms.ParseClockTime(input.Time)
		if err != nil {
			return nil, AddAlarmOutput{}, err
		}

		alarm := alarms.New(hour, minute, strings.TrimSpace(input.Label), time.Now())
		if input.Repeat != "" {
			days, err := alarms.ParseRepeatDays(input.Repeat)
			if err != nil {
				return nil, AddAlarmOutput{}, err
			}
			alarm.Repeat = days
		}
		if input.Disabled {
			alarm.Enabled = false
		}

		if err := store.Add(alarm); err != nil {
			return nil, AddAlarmOutput{}, fmt.Errorf("adding alarm: %w", err)
		}
		return nil, AddAlarmOutput{Alarm: toAlarmSummary(alarm)}, nil
	}
}

// --- Toggle tool ---

// ToggleAlarmInput is the input for the toggle_alarm tool.
type ToggleAlarmInput struct {
	ID string `json:"id" jsonschema:"alarm ID to toggle"`
}

// ToggleAlarmOutput is the output for the toggle_alarm tool.
type ToggleAlarmOutput struct {
	Alarm AlarmSummary `json:"alarm" jsonschema:"the alarm after toggling"`
}

func handleToggleAlarm(store *alarms.Store) mcp.ToolHandlerFor[ToggleAlarmInput, ToggleAlarmOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ToggleAlarmInput) (*mcp.CallToolResult, ToggleAlarmOutput, error) {
		alarm, err := store.Toggle(input.ID, time.Now())
		if err != nil {
			return nil, ToggleAlarmOutput{}, fmt.Errorf("toggling alarm: %w", err)
		}
		return nil, ToggleAlarmOutput{Alarm: toAlarmSummary(alarm)}, nil
	}
}

// --- Remove tool ---

// RemoveAlarmInput is the input for the remove_alarm tool.
type RemoveAlarmInput struct {
	ID string `json:"id" jsonschema:"alarm ID to delete"`
}

// RemoveAlarmOutput is the output for the remove_alarm tool.
type RemoveAlarmOutput struct {
	Removed string `json:"removed" jsonschema:"ID of the deleted alarm"`
}

func handleRemoveAlarm(store *alarms.Store) mcp.ToolHandlerFor[RemoveAlarmInput, RemoveAlarmOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RemoveAlarmInput) (*mcp.CallToolResult, RemoveAlarmOutput, error) {
		if err := store.Remove(input.ID); err != nil {
			return nil, RemoveAlarmOutput{}, fmt.Errorf("removing alarm: %w", err)
		}
		return nil, RemoveAlarmOutput{Removed: input.ID}, nil
	}
}
