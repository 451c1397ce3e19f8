package main

import (
	"testing"
	"time"
)

func TestParseTimerDuration(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"5", 5 * time.Minute, false},
		{"25", 25 * time.Minute, false},
		{"90s", 90 * time.Second, false},
		{"1h30m", 90 * time.Minute, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"-10s", 0, true},
		{"soon", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := parseTimerDuration(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseTimerDuration(%q) expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseTimerDuration(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseTimerDuration(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFormatClockDuration(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{0, "00:00"},
		{9 * time.Second, "00:09"},
		{5 * time.Minute, "05:00"},
		{61 * time.Second, "01:01"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
		{-time.Second, "00:00"},
	}

	for _, tt := range tests {
		if got := formatClockDuration(tt.input); got != tt.want {
			t.Errorf("formatClockDuration(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
