package alarms

import (
	"slices"
	"testing"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		input      string
		wantHour   int
		wantMinute int
		wantErr    bool
	}{
		{input: "07:30", wantHour: 7, wantMinute: 30},
		{input: "7:30", wantHour: 7, wantMinute: 30},
		{input: "19:05", wantHour: 19, wantMinute: 5},
		{input: "00:00", wantHour: 0, wantMinute: 0},
		{input: "23:59", wantHour: 23, wantMinute: 59},
		{input: "7:30am", wantHour: 7, wantMinute: 30},
		{input: "7:30 PM", wantHour: 19, wantMinute: 30},
		{input: "12:00am", wantHour: 0, wantMinute: 0},
		{input: "12:00pm", wantHour: 12, wantMinute: 0},
		{input: "11:15 pm", wantHour: 23, wantMinute: 15},
		{input: "24:00", wantErr: true},
		{input: "7:60", wantErr: true},
		{input: "13:00pm", wantErr: true},
		{input: "0:30am", wantErr: true},
		{input: "half past seven", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			hour, minute, err := ParseClockTime(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClockTime(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if hour != tt.wantHour || minute != tt.wantMinute {
				t.Errorf("ParseClockTime(%q) = %d:%d, want %d:%d",
					tt.input, hour, minute, tt.wantHour, tt.wantMinute)
			}
		})
	}
}

func TestParseRepeatDays(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{name: "empty", input: "", want: nil},
		{name: "single day", input: "mon", want: []string{"mon"}},
		{name: "full names", input: "monday,friday", want: []string{"mon", "fri"}},
		{name: "deduplicated and ordered", input: "fri,mon,fri", want: []string{"mon", "fri"}},
		{name: "weekdays alias", input: "weekdays", want: []string{"mon", "tue", "wed", "thu", "fri"}},
		{name: "weekends alias", input: "weekends", want: []string{"sat", "sun"}},
		{name: "daily alias", input: "daily", want: []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}},
		{name: "mixed case", input: "SAT,Sun", want: []string{"sat", "sun"}},
		{name: "unknown day", input: "mon,noday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRepeatDays(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRepeatDays(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseRepeatDays(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
