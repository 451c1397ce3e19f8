package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestClockCommandExplicitZones(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, "clock", "--zone", "UTC", "--zone", "Asia/Tokyo", "--json")
	if err != nil {
		t.Fatalf("clock error: %v\noutput: %s", err, out)
	}

	var result struct {
		Format   string `json:"format"`
		Readings []struct {
			Zone   string `json:"zone"`
			Offset string `json:"offset"`
		} `json:"readings"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("parsing clock output: %v\noutput: %s", err, out)
	}

	if result.Format != "24h" {
		t.Errorf("format = %q, want 24h", result.Format)
	}
	if len(result.Readings) != 2 {
		t.Fatalf("readings = %d, want 2", len(result.Readings))
	}
	// Sorted by offset: UTC before Tokyo.
	if result.Readings[0].Zone != "UTC" || result.Readings[1].Zone != "Asia/Tokyo" {
		t.Errorf("order = %s, %s; want UTC then Asia/Tokyo", result.Readings[0].Zone, result.Readings[1].Zone)
	}
	if result.Readings[1].Offset != "UTC+09:00" {
		t.Errorf("Tokyo offset = %q, want UTC+09:00", result.Readings[1].Offset)
	}
}

func TestClockCommandUnknownZone(t *testing.T) {
	isolateConfig(t)

	if _, err := execute(t, "clock", "--zone", "Mars/Olympus_Mons"); err == nil {
		t.Fatal("expected error for unknown zone")
	}
}

func TestClockCommandBadFormat(t *testing.T) {
	isolateConfig(t)

	if _, err := execute(t, "clock", "--format", "48h"); err == nil {
		t.Fatal("expected error for invalid format")
	}
}

func TestClockCommandLocalFallback(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, "clock", "--json")
	if err != nil {
		t.Fatalf("clock error: %v", err)
	}
	if !strings.Contains(out, "Local") {
		t.Errorf("output missing local fallback: %q", out)
	}
}

func TestClockCommandUsesConfiguredZones(t *testing.T) {
	isolateConfig(t)

	if _, err := execute(t, "zones", "add", "Europe/Berlin", "--label", "Berlin"); err != nil {
		t.Fatalf("zones add error: %v", err)
	}

	out, err := execute(t, "clock", "--json")
	if err != nil {
		t.Fatalf("clock error: %v", err)
	}
	if !strings.Contains(out, "Europe/Berlin") {
		t.Errorf("output missing configured zone: %q", out)
	}
}
