package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDoctorJSON(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, "doctor", "--json")
	if err != nil {
		t.Fatalf("doctor error: %v\noutput: %s", err, out)
	}

	var result struct {
		Core    []checkResult `json:"core"`
		Alarms  []checkResult `json:"alarms"`
		Daemon  []checkResult `json:"daemon"`
		Summary struct {
			Passed   int `json:"passed"`
			Warnings int `json:"warnings"`
			Failed   int `json:"failed"`
		} `json:"summary"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("parsing doctor output: %v\noutput: %s", err, out)
	}

	if len(result.Core) == 0 || len(result.Alarms) == 0 || len(result.Daemon) == 0 {
		t.Errorf("doctor categories missing: %+v", result)
	}
	total := result.Summary.Passed + result.Summary.Warnings + result.Summary.Failed
	if total != len(result.Core)+len(result.Alarms)+len(result.Daemon) {
		t.Errorf("summary counts %d do not match checks", total)
	}
	// No daemon running in tests, so at least one warning.
	if result.Summary.Warnings == 0 {
		t.Error("expected a warning for the missing daemon")
	}
}

func TestDoctorHuman(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, "doctor")
	if err != nil {
		t.Fatalf("doctor error: %v", err)
	}
	for _, section := range []string{"CORE", "ALARMS", "DAEMON", "passed"} {
		if !strings.Contains(out, section) {
			t.Errorf("doctor output missing %q: %q", section, out)
		}
	}
}
