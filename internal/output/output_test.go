package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestPrinterSuccessJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	if err := p.Success(map[string]any{"message": "alarm set", "id": "al_1234"}); err != nil {
		t.Fatalf("Success() error: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["message"] != "alarm set" {
		t.Errorf("message = %v, want %q", result["message"], "alarm set")
	}
	if result["id"] != "al_1234" {
		t.Errorf("id = %v, want %q", result["id"], "al_1234")
	}
}

func TestPrinterSuccessHuman(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	if err := p.Success(map[string]any{"message": "alarm set for 07:30"}); err != nil {
		t.Fatalf("Success() error: %v", err)
	}
	if !strings.Contains(buf.String(), "alarm set for 07:30") {
		t.Errorf("human output missing message, got: %q", buf.String())
	}
}

func TestPrinterErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	p.Error(NewConflictError("alarm already exists: al_1234"))

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("error output is not valid JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["code"] != float64(ExitConflict) {
		t.Errorf("code = %v, want %d", result["code"], ExitConflict)
	}
}

func TestPrinterErrorUntyped(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	p.Error(errors.New("something broke"))

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("error output is not valid JSON: %v", err)
	}
	// Untyped errors default to user error
	if result["code"] != float64(ExitUserError) {
		t.Errorf("code = %v, want %d", result["code"], ExitUserError)
	}
}

func TestPrinterTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	p.Table(
		[]string{"ID", "Time", "Label"},
		[][]string{
			{"al_1234", "07:30", "wake up"},
			{"al_5678", "21:00", "wind down"},
		},
	)

	out := buf.String()
	for _, want := range []string{"ID", "al_1234", "07:30", "wind down"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q\nOutput: %s", want, out)
		}
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"user error", NewUserError("bad zone"), ExitUserError},
		{"system error", NewSystemError("socket failed"), ExitSystemError},
		{"conflict error", NewConflictError("exists"), ExitConflict},
		{"untyped error", errors.New("plain"), ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResolveColorMode(t *testing.T) {
	tests := []struct {
		mode  string
		isTTY bool
		want  bool
	}{
		{"never", true, false},
		{"always", false, true},
		{"auto", true, true},
		{"auto", false, false},
	}

	for _, tt := range tests {
		if got := ResolveColorMode(tt.mode, tt.isTTY); got != tt.want {
			t.Errorf("ResolveColorMode(%q, %v) = %v, want %v", tt.mode, tt.isTTY, got, tt.want)
		}
	}
}
