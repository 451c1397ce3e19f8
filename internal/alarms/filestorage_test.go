package alarms

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/moon-mind/chime/internal/output"
)

func TestFileStorageRoundTrip(t *testing.T) {
	fs := NewFileStorage(t.TempDir())
	alarm := validAlarm()

	if err := fs.WriteAlarm(alarm, false); err != nil {
		t.Fatalf("WriteAlarm() error: %v", err)
	}

	got, err := fs.ReadAlarm(alarm.ID)
	if err != nil {
		t.Fatalf("ReadAlarm() error: %v", err)
	}
	if got.ID != alarm.ID || got.Hour != alarm.Hour || got.Label != alarm.Label {
		t.Errorf("ReadAlarm() = %+v, want %+v", got, alarm)
	}
}

func TestFileStorageWriteConflict(t *testing.T) {
	fs := NewFileStorage(t.TempDir())
	alarm := validAlarm()

	if err := fs.WriteAlarm(alarm, false); err != nil {
		t.Fatalf("first WriteAlarm() error: %v", err)
	}

	err := fs.WriteAlarm(alarm, false)
	if err == nil {
		t.Fatal("expected conflict error for duplicate write")
	}
	if output.GetExitCode(err) != output.ExitConflict {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitConflict)
	}

	// Force overwrites.
	alarm.Label = "updated"
	if err := fs.WriteAlarm(alarm, true); err != nil {
		t.Fatalf("forced WriteAlarm() error: %v", err)
	}
	got, err := fs.ReadAlarm(alarm.ID)
	if err != nil {
		t.Fatalf("ReadAlarm() error: %v", err)
	}
	if got.Label != "updated" {
		t.Errorf("Label = %q, want %q", got.Label, "updated")
	}
}

func TestFileStorageRejectsInvalidAlarm(t *testing.T) {
	fs := NewFileStorage(t.TempDir())
	alarm := validAlarm()
	alarm.Hour = 99

	if err := fs.WriteAlarm(alarm, false); err == nil {
		t.Fatal("expected validation error for hour 99")
	}
}

func TestFileStorageReadMissing(t *testing.T) {
	fs := NewFileStorage(t.TempDir())

	_, err := fs.ReadAlarm("al_missing")
	if err == nil {
		t.Fatal("expected error for missing alarm")
	}
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
	}
}

func TestFileStorageListSkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStorage(dir)

	if err := fs.WriteAlarm(validAlarm(), false); err != nil {
		t.Fatalf("WriteAlarm() error: %v", err)
	}

	// A JSON file from some other tool, and a broken file.
	foreign := []byte(`{"schema":"other.app/v1","data":42}`)
	if err := os.WriteFile(filepath.Join(dir, "foreign.json"), foreign, 0o644); err != nil {
		t.Fatalf("writing foreign file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{nope"), 0o644); err != nil {
		t.Fatalf("writing broken file: %v", err)
	}

	list, stats, err := fs.ListAlarmsWithStats()
	if err != nil {
		t.Fatalf("ListAlarmsWithStats() error: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("len(list) = %d, want 1", len(list))
	}
	if stats.Total != 3 || stats.Parsed != 1 || stats.Skipped != 2 {
		t.Errorf("stats = %+v, want Total 3 Parsed 1 Skipped 2", stats)
	}
	if stats.Foreign != 1 || stats.ParseErrors != 1 {
		t.Errorf("stats = %+v, want Foreign 1 ParseErrors 1", stats)
	}
}

func TestFileStorageListMissingDir(t *testing.T) {
	fs := NewFileStorage(filepath.Join(t.TempDir(), "does-not-exist"))

	list, err := fs.ListAlarms()
	if err != nil {
		t.Fatalf("ListAlarms() error: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("len(list) = %d, want 0", len(list))
	}
}

func TestFileStorageDelete(t *testing.T) {
	fs := NewFileStorage(t.TempDir())
	alarm := validAlarm()

	if err := fs.WriteAlarm(alarm, false); err != nil {
		t.Fatalf("WriteAlarm() error: %v", err)
	}
	if err := fs.DeleteAlarm(alarm.ID); err != nil {
		t.Fatalf("DeleteAlarm() error: %v", err)
	}
	if fs.AlarmExists(alarm.ID) {
		t.Error("alarm still exists after delete")
	}

	err := fs.DeleteAlarm(alarm.ID)
	var exitErr *output.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != output.ExitUserError {
		t.Errorf("second delete error = %v, want user error", err)
	}
}
