package config

import (
	"path/filepath"
	"testing"
)

func TestDirExplicitOverride(t *testing.T) {
	t.Setenv("CHIME_CONFIG_HOME", "/tmp/custom-chime")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	if got := Dir(); got != "/tmp/custom-chime" {
		t.Errorf("Dir() = %q, want %q", got, "/tmp/custom-chime")
	}
}

func TestDirXDG(t *testing.T) {
	t.Setenv("CHIME_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	want := filepath.Join("/tmp/xdg", "chime")
	if got := Dir(); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestAlarmsDirUnderConfigDir(t *testing.T) {
	t.Setenv("CHIME_CONFIG_HOME", "/tmp/custom-chime")

	want := filepath.Join("/tmp/custom-chime", "alarms")
	if got := AlarmsDir(); got != want {
		t.Errorf("AlarmsDir() = %q, want %q", got, want)
	}
}
