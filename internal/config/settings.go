package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// settingsFile is the name of the settings file inside the config dir.
const settingsFile = "settings.yaml"

// DefaultTimerDuration is the countdown duration used when none is configured.
const DefaultTimerDuration = 5 * time.Minute

// ZoneSetting is a world-clock zone the user wants displayed.
type ZoneSetting struct {
	Name  string `yaml:"name"`            // IANA zone name, e.g. "Europe/Berlin"
	Label string `yaml:"label,omitempty"` // display label, defaults to the name
}

// Settings holds user preferences that persist between runs.
type Settings struct {
	ClockFormat  string        `yaml:"clock_format,omitempty"`  // "24h" or "12h"
	TimerDefault string        `yaml:"timer_default,omitempty"` // Go duration string, e.g. "5m"
	Zones        []ZoneSetting `yaml:"zones,omitempty"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() *Settings {
	return &Settings{
		ClockFormat:  "24h",
		TimerDefault: "5m",
	}
}

// LoadSettings reads settings from dir. A missing file yields defaults;
// unknown keys are ignored. Invalid YAML or an invalid clock format is
// an error.
func LoadSettings(dir string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(filepath.Join(dir, settingsFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}

	if settings.ClockFormat == "" {
		settings.ClockFormat = "24h"
	}
	if settings.ClockFormat != "24h" && settings.ClockFormat != "12h" {
		return nil, fmt.Errorf("invalid clock_format %q: must be \"24h\" or \"12h\"", settings.ClockFormat)
	}
	if settings.TimerDefault == "" {
		settings.TimerDefault = "5m"
	}

	return settings, nil
}

// Save writes settings to dir, creating it if needed.
func (s *Settings) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("serializing settings: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, settingsFile), data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// TimerDuration parses the configured default timer duration.
// Falls back to DefaultTimerDuration on a malformed value.
func (s *Settings) TimerDuration() time.Duration {
	d, err := time.ParseDuration(s.TimerDefault)
	if err != nil || d <= 0 {
		return DefaultTimerDuration
	}
	return d
}
