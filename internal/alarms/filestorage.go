package alarms

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/moon-mind/chime/internal/output"
)

// FileStorage provides file-based storage for alarms.
// Each alarm is stored as a JSON file at <dir>/<alarm-id>.json.
type FileStorage struct {
	dir string
}

// NewFileStorage creates a FileStorage for the given directory.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

// Dir returns the storage directory path.
func (fs *FileStorage) Dir() string {
	return fs.dir
}

// DirExists returns true if the storage directory exists.
func (fs *FileStorage) DirExists() bool {
	info, err := os.Stat(fs.dir)
	return err == nil && info.IsDir()
}

// ListStats contains statistics about listing alarms.
type ListStats struct {
	Total       int // Total JSON files found
	Parsed      int // Successfully parsed as chime alarms
	Skipped     int // Skipped (foreign files or parse errors)
	Foreign     int // Specifically: valid JSON but wrong schema
	ParseErrors int // JSON parse failures
}

// alarmPath returns the file path for an alarm ID.
func (fs *FileStorage) alarmPath(id string) string {
	return filepath.Join(fs.dir, id+".json")
}

// ReadAlarm reads the alarm with the given ID.
// Returns a user error if the alarm file does not exist.
// Returns ErrNotChimeAlarm if the file is valid JSON but not a chime alarm.
func (fs *FileStorage) ReadAlarm(id string) (*Alarm, error) {
	path := fs.alarmPath(id)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, output.NewUserError("alarm not found: " + id)
		}
		return nil, output.NewSystemErrorWithCause("failed to read alarm file: "+path, err)
	}

	alarm, err := FromJSON(data)
	if err != nil {
		if errors.Is(err, ErrNotChimeAlarm) {
			return nil, err
		}
		return nil, output.NewUserError("failed to parse alarm: " + err.Error())
	}

	return alarm, nil
}

// ListAlarms returns all alarms in the storage directory.
// Files with parse errors are skipped.
// Returns an empty slice if the directory does not exist or is empty.
func (fs *FileStorage) ListAlarms() ([]*Alarm, error) {
	list, _, err := fs.ListAlarmsWithStats()
	return list, err
}

// ListAlarmsWithStats returns all alarms plus statistics about skipped files.
// Only .json files are considered; directories and other files are ignored.
func (fs *FileStorage) ListAlarmsWithStats() ([]*Alarm, *ListStats, error) {
	stats := &ListStats{}
	var list []*Alarm

	entries, err := os.ReadDir(fs.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ListStats{}, nil
		}
		return nil, nil, output.NewSystemErrorWithCause("failed to read storage directory", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		stats.Total++
		id := strings.TrimSuffix(entry.Name(), ".json")
		alarm, readErr := fs.ReadAlarm(id)
		if readErr != nil {
			stats.Skipped++
			if errors.Is(readErr, ErrNotChimeAlarm) {
				stats.Foreign++
			} else {
				stats.ParseErrors++
			}
			continue
		}
		list = append(list, alarm)
		stats.Parsed++
	}

	return list, stats, nil
}

// WriteAlarm writes an alarm to the storage directory.
// Validates the alarm before writing. Uses write-to-temp-then-rename
// for atomicity.
// If force is false and the alarm file already exists, returns a conflict
// error. If force is true, overwrites any existing file.
func (fs *FileStorage) WriteAlarm(alarm *Alarm, force bool) error {
	if err := alarm.Validate(); err != nil {
		return output.NewUserError(err.Error())
	}

	path := fs.alarmPath(alarm.ID)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return output.NewConflictError("alarm already exists: " + alarm.ID)
		}
	}

	data, err := alarm.ToJSON()
	if err != nil {
		return output.NewSystemError("failed to serialize alarm: " + err.Error())
	}

	if err = os.MkdirAll(fs.dir, 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create storage directory", err)
	}

	if err = atomicWrite(path, data); err != nil {
		return output.NewSystemErrorWithCause("failed to write alarm", err)
	}

	return nil
}

// DeleteAlarm removes the alarm file for the given ID.
// Returns a user error if the alarm does not exist.
func (fs *FileStorage) DeleteAlarm(id string) error {
	err := os.Remove(fs.alarmPath(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return output.NewUserError("alarm not found: " + id)
		}
		return output.NewSystemErrorWithCause("failed to delete alarm", err)
	}
	return nil
}

// AlarmExists returns true if an alarm file exists for the given ID.
func (fs *FileStorage) AlarmExists(id string) bool {
	_, err := os.Stat(fs.alarmPath(id))
	return err == nil
}

// atomicWrite writes data to path using write-to-temp-then-rename.
// The temp file is created in the same directory as path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
