// Package main provides the entry point for the chime CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/moon-mind/chime/internal/alarms"
	"github.com/moon-mind/chime/internal/bridge"
	"github.com/moon-mind/chime/internal/config"
)

// runCoreChecks performs core infrastructure checks.
func runCoreChecks() []checkResult {
	checks := make([]checkResult, 0, 3)
	checks = append(checks, checkConfigDir())
	checks = append(checks, checkSettings())
	checks = append(checks, checkBinaryPath())
	return checks
}

// checkConfigDir checks that the config directory resolves and exists.
func checkConfigDir() checkResult {
	dir := config.Dir()
	if dir == "" {
		return checkResult{
			Name:    "Config Directory",
			Status:  checkFail,
			Message: "could not resolve a config directory",
			Hint:    "Set CHIME_CONFIG_HOME or XDG_CONFIG_HOME",
		}
	}

	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return checkResult{
			Name:    "Config Directory",
			Status:  checkPass,
			Message: dir,
		}
	}

	return checkResult{
		Name:    "Config Directory",
		Status:  checkWarn,
		Message: dir + " does not exist yet",
		Hint:    "Created automatically on first 'chime alarm add' or 'chime zones add'",
	}
}

// checkSettings checks that the settings file parses.
func checkSettings() checkResult {
	dir := config.Dir()
	settings, err := config.LoadSettings(dir)
	if err != nil {
		return checkResult{
			Name:    "Settings",
			Status:  checkFail,
			Message: err.Error(),
			Hint:    "Fix or remove " + filepath.Join(dir, "settings.yaml"),
		}
	}

	return checkResult{
		Name:   "Settings",
		Status: checkPass,
		Message: fmt.Sprintf("clock_format=%s, timer_default=%s, %d zone(s)",
			settings.ClockFormat, settings.TimerDefault, len(settings.Zones)),
	}
}

// checkBinaryPath reports where the running binary lives.
func checkBinaryPath() checkResult {
	execPath, err := os.Executable()
	if err != nil {
		return checkResult{
			Name:    "Binary Path",
			Status:  checkWarn,
			Message: "could not determine executable path",
		}
	}

	resolvedPath, resolveErr := filepath.EvalSymlinks(execPath)
	if resolveErr != nil {
		return checkResult{
			Name:    "Binary Path",
			Status:  checkWarn,
			Message: "could not resolve executable path",
		}
	}

	return checkResult{
		Name:    "Binary Path",
		Status:  checkPass,
		Message: resolvedPath,
	}
}

// runAlarmChecks performs alarm storage checks.
func runAlarmChecks() []checkResult {
	checks := make([]checkResult, 0, 2)
	checks = append(checks, checkAlarmStore())
	checks = append(checks, checkNextAlarm())
	return checks
}

// checkAlarmStore checks that every alarm file parses.
func checkAlarmStore() checkResult {
	store := alarms.NewDefaultStore()
	list, stats, err := store.ListWithStats()
	if err != nil {
		return checkResult{
			Name:    "Alarm Storage",
			Status:  checkFail,
			Message: err.Error(),
		}
	}

	if stats.Skipped > 0 {
		return checkResult{
			Name:   "Alarm Storage",
			Status: checkWarn,
			Message: fmt.Sprintf("%d alarm(s), %d unreadable file(s) (%d foreign, %d parse error)",
				len(list), stats.Skipped, stats.Foreign, stats.ParseErrors),
			Hint: "Inspect " + store.Dir(),
		}
	}

	return checkResult{
		Name:    "Alarm Storage",
		Status:  checkPass,
		Message: fmt.Sprintf("%d alarm(s) in %s", len(list), store.Dir()),
	}
}

// checkNextAlarm reports the next enabled alarm, if any.
func checkNextAlarm() checkResult {
	store := alarms.NewDefaultStore()
	next, at, err := store.Next(time.Now())
	if err != nil {
		return checkResult{
			Name:    "Next Alarm",
			Status:  checkWarn,
			Message: err.Error(),
		}
	}
	if next == nil {
		return checkResult{
			Name:    "Next Alarm",
			Status:  checkPass,
			Message: "no enabled alarms",
		}
	}

	return checkResult{
		Name:    "Next Alarm",
		Status:  checkPass,
		Message: fmt.Sprintf("%s at %s", next.TimeOfDay(), at.Format("Mon Jan 2 15:04")),
	}
}

// runDaemonChecks performs daemon reachability checks.
func runDaemonChecks() []checkResult {
	checks := make([]checkResult, 0, 3)
	checks = append(checks, checkSocketPresent())
	checks = append(checks, checkDaemonReachable())
	checks = append(checks, checkNotifications())
	return checks
}

// checkSocketPresent checks whether the control socket file exists.
func checkSocketPresent() checkResult {
	sockPath := bridge.SocketPath()
	if _, err := os.Stat(sockPath); err != nil {
		return checkResult{
			Name:    "Control Socket",
			Status:  checkWarn,
			Message: sockPath + " not found",
			Hint:    "Start the daemon with 'chime daemon'",
		}
	}

	return checkResult{
		Name:    "Control Socket",
		Status:  checkPass,
		Message: sockPath,
	}
}

// checkNotifications checks whether a notification service is likely
// reachable. On Linux that means a session bus; elsewhere the platform
// notifier is always present.
func checkNotifications() checkResult {
	if runtime.GOOS == "linux" && os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		return checkResult{
			Name:    "Notifications",
			Status:  checkWarn,
			Message: "no session bus; desktop notifications will not be delivered",
			Hint:    "Run the daemon inside a desktop session",
		}
	}

	return checkResult{
		Name:    "Notifications",
		Status:  checkPass,
		Message: "notification service available",
	}
}

// checkDaemonReachable pings the daemon over the control socket.
func checkDaemonReachable() checkResult {
	if err := bridge.NewClient().Ping(); err != nil {
		return checkResult{
			Name:    "Daemon",
			Status:  checkWarn,
			Message: "not running; alarms will not fire",
			Hint:    "Start it with 'chime daemon'",
		}
	}

	return checkResult{
		Name:    "Daemon",
		Status:  checkPass,
		Message: "running and responding",
	}
}
