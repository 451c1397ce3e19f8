// Package bridge is the local control channel between the chime CLI and a
// running daemon, carried over a Unix socket as newline-delimited JSON.
package bridge

import (
	"os"
	"path/filepath"
	"time"

	"github.com/moon-mind/chime/internal/config"
)

// Request is the wire format for requests sent over the Unix socket.
type Request struct {
	Type string `json:"type"` // "Ping", "Status", "Reload", "Stop"
}

// Response is the wire format for responses sent over the Unix socket.
type Response struct {
	Type    string        `json:"type"`              // "Pong", "Status", "OK", "Error"
	Status  *DaemonStatus `json:"status,omitempty"`  // set for "Status"
	Code    int           `json:"code,omitempty"`    // error code
	Message string        `json:"message,omitempty"` // error message
}

// DaemonStatus is a snapshot of the running daemon.
type DaemonStatus struct {
	PID          int        `json:"pid"`
	StartedAt    time.Time  `json:"started_at"`
	AlarmCount   int        `json:"alarm_count"`
	EnabledCount int        `json:"enabled_count"`
	NextAlarm    *NextAlarm `json:"next_alarm,omitempty"`
}

// NextAlarm describes the soonest-firing enabled alarm.
type NextAlarm struct {
	ID      string    `json:"id"`
	Label   string    `json:"label,omitempty"`
	FiresAt time.Time `json:"fires_at"`
}

// Handler serves bridge requests. Implemented by the daemon.
type Handler interface {
	Status() DaemonStatus
	Reload() error
	Stop()
}

// SocketPath returns the path to the daemon control socket.
// Creates the parent directory if it does not exist.
func SocketPath() string {
	dir := config.Dir()
	_ = os.MkdirAll(dir, 0o755)
	return filepath.Join(dir, "chime.sock")
}
