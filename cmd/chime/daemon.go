// Package main provides the entry point for the chime CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/moon-mind/chime/internal/alarms"
	"github.com/moon-mind/chime/internal/bridge"
	"github.com/moon-mind/chime/internal/notify"
	"github.com/moon-mind/chime/internal/output"
	"github.com/moon-mind/chime/internal/scheduler"
)

// daemonHandler serves bridge requests for a running daemon.
type daemonHandler struct {
	store     *alarms.Store
	sched     *scheduler.Scheduler
	startedAt time.Time
	cancel    context.CancelFunc
}

func (h *daemonHandler) Status() bridge.DaemonStatus {
	status := bridge.DaemonStatus{
		PID:       os.Getpid(),
		StartedAt: h.startedAt,
	}

	list, err := h.store.List()
	if err != nil {
		return status
	}
	status.AlarmCount = len(list)
	for _, alarm := range list {
		if alarm.Enabled {
			status.EnabledCount++
		}
	}

	next, at, err := h.store.Next(time.Now())
	if err == nil && next != nil {
		status.NextAlarm = &bridge.NextAlarm{
			ID:      next.ID,
			Label:   next.Label,
			FiresAt: at,
		}
	}
	return status
}

func (h *daemonHandler) Reload() error {
	// Storage is re-read on every scheduler pass; reload just clears the
	// fired-minute memory so edited alarms take effect immediately.
	h.sched.ResetFired()
	return nil
}

func (h *daemonHandler) Stop() {
	h.cancel()
}

// newDaemonCmd creates the daemon command.
func newDaemonCmd() *cobra.Command {
	var silentFlag bool

	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run the alarm daemon in the foreground",
		Long: `Run the alarm daemon.

The daemon polls the alarm store every second and fires desktop
notifications when an enabled alarm's time arrives. It also listens on a
Unix control socket so 'chime status' can query it and 'chime daemon'
edits take effect via reload.

Run it from your session startup (systemd user unit, shell profile, or a
terminal multiplexer pane). Ctrl+C or 'Stop' over the socket shuts it
down cleanly.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDaemon(cmd, silentFlag)
		},
	}
	cmd.Flags().BoolVar(&silentFlag, "silent", false, "Fire alarms without notifications (log only)")
	cmd.AddCommand(newDaemonReloadCmd())
	cmd.AddCommand(newDaemonStopCmd())
	return cmd
}

func newDaemonReloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Ask a running daemon to re-evaluate its alarms",
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))
			if err := bridge.NewClient().Reload(); err != nil {
				sysErr := output.NewSystemErrorWithCause("reloading daemon", err)
				printer.Error(sysErr)
				return sysErr
			}
			return printer.Success(map[string]any{"message": "Daemon reloaded"})
		},
	}
}

func newDaemonStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Ask a running daemon to shut down",
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))
			if err := bridge.NewClient().StopDaemon(); err != nil {
				sysErr := output.NewSystemErrorWithCause("stopping daemon", err)
				printer.Error(sysErr)
				return sysErr
			}
			return printer.Success(map[string]any{"message": "Daemon stopping"})
		},
	}
}

// runDaemon executes the daemon command.
func runDaemon(cmd *cobra.Command, silent bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store := alarms.NewDefaultStore()

	var notifier notify.Notifier = notify.NewDesktop("chime", true)
	if silent {
		notifier = notify.Silent{}
	}

	sched := scheduler.New(store, notifier)
	sched.OnFire = func(alarm *alarms.Alarm, at time.Time) {
		label := alarm.Label
		if label == "" {
			label = alarm.ID
		}
		printer.Print("%s fired: %s (%s)\n", at.Format("15:04:05"), label, alarm.TimeOfDay())
	}

	handler := &daemonHandler{
		store:     store,
		sched:     sched,
		startedAt: time.Now(),
		cancel:    cancel,
	}

	server, err := bridge.NewServer(handler)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("starting control socket", err)
		printer.Error(sysErr)
		return sysErr
	}
	defer server.Close()

	go func() { _ = server.Serve() }()

	printer.Print("chime daemon started (pid %d)\n", os.Getpid())
	printer.Print("control socket: %s\n", bridge.SocketPath())

	err = sched.Run(ctx)
	if errors.Is(err, context.Canceled) {
		printer.Println("daemon stopped")
		return nil
	}
	if err != nil {
		printer.Error(err)
		return err
	}
	return nil
}
