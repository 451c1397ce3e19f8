// Package main provides the entry point for the chime CLI.
package main

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/moon-mind/chime/internal/config"
	"github.com/moon-mind/chime/internal/countdown"
	"github.com/moon-mind/chime/internal/notify"
	"github.com/moon-mind/chime/internal/output"
)

// newTimerCmd creates the timer command.
func newTimerCmd() *cobra.Command {
	var quietFlag bool

	cmd := &cobra.Command{
		Use:   "timer [duration]",
		Short: "Run a countdown timer",
		Long: `Run a countdown timer in the foreground.

Without an argument, uses the default duration from settings (5 minutes
unless configured). The duration accepts bare minutes (5) or a Go duration
(90s, 1h30m). A desktop notification fires when the countdown reaches zero;
Ctrl+C cancels without notifying.

Examples:
  chime timer           # Default duration
  chime timer 25        # 25 minutes
  chime timer 90s       # 90 seconds`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			duration, err := resolveTimerDuration(args)
			if err != nil {
				printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))
				userErr := output.NewUserError(err.Error())
				printer.Error(userErr)
				return userErr
			}
			return runTimer(cmd, duration, quietFlag)
		},
	}
	cmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Skip the completion notification")
	return cmd
}

// resolveTimerDuration picks the duration from the argument or settings.
func resolveTimerDuration(args []string) (time.Duration, error) {
	if len(args) == 1 {
		return parseTimerDuration(args[0])
	}

	settings, err := config.LoadSettings(config.Dir())
	if err != nil {
		return 0, err
	}
	return settings.TimerDuration(), nil
}

// runTimer executes the timer command.
func runTimer(cmd *cobra.Command, duration time.Duration, quiet bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	timer := countdown.New(duration)
	timer.Start(time.Now())

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	if !printer.IsJSON() {
		printer.Println("Timer:", formatClockDuration(duration))
	}

	for {
		select {
		case <-ctx.Done():
			// Cancelled: no notification.
			if !printer.IsJSON() && printer.IsTTY() {
				printer.Println()
			}
			if printer.IsJSON() {
				return printer.WriteJSON(map[string]any{
					"finished":  false,
					"remaining": timer.Remaining().Round(time.Second).String(),
				})
			}
			printer.Println("Cancelled with", formatClockDuration(timer.Remaining()), "remaining")
			return nil

		case now := <-ticker.C:
			finished := timer.Tick(now)
			if !printer.IsJSON() && printer.IsTTY() {
				printer.Print("\r%s ", printer.Display(formatClockDuration(timer.Remaining())))
			}
			if !finished {
				continue
			}

			if !quiet {
				_ = notify.NewDesktop("chime", true).TimerFinished()
			}
			if printer.IsJSON() {
				return printer.WriteJSON(map[string]any{
					"finished": true,
					"duration": duration.String(),
				})
			}
			if printer.IsTTY() {
				printer.Println()
			}
			printer.Println("Time is up")
			return nil
		}
	}
}
