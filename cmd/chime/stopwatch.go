// Package main provides the entry point for the chime CLI.
package main

import (
	"bufio"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/moon-mind/chime/internal/notify"
	"github.com/moon-mind/chime/internal/output"
	"github.com/moon-mind/chime/internal/stopwatch"
)

// newStopwatchCmd creates the stopwatch command.
func newStopwatchCmd() *cobra.Command {
	var quietFlag bool

	cmd := &cobra.Command{
		Use:   "stopwatch",
		Short: "Run a stopwatch",
		Long: `Run a stopwatch in the foreground.

Press Enter to record a lap. Ctrl+C stops the stopwatch, prints the final
time and laps, and raises a desktop notification.

Examples:
  chime stopwatch
  chime stopwatch --quiet   # No notification on stop`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStopwatch(cmd, quietFlag)
		},
	}
	cmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Skip the notification on stop")
	return cmd
}

// runStopwatch executes the stopwatch command.
func runStopwatch(cmd *cobra.Command, quiet bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sw := stopwatch.New()
	sw.Start(time.Now())

	// Enter records a lap. The goroutine leaks at exit; reading stdin is
	// not interruptible and the process ends right after.
	lapEvents := make(chan struct{})
	go func() {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			lapEvents <- struct{}{}
		}
	}()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	if !printer.IsJSON() {
		printer.Println("Stopwatch running. Enter records a lap, Ctrl+C stops.")
	}

	for {
		select {
		case <-ctx.Done():
			final := sw.Stop(time.Now())
			finalText := formatClockDuration(final)

			if !quiet {
				_ = notify.NewDesktop("chime", true).StopwatchStopped(finalText)
			}

			if printer.IsJSON() {
				laps := make([]string, 0, len(sw.Laps()))
				for _, lap := range sw.Laps() {
					laps = append(laps, lap.Round(time.Millisecond).String())
				}
				return printer.WriteJSON(map[string]any{
					"elapsed": final.Round(time.Millisecond).String(),
					"laps":    laps,
				})
			}

			if printer.IsTTY() {
				printer.Println()
			}
			printer.Println("Stopped at", finalText)
			for i, lap := range sw.Laps() {
				printer.Print("  lap %d: %s\n", i+1, formatClockDuration(lap))
			}
			return nil

		case <-lapEvents:
			lap := sw.Lap(time.Now())
			if !printer.IsJSON() {
				printer.Print("lap %d: %s\n", len(sw.Laps()), formatClockDuration(lap))
			}

		case now := <-ticker.C:
			if !printer.IsJSON() && printer.IsTTY() {
				printer.Print("\r%s ", printer.Display(formatClockDuration(sw.Elapsed(now))))
			}
		}
	}
}
