// Package main provides the entry point for the chime CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moon-mind/chime/internal/clock"
	"github.com/moon-mind/chime/internal/config"
	"github.com/moon-mind/chime/internal/output"
)

// newZonesCmd creates the zones command with its subcommands.
func newZonesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zones",
		Short: "Manage the configured world-clock zones",
		Long: `Manage the time zones shown by 'chime clock'.

Zones are stored in settings.yaml under the chime config directory.

Examples:
  chime zones list
  chime zones add Europe/Berlin
  chime zones add America/New_York --label NYC
  chime zones remove Europe/Berlin`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runZonesList(cmd)
		},
	}
	cmd.AddCommand(newZonesListCmd())
	cmd.AddCommand(newZonesAddCmd())
	cmd.AddCommand(newZonesRemoveCmd())
	return cmd
}

func newZonesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured zones",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runZonesList(cmd)
		},
	}
}

func newZonesAddCmd() *cobra.Command {
	var labelFlag string
	cmd := &cobra.Command{
		Use:   "add <zone>",
		Short: "Add a zone to the world clock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runZonesAdd(cmd, args[0], labelFlag)
		},
	}
	cmd.Flags().StringVarP(&labelFlag, "label", "l", "", "Display label for the zone")
	return cmd
}

func newZonesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <zone>",
		Short: "Remove a zone from the world clock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runZonesRemove(cmd, args[0])
		},
	}
}

// runZonesList executes the zones list command.
func runZonesList(cmd *cobra.Command) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	settings, err := config.LoadSettings(config.Dir())
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("loading settings", err)
		printer.Error(sysErr)
		return sysErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"count": len(settings.Zones),
			"zones": settings.Zones,
		})
	}

	if len(settings.Zones) == 0 {
		printer.Println("No zones configured. Add one with 'chime zones add <zone>'.")
		return nil
	}

	rows := make([][]string, 0, len(settings.Zones))
	for _, z := range settings.Zones {
		label := z.Label
		if label == "" {
			label = z.Name
		}
		rows = append(rows, []string{z.Name, label})
	}
	printer.Table([]string{"ZONE", "LABEL"}, rows)
	return nil
}

// runZonesAdd executes the zones add command.
func runZonesAdd(cmd *cobra.Command, name, label string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	// Validate the zone before persisting it.
	if _, err := clock.Resolve(name); err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	dir := config.Dir()
	settings, err := config.LoadSettings(dir)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("loading settings", err)
		printer.Error(sysErr)
		return sysErr
	}

	for _, z := range settings.Zones {
		if z.Name == name {
			conflictErr := output.NewConflictError(fmt.Sprintf("zone %q is already configured", name))
			printer.Error(conflictErr)
			return conflictErr
		}
	}

	settings.Zones = append(settings.Zones, config.ZoneSetting{Name: name, Label: label})
	if err := settings.Save(dir); err != nil {
		sysErr := output.NewSystemErrorWithCause("saving settings", err)
		printer.Error(sysErr)
		return sysErr
	}

	return printer.Success(map[string]any{
		"message": fmt.Sprintf("Added zone %s", name),
		"zone":    name,
		"label":   label,
	})
}

// runZonesRemove executes the zones remove command.
func runZonesRemove(cmd *cobra.Command, name string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	dir := config.Dir()
	settings, err := config.LoadSettings(dir)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("loading settings", err)
		printer.Error(sysErr)
		return sysErr
	}

	kept := settings.Zones[:0]
	found := false
	for _, z := range settings.Zones {
		if z.Name == name {
			found = true
			continue
		}
		kept = append(kept, z)
	}
	if !found {
		userErr := output.NewUserError(fmt.Sprintf("zone %q is not configured", name))
		printer.Error(userErr)
		return userErr
	}

	settings.Zones = kept
	if err := settings.Save(dir); err != nil {
		sysErr := output.NewSystemErrorWithCause("saving settings", err)
		printer.Error(sysErr)
		return sysErr
	}

	return printer.Success(map[string]any{
		"message": fmt.Sprintf("Removed zone %s", name),
		"zone":    name,
	})
}
