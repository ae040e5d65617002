package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/theme"
	"folio/internal/ui"
)

func newSwatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swatch",
		Short: "Manage custom accent color swatches",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List preset and custom swatches",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				fmt.Fprintln(cmd.OutOrStdout(),
					ui.RenderSwatches(theme.PresetSwatches, a.store.CustomAccentColors(), a.store.Config().AccentColor))
				return nil
			},
		},
		&cobra.Command{
			Use:   "add COLOR",
			Short: "Add a custom swatch",
			Long:  "Add a custom swatch. Presets, duplicates and malformed colors are ignored.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				added, err := a.store.AddCustomAccentColor(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if added {
					fmt.Fprintf(cmd.OutOrStdout(), "Added %s.\n", args[0])
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Skipped %s: empty, malformed, a preset, or already saved.\n", args[0])
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove COLOR",
			Short: "Remove a custom swatch",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				removed, err := a.store.RemoveCustomAccentColor(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if removed {
					fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", args[0])
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "No custom swatch %s.\n", args[0])
				}
				return nil
			},
		},
	)
	return cmd
}
