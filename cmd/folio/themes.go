package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/debug"
	apperrors "folio/internal/errors"
	"folio/internal/theme"
	"folio/internal/ui"
)

func newThemesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the named themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderThemeTable(theme.NamedThemes(), a.store.SelectedTheme()))
			return nil
		},
	}
}

func newSelectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "select NAME",
		Short: "Activate a named theme",
		Long: `Activate a named theme. Its colors and button styling are written over the
active configuration's variables and its theme class is set on the root.
Use folio adopt to load the theme into the editable configuration instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := a.store.SelectTheme(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return unknownTheme(args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Selected %s.\n", args[0])
			return nil
		},
	}
}

func newAdoptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "adopt NAME",
		Short: "Load a named theme into the editable configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.AdoptNamedTheme(cmd.Context(), args[0]); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Adopted %s as the active configuration.\n", args[0])
			printConfig(out, a.store.Config())
			return nil
		},
	}
}

func newDescribeCmd(_ *app) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "describe NAME",
		Short: "Describe a named theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := theme.LookupNamed(args[0])
			if !ok {
				return unknownTheme(args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderDescription(t, config.GetString(config.KeyOutputFormat), width))
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width")
	return cmd
}

func newPickCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Browse the named themes interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			choice, err := a.runPicker(ui.NewPicker(theme.NamedThemes(), a.store.SelectedTheme()))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch choice.Action {
			case ui.ActionSelect:
				if _, err := a.store.SelectTheme(cmd.Context(), choice.Name); err != nil {
					return err
				}
				fmt.Fprintf(out, "Selected %s.\n", choice.Name)
			case ui.ActionAdopt:
				if err := a.store.AdoptNamedTheme(cmd.Context(), choice.Name); err != nil {
					return err
				}
				fmt.Fprintf(out, "Adopted %s as the active configuration.\n", choice.Name)
			default:
				debug.Log("picker closed without a choice")
			}
			return nil
		},
	}
}

func unknownTheme(name string) error {
	return apperrors.New(apperrors.CodeUnknownTheme, fmt.Sprintf("unknown theme %q; run folio themes to list them", name), nil)
}
