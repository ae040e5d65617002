package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperrors "folio/internal/errors"
	"folio/internal/theme"
)

func newSetCmd(a *app) *cobra.Command {
	var (
		mode        string
		accent      string
		buttonStyle string
		radius      int
		spacing     int
		shadow      float64
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change individual theme settings",
		Long: `Change one or more theme settings. Settings that are not given keep their
current values. Out-of-range numbers are clamped.

Examples:
  folio set --mode dark
  folio set --accent "#10b981" --button-style pill
  folio set --radius 12 --spacing 24 --shadow 0.3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.store.Config()
			flags := cmd.Flags()
			changed := false
			if flags.Changed("mode") {
				m := theme.Mode(strings.ToLower(strings.TrimSpace(mode)))
				if !m.Valid() {
					return apperrors.New(apperrors.CodeInvalidConfig,
						fmt.Sprintf("unknown mode %q (want light or dark)", mode), nil)
				}
				cfg.Mode = m
				changed = true
			}
			if flags.Changed("accent") {
				cfg.AccentColor = accent
				changed = true
			}
			if flags.Changed("button-style") {
				s := theme.ButtonStyle(strings.ToLower(strings.TrimSpace(buttonStyle)))
				if !s.Valid() {
					return apperrors.New(apperrors.CodeInvalidConfig,
						fmt.Sprintf("unknown button style %q (want %s)", buttonStyle, buttonStyleList()), nil)
				}
				cfg.ButtonStyle = s
				changed = true
			}
			if flags.Changed("radius") {
				cfg.BorderRadius = radius
				changed = true
			}
			if flags.Changed("spacing") {
				cfg.Spacing = spacing
				changed = true
			}
			if flags.Changed("shadow") {
				cfg.ShadowIntensity = shadow
				changed = true
			}
			if !changed {
				return fmt.Errorf("nothing to change; see folio set --help")
			}

			if err := a.store.UpdateTheme(cmd.Context(), cfg); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Theme updated.")
			printConfig(out, a.store.Config())
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&mode, "mode", "", "Color mode: light or dark")
	f.StringVar(&accent, "accent", "", "Accent color as six-digit hex, e.g. #8b5cf6")
	f.StringVar(&buttonStyle, "button-style", "", "Button style: "+buttonStyleList())
	f.IntVar(&radius, "radius", 0, fmt.Sprintf("Border radius in px (%d-%d)", theme.MinBorderRadius, theme.MaxBorderRadius))
	f.IntVar(&spacing, "spacing", 0, fmt.Sprintf("Base spacing in px (%d-%d)", theme.MinSpacing, theme.MaxSpacing))
	f.Float64Var(&shadow, "shadow", 0, fmt.Sprintf("Shadow intensity (%v-%v)", theme.MinShadowIntensity, theme.MaxShadowIntensity))
	return cmd
}

func buttonStyleList() string {
	names := make([]string, len(theme.ButtonStyles))
	for i, s := range theme.ButtonStyles {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func newResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the saved default, or the built-in default if none is saved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.store.ResetTheme(cmd.Context()); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if _, ok := a.store.UserDefault(); ok {
				fmt.Fprintln(out, "Theme reset to your saved default.")
			} else {
				fmt.Fprintln(out, "Theme reset to the built-in default.")
			}
			printConfig(out, a.store.Config())
			return nil
		},
	}
}

func newSaveDefaultCmd(a *app) *cobra.Command {
	var forget bool
	cmd := &cobra.Command{
		Use:   "save-default",
		Short: "Save the active theme as the target of folio reset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if forget {
				if err := a.store.ClearUserDefault(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Saved default cleared.")
				return nil
			}
			if err := a.store.SaveConfigAsDefault(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Active theme saved as default.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&forget, "clear", false, "Forget the saved default instead")
	return cmd
}
