package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"folio/internal/theme"
	"folio/internal/ui"
)

const (
	previewWidth  = 48
	previewHeight = 12
)

func newShowCmd(a *app) *cobra.Command {
	var css, classes, preview bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the active theme configuration and palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			switch {
			case css:
				_, err := io.WriteString(out, a.store.Root().CSS())
				return err
			case classes:
				_, err := fmt.Fprintln(out, a.store.Root().ClassAttr())
				return err
			}

			cfg := a.store.Config()
			printConfig(out, cfg)
			if name := a.store.SelectedTheme(); name != "" {
				fmt.Fprintf(out, "%-14s %s\n", "named theme", name)
			}
			if def, ok := a.store.UserDefault(); ok {
				fmt.Fprintf(out, "%-14s %s, %s\n", "saved default", def.Mode, def.AccentColor)
			}

			p, err := theme.GeneratePalette(cfg.AccentColor, cfg.Mode)
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.RenderPalette(p))

			if preview {
				rendered, err := ui.RenderPreview(cfg, previewWidth, previewHeight)
				if err != nil {
					return err
				}
				fmt.Fprintln(out)
				fmt.Fprintln(out, rendered)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&css, "css", false, "Print the document root as a stylesheet")
	cmd.Flags().BoolVar(&classes, "classes", false, "Print the document root class attribute")
	cmd.Flags().BoolVar(&preview, "preview", false, "Render a sample card in the theme colors")
	return cmd
}

func newCSSCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "css",
		Short: "Print the active theme as a :root stylesheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), a.store.Root().CSS())
			return err
		},
	}
}

func printConfig(w io.Writer, cfg theme.ThemeConfig) {
	fmt.Fprintf(w, "%-14s %s\n", "mode", cfg.Mode)
	fmt.Fprintf(w, "%-14s %s %s\n", "accent", ui.Swatch(cfg.AccentColor, " "), cfg.AccentColor)
	fmt.Fprintf(w, "%-14s %s\n", "button style", cfg.ButtonStyle)
	fmt.Fprintf(w, "%-14s %dpx\n", "border radius", cfg.BorderRadius)
	fmt.Fprintf(w, "%-14s %dpx\n", "spacing", cfg.Spacing)
	fmt.Fprintf(w, "%-14s %s\n", "shadow", strconv.FormatFloat(cfg.ShadowIntensity, 'f', -1, 64))
}
