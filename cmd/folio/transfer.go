package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"folio/internal/config"
	apperrors "folio/internal/errors"
	"folio/internal/theme"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		dir         string
		name        string
		stdout      bool
		toClipboard bool
		remember    bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the active theme configuration as JSON",
		Long: `Export the active theme configuration as a JSON file. The file name comes
from export.filename (default theme-config.json) unless --name is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if remember && name == "" {
				return apperrors.New(apperrors.CodeInvalidConfig, "--remember needs --name FILE", nil)
			}
			cfg := a.store.Config()
			data, err := theme.ExportConfig(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if toClipboard {
				if err := a.writeClipboard(string(data)); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(out, "Theme configuration copied to clipboard.")
			}
			if stdout {
				_, err := out.Write(data)
				return err
			}
			if toClipboard && !cmd.Flags().Changed("out") && !cmd.Flags().Changed("name") {
				return nil
			}

			if name == "" {
				name = config.ExportFileName()
			} else if remember {
				if err := config.SaveExportFileName(name); err != nil {
					return err
				}
			}
			path, err := theme.WriteConfigFile(cfg, dir, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Exported to %s.\n", path)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&dir, "out", ".", "Directory to write the file into")
	f.StringVar(&name, "name", "", "File name, overriding export.filename")
	f.BoolVar(&stdout, "stdout", false, "Print the JSON instead of writing a file")
	f.BoolVar(&toClipboard, "clipboard", false, "Copy the JSON to the clipboard")
	f.BoolVar(&remember, "remember", false, "Save --name as the export.filename setting")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Apply a theme configuration file",
		Long: `Apply a theme configuration exported by folio export. Fields missing from
the file take their default values. Invalid files are rejected and the active
theme is left unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := theme.ReadConfigFile(args[0])
			if err != nil {
				return err
			}
			if err := a.store.UpdateTheme(cmd.Context(), cfg); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %s.\n", filepath.Base(args[0]))
			printConfig(out, a.store.Config())
			return nil
		},
	}
}
