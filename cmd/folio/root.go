package main

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/debug"
	"folio/internal/storage"
	"folio/internal/store"
	"folio/internal/theme"
	"folio/internal/ui"
)

// app carries the per-invocation state shared by every subcommand. The
// function fields are swapped out in tests.
type app struct {
	debug       bool
	storagePath string
	memory      bool

	kv    storage.KV
	store *store.Store

	writeClipboard    func(string) error
	hasDarkBackground func() bool
	runPicker         func(ui.Picker) (ui.Choice, error)
}

func newApp() *app {
	return &app{
		writeClipboard:    clipboard.WriteAll,
		hasDarkBackground: termenv.HasDarkBackground,
		runPicker:         runPickerProgram,
	}
}

func runPickerProgram(p ui.Picker) (ui.Choice, error) {
	final, err := tea.NewProgram(p).Run()
	if err != nil {
		return ui.Choice{}, fmt.Errorf("run picker: %w", err)
	}
	picked, ok := final.(ui.Picker)
	if !ok {
		return ui.Choice{}, nil
	}
	return picked.Choice(), nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "folio",
		Short: "Manage the portfolio site theme",
		Long: `folio edits the theme of the portfolio site: the accent color, light or
dark mode, button style and layout scale, plus the catalog of named themes.

Settings are read from ~/.folio/config.yaml, the nearest .folio/config.yaml
and FOLIO_* environment variables. Theme state is kept in ~/.folio/storage.db.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			debug.Logf("%s finished", cmd.CommandPath())
			return a.teardown()
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&a.debug, "debug", false, "Write a debug log to ~/.folio/debug.log")
	flags.StringVar(&a.storagePath, "storage", "", "Path to the theme storage database")
	flags.BoolVar(&a.memory, "memory", false, "Keep theme state in memory for this run only")

	root.AddCommand(
		newShowCmd(a),
		newCSSCmd(a),
		newSetCmd(a),
		newResetCmd(a),
		newSaveDefaultCmd(a),
		newSwatchCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newThemesCmd(a),
		newSelectCmd(a),
		newAdoptCmd(a),
		newDescribeCmd(a),
		newPickCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup resolves configuration, opens storage and installs the store.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Initialize(); err != nil {
		return err
	}

	overrides := map[string]any{}
	if cmd.Flags().Changed("debug") {
		overrides[config.KeyDebug] = a.debug
	}
	if cmd.Flags().Changed("storage") {
		overrides[config.KeyStoragePath] = a.storagePath
	}
	if err := config.ApplyOverrides(overrides); err != nil {
		return err
	}

	if err := debug.Init(config.GetBool(config.KeyDebug)); err != nil {
		return fmt.Errorf("init debug log: %w", err)
	}
	if debug.Enabled() {
		if path, err := debug.GetLogPath(); err == nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Debug log: %s\n", path)
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	kv, err := a.openStorage(ctx)
	if err != nil {
		return err
	}
	a.kv = kv

	factory := theme.DefaultConfig()
	if config.GetBool(config.KeyModeDetect) && a.hasDarkBackground != nil && a.hasDarkBackground() {
		factory.Mode = theme.ModeDark
	}

	a.store = store.New(ctx, kv, theme.NewRoot(),
		store.WithLogger(debug.Logger()),
		store.WithFactoryDefault(factory),
	)
	store.SetDefault(a.store)
	logger := debug.Logger()
	logger.Debug().
		Str("command", cmd.Name()).
		Bool("memory", a.memory || config.StorageDriver() == config.DriverMemory).
		Msg("store ready")
	return nil
}

func (a *app) openStorage(ctx context.Context) (storage.KV, error) {
	if a.memory || config.StorageDriver() == config.DriverMemory {
		return storage.NewMemory(), nil
	}
	path, err := config.StoragePath()
	if err != nil {
		return nil, err
	}
	return storage.OpenSQLite(ctx, path)
}

func (a *app) teardown() error {
	defer debug.Close()
	if a.kv == nil {
		return nil
	}
	err := a.kv.Close()
	a.kv = nil
	return err
}
