package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	apperrors "folio/internal/errors"
)

// DefaultExportFileName is the file name offered for exported configurations
// unless the export.filename setting overrides it.
const DefaultExportFileName = "theme-config.json"

// maxThemeFileSize bounds how much of an imported file is read.
const maxThemeFileSize = 1 << 20

// ExportConfig encodes cfg as an indented theme file.
func ExportConfig(cfg ThemeConfig) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode theme config: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteConfigFile exports cfg into dir under name, falling back to
// DefaultExportFileName when name is empty. It returns the written path.
func WriteConfigFile(cfg ThemeConfig, dir, name string) (string, error) {
	if name == "" {
		name = DefaultExportFileName
	}
	data, err := ExportConfig(cfg)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	//nolint:gosec // G306: Exported theme files are meant to be shared
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// ImportConfig parses a theme file and merges it over the default
// configuration, so partial files are accepted. Files that are not valid JSON
// objects, or that carry an unusable accent color, are rejected with a
// structured error and no configuration.
func ImportConfig(r io.Reader) (ThemeConfig, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxThemeFileSize))
	if err != nil {
		return ThemeConfig{}, apperrors.New(apperrors.CodeParseFailed, "read theme file", err)
	}
	return MergeOverDefault(data)
}

// MergeOverDefault decodes data on top of DefaultConfig and normalizes it.
func MergeOverDefault(data []byte) (ThemeConfig, error) {
	return MergeOver(DefaultConfig(), data)
}

// MergeOver decodes data on top of base, so fields absent from data keep
// base's values, and normalizes the result.
func MergeOver(base ThemeConfig, data []byte) (ThemeConfig, error) {
	cfg := base
	if len(bytes.TrimSpace(data)) == 0 {
		return ThemeConfig{}, apperrors.New(apperrors.CodeParseFailed, "invalid theme file: empty", nil)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return ThemeConfig{}, apperrors.New(apperrors.CodeParseFailed,
			fmt.Sprintf("invalid theme file: %v", err), err)
	}
	cfg = cfg.Normalize()
	if _, err := ParseHex(cfg.AccentColor); err != nil {
		return ThemeConfig{}, err
	}
	return cfg, nil
}

// ReadConfigFile imports the theme file at path.
func ReadConfigFile(path string) (ThemeConfig, error) {
	//nolint:gosec // G304: Importing a user-chosen theme file is the point
	f, err := os.Open(path)
	if err != nil {
		return ThemeConfig{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return ImportConfig(f)
}
