// Package store holds the active theme state for the process: the granular
// configuration, the user's saved default, custom accent swatches and the
// selected named theme. Every mutation is applied to the document root and
// persisted to the key-value storage before the call returns.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	apperrors "folio/internal/errors"
	"folio/internal/storage"
	"folio/internal/theme"
)

// Storage keys. Each key is owned by exactly one slice of store state.
const (
	KeyConfig       = "advanced-theme-config"
	KeyUserDefault  = "advanced-theme-user-default"
	KeyCustomColors = "advanced-theme-custom-colors"
	KeyNamedTheme   = "theme"
)

// Store is the theme configuration store.
type Store struct {
	mu           sync.RWMutex
	kv           storage.KV
	root         *theme.Root
	logger       zerolog.Logger
	factory      theme.ThemeConfig
	config       theme.ThemeConfig
	userDefault  *theme.ThemeConfig
	customColors []string
	selected     string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for recoverable load failures.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// WithFactoryDefault replaces the compiled-in default used when nothing is
// persisted and by ResetTheme when no user default exists.
func WithFactoryDefault(cfg theme.ThemeConfig) Option {
	return func(s *Store) {
		if _, err := theme.ParseHex(cfg.AccentColor); err == nil {
			s.factory = cfg.Normalize()
		}
	}
}

// New builds a store, loads persisted state from kv, and applies the active
// configuration to root. Missing or unreadable values fall back to defaults
// and are logged, never returned.
func New(ctx context.Context, kv storage.KV, root *theme.Root, opts ...Option) *Store {
	if root == nil {
		root = theme.NewRoot()
	}
	s := &Store{
		kv:      kv,
		root:    root,
		logger:  zerolog.Nop(),
		factory: theme.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.config = s.factory
	s.load(ctx)

	if err := s.root.ApplyConfig(s.config); err != nil {
		// load only admits parseable accents; fall back rather than leave the root empty.
		s.logger.Error().Err(err).Msg("apply persisted theme config")
		s.config = s.factory
		_ = s.root.ApplyConfig(s.config)
	}
	if s.selected != "" {
		if t, ok := theme.LookupNamed(s.selected); ok {
			s.root.ApplyNamed(t)
		}
	}
	return s
}

func (s *Store) load(ctx context.Context) {
	if raw, ok := s.read(ctx, KeyConfig); ok {
		if cfg, err := theme.MergeOver(s.factory, []byte(raw)); err != nil {
			s.logger.Warn().Err(err).Str("key", KeyConfig).Msg("failed to parse saved theme config")
		} else {
			s.config = cfg
		}
	}

	if raw, ok := s.read(ctx, KeyUserDefault); ok {
		if cfg, err := theme.MergeOver(s.factory, []byte(raw)); err != nil {
			s.logger.Warn().Err(err).Str("key", KeyUserDefault).Msg("failed to parse saved user default")
		} else {
			s.userDefault = &cfg
		}
	}

	if raw, ok := s.read(ctx, KeyCustomColors); ok {
		var colors []string
		if err := json.Unmarshal([]byte(raw), &colors); err != nil {
			s.logger.Warn().Err(err).Str("key", KeyCustomColors).Msg("failed to parse custom accent colors")
		} else {
			for _, c := range colors {
				if hex, ok := s.admissible(c); ok {
					s.customColors = append(s.customColors, hex)
				}
			}
		}
	}

	if raw, ok := s.read(ctx, KeyNamedTheme); ok {
		name := raw
		var decoded string
		if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
			name = decoded
		}
		if _, known := theme.LookupNamed(name); known {
			s.selected = name
		} else {
			s.logger.Warn().Str("key", KeyNamedTheme).Str("value", name).Msg("ignoring unknown saved theme")
		}
	}
}

func (s *Store) read(ctx context.Context, key string) (string, bool) {
	if s.kv == nil {
		return "", false
	}
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to read persisted theme state")
		return "", false
	}
	return raw, ok
}

func (s *Store) write(ctx context.Context, key string, value any) error {
	if s.kv == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return apperrors.New(apperrors.CodeStorageFailed, fmt.Sprintf("encode %s", key), err)
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// Config returns the active configuration.
func (s *Store) Config() theme.ThemeConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// FactoryDefault returns the configuration used when nothing else applies.
func (s *Store) FactoryDefault() theme.ThemeConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.factory
}

// UserDefault returns the saved user default, if any.
func (s *Store) UserDefault() (theme.ThemeConfig, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.userDefault == nil {
		return theme.ThemeConfig{}, false
	}
	return *s.userDefault, true
}

// CustomAccentColors returns a copy of the user's custom swatches in
// insertion order.
func (s *Store) CustomAccentColors() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.customColors...)
}

// SelectedTheme returns the selected named theme, or "" if none was chosen.
func (s *Store) SelectedTheme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Root returns the document root the store renders into.
func (s *Store) Root() *theme.Root {
	return s.root
}

// Snapshot returns the style snapshot of the active configuration.
func (s *Store) Snapshot() (theme.StyleSnapshot, error) {
	return theme.Snapshot(s.Config())
}

// UpdateTheme replaces the active configuration wholesale. Callers merge
// partial changes into Config() before calling. A selected named theme is
// cleared so the granular configuration alone drives the root.
func (s *Store) UpdateTheme(ctx context.Context, cfg theme.ThemeConfig) error {
	cfg = cfg.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setConfigLocked(ctx, cfg)
}

func (s *Store) setConfigLocked(ctx context.Context, cfg theme.ThemeConfig) error {
	if err := s.root.ApplyConfig(cfg); err != nil {
		return err
	}
	s.config = cfg
	s.selected = ""
	if err := s.write(ctx, KeyConfig, cfg); err != nil {
		return err
	}
	if s.kv == nil {
		return nil
	}
	if err := s.kv.Delete(ctx, KeyNamedTheme); err != nil {
		return fmt.Errorf("delete %s: %w", KeyNamedTheme, err)
	}
	return nil
}

// ResetTheme restores the user default if one is saved, else the factory
// default.
func (s *Store) ResetTheme(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.factory
	if s.userDefault != nil {
		target = *s.userDefault
	}
	return s.setConfigLocked(ctx, target)
}

// SaveConfigAsDefault snapshots the active configuration as the user default.
func (s *Store) SaveConfigAsDefault(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.config
	s.userDefault = &snapshot
	return s.write(ctx, KeyUserDefault, snapshot)
}

// ClearUserDefault forgets the saved user default.
func (s *Store) ClearUserDefault(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userDefault = nil
	if s.kv == nil {
		return nil
	}
	if err := s.kv.Delete(ctx, KeyUserDefault); err != nil {
		return fmt.Errorf("delete %s: %w", KeyUserDefault, err)
	}
	return nil
}

// admissible returns color in canonical #rrggbb form and whether it may join
// the custom swatches. Caller must hold the lock when s.customColors may
// change concurrently.
func (s *Store) admissible(color string) (string, bool) {
	hex, err := theme.CanonicalHex(color)
	if err != nil {
		return "", false
	}
	if theme.IsPresetSwatch(hex) {
		return "", false
	}
	for _, existing := range s.customColors {
		if strings.EqualFold(existing, hex) {
			return "", false
		}
	}
	return hex, true
}

// swatchKey is the form a custom swatch is stored and matched under.
func swatchKey(color string) string {
	color = strings.TrimSpace(color)
	if hex, err := theme.CanonicalHex(color); err == nil {
		return hex
	}
	return color
}

// AddCustomAccentColor appends color to the custom swatches in canonical
// #rrggbb form. Empty, invalid, duplicate and preset colors are ignored; the
// return value reports whether the color was added.
func (s *Store) AddCustomAccentColor(ctx context.Context, color string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hex, ok := s.admissible(color)
	if !ok {
		return false, nil
	}
	s.customColors = append(s.customColors, hex)
	return true, s.write(ctx, KeyCustomColors, s.customColors)
}

// RemoveCustomAccentColor removes the swatch matching color once both are in
// stored form. The return value reports whether anything was removed.
func (s *Store) RemoveCustomAccentColor(ctx context.Context, color string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := swatchKey(color)
	idx := -1
	for i, c := range s.customColors {
		if c == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}
	s.customColors = append(s.customColors[:idx:idx], s.customColors[idx+1:]...)
	return true, s.write(ctx, KeyCustomColors, s.customColors)
}

// SelectTheme activates a named theme. Unknown names are ignored and report
// false with no state change.
func (s *Store) SelectTheme(ctx context.Context, name string) (bool, error) {
	t, ok := theme.LookupNamed(name)
	if !ok {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = name
	s.root.ApplyNamed(t)
	return true, s.write(ctx, KeyNamedTheme, name)
}

// AdoptNamedTheme loads a named theme as a preset into the granular
// configuration, replacing any selected named theme.
func (s *Store) AdoptNamedTheme(ctx context.Context, name string) error {
	t, ok := theme.LookupNamed(name)
	if !ok {
		return apperrors.New(apperrors.CodeUnknownTheme, fmt.Sprintf("unknown theme %q", name), nil)
	}
	return s.UpdateTheme(ctx, t.Config())
}
