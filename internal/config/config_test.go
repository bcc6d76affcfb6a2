package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	assert.Equal(t, "q", defaults.Quit)
	assert.Equal(t, "n", defaults.NewRFP)
	assert.Equal(t, "enter", defaults.ViewRFP)
	assert.Equal(t, "L", defaults.MoveRFPRight)
	assert.Equal(t, "b", defaults.ToggleSidebar)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(ThemeFileEnv, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
	assert.Equal(t, 30, cfg.Board.ColumnWidth)
	assert.Equal(t, 22, cfg.Board.SidebarWidth)
	assert.Equal(t, 6, cfg.Board.CollapsedSidebarWidth)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(ThemeFileEnv, "")

	writeFile(t, filepath.Join(tempDir, "bidboard", "config.yaml"), `key_mappings:
  quit: "x"
  new_rfp: "N"
board:
  column_width: 40
  seed_file: /tmp/seed.yaml
log:
  level: debug
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "N", cfg.KeyMappings.NewRFP)
	// Unspecified values fall back to defaults
	assert.Equal(t, "e", cfg.KeyMappings.EditRFP)

	assert.Equal(t, 40, cfg.Board.ColumnWidth)
	assert.Equal(t, 22, cfg.Board.SidebarWidth)
	assert.Equal(t, "/tmp/seed.yaml", cfg.Board.SeedFile)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "board: [not, a, map")

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(ThemeFileEnv, "")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultKeyMappings(), cfg.KeyMappings)
}

func TestThemeFileOverride(t *testing.T) {
	tempDir := t.TempDir()
	themePath := filepath.Join(tempDir, "theme.yaml")
	writeFile(t, themePath, `theme:
  preset: monochrome
  accent: "#123456"
`)
	t.Setenv(ThemeFileEnv, themePath)

	cfg, err := LoadFrom(filepath.Join(tempDir, "absent.yaml"))
	require.NoError(t, err)

	mono := MonochromeColorScheme()
	assert.Equal(t, "monochrome", cfg.ColorScheme.Preset)
	assert.Equal(t, "#123456", cfg.ColorScheme.Accent)
	assert.Equal(t, mono.CardBorder, cfg.ColorScheme.CardBorder)
}

func TestThemePresetFillsMissingColors(t *testing.T) {
	tests := []struct {
		name   string
		scheme ColorScheme
		want   ColorScheme
	}{
		{
			name:   "empty scheme uses default preset",
			scheme: ColorScheme{},
			want:   DefaultColorScheme(),
		},
		{
			name:   "monochrome preset",
			scheme: ColorScheme{Preset: "monochrome"},
			want:   MonochromeColorScheme(),
		},
		{
			name:   "unknown preset falls back to default",
			scheme: ColorScheme{Preset: "solarized"},
			want: func() ColorScheme {
				s := DefaultColorScheme()
				s.Preset = "solarized"
				return s
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.scheme
			got.ApplyDefaults()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(ThemeFileEnv, "")

	cfg := &Config{
		KeyMappings: KeyMappings{Quit: "x", NewRFP: "N"},
		Board:       Board{ColumnWidth: 36},
	}
	cfg.applyDefaults()

	require.NoError(t, cfg.Save())
	assert.FileExists(t, filepath.Join(tempDir, "bidboard", "config.yaml"))

	cfg2, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "x", cfg2.KeyMappings.Quit)
	assert.Equal(t, "N", cfg2.KeyMappings.NewRFP)
	assert.Equal(t, 36, cfg2.Board.ColumnWidth)
}
