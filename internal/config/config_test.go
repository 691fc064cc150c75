package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, float32(800), cfg.Window.Width)
	assert.Equal(t, float32(600), cfg.Window.Height)
	assert.Equal(t, float32(16), cfg.Text.DefaultFontSize)
	assert.Equal(t, 8, cfg.Layout.MaxIFrameDepth)
	assert.True(t, cfg.Resources.GCAfterFrame)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidation(t *testing.T) {
	tests := map[string]struct {
		mutate  func(*Config)
		wantErr string
	}{
		"negative width":   {mutate: func(c *Config) { c.Window.Width = -1 }, wantErr: "window size"},
		"zero hidpi":       {mutate: func(c *Config) { c.Window.HidpiFactor = 0 }, wantErr: "hidpi_factor"},
		"zero font size":   {mutate: func(c *Config) { c.Text.DefaultFontSize = 0 }, wantErr: "default_font_size"},
		"no iframe depth":  {mutate: func(c *Config) { c.Layout.MaxIFrameDepth = 0 }, wantErr: "max_iframe_depth"},
		"bad log format":   {mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "log.format"},
		"valid json logs":  {mutate: func(c *Config) { c.Log.Format = "json" }},
		"valid zero width": {mutate: func(c *Config) { c.Window.Width = 0 }},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gui.yaml")
	content := []byte("window:\n  width: 1024\n  height: 768\ntext:\n  font_dirs: [\"/usr/share/fonts\"]\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	t.Setenv("GUI_WINDOW_HEIGHT", "900")

	cfg, err := Load(NewViper(path))
	require.NoError(t, err)
	assert.Equal(t, float32(1024), cfg.Window.Width)
	assert.Equal(t, float32(900), cfg.Window.Height, "env should override the file")
	assert.Equal(t, []string{"/usr/share/fonts"}, cfg.Text.FontDirs)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load(NewViper(""))
	require.NoError(t, err)
	assert.Equal(t, float32(800), cfg.Window.Width)
}

func TestLoad_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gui.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: xml\n"), 0o644))

	_, err := Load(NewViper(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
