package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/supernav/pkg/menu"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "supernav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("port", 0, "")
	fs.String("log-level", "", "")
	fs.String("menu-file", "", "")
	fs.Bool("watch", false, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, 9876, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Highlight.Auto)
	assert.True(t, cfg.Highlight.OnSubpath)
	assert.Equal(t, "selected", cfg.Highlight.SelectedClass)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "supernav", cfg.Storage.CookieName)
	assert.Empty(t, cfg.File)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Precedence(t *testing.T) {
	path := writeFile(t, strings.Join([]string{
		"port: 8000",
		"log_level: warn",
		"menu_file: menu.yaml",
		"highlight:",
		"  on_subpath: false",
		"  selected_class: current",
		"storage:",
		"  driver: sqlite",
		"  path: nav.db",
		"ui:",
		"  title: Navigation",
	}, "\n"))

	t.Setenv("SUPERNAV_LOG_LEVEL", "debug")
	t.Setenv("SUPERNAV_STORAGE__PATH", "/tmp/env.db")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--port", "9000"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, 9000, cfg.Port, "flag beats file")
	assert.Equal(t, "debug", cfg.LogLevel, "env beats file")
	assert.Equal(t, "menu.yaml", cfg.MenuFile, "unchanged flags do not override")
	assert.False(t, cfg.Highlight.OnSubpath)
	assert.Equal(t, "current", cfg.Highlight.SelectedClass)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/env.db", cfg.Storage.Path)
	assert.Equal(t, "Navigation", cfg.UI.Title)
}

func TestLoad_FlagNames(t *testing.T) {
	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--menu-file", "nav.yaml", "--watch"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)

	assert.Equal(t, "nav.yaml", cfg.MenuFile)
	assert.True(t, cfg.Watch)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestValidate(t *testing.T) {
	secret := strings.Repeat("s", 32)

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"memory", func(*Config) {}, ""},
		{"cookie with secret", func(c *Config) { c.Storage.Driver = DriverCookie; c.Storage.SessionSecret = secret }, ""},
		{"cookie short secret", func(c *Config) { c.Storage.Driver = DriverCookie; c.Storage.SessionSecret = "short" }, "session_secret"},
		{"sqlite without path", func(c *Config) { c.Storage.Driver = DriverSQLite; c.Storage.Path = "" }, "storage.path"},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "redis" }, "unknown storage.driver"},
		{"bad port", func(c *Config) { c.Port = 70000 }, "port"},
		{"watch without file", func(c *Config) { c.Watch = true }, "watch requires menu_file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("", nil)
			require.NoError(t, err)
			tt.mutate(cfg)

			err = cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyHighlight(t *testing.T) {
	c := &Config{Highlight: Highlight{Auto: false, OnSubpath: false}}
	mc := menu.NewConfiguration()

	c.ApplyHighlight(mc)

	assert.False(t, mc.AutoHighlight)
	assert.False(t, mc.HighlightOnSubpath)
	assert.Equal(t, menu.DefaultSelectedClass, mc.SelectedClass)

	c.Highlight.SelectedClass = "active"
	c.ApplyHighlight(mc)
	assert.Equal(t, "active", mc.SelectedClass)
}

func TestRenderOptions(t *testing.T) {
	c := &Config{UI: UI{ButtonText: "Menu"}}
	o := c.RenderOptions()

	assert.Equal(t, "Menu", o.ButtonText)
	assert.Equal(t, "fas fa-bars", o.ButtonIcon)
	assert.Equal(t, "Main Menu", o.Title)
	assert.Contains(t, o.ClientScript, "datastar")

	c.UI.ClientScript = "/assets/datastar.js"
	assert.Equal(t, "/assets/datastar.js", c.RenderOptions().ClientScript)
}
