// Package config loads the supernav settings from defaults, an optional
// YAML file, SUPERNAV_ environment variables and command line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/mchmarny/supernav/pkg/menu"
	"github.com/mchmarny/supernav/pkg/render"
	"github.com/mchmarny/supernav/pkg/server"
	"github.com/mchmarny/supernav/pkg/storage"
)

const (
	// DefaultFile is looked up in the working directory when no file is given.
	DefaultFile = "supernav.yaml"

	// EnvPrefix prefixes the environment variables read as configuration.
	EnvPrefix = "SUPERNAV_"

	DriverCookie = "cookie"
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the process configuration.
type Config struct {
	Port      int       `koanf:"port"`
	LogLevel  string    `koanf:"log_level"`
	LogFormat string    `koanf:"log_format"`
	MenuFile  string    `koanf:"menu_file"`
	Watch     bool      `koanf:"watch"`
	Highlight Highlight `koanf:"highlight"`
	Storage   Storage   `koanf:"storage"`
	UI        UI        `koanf:"ui"`

	// File is the configuration file that was loaded, if any.
	File string `koanf:"-"`
}

// Highlight controls automatic highlighting of the current page.
type Highlight struct {
	Auto          bool   `koanf:"auto"`
	OnSubpath     bool   `koanf:"on_subpath"`
	SelectedClass string `koanf:"selected_class"`
}

// Storage selects where visitor lists are kept.
type Storage struct {
	Driver        string `koanf:"driver"`
	Path          string `koanf:"path"`
	SessionSecret string `koanf:"session_secret"`
	CookieName    string `koanf:"cookie_name"`
}

// UI overrides the presentation of the trigger button and panel.
type UI struct {
	ButtonText  string `koanf:"button_text"`
	ButtonIcon  string `koanf:"button_icon"`
	ButtonClass string `koanf:"button_class"`
	Title       string `koanf:"title"`

	// ClientScript is the datastar client bundle loaded by served pages.
	ClientScript string `koanf:"client_script"`
}

func defaults() map[string]any {
	return map[string]any{
		"port":                     server.DefaultPort,
		"log_level":                "info",
		"log_format":               "json",
		"menu_file":                "",
		"watch":                    false,
		"highlight.auto":           true,
		"highlight.on_subpath":     true,
		"highlight.selected_class": menu.DefaultSelectedClass,
		"storage.driver":           DriverMemory,
		"storage.path":             ":memory:",
		"storage.session_secret":   "",
		"storage.cookie_name":      storage.DefaultSessionName,
	}
}

// Load reads the configuration. cfgFile may be empty, in which case
// DefaultFile is used when it exists. Only flags that were explicitly set
// override other sources; dashes in flag names map to underscores.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			cfgFile = DefaultFile
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// SUPERNAV_STORAGE__DRIVER -> storage.driver, SUPERNAV_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = cfgFile

	return &cfg, nil
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalid, c.Port)
	}

	switch c.Storage.Driver {
	case DriverCookie:
		if len(c.Storage.SessionSecret) < 32 {
			return fmt.Errorf("%w: storage.session_secret must be at least 32 bytes for the cookie driver", ErrInvalid)
		}
	case DriverMemory:
	case DriverSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("%w: storage.path is required for the sqlite driver", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalid, c.Storage.Driver)
	}

	if c.Watch && c.MenuFile == "" {
		return fmt.Errorf("%w: watch requires menu_file", ErrInvalid)
	}

	return nil
}

// ApplyHighlight copies the highlight settings onto cfg.
func (c *Config) ApplyHighlight(cfg *menu.Configuration) {
	cfg.AutoHighlight = c.Highlight.Auto
	cfg.HighlightOnSubpath = c.Highlight.OnSubpath
	if c.Highlight.SelectedClass != "" {
		cfg.SelectedClass = c.Highlight.SelectedClass
	}
}

// RenderOptions returns the presentation settings, with defaults for the
// fields left empty.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		ButtonText:   c.UI.ButtonText,
		ButtonIcon:   c.UI.ButtonIcon,
		ButtonClass:  c.UI.ButtonClass,
		Title:        c.UI.Title,
		ClientScript: c.UI.ClientScript,
	}.Merge()
}
