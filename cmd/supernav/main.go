package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mchmarny/supernav/pkg/config"
	"github.com/mchmarny/supernav/pkg/logger"
	"github.com/mchmarny/supernav/pkg/menu"
	"github.com/mchmarny/supernav/pkg/menufile"
)

var version = "v0.0.0" // Set at build time via -ldflags "-X main.version=version"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by the commands once the configuration is loaded.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "supernav",
		Short:        "Two-level navigation menu with favorites, recents and search",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.SetDefault(logger.Options{
				Module:  "supernav",
				Version: version,
				Level:   cfg.LogLevel,
				Format:  cfg.LogFormat,
				Writer:  cmd.ErrOrStderr(),
			})
			if cfg.File != "" {
				a.log.Debug("loaded config", "file", cfg.File)
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", fmt.Sprintf("config file (default %s when present)", config.DefaultFile))
	pf.String("log-level", "", "log level: debug, info, warn or error")
	pf.String("menu-file", "", "YAML file declaring the menu")

	root.AddCommand(
		newServeCmd(a),
		newRenderCmd(a),
		newSearchCmd(a),
		newVersionCmd(),
	)

	return root
}

// loadMenu builds the configured menu: the menu file when one is set,
// otherwise the bundled example.
func (a *app) loadMenu() (*menu.Configuration, error) {
	var mc *menu.Configuration
	if a.cfg.MenuFile != "" {
		f, err := menufile.LoadFile(a.cfg.MenuFile)
		if err != nil {
			return nil, err
		}
		mc = f.Configuration()
	} else {
		mc = menu.NewConfiguration()
		mc.SetMenu(exampleMenu)
	}

	a.cfg.ApplyHighlight(mc)
	return mc, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		PersistentPreRun: func(*cobra.Command, []string) {
			// no configuration needed
		},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
