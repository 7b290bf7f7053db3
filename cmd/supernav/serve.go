package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/supernav/pkg/config"
	"github.com/mchmarny/supernav/pkg/handler"
	"github.com/mchmarny/supernav/pkg/menu"
	"github.com/mchmarny/supernav/pkg/menufile"
	"github.com/mchmarny/supernav/pkg/metric"
	"github.com/mchmarny/supernav/pkg/server"
	"github.com/mchmarny/supernav/pkg/storage"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the navigation panel over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}

	cmd.Flags().Int("port", server.DefaultPort, "port to run the server on")
	cmd.Flags().Bool("watch", false, "reload the menu file when it changes")

	return cmd
}

func (a *app) serve(ctx context.Context) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	mc, err := a.loadMenu()
	if err != nil {
		return err
	}
	reg := menu.NewRegistry()
	reg.Replace(mc)

	provider, closeStore, err := a.provider()
	if err != nil {
		return err
	}
	defer closeStore()

	promReg := prometheus.NewRegistry()
	h := handler.New(reg, provider,
		handler.WithOptions(a.cfg.RenderOptions()),
		handler.WithMetrics(metric.NewNavigation(promReg)),
		handler.WithLogger(a.log),
	)

	srv := server.New(
		server.WithPort(a.cfg.Port),
		server.WithLogger(a.log),
		server.WithRegistry(promReg),
		server.WithPrometheusMetrics(),
		server.WithSimpleHealth(),
		server.WithRoutes(h.Routes),
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Serve(gCtx)
	})

	if a.cfg.Watch {
		g.Go(func() error {
			return menufile.Watch(gCtx, a.cfg.MenuFile, menufile.DefaultDebounce, func(f *menufile.File) {
				next := f.Configuration()
				a.cfg.ApplyHighlight(next)
				reg.Replace(next)
			})
		})
	}

	return g.Wait()
}

// provider returns the visitor storage for the configured driver and a
// function releasing it.
func (a *app) provider() (storage.Provider, func(), error) {
	noop := func() {}

	switch a.cfg.Storage.Driver {
	case config.DriverCookie:
		store := storage.NewCookieSessionStore(a.cfg.Storage.SessionSecret)
		return storage.NewSessionProvider(store, a.cfg.Storage.CookieName), noop, nil

	case config.DriverSQLite:
		db, err := storage.NewSQLiteStore(a.cfg.Storage.Path)
		if err != nil {
			return nil, noop, err
		}
		a.log.Info("storing visitor lists in sqlite", "path", a.cfg.Storage.Path)
		return storage.NewVisitorProvider(db, storage.DefaultVisitorCookie), func() {
			if err := db.Close(); err != nil {
				a.log.Error("failed to close store", "error", err)
			}
		}, nil

	case config.DriverMemory:
		return storage.NewVisitorProvider(storage.NewMemoryStore(), storage.DefaultVisitorCookie), noop, nil

	default:
		return nil, noop, fmt.Errorf("%w: unknown storage.driver %q", config.ErrInvalid, a.cfg.Storage.Driver)
	}
}
