package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xtding233/packsim/internal/preset"
	"github.com/xtding233/packsim/internal/server"
	"github.com/xtding233/packsim/internal/submit"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulation form over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := preset.NewStore(preset.NewLoader(cfg.Presets.File), log)
	if err != nil {
		return err
	}
	gate, err := submit.NewGate(submit.NewLogSink(log), log)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.Server.Mode)
	srv := server.NewServer(server.RouterConfig{
		FormHandler:   server.NewFormHandler(preset.DefaultConfig(), store, gate, log),
		HealthHandler: server.NewHealthHandler(),
		AllowOrigins:  cfg.Server.AllowOrigins,
	})

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Presets.Watch {
		w, err := preset.NewFileWatcher(cfg.Presets.File, log, func(string) { _ = store.Reload() })
		if err != nil {
			return err
		}
		if err := w.Start(gctx); err != nil {
			return err
		}
		g.Go(func() error {
			<-gctx.Done()
			w.Stop()
			return nil
		})
		log.Info("watching preset catalog", "path", cfg.Presets.File)
	}

	g.Go(func() error {
		log.Info("listening", "addr", cfg.Server.Addr, "presets", store.Catalog().Len())
		return srv.Run(gctx, cfg.Server.Addr)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	log.Info("server stopped")
	return nil
}
