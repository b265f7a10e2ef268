package main

import (
	"context"
	"flag"
	"net/http"
	"time"

	"socialnet/internal/config"
	"socialnet/internal/logger"
	"socialnet/internal/router"
	"socialnet/internal/setup"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config/config.yaml", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	logger.Initialize(cfg.Log.Level, cfg.Log.JSON)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	deps, err := setup.SetupDependencies(ctx, cfg)
	if err != nil {
		logger.Log.Error("setting up dependencies", "error", err)
		return
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := deps.Storage.Cleanup(ctx); err != nil {
			logger.Log.Error("closing storage", "error", err)
		}
	}()

	r := router.New(deps)

	logger.Log.Info("starting server", "addr", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
	}
}
