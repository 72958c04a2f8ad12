package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/magabrotheeeer/user-service/internal/app/user"
	"github.com/magabrotheeeer/user-service/internal/config"
	"github.com/magabrotheeeer/user-service/internal/lib/logger"
	"github.com/magabrotheeeer/user-service/internal/lib/sl"
)

func main() {
	os.Exit(run())
}

// run возвращает код завершения, чтобы отложенные вызовы успели выполниться до os.Exit.
func run() int {
	configPath := flag.String("config", "", "path to config file (overrides CONFIG_PATH)")
	flag.Parse()

	var cfg *config.Config
	if *configPath != "" {
		cfg = config.MustLoadPath(*configPath)
	} else {
		cfg = config.MustLoad()
	}

	log, logCloser := logger.New(cfg.Env, logger.FileOptions{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		MaxBackups: cfg.Log.MaxBackups,
	})
	defer logCloser.Close()

	log.Info("starting user-service", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")
	log.Debug("loaded config", slog.String("config", cfg.String()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := user.New(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize app", sl.Err(err))
		return 1
	}

	if err := app.Run(ctx); err != nil {
		log.Error("app stopped with error", sl.Err(err))
		return 1
	}

	log.Info("user-service stopped gracefully")
	return 0
}
