package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/akeren/email-collector/config"
	"github.com/akeren/email-collector/domain"
	"github.com/akeren/email-collector/internal/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

func main() {
	logger := log.NewLoggerFromEnv()
	logger.Info("Email collector server initializing")

	if err := run(logger, wantsAutoMigrate(os.Args[1:])); err != nil {
		logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Graceful shutdown completed")
}

func wantsAutoMigrate(args []string) bool {
	return slices.ContainsFunc(args, func(arg string) bool {
		return arg == "--auto-migrate" || arg == "-m"
	})
}

func run(logger *log.Logger, autoMigrate bool) error {
	appConfig, err := config.LoadApplicationConfiguration(logger, autoMigrate)
	if err != nil {
		return err
	}
	defer appConfig.Cleanup()

	core, err := domain.SetupCoreDomain(appConfig)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	if appConfig.Settings.Scheduler.Enabled {
		g.Go(func() error {
			core.Checker.Run(gctx)
			return nil
		})
	} else {
		logger.Info("Repository activity checker disabled (APP_SCHEDULE_ENABLED=false)")
	}

	g.Go(func() error {
		logger.Info("Starting HTTP server...")
		return appConfig.RouterService.RunHTTPServer()
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return appConfig.RouterService.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
