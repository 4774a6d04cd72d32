package internal

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/apiarycd/gitwip/internal/cli"
	"github.com/apiarycd/gitwip/internal/config"
	"github.com/apiarycd/gitwip/internal/console"
	"github.com/apiarycd/gitwip/internal/git"
	"github.com/apiarycd/gitwip/internal/notes"
	"github.com/apiarycd/gitwip/internal/report"
	"github.com/apiarycd/gitwip/internal/repos"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], console.StdStreams(), Scan)
	stop()

	os.Exit(code)
}

// Scan builds the application for cfg, runs one scan and publishes its
// report.
func Scan(ctx context.Context, cfg config.Config, streams console.Streams) error {
	target, err := cfg.Target()
	if err != nil {
		return err
	}

	var (
		service  *repos.Service
		reporter *report.Reporter
	)

	app := fx.New(
		// CORE MODULES
		logger.Module(),
		logger.WithFxDefaultLogger(),
		fx.Supply(cfg, streams),
		//
		// APP MODULES
		config.Module(),
		git.Module(),
		notes.Module(),
		console.Module(),
		//
		// BUSINESS MODULES
		repos.Module(),
		report.Module(),
		//
		// LIFECYCLE MANAGEMENT
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Debug("gitwip starting up", zap.String("directory", target.Path))
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Debug("gitwip shutting down")
					return nil
				},
			})
		}),
		fx.Populate(&service, &reporter),
	)
	if err := app.Err(); err != nil {
		return err
	}

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	defer func() {
		_ = app.Stop(context.WithoutCancel(ctx))
	}()

	rr, err := service.Run(ctx, target)
	if err != nil {
		return err
	}

	reporter.Publish(rr)

	return nil
}
