package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/sunplex07/ndfr/internal/config"
	"github.com/sunplex07/ndfr/internal/domain"
	"github.com/sunplex07/ndfr/internal/poller"
)

func listenCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "listen",
		Short: "Continuously poll players and emit snapshots on change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListen(a)
		},
	}
}

// listenOptions assembles the poll-mode dependency graph around the
// connection established in the root pre-run.
func listenOptions(a *app) fx.Option {
	return fx.Options(
		fx.Provide(
			func() *zap.Logger { return a.logger },
			func() *config.AppConfig { return a.cfg },
			func() domain.Directory { return a.players },
			func() domain.Snapshotter { return a.state },
			newPoller,
		),
		fx.Invoke(registerHooks),
	)
}

func newPoller(logger *zap.Logger, cfg *config.AppConfig, players domain.Directory, state domain.Snapshotter) *poller.Poller {
	source := func() string {
		return state.Snapshot(players.Discover()).Encode()
	}
	return poller.New(logger, source, os.Stdout, cfg.PollInterval())
}

// registerHooks sets up application lifecycle hooks
func registerHooks(lc fx.Lifecycle, logger *zap.Logger, p *poller.Poller) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Media helper listening")
			return p.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			return p.Stop(ctx)
		},
	})
}

// runListen runs the poll loop until the process is terminated from
// outside; there is no internal stop condition.
func runListen(a *app) error {
	fxApp := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		listenOptions(a),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := fxApp.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()

	return fxApp.Stop(context.Background())
}
