package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sunplex07/ndfr/internal/config"
	"github.com/sunplex07/ndfr/internal/domain"
	"github.com/sunplex07/ndfr/internal/mpris"
)

// app carries the dependencies shared by every subcommand. The bus
// connection is established once, in the root command's pre-run, and
// lives for the whole process.
type app struct {
	logger  *zap.Logger
	cfg     *config.AppConfig
	conn    mpris.DBusClient
	players domain.Directory
	state   domain.Snapshotter
	control domain.Controller
}

func main() {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	a := &app{logger: logger}
	if err := newRootCommand(a).Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger creates a new zap logger instance. Logs go to stderr;
// stdout is reserved for snapshot output read by the pipe relay.
func newLogger() (*zap.Logger, error) {
	if os.Getenv("NDFR_DEBUG") != "" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "ndfr-media-helper",
		Short:        "Report and control MPRIS media players for the touch strip daemon",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Usage()
			return errors.New("missing command")
		},
	}

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !cmd.HasParent() {
			// Bare invocation fails on usage before touching the bus.
			return nil
		}
		conn, err := mpris.NewStdDBusClient()
		if err != nil {
			a.logger.Error("Failed to connect to session bus", zap.Error(err))
			return fmt.Errorf("session bus connection failed: %w", err)
		}
		manager := mpris.NewManager(a.logger, conn)

		a.conn = conn
		a.cfg = config.NewAppConfig(a.logger)
		a.players = manager
		a.state = manager
		a.control = manager
		return nil
	}

	root.AddCommand(
		getCommand(a),
		listenCommand(a),
		playPauseCommand(a),
		setPositionCommand(a),
		setPositionPercentCommand(a),
	)
	return root
}

func getCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print a one-shot snapshot of active players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot := a.state.Snapshot(a.players.Discover())
			fmt.Fprintln(cmd.OutOrStdout(), snapshot.Encode())
			return nil
		},
	}
}

// resolveTarget picks the control target: the explicit id when given,
// otherwise the highest-priority discovered player.
func (a *app) resolveTarget(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	players := a.players.Discover()
	if len(players) == 0 {
		return "", errors.New("no media player found")
	}
	return players[0], nil
}
