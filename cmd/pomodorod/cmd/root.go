package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/d-lobanov/pomodorod/internal/config"
	"github.com/d-lobanov/pomodorod/internal/service/daemon"
	"github.com/d-lobanov/pomodorod/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// stateFile path where the session snapshot is persisted.
	stateFile string

	// rootCmd represents the base command for running the pomodoro daemon.
	rootCmd = &cobra.Command{
		Use:   "pomodorod [listen-address]",
		Short: "Run the pomodoro daemon and manage the session.",
		Long: `Starts the daemon that owns the pomodoro session and serves the gRPC API.

The daemon alternates work and break phases, detects machine sleep through a
heartbeat and recovers the session when the clock jumps. Session state is
persisted to a JSON snapshot so a pause survives daemon restarts.
The listen address can be provided as argument to override the settings file
(e.g., 127.0.0.1:50051). A missing settings file is created with defaults.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &daemon.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				StateFile:     stateFile,
			}

			return daemon.Run(ctx, options)
		},
	}
)

// Execute runs the pomodorod CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().
		StringVarP(&stateFile, "state-file", "s", "", "path to persist session snapshot (defaults to state_file from the settings file)")
}
