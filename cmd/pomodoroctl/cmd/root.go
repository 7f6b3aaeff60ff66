package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/d-lobanov/pomodorod/internal/config"
	"github.com/d-lobanov/pomodorod/internal/service/ctl"
	"github.com/d-lobanov/pomodorod/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// serverAddress overrides the daemon address from config when specified.
	serverAddress string
	// seconds overrides the phase or extension duration when positive.
	seconds int64
	// pollInterval defines the refresh rate for watch mode.
	pollInterval time.Duration

	// rootCmd represents the base command for controlling the daemon.
	rootCmd = &cobra.Command{
		Use:   "pomodoroctl",
		Short: "Control the pomodoro daemon.",
		Long: `Command-line client for the pomodoro daemon.

Sends session commands (start, pause, resume, snooze) over gRPC and prints
the resulting one-line session summary. The daemon address is read from the
settings file unless overridden with --server.`,
	}
)

// Execute runs the pomodoroctl CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// commandContext cancels the command when the process receives a signal.
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
}

// options assembles ctl options from the shared flags.
func options() *ctl.Options {
	return &ctl.Options{
		ConfigPath:    configPath,
		ServerAddress: serverAddress,
		Seconds:       seconds,
		PollInterval:  pollInterval,
	}
}

//nolint:gochecknoinits,funlen // Required by Cobra CLI framework architecture.
func init() {
	// Setup persistent flags shared by all subcommands.
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&serverAddress, "server", "a", "", "daemon address override")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Print the current session summary.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := commandContext()
			defer stop()

			return ctl.Status(ctx, options())
		},
	}

	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Start a session: a fresh work phase with the default duration.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := commandContext()
			defer stop()

			return ctl.StartSession(ctx, options())
		},
	}

	workCmd := &cobra.Command{
		Use:   "work",
		Short: "Force a work phase.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := commandContext()
			defer stop()

			return ctl.StartWork(ctx, options())
		},
	}

	breakCmd := &cobra.Command{
		Use:   "break",
		Short: "Force a break phase.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := commandContext()
			defer stop()

			return ctl.StartBreak(ctx, options())
		},
	}

	pauseCmd := &cobra.Command{
		Use:   "pause <target>",
		Short: "Pause the session until a time (\"15:04\") or for a duration (\"45m\").",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := commandContext()
			defer stop()

			until, err := ctl.ParsePauseTarget(args[0], time.Now())
			if err != nil {
				return err
			}

			opts := options()
			opts.Until = until

			return ctl.Pause(ctx, opts)
		},
	}

	resumeCmd := &cobra.Command{
		Use:   "resume",
		Short: "End a pause immediately and start a work phase.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := commandContext()
			defer stop()

			return ctl.Resume(ctx, options())
		},
	}

	snoozeCmd := &cobra.Command{
		Use:   "snooze",
		Short: "Extend the current phase by the snooze duration.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := commandContext()
			defer stop()

			return ctl.Snooze(ctx, options())
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep printing the session summary until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := commandContext()
			defer stop()

			return ctl.Watch(ctx, options())
		},
	}

	// Duration override applies to the phase-starting and snooze commands.
	for _, c := range []*cobra.Command{workCmd, breakCmd, snoozeCmd} {
		c.Flags().Int64VarP(&seconds, "seconds", "s", 0, "duration override in seconds")
	}

	watchCmd.Flags().DurationVarP(&pollInterval, "interval", "i", ctl.DefaultPollInterval, "refresh interval")

	rootCmd.AddCommand(statusCmd, startCmd, workCmd, breakCmd, pauseCmd, resumeCmd, snoozeCmd, watchCmd)
}
