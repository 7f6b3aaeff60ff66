package ctl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/d-lobanov/pomodorod/internal/config"
	"github.com/d-lobanov/pomodorod/internal/logger"
	pb "github.com/d-lobanov/pomodorod/internal/pb/v1"
	"github.com/d-lobanov/pomodorod/internal/service/common"
)

// Options controls the pomodoroctl operations and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ServerAddress provides an optional daemon address override.
	ServerAddress string
	// Seconds overrides the phase or extension duration for start and snooze
	// commands. Non-positive values select the configured default.
	Seconds int64
	// Until is the pause target time.
	Until time.Time
	// PollInterval defines the interval between status reads in watch mode.
	PollInterval time.Duration
	// Out receives command output. Defaults to standard output.
	Out io.Writer
}

// DefaultPollInterval refreshes the watch countdown about once a second.
const DefaultPollInterval = time.Second

// errPauseTargetRequired is returned when a pause command lacks a target time.
var errPauseTargetRequired = errors.New("pause target time must be provided")

// Status prints the current session summary.
func Status(ctx context.Context, opts *Options) error {
	return withClient(ctx, opts, func(ctx context.Context, client *common.Client, out io.Writer) error {
		response, err := client.GetStatus(ctx)
		if err != nil {
			return err
		}

		printStatus(out, response)

		return nil
	})
}

// StartSession begins a fresh work phase with the default duration.
func StartSession(ctx context.Context, opts *Options) error {
	return withClient(ctx, opts, func(ctx context.Context, client *common.Client, out io.Writer) error {
		response, err := client.StartSession(ctx)
		if err != nil {
			return err
		}

		printStatus(out, response)

		return nil
	})
}

// StartWork forces a work phase.
func StartWork(ctx context.Context, opts *Options) error {
	return startPhase(ctx, opts, pb.SessionPhase_SESSION_PHASE_WORK)
}

// StartBreak forces a break phase.
func StartBreak(ctx context.Context, opts *Options) error {
	return startPhase(ctx, opts, pb.SessionPhase_SESSION_PHASE_BREAK)
}

// Pause suspends the session until opts.Until.
func Pause(ctx context.Context, opts *Options) error {
	if opts.Until.IsZero() {
		return errPauseTargetRequired
	}

	return withClient(ctx, opts, func(ctx context.Context, client *common.Client, out io.Writer) error {
		response, err := client.PauseUntil(ctx, opts.Until)
		if err != nil {
			return err
		}

		printStatus(out, response)

		return nil
	})
}

// Resume ends a pause immediately and starts a work phase.
func Resume(ctx context.Context, opts *Options) error {
	return withClient(ctx, opts, func(ctx context.Context, client *common.Client, out io.Writer) error {
		response, err := client.Resume(ctx)
		if err != nil {
			return err
		}

		printStatus(out, response)

		return nil
	})
}

// Snooze extends the current phase, by opts.Seconds when positive or the
// configured snooze duration otherwise.
func Snooze(ctx context.Context, opts *Options) error {
	return withClient(ctx, opts, func(ctx context.Context, client *common.Client, out io.Writer) error {
		response, err := client.ExtendPhase(ctx, opts.Seconds)
		if err != nil {
			return err
		}

		printStatus(out, response)

		return nil
	})
}

// Watch polls the daemon and reprints the summary until the context is
// canceled.
func Watch(ctx context.Context, opts *Options) error {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}

	return withClient(ctx, opts, func(ctx context.Context, client *common.Client, out io.Writer) error {
		// Print once immediately so the user is not staring at a blank line
		// for a full interval.
		response, err := client.GetStatus(ctx)
		if err != nil {
			return err
		}

		printStatus(out, response)

		ticker := time.NewTicker(opts.PollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				response, err = client.GetStatus(ctx)
				if err != nil {
					logger.ErrorKV(ctx, "Status poll failed", "error", err)
					continue
				}

				printStatus(out, response)
			}
		}
	})
}

// startPhase shares the start-work and start-break plumbing.
func startPhase(ctx context.Context, opts *Options, phase pb.SessionPhase) error {
	return withClient(ctx, opts, func(ctx context.Context, client *common.Client, out io.Writer) error {
		response, err := client.StartPhase(ctx, phase, opts.Seconds)
		if err != nil {
			return err
		}

		printStatus(out, response)

		return nil
	})
}

// withClient loads the configuration, dials the daemon and runs fn with a
// ready client, closing the connection afterwards.
func withClient(
	ctx context.Context,
	opts *Options,
	fn func(ctx context.Context, client *common.Client, out io.Writer) error,
) error {
	ctx = logger.WithName(ctx, "pomodoroctl")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// Determine server address: command line argument overrides config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return fmt.Errorf("dial daemon: %w", err)
	}

	defer func() {
		_ = client.Close()
	}()

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	return fn(ctx, client, out)
}

// printStatus renders a status response as a single summary line.
func printStatus(out io.Writer, response *pb.SessionStatusResponse) {
	_, _ = fmt.Fprintln(out, response.GetSummary())
}
