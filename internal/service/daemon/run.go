package daemon

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net"

	"google.golang.org/grpc"

	api "github.com/d-lobanov/pomodorod/internal/api/grpc/session"
	"github.com/d-lobanov/pomodorod/internal/config"
	"github.com/d-lobanov/pomodorod/internal/logger"
	pb "github.com/d-lobanov/pomodorod/internal/pb/v1"
	repository "github.com/d-lobanov/pomodorod/internal/repository/state"
	"github.com/d-lobanov/pomodorod/internal/session"
)

// Options controls the pomodorod process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// StateFile specifies the path to persist the session snapshot JSON.
	StateFile string
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the daemon and blocks until context is canceled or the server
// stops. Loads configuration first, creating the settings file with defaults
// when missing, then restores the session and serves the gRPC API.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "pomodorod")

	// Refuse to start when another daemon already runs on this machine.
	if err := ensureSingleInstance(); err != nil {
		return err
	}

	// Load configuration, seeding a default settings file on first start.
	cfg, err := config.LoadOrCreate(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// Use StateFile from config unless overridden by command line option.
	stateFile := resolveStateFile(cfg.StateFile, opts.StateFile)

	// Determine listen address: CLI argument overrides config.
	listenAddress, err := resolveListenAddress(cfg.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	// Initialize snapshot repository for session persistence.
	repo := repository.NewFileRepository(stateFile)

	// The manager drives the phase state machine on the system clock.
	manager := session.NewManager(ctx, cfg.Durations())
	defer manager.Stop()

	subscribeSessionEvents(ctx, manager, repo, cfg.Messages.WorkEndPrompts)

	// Restore the previous snapshot and expose the business operations.
	svc, err := newService(ctx, manager, repo)
	if err != nil {
		return fmt.Errorf("initialise service: %w", err)
	}

	// Setup TCP listener for gRPC server.
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	// Create and configure gRPC server with the session service.
	grpcServer := grpc.NewServer()
	pb.RegisterPomodoroServiceServer(grpcServer, api.NewServer(svc))

	logger.InfoKV(ctx, "Pomodoro daemon listening", "listen_address", listenAddress, "state_file", stateFile)

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		grpcServer.GracefulStop()
		close(done)
	}()

	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done
	logger.Info(ctx, "GRPC server stopped")

	return nil
}

// subscribeSessionEvents logs session transitions, persists snapshots on
// natural phase changes and surfaces a reflection prompt when a work phase
// ends.
func subscribeSessionEvents(
	ctx context.Context,
	manager *session.Manager,
	repo repository.Repository,
	prompts []string,
) {
	manager.OnPhaseChanged(func(previous, current session.Phase) {
		logger.InfoKV(ctx, "Session phase changed",
			"previous_phase", previous.String(),
			"phase", current.String())

		if err := repo.Save(ctx, manager.Status()); err != nil {
			logger.Errorf(ctx, "Failed to persist session snapshot: %v", err)
		}
	})

	manager.OnPhaseEndingSoon(func(phase session.Phase) {
		logger.InfoKV(ctx, "Phase ending soon", "phase", phase.String())
	})

	manager.OnWorkEnded(func() {
		if len(prompts) == 0 {
			logger.Info(ctx, "Work phase ended")
			return
		}

		logger.InfoKV(ctx, "Work phase ended", "prompt", prompts[rand.IntN(len(prompts))])
	})
}

// resolveStateFile determines where the session snapshot is persisted.
// A command line override wins over the settings file; the configured path is
// never empty because Validate fills in the default filename.
func resolveStateFile(configured, override string) string {
	if override != "" {
		return override
	}

	return configured
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise uses the configured
// address as-is; the daemon serves a single desktop, so it binds the exact
// loopback address from the settings file rather than all interfaces.
func resolveListenAddress(configAddr, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	if _, _, err := net.SplitHostPort(configAddr); err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	return configAddr, nil
}
