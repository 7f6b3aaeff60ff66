//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/d-lobanov/pomodorod/internal/config"
	pb "github.com/d-lobanov/pomodorod/internal/pb/v1"
)

// Client wraps the gRPC PomodoroService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the daemon.
	conn *grpc.ClientConn
	// api is the generated PomodoroService client interface.
	api pb.PomodoroServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// errAddressRequired is returned when a required address value is missing.
var errAddressRequired = errors.New("address must be provided")

// Dial establishes a gRPC connection to the daemon.
// The daemon binds loopback only, so insecure transport credentials are used.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	// Use the non-context NewClient API recommended by grpc-go
	// (DialContext is deprecated as of grpc-go v1.60+).
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewPomodoroServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// StartSession begins a fresh work phase with the default duration.
func (c *Client) StartSession(ctx context.Context) (*pb.SessionStatusResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.StartSession(callCtx, new(pb.StartSessionRequest))
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	return response, nil
}

// StartPhase begins the given phase. Non-positive seconds select the
// configured default duration for that phase.
func (c *Client) StartPhase(
	ctx context.Context,
	phase pb.SessionPhase,
	seconds int64,
) (*pb.SessionStatusResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := &pb.StartPhaseRequest{
		Phase:   phase,
		Seconds: seconds,
	}

	response, err := c.api.StartPhase(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("start phase: %w", err)
	}

	return response, nil
}

// PauseUntil pauses the session until the given wall-clock time.
func (c *Client) PauseUntil(ctx context.Context, until time.Time) (*pb.SessionStatusResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := &pb.PauseUntilRequest{
		Until: timestamppb.New(until),
	}

	response, err := c.api.PauseUntil(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("pause session: %w", err)
	}

	return response, nil
}

// Resume ends a pause immediately and starts a work phase.
func (c *Client) Resume(ctx context.Context) (*pb.SessionStatusResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.Resume(callCtx, new(pb.ResumeRequest))
	if err != nil {
		return nil, fmt.Errorf("resume session: %w", err)
	}

	return response, nil
}

// ExtendPhase pushes the current deadline further into the future.
// Non-positive seconds select the configured snooze duration.
func (c *Client) ExtendPhase(ctx context.Context, seconds int64) (*pb.SessionStatusResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.ExtendPhase(callCtx, &pb.ExtendPhaseRequest{Seconds: seconds})
	if err != nil {
		return nil, fmt.Errorf("extend phase: %w", err)
	}

	return response, nil
}

// GetStatus retrieves the current session status.
func (c *Client) GetStatus(ctx context.Context) (*pb.SessionStatusResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.GetStatus(callCtx, new(pb.GetStatusRequest))
	if err != nil {
		return nil, fmt.Errorf("get status: %w", err)
	}

	return response, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
