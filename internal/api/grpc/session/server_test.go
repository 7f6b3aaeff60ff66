package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/d-lobanov/pomodorod/internal/pb/v1"
	"github.com/d-lobanov/pomodorod/internal/session"
)

// fakeService implements the Service interface for unit testing the transport.
// Every command records what it was called with and returns the canned status.
type fakeService struct {
	status session.Status

	startedSessions int
	startedPhase    session.Phase
	startedDuration time.Duration
	pausedUntil     time.Time
	resumed         int
	extendedBy      time.Duration
}

func (f *fakeService) StartSession(context.Context) (session.Status, error) {
	f.startedSessions++
	return f.status, nil
}

func (f *fakeService) StartPhase(_ context.Context, phase session.Phase, d time.Duration) (session.Status, error) {
	f.startedPhase = phase
	f.startedDuration = d

	return f.status, nil
}

func (f *fakeService) PauseUntil(_ context.Context, until time.Time) (session.Status, error) {
	f.pausedUntil = until
	return f.status, nil
}

func (f *fakeService) Resume(context.Context) (session.Status, error) {
	f.resumed++
	return f.status, nil
}

func (f *fakeService) ExtendPhase(_ context.Context, d time.Duration) (session.Status, error) {
	f.extendedBy = d
	return f.status, nil
}

func (f *fakeService) Status(context.Context) session.Status { return f.status }

// TestServer_StartPhase_Validation ensures invalid requests return InvalidArgument errors.
func TestServer_StartPhase_Validation(t *testing.T) {
	t.Parallel()

	s := NewServer(new(fakeService))

	_, err := s.StartPhase(context.Background(), nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	// Unspecified phase.
	_, err = s.StartPhase(context.Background(), new(pb.StartPhaseRequest))
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	// A pause needs an end time and must go through PauseUntil.
	request := &pb.StartPhaseRequest{Phase: pb.SessionPhase_SESSION_PHASE_PAUSE}

	_, err = s.StartPhase(context.Background(), request)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_PauseUntil_Validation ensures a missing target time is rejected.
func TestServer_PauseUntil_Validation(t *testing.T) {
	t.Parallel()

	s := NewServer(new(fakeService))

	_, err := s.PauseUntil(context.Background(), nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.PauseUntil(context.Background(), new(pb.PauseUntilRequest))
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_Commands verifies commands are relayed to the service with
// converted arguments.
func TestServer_Commands(t *testing.T) {
	t.Parallel()

	svc := new(fakeService)
	s := NewServer(svc)

	_, err := s.StartSession(context.Background(), new(pb.StartSessionRequest))
	require.NoError(t, err)
	require.Equal(t, 1, svc.startedSessions)

	request := &pb.StartPhaseRequest{
		Phase:   pb.SessionPhase_SESSION_PHASE_BREAK,
		Seconds: 300,
	}

	_, err = s.StartPhase(context.Background(), request)
	require.NoError(t, err)
	require.Equal(t, session.PhaseBreak, svc.startedPhase)
	require.Equal(t, 5*time.Minute, svc.startedDuration)

	until := time.Date(2025, time.March, 1, 10, 30, 0, 0, time.UTC)

	_, err = s.PauseUntil(context.Background(), &pb.PauseUntilRequest{Until: timestamppb.New(until)})
	require.NoError(t, err)
	require.Equal(t, until, svc.pausedUntil)

	_, err = s.Resume(context.Background(), new(pb.ResumeRequest))
	require.NoError(t, err)
	require.Equal(t, 1, svc.resumed)

	_, err = s.ExtendPhase(context.Background(), &pb.ExtendPhaseRequest{Seconds: 60})
	require.NoError(t, err)
	require.Equal(t, time.Minute, svc.extendedBy)
}

// TestServer_GetStatus_Conversion verifies snapshot mapping, including the
// idle sentinel of -1 remaining seconds.
func TestServer_GetStatus_Conversion(t *testing.T) {
	t.Parallel()

	endsAt := time.Date(2025, time.March, 1, 10, 25, 0, 0, time.UTC)
	svc := &fakeService{
		status: session.Status{
			Phase:     session.PhaseWork,
			EndsAt:    endsAt,
			Remaining: 25 * time.Minute,
			Summary:   "Work - 00:25:00",
		},
	}

	s := NewServer(svc)

	response, err := s.GetStatus(context.Background(), new(pb.GetStatusRequest))
	require.NoError(t, err)
	require.Equal(t, pb.SessionPhase_SESSION_PHASE_WORK, response.GetPhase())
	require.Equal(t, endsAt, response.GetEndsAt().AsTime())
	require.Equal(t, int64(1500), response.GetRemainingSeconds())
	require.Equal(t, "Work - 00:25:00", response.GetSummary())

	// No armed deadline.
	svc.status = session.Status{
		Phase:   session.PhaseBreak,
		Summary: "no end datetime",
	}

	response, err = s.GetStatus(context.Background(), new(pb.GetStatusRequest))
	require.NoError(t, err)
	require.Nil(t, response.GetEndsAt())
	require.Equal(t, int64(-1), response.GetRemainingSeconds())
}
