package session

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/d-lobanov/pomodorod/internal/pb/v1"
	"github.com/d-lobanov/pomodorod/internal/session"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	StartSession(ctx context.Context) (session.Status, error)
	StartPhase(ctx context.Context, phase session.Phase, d time.Duration) (session.Status, error)
	PauseUntil(ctx context.Context, until time.Time) (session.Status, error)
	Resume(ctx context.Context) (session.Status, error)
	ExtendPhase(ctx context.Context, d time.Duration) (session.Status, error)
	Status(ctx context.Context) session.Status
}

// Server implements the PomodoroService gRPC API.
type Server struct {
	pb.UnimplementedPomodoroServiceServer

	// service provides the business logic for session operations.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// StartSession begins a fresh work phase with the default duration.
func (s *Server) StartSession(ctx context.Context, _ *pb.StartSessionRequest) (*pb.SessionStatusResponse, error) {
	st, err := s.service.StartSession(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "unable to start session")
	}

	return toProtoStatus(st), nil
}

// StartPhase begins the requested phase. Only work and break phases may be
// started directly; a pause requires an end time and goes through PauseUntil.
func (s *Server) StartPhase(ctx context.Context, req *pb.StartPhaseRequest) (*pb.SessionStatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	phase, ok := toDomainPhase(req.GetPhase())
	if !ok || phase == session.PhasePause {
		return nil, status.Error(codes.InvalidArgument, "phase must be work or break")
	}

	st, err := s.service.StartPhase(ctx, phase, time.Duration(req.GetSeconds())*time.Second)
	if err != nil {
		return nil, status.Error(codes.Internal, "unable to start phase")
	}

	return toProtoStatus(st), nil
}

// PauseUntil pauses the session until the given wall-clock time.
func (s *Server) PauseUntil(ctx context.Context, req *pb.PauseUntilRequest) (*pb.SessionStatusResponse, error) {
	if req == nil || req.GetUntil() == nil {
		return nil, status.Error(codes.InvalidArgument, "until is required")
	}

	st, err := s.service.PauseUntil(ctx, req.GetUntil().AsTime())
	if err != nil {
		return nil, status.Error(codes.Internal, "unable to pause session")
	}

	return toProtoStatus(st), nil
}

// Resume ends a pause immediately and starts a work phase.
func (s *Server) Resume(ctx context.Context, _ *pb.ResumeRequest) (*pb.SessionStatusResponse, error) {
	st, err := s.service.Resume(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "unable to resume session")
	}

	return toProtoStatus(st), nil
}

// ExtendPhase pushes the current deadline further into the future.
func (s *Server) ExtendPhase(ctx context.Context, req *pb.ExtendPhaseRequest) (*pb.SessionStatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	st, err := s.service.ExtendPhase(ctx, time.Duration(req.GetSeconds())*time.Second)
	if err != nil {
		return nil, status.Error(codes.Internal, "unable to extend phase")
	}

	return toProtoStatus(st), nil
}

// GetStatus reports the current phase and remaining time.
func (s *Server) GetStatus(ctx context.Context, _ *pb.GetStatusRequest) (*pb.SessionStatusResponse, error) {
	return toProtoStatus(s.service.Status(ctx)), nil
}

// toDomainPhase converts a protobuf SessionPhase to a session Phase.
func toDomainPhase(phase pb.SessionPhase) (session.Phase, bool) {
	switch phase {
	case pb.SessionPhase_SESSION_PHASE_WORK:
		return session.PhaseWork, true
	case pb.SessionPhase_SESSION_PHASE_BREAK:
		return session.PhaseBreak, true
	case pb.SessionPhase_SESSION_PHASE_PAUSE:
		return session.PhasePause, true
	default:
		return "", false
	}
}

// toProtoPhase converts a session Phase to its protobuf representation.
func toProtoPhase(phase session.Phase) pb.SessionPhase {
	switch phase {
	case session.PhaseWork:
		return pb.SessionPhase_SESSION_PHASE_WORK
	case session.PhaseBreak:
		return pb.SessionPhase_SESSION_PHASE_BREAK
	case session.PhasePause:
		return pb.SessionPhase_SESSION_PHASE_PAUSE
	default:
		return pb.SessionPhase_SESSION_PHASE_UNSPECIFIED
	}
}

// toProtoStatus converts a session.Status snapshot to a protobuf
// SessionStatusResponse. A session with no armed deadline is reported with a
// nil end time and remaining_seconds of -1.
func toProtoStatus(st session.Status) *pb.SessionStatusResponse {
	response := &pb.SessionStatusResponse{
		Phase:            toProtoPhase(st.Phase),
		RemainingSeconds: -1,
		Summary:          st.Summary,
	}

	if !st.EndsAt.IsZero() {
		response.EndsAt = timestamppb.New(st.EndsAt)
		response.RemainingSeconds = int64(st.Remaining / time.Second)
	}

	return response
}
