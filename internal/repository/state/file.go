package state

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/d-lobanov/pomodorod/internal/config"
	pb "github.com/d-lobanov/pomodorod/internal/pb/v1"
	"github.com/d-lobanov/pomodorod/internal/session"
)

// Repository defines persistence operations for the session snapshot.
type Repository interface {
	Load(ctx context.Context) (session.Status, error)
	Save(ctx context.Context, status session.Status) error
}

// FileRepository persists the session snapshot to a JSON file on disk.
// JSON is produced and consumed via protobuf JSON (protojson) to stay
// compatible with the generated API types.
type FileRepository struct {
	// path is the filesystem location of the JSON snapshot file.
	path string
	// mu protects concurrent access to the snapshot file.
	mu sync.Mutex
}

// ErrNotFound is returned when the snapshot file does not exist yet.
var ErrNotFound = errors.New("snapshot not found")

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the snapshot from disk.
func (r *FileRepository) Load(_ context.Context) (session.Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return session.Status{}, ErrNotFound
		}

		return session.Status{}, fmt.Errorf("read snapshot file: %w", err)
	}

	var protoStatus pb.SessionStatusResponse
	if err = protojson.Unmarshal(contents, &protoStatus); err != nil {
		return session.Status{}, fmt.Errorf("decode snapshot file: %w", err)
	}

	return fromProto(&protoStatus), nil
}

// Save writes the snapshot to disk using JSON representation.
func (r *FileRepository) Save(_ context.Context, status session.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		protoStatus    = toProto(status)
		marshalOptions = protojson.MarshalOptions{
			EmitUnpopulated: true,
		}
	)

	data, err := marshalOptions.Marshal(protoStatus)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}

	return nil
}

// fromProto converts protobuf SessionStatusResponse into a session snapshot.
func fromProto(protoStatus *pb.SessionStatusResponse) session.Status {
	status := session.Status{
		Phase:   phaseFromProto(protoStatus.GetPhase()),
		Summary: protoStatus.GetSummary(),
	}

	if ts := protoStatus.GetEndsAt(); ts != nil {
		status.EndsAt = ts.AsTime()
	}

	if seconds := protoStatus.GetRemainingSeconds(); seconds >= 0 {
		status.Remaining = time.Duration(seconds) * time.Second
	}

	return status
}

// toProto converts a session snapshot into protobuf SessionStatusResponse.
func toProto(status session.Status) *pb.SessionStatusResponse {
	protoStatus := &pb.SessionStatusResponse{
		Phase:            phaseToProto(status.Phase),
		RemainingSeconds: -1,
		Summary:          status.Summary,
	}

	if !status.EndsAt.IsZero() {
		protoStatus.EndsAt = timestamppb.New(status.EndsAt)
		protoStatus.RemainingSeconds = int64(status.Remaining / time.Second)
	}

	return protoStatus
}

// phaseFromProto maps protobuf phases to session phases. Unknown values fall
// back to a break, the phase a fresh session rests in.
func phaseFromProto(phase pb.SessionPhase) session.Phase {
	switch phase {
	case pb.SessionPhase_SESSION_PHASE_WORK:
		return session.PhaseWork
	case pb.SessionPhase_SESSION_PHASE_PAUSE:
		return session.PhasePause
	default:
		return session.PhaseBreak
	}
}

// phaseToProto maps session phases to their protobuf representation.
func phaseToProto(phase session.Phase) pb.SessionPhase {
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
