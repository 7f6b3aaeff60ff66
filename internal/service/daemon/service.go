package daemon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/d-lobanov/pomodorod/internal/logger"
	repo "github.com/d-lobanov/pomodorod/internal/repository/state"
	"github.com/d-lobanov/pomodorod/internal/session"
)

// service encapsulates the session business logic and persistence
// orchestration. It is unexported to keep the transport decoupled from the
// implementation.
type service struct {
	// manager owns the session phase state machine.
	manager *session.Manager
	// repo handles persistent storage of session snapshots.
	repo repo.Repository
}

// newService creates a service backed by the provided manager and repository
// and restores any snapshot left by a previous daemon run.
func newService(ctx context.Context, manager *session.Manager, repository repo.Repository) (*service, error) {
	s := &service{
		manager: manager,
		repo:    repository,
	}

	if repository == nil {
		s.manager.Start(ctx)

		return s, nil
	}

	snapshot, err := repository.Load(ctx)
	switch {
	case err == nil:
		s.restore(ctx, snapshot)
	case errors.Is(err, repo.ErrNotFound):
		// Fresh install, begin a new session.
		s.manager.Start(ctx)
	default:
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	return s, nil
}

// restore resumes the session recorded in the snapshot. A pause whose target
// is still in the future survives the restart; everything else is stale by
// now and the session starts over with a fresh work phase.
func (s *service) restore(ctx context.Context, snapshot session.Status) {
	if snapshot.Phase == session.PhasePause && snapshot.EndsAt.After(s.manager.Now()) {
		logger.InfoKV(ctx, "Restoring paused session", "until", snapshot.EndsAt.Format(time.RFC3339))
		s.manager.PauseUntil(ctx, snapshot.EndsAt)

		return
	}

	logger.Info(ctx, "Snapshot is stale, starting a fresh session")
	s.manager.Start(ctx)
}

// StartSession begins a fresh work phase with the default duration.
func (s *service) StartSession(ctx context.Context) (session.Status, error) {
	s.manager.Start(ctx)

	return s.persist(ctx)
}

// StartPhase forces the session into the given phase.
func (s *service) StartPhase(ctx context.Context, phase session.Phase, d time.Duration) (session.Status, error) {
	switch phase {
	case session.PhaseWork:
		s.manager.StartWork(ctx, d)
	case session.PhaseBreak:
		s.manager.StartBreak(ctx, d)
	default:
		return session.Status{}, fmt.Errorf("phase %q cannot be started directly", phase)
	}

	return s.persist(ctx)
}

// PauseUntil pauses the session until the given wall-clock time.
func (s *service) PauseUntil(ctx context.Context, until time.Time) (session.Status, error) {
	s.manager.PauseUntil(ctx, until)

	return s.persist(ctx)
}

// Resume ends a pause immediately and starts a work phase.
func (s *service) Resume(ctx context.Context) (session.Status, error) {
	s.manager.Resume(ctx)

	return s.persist(ctx)
}

// ExtendPhase pushes the current deadline further into the future.
func (s *service) ExtendPhase(ctx context.Context, d time.Duration) (session.Status, error) {
	s.manager.Extend(ctx, d)

	return s.persist(ctx)
}

// Status reports the current session snapshot.
func (s *service) Status(context.Context) session.Status {
	return s.manager.Status()
}

// persist writes the current snapshot to the repository and returns it.
func (s *service) persist(ctx context.Context) (session.Status, error) {
	snapshot := s.manager.Status()

	if s.repo == nil {
		return snapshot, nil
	}

	if err := s.repo.Save(ctx, snapshot); err != nil {
		logger.Errorf(ctx, "Failed to persist session snapshot: %v", err)

		return snapshot, fmt.Errorf("persist snapshot: %w", err)
	}

	return snapshot, nil
}
