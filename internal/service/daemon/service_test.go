package daemon

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	repo "github.com/d-lobanov/pomodorod/internal/repository/state"
	"github.com/d-lobanov/pomodorod/internal/session"
)

var errTestLoad = errors.New("test load error")

// memoryRepository is a minimal in-memory Repository implementation for tests.
type memoryRepository struct {
	// snapshot is the session snapshot to return from Load operations.
	snapshot session.Status
	// loadErr is the error to return from Load operations.
	loadErr error
	// saved stores the last snapshot passed to Save operations.
	saved session.Status
	// saveCount counts Save operations.
	saveCount int
}

func (m *memoryRepository) Load(context.Context) (session.Status, error) {
	return m.snapshot, m.loadErr
}

func (m *memoryRepository) Save(_ context.Context, snapshot session.Status) error {
	m.saved = snapshot
	m.saveCount++

	return nil
}

// noopTimer never fires and reports nothing to stop.
type noopTimer struct{}

func (noopTimer) Stop() bool {
	return false
}

// frozenScheduler serves a fixed wall-clock time and registers timers that
// never fire, so restore decisions can be tested at an arbitrary time.
type frozenScheduler struct {
	now time.Time
}

func (s frozenScheduler) Now() time.Time {
	return s.now
}

func (frozenScheduler) AfterFunc(time.Duration, func()) session.Timer {
	return noopTimer{}
}

func (frozenScheduler) TickFunc(time.Duration, func()) session.Timer {
	return noopTimer{}
}

// testDurations keep phases long enough that nothing completes during a test.
func testDurations() session.Durations {
	return session.Durations{
		Work:   25 * time.Minute,
		Break:  5 * time.Minute,
		Snooze: time.Minute,
	}
}

func newTestManager(t *testing.T) *session.Manager {
	t.Helper()

	m := session.NewManager(context.Background(), testDurations())
	t.Cleanup(m.Stop)

	return m
}

// TestNewService_RestoresFuturePause asserts a pause that has not elapsed yet
// survives a daemon restart.
func TestNewService_RestoresFuturePause(t *testing.T) {
	t.Parallel()

	until := time.Now().Add(30 * time.Minute)
	repository := &memoryRepository{
		snapshot: session.Status{
			Phase:  session.PhasePause,
			EndsAt: until,
		},
	}

	manager := newTestManager(t)

	s, err := newService(context.Background(), manager, repository)
	require.NoError(t, err)
	require.Equal(t, session.PhasePause, s.manager.Phase())

	endsAt, ok := s.manager.EndsAt()
	require.True(t, ok)
	require.WithinDuration(t, until, endsAt, time.Second)
}

// TestNewService_StaleSnapshotStartsFresh asserts expired snapshots are
// discarded in favor of a new work phase.
func TestNewService_StaleSnapshotStartsFresh(t *testing.T) {
	t.Parallel()

	repository := &memoryRepository{
		snapshot: session.Status{
			Phase:  session.PhasePause,
			EndsAt: time.Now().Add(-time.Hour),
		},
	}

	manager := newTestManager(t)

	s, err := newService(context.Background(), manager, repository)
	require.NoError(t, err)
	require.Equal(t, session.PhaseWork, s.manager.Phase())
}

// TestNewService_LoadsStateOrDefaults asserts newService behavior on missing
// and erroring snapshots.
func TestNewService_LoadsStateOrDefaults(t *testing.T) {
	t.Parallel()

	// Not found -> fresh work phase.
	manager := newTestManager(t)

	s, err := newService(context.Background(), manager, &memoryRepository{loadErr: repo.ErrNotFound})
	require.NoError(t, err)
	require.Equal(t, session.PhaseWork, s.manager.Phase())

	// Other error.
	manager = newTestManager(t)

	s, err = newService(context.Background(), manager, &memoryRepository{loadErr: errTestLoad})
	require.Error(t, err)
	require.Nil(t, s)
}

// TestService_CommandsPersistSnapshot verifies each command saves the
// resulting snapshot.
func TestService_CommandsPersistSnapshot(t *testing.T) {
	t.Parallel()

	repository := &memoryRepository{loadErr: repo.ErrNotFound}
	manager := newTestManager(t)

	s, err := newService(context.Background(), manager, repository)
	require.NoError(t, err)

	status, err := s.StartPhase(context.Background(), session.PhaseBreak, 0)
	require.NoError(t, err)
	require.Equal(t, session.PhaseBreak, status.Phase)
	require.Equal(t, session.PhaseBreak, repository.saved.Phase)

	until := time.Now().Add(15 * time.Minute)

	status, err = s.PauseUntil(context.Background(), until)
	require.NoError(t, err)
	require.Equal(t, session.PhasePause, status.Phase)
	require.Equal(t, session.PhasePause, repository.saved.Phase)

	status, err = s.Resume(context.Background())
	require.NoError(t, err)
	require.Equal(t, session.PhaseWork, status.Phase)

	before := status.Remaining

	status, err = s.ExtendPhase(context.Background(), time.Minute)
	require.NoError(t, err)
	require.Greater(t, status.Remaining, before)

	// A pause cannot be started directly.
	_, err = s.StartPhase(context.Background(), session.PhasePause, time.Minute)
	require.Error(t, err)
}

// TestNewService_RestoreUsesManagerClock pins snapshot freshness to the
// manager's clock source rather than the host wall clock.
func TestNewService_RestoreUsesManagerClock(t *testing.T) {
	t.Parallel()

	// The manager's clock runs two hours ahead of the host.
	clockNow := time.Now().Add(2 * time.Hour)

	newFrozenManager := func() *session.Manager {
		m := session.NewManager(
			context.Background(),
			testDurations(),
			session.WithScheduler(frozenScheduler{now: clockNow}),
		)
		t.Cleanup(m.Stop)

		return m
	}

	// Future on the wall clock but already elapsed on the manager's clock:
	// the snapshot is stale.
	repository := &memoryRepository{
		snapshot: session.Status{
			Phase:  session.PhasePause,
			EndsAt: time.Now().Add(30 * time.Minute),
		},
	}

	s, err := newService(context.Background(), newFrozenManager(), repository)
	require.NoError(t, err)
	require.Equal(t, session.PhaseWork, s.manager.Phase())

	// Still ahead of the manager's clock: the pause is restored.
	repository = &memoryRepository{
		snapshot: session.Status{
			Phase:  session.PhasePause,
			EndsAt: clockNow.Add(30 * time.Minute),
		},
	}

	s, err = newService(context.Background(), newFrozenManager(), repository)
	require.NoError(t, err)
	require.Equal(t, session.PhasePause, s.manager.Phase())
}

// TestResolveStateFile covers the override and config branches.
func TestResolveStateFile(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/tmp/override.json", resolveStateFile("configured.json", "/tmp/override.json"))
	require.Equal(t, "configured.json", resolveStateFile("configured.json", ""))
}

// TestResolveListenAddress covers override, config and error branches.
func TestResolveListenAddress(t *testing.T) {
	t.Parallel()

	addr, err := resolveListenAddress("127.0.0.1:50051", ":9090")
	require.NoError(t, err)
	require.Equal(t, ":9090", addr)

	addr, err = resolveListenAddress("127.0.0.1:50051", "")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:50051", addr)

	_, err = resolveListenAddress("", "")
	require.ErrorIs(t, err, ErrNoServerAddress)

	_, err = resolveListenAddress("not-an-address", "")
	require.Error(t, err)
}
