package session

import (
	"context"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"
)

// managerRecorder collects emitted manager events.
type managerRecorder struct {
	mu           sync.Mutex
	transitions  [][2]Phase
	warnings     []Phase
	workEndedCnt int
}

func (r *managerRecorder) attach(m *Manager) {
	m.OnPhaseChanged(func(previous, current Phase) {
		r.mu.Lock()
		defer r.mu.Unlock()

		r.transitions = append(r.transitions, [2]Phase{previous, current})
	})
	m.OnPhaseEndingSoon(func(phase Phase) {
		r.mu.Lock()
		defer r.mu.Unlock()

		r.warnings = append(r.warnings, phase)
	})
	m.OnWorkEnded(func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		r.workEndedCnt++
	})
}

func (r *managerRecorder) workEnded() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.workEndedCnt
}

func (r *managerRecorder) lastTransition(t *testing.T) [2]Phase {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	require.NotEmpty(t, r.transitions)

	return r.transitions[len(r.transitions)-1]
}

// newTestManager builds a manager on a fake scheduler with a warning offset
// of one second so warning timers stay out of the way unless a test wants
// them.
func newTestManager(durations Durations, opts ...Option) (*Manager, *fakeScheduler, *managerRecorder) {
	sched := newFakeScheduler()

	opts = append([]Option{
		WithScheduler(sched),
		WithClockConfig(ClockConfig{
			HeartbeatInterval: 3 * time.Second,
			SleepGapThreshold: 30 * time.Second,
			WarningOffset:     time.Second,
		}),
	}, opts...)

	m := NewManager(context.Background(), durations, opts...)
	rec := new(managerRecorder)
	rec.attach(m)

	return m, sched, rec
}

func testDurations() Durations {
	return Durations{
		Work:   10 * time.Second,
		Break:  5 * time.Second,
		Snooze: 2 * time.Second,
	}
}

// TestManagerStartEntersWork verifies Start always begins a work phase with
// the configured default duration.
func TestManagerStartEntersWork(t *testing.T) {
	t.Parallel()

	m, sched, rec := newTestManager(testDurations())

	require.Equal(t, PhaseBreak, m.Phase())

	m.Start(context.Background())

	require.Equal(t, PhaseWork, m.Phase())
	sched.activeSingle(t, 10*time.Second)
	require.Equal(t, [2]Phase{PhaseBreak, PhaseWork}, rec.lastTransition(t))
}

// TestManagerPauseUntilUsesAbsoluteTarget verifies the pause duration is
// derived from the target timestamp at the moment of the call.
func TestManagerPauseUntilUsesAbsoluteTarget(t *testing.T) {
	t.Parallel()

	m, sched, _ := newTestManager(testDurations())

	m.PauseUntil(context.Background(), sched.Now().Add(90*time.Second))

	require.Equal(t, PhasePause, m.Phase())

	remaining, ok := m.Remaining()
	require.True(t, ok)
	require.Equal(t, 90*time.Second, remaining)
}

// TestManagerPauseUntilPastTargetClampsToZero verifies a target in the past
// still enters the pause phase, with a zero-length deadline.
func TestManagerPauseUntilPastTargetClampsToZero(t *testing.T) {
	t.Parallel()

	m, sched, _ := newTestManager(testDurations())

	m.PauseUntil(context.Background(), sched.Now().Add(-time.Minute))

	require.Equal(t, PhasePause, m.Phase())
	sched.activeSingle(t, 0)
}

// TestManagerResumeOnlyLeavesPause verifies Resume transitions pause into
// work and does nothing elsewhere.
func TestManagerResumeOnlyLeavesPause(t *testing.T) {
	t.Parallel()

	m, sched, _ := newTestManager(testDurations())

	m.StartBreak(context.Background(), 0)
	m.Resume(context.Background())
	require.Equal(t, PhaseBreak, m.Phase())

	m.PauseUntil(context.Background(), sched.Now().Add(time.Hour))
	m.Resume(context.Background())

	require.Equal(t, PhaseWork, m.Phase())

	remaining, ok := m.Remaining()
	require.True(t, ok)
	require.Equal(t, 10*time.Second, remaining)
}

// TestManagerManualStartsOverrideAnyPhase verifies forced transitions win
// from every phase, including pause, and that explicit durations are used.
func TestManagerManualStartsOverrideAnyPhase(t *testing.T) {
	t.Parallel()

	m, sched, _ := newTestManager(testDurations())

	m.PauseUntil(context.Background(), sched.Now().Add(2*time.Minute))
	require.Equal(t, PhasePause, m.Phase())

	m.StartBreak(context.Background(), 42*time.Second)
	require.Equal(t, PhaseBreak, m.Phase())
	sched.activeSingle(t, 42*time.Second)

	m.StartWork(context.Background(), 33*time.Second)
	require.Equal(t, PhaseWork, m.Phase())
	sched.activeSingle(t, 33*time.Second)
}

// TestManagerNonPositiveDurationSelectsDefault verifies the explicit
// use-the-default sentinel for phase start overrides.
func TestManagerNonPositiveDurationSelectsDefault(t *testing.T) {
	t.Parallel()

	m, sched, _ := newTestManager(testDurations())

	m.StartWork(context.Background(), 0)
	sched.activeSingle(t, 10*time.Second)

	m.StartBreak(context.Background(), -3*time.Second)
	sched.activeSingle(t, 5*time.Second)
}

// TestManagerNaturalCycleAlternates runs the end-to-end scenario: work and
// break alternate deterministically and the work-ended event fires exactly
// once per work-to-break edge.
func TestManagerNaturalCycleAlternates(t *testing.T) {
	t.Parallel()

	m, sched, rec := newTestManager(testDurations())

	m.Start(context.Background())
	require.Equal(t, PhaseWork, m.Phase())

	remaining, ok := m.Remaining()
	require.True(t, ok)
	require.Equal(t, 10*time.Second, remaining)

	// Work completes on time.
	sched.advance(10 * time.Second)
	sched.activeSingle(t, 10*time.Second).fire()

	require.Equal(t, PhaseBreak, m.Phase())
	require.Equal(t, 1, rec.workEnded())

	remaining, ok = m.Remaining()
	require.True(t, ok)
	require.Equal(t, 5*time.Second, remaining)

	// Break completes on time; no work-ended event on this edge.
	sched.advance(5 * time.Second)
	sched.activeSingle(t, 5*time.Second).fire()

	require.Equal(t, PhaseWork, m.Phase())
	require.Equal(t, 1, rec.workEnded())

	remaining, ok = m.Remaining()
	require.True(t, ok)
	require.Equal(t, 10*time.Second, remaining)
}

// TestManagerLateFinishWithinThresholdCycles verifies a completion exactly
// at the restart threshold still follows the normal cycle.
func TestManagerLateFinishWithinThresholdCycles(t *testing.T) {
	t.Parallel()

	m, _, rec := newTestManager(testDurations())

	m.StartWork(context.Background(), 0)
	m.handleClockFinished(DefaultLateRestartThreshold)

	require.Equal(t, PhaseBreak, m.Phase())
	require.Equal(t, 1, rec.workEnded())
}

// TestManagerLateFinishBeyondThresholdRestarts verifies a completion past
// the threshold restarts the session into work without a work-ended event,
// regardless of the prior phase.
func TestManagerLateFinishBeyondThresholdRestarts(t *testing.T) {
	t.Parallel()

	m, _, rec := newTestManager(testDurations())

	m.StartWork(context.Background(), 0)
	m.handleClockFinished(DefaultLateRestartThreshold + time.Second)

	require.Equal(t, PhaseWork, m.Phase())
	require.Zero(t, rec.workEnded())

	remaining, ok := m.Remaining()
	require.True(t, ok)
	require.Equal(t, 10*time.Second, remaining)

	// Same policy out of a break.
	m.StartBreak(context.Background(), 0)
	m.handleClockFinished(DefaultLateRestartThreshold + time.Second)

	require.Equal(t, PhaseWork, m.Phase())
	require.Zero(t, rec.workEnded())
}

// TestManagerExtendKeepsPhaseIdentity verifies Extend pushes the deadline by
// the snooze default without transitioning.
func TestManagerExtendKeepsPhaseIdentity(t *testing.T) {
	t.Parallel()

	durations := testDurations()
	durations.Work = 120 * time.Second
	durations.Snooze = 7 * time.Second

	m, _, rec := newTestManager(durations)

	m.StartWork(context.Background(), 0)

	before, ok := m.EndsAt()
	require.True(t, ok)

	transitions := len(rec.transitions)

	m.Extend(context.Background(), 0)

	after, ok := m.EndsAt()
	require.True(t, ok)
	require.Equal(t, before.Add(7*time.Second), after)
	require.Equal(t, PhaseWork, m.Phase())
	require.Len(t, rec.transitions, transitions)
}

// TestManagerExtendExplicitDuration verifies an explicit extension amount is
// honored and deadline monotonicity holds.
func TestManagerExtendExplicitDuration(t *testing.T) {
	t.Parallel()

	m, sched, _ := newTestManager(testDurations())

	m.StartWork(context.Background(), 100*time.Second)

	before, ok := m.EndsAt()
	require.True(t, ok)

	sched.advance(30 * time.Second)
	m.Extend(context.Background(), 45*time.Second)

	after, ok := m.EndsAt()
	require.True(t, ok)
	require.Equal(t, before.Add(45*time.Second), after)

	remaining, ok := m.Remaining()
	require.True(t, ok)
	require.Equal(t, after.Sub(sched.Now()), remaining)
}

// TestManagerWarningRelaysActivePhase verifies the ending-soon event carries
// the phase that is active when the warning fires, including the synchronous
// short-phase case.
func TestManagerWarningRelaysActivePhase(t *testing.T) {
	t.Parallel()

	m, sched, rec := newTestManager(testDurations(), WithClockConfig(ClockConfig{
		HeartbeatInterval: 3 * time.Second,
		SleepGapThreshold: 30 * time.Second,
		WarningOffset:     time.Minute,
	}))

	// Work shorter than the offset: warning inside the StartWork call.
	m.StartWork(context.Background(), 45*time.Second)
	require.Equal(t, []Phase{PhaseWork}, rec.warnings)

	// Break longer than the offset: warning from its timer.
	m.StartBreak(context.Background(), 120*time.Second)
	require.Equal(t, []Phase{PhaseWork}, rec.warnings)

	sched.activeSingle(t, 60*time.Second).fire()
	require.Equal(t, []Phase{PhaseWork, PhaseBreak}, rec.warnings)
}

// TestManagerSummaries verifies the human-readable summary strings.
func TestManagerSummaries(t *testing.T) {
	t.Parallel()

	m, sched, _ := newTestManager(testDurations())

	require.Equal(t, "no end datetime", m.TimeLeftString())
	require.Equal(t, "no end datetime", m.EndsAtString())

	m.StartWork(context.Background(), 10*time.Second)
	sched.advance(5 * time.Second)

	require.Equal(t, "Work - 00:00:05", m.TimeLeftString())
	require.Equal(t, "Work - 00:00:05", m.String())

	m.PauseUntil(context.Background(), sched.Now().Add(30*time.Minute))

	require.Equal(t, "Pause until 10:30", m.EndsAtString())
	require.Equal(t, "Pause until 10:30", m.String())
}

// TestManagerRealSchedulerCycle drives the production scheduler inside a
// synctest bubble: real timers, fake bubble time.
func TestManagerRealSchedulerCycle(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m := NewManager(context.Background(), testDurations(), WithClockConfig(ClockConfig{
			HeartbeatInterval: 3 * time.Second,
			SleepGapThreshold: 30 * time.Second,
			WarningOffset:     time.Second,
		}))

		rec := new(managerRecorder)
		rec.attach(m)

		m.Start(context.Background())
		require.Equal(t, PhaseWork, m.Phase())

		time.Sleep(10 * time.Second)
		synctest.Wait()

		require.Equal(t, PhaseBreak, m.Phase())
		require.Equal(t, 1, rec.workEnded())

		time.Sleep(5 * time.Second)
		synctest.Wait()

		require.Equal(t, PhaseWork, m.Phase())
		require.Equal(t, 1, rec.workEnded())

		m.Stop()
	})
}
