package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/d-lobanov/pomodorod/internal/logger"
	"github.com/d-lobanov/pomodorod/internal/timeutil"
)

// DefaultLateRestartThreshold is how overdue a completion may be before the
// session is considered unrecoverable. A phase that ends this long after its
// deadline means the machine slept through it; resuming the interrupted cycle
// would be meaningless, so the whole session restarts with a fresh work phase.
const DefaultLateRestartThreshold = 2 * time.Minute

// noDeadlineText is the summary shown while no deadline is armed.
const noDeadlineText = "no end datetime"

// Durations holds the configured phase lengths.
type Durations struct {
	// Work is the default work phase length.
	Work time.Duration
	// Break is the default break phase length.
	Break time.Duration
	// Snooze is the default extension applied by Extend.
	Snooze time.Duration
}

// Option configures a Manager.
type Option func(*Manager)

// WithScheduler injects a scheduler, letting tests drive time deterministically.
func WithScheduler(sched Scheduler) Option {
	return func(m *Manager) {
		if sched != nil {
			m.sched = sched
		}
	}
}

// WithClockConfig overrides the PhaseClock intervals.
func WithClockConfig(cfg ClockConfig) Option {
	return func(m *Manager) {
		m.clockConfig = cfg
	}
}

// WithLateRestartThreshold overrides the overdue-completion restart policy.
func WithLateRestartThreshold(threshold time.Duration) Option {
	return func(m *Manager) {
		if threshold > 0 {
			m.restartThreshold = threshold
		}
	}
}

// Manager owns the session phase and drives one PhaseClock.
//
// Commands may be issued from any goroutine: cmdMu serializes them together
// with natural-completion handling so transitions never interleave, while mu
// guards the phase field and observer lists for lock-free-ish reads from
// clock callbacks. mu is only ever taken inside cmdMu, never the reverse.
type Manager struct {
	durations        Durations
	restartThreshold time.Duration
	clockConfig      ClockConfig
	sched            Scheduler
	clock            *PhaseClock

	// ctx scopes log output for transitions triggered by clock callbacks.
	ctx context.Context

	cmdMu sync.Mutex
	mu    sync.RWMutex

	// phase is mutated only by startPhase, under cmdMu.
	phase Phase

	phaseChangedSubs []PhaseChangedFunc
	endingSoonSubs   []EndingSoonFunc
	workEndedSubs    []WorkEndedFunc
}

// NewManager builds a Manager with the provided default durations. The
// context scopes log output of asynchronous transitions. Before Start the
// session conceptually rests in a break.
func NewManager(ctx context.Context, durations Durations, opts ...Option) *Manager {
	m := &Manager{
		durations:        durations,
		restartThreshold: DefaultLateRestartThreshold,
		sched:            SystemScheduler(),
		ctx:              ctx,
		phase:            PhaseBreak,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.clock = NewPhaseClock(m.sched, m.clockConfig, m.handleClockFinished, m.handleClockWarning)

	return m
}

// Start begins a session: always a fresh work phase with the default
// duration, regardless of the current phase.
func (m *Manager) Start(ctx context.Context) {
	m.cmdMu.Lock()
	defer m.cmdMu.Unlock()

	m.startWorkLocked(ctx, 0)
}

// StartWork forces a transition into the work phase from any phase. A
// non-positive duration selects the configured default; zero is not a valid
// phase length on its own.
func (m *Manager) StartWork(ctx context.Context, d time.Duration) {
	m.cmdMu.Lock()
	defer m.cmdMu.Unlock()

	m.startWorkLocked(ctx, d)
}

// StartBreak forces a transition into the break phase from any phase. A
// non-positive duration selects the configured default.
func (m *Manager) StartBreak(ctx context.Context, d time.Duration) {
	m.cmdMu.Lock()
	defer m.cmdMu.Unlock()

	m.startBreakLocked(ctx, d)
}

// PauseUntil transitions into the pause phase lasting until target. Targets
// in the past yield a zero-length pause that completes immediately.
func (m *Manager) PauseUntil(ctx context.Context, target time.Time) {
	m.cmdMu.Lock()
	defer m.cmdMu.Unlock()

	m.startPhase(ctx, PhasePause, target.Sub(m.sched.Now()))
}

// Resume leaves the pause phase into a default-length work phase. No-op in
// any other phase.
func (m *Manager) Resume(ctx context.Context) {
	m.cmdMu.Lock()
	defer m.cmdMu.Unlock()

	if m.currentPhase() != PhasePause {
		return
	}

	m.startWorkLocked(ctx, 0)
}

// Extend lengthens the current phase in place without changing its identity
// and re-triggers the warning schedule. A non-positive duration selects the
// configured snooze length. No-op while no deadline is armed.
func (m *Manager) Extend(ctx context.Context, d time.Duration) {
	m.cmdMu.Lock()
	defer m.cmdMu.Unlock()

	if d <= 0 {
		d = m.durations.Snooze
	}

	m.clock.Extend(d)

	logger.InfoKV(ctx, "Session phase extended", "extended_by", d.String(), "summary", m.String())
}

// Stop tears the session clock down. The phase field keeps its last value.
func (m *Manager) Stop() {
	m.cmdMu.Lock()
	defer m.cmdMu.Unlock()

	m.clock.Stop()
}

// Now returns the current time on the manager's clock source.
func (m *Manager) Now() time.Time {
	return m.sched.Now()
}

// Phase returns the current session phase.
func (m *Manager) Phase() Phase {
	return m.currentPhase()
}

// Remaining returns the time left in the current phase, clamped at zero, and
// whether a deadline is armed.
func (m *Manager) Remaining() (time.Duration, bool) {
	return m.clock.Remaining()
}

// EndsAt returns the absolute end of the current phase and whether a
// deadline is armed.
func (m *Manager) EndsAt() (time.Time, bool) {
	return m.clock.EndsAt()
}

// TimeLeftString renders a countdown summary such as "Work - 00:24:59".
func (m *Manager) TimeLeftString() string {
	remaining, ok := m.Remaining()
	if !ok {
		return noDeadlineText
	}

	return fmt.Sprintf("%s - %s", m.currentPhase(), timeutil.FormatCountdown(remaining))
}

// EndsAtString renders an absolute-end summary such as "Pause until 15:04".
func (m *Manager) EndsAtString() string {
	endsAt, ok := m.EndsAt()
	if !ok {
		return noDeadlineText
	}

	return fmt.Sprintf("%s until %s", m.currentPhase(), timeutil.FormatEndTime(endsAt, m.sched.Now()))
}

// String picks the most useful summary for the current phase: a pause is
// described by when it ends, the other phases by what is left on the clock.
func (m *Manager) String() string {
	if m.currentPhase() == PhasePause {
		return m.EndsAtString()
	}

	return m.TimeLeftString()
}

// startWorkLocked enters a work phase, substituting the default duration for
// non-positive overrides. Callers hold cmdMu.
func (m *Manager) startWorkLocked(ctx context.Context, d time.Duration) {
	if d <= 0 {
		d = m.durations.Work
	}

	m.startPhase(ctx, PhaseWork, d)
}

// startBreakLocked enters a break phase, substituting the default duration
// for non-positive overrides. Callers hold cmdMu.
func (m *Manager) startBreakLocked(ctx context.Context, d time.Duration) {
	if d <= 0 {
		d = m.durations.Break
	}

	m.startPhase(ctx, PhaseBreak, d)
}

// startPhase is the single writer of the phase field. The phase is recorded
// before the clock is armed so a warning firing synchronously inside
// Clock.Start already observes the new phase; observers of phaseChanged run
// after the clock holds the new deadline so they may read it. Callers hold
// cmdMu.
func (m *Manager) startPhase(ctx context.Context, phase Phase, d time.Duration) {
	m.mu.Lock()
	previous := m.phase
	m.phase = phase
	m.mu.Unlock()

	m.clock.Start(d)

	m.emitPhaseChanged(previous, phase)

	logger.InfoKV(ctx, "Session phase started",
		"previous_phase", previous.String(),
		"phase", phase.String(),
		"summary", m.String())
}

// handleClockFinished applies the completion policy: completions more than
// the restart threshold overdue (strictly greater) restart the whole session
// without a work-ended event; otherwise the normal cycle advances, work into
// break with the work-ended event first, anything else into work.
func (m *Manager) handleClockFinished(missedBy time.Duration) {
	m.cmdMu.Lock()
	defer m.cmdMu.Unlock()

	if missedBy > m.restartThreshold {
		logger.WarnKV(m.ctx, "Phase finished too late, restarting session", "missed_by", missedBy.String())
		m.startWorkLocked(m.ctx, 0)

		return
	}

	if m.currentPhase() == PhaseWork {
		m.emitWorkEnded()
		m.startBreakLocked(m.ctx, 0)

		return
	}

	m.startWorkLocked(m.ctx, 0)
}

// handleClockWarning relays the clock's pre-deadline warning for the phase
// that is active right now. It deliberately avoids cmdMu: the warning can
// fire synchronously inside Clock.Start while a command holds it.
func (m *Manager) handleClockWarning() {
	m.emitEndingSoon(m.currentPhase())
}

// currentPhase reads the phase field under the state lock.
func (m *Manager) currentPhase() Phase {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.phase
}
