package session

import (
	"sync"
	"time"
)

const (
	// DefaultHeartbeatInterval is how often the clock checks wall-clock
	// progress against its own schedule.
	DefaultHeartbeatInterval = 3 * time.Second

	// DefaultSleepGapThreshold is the heartbeat gap treated as evidence of
	// host suspension. It sits an order of magnitude above the heartbeat
	// interval so ordinary scheduler jitter never trips it.
	DefaultSleepGapThreshold = 30 * time.Second

	// DefaultWarningOffset is the lead time before the deadline at which the
	// "phase ending soon" notification fires.
	DefaultWarningOffset = time.Minute
)

// ClockConfig tunes PhaseClock intervals. Zero values select the defaults above.
type ClockConfig struct {
	// HeartbeatInterval is the recurring wall-clock check cadence.
	HeartbeatInterval time.Duration
	// SleepGapThreshold is the heartbeat gap interpreted as system sleep.
	SleepGapThreshold time.Duration
	// WarningOffset is the pre-deadline warning lead time.
	WarningOffset time.Duration
}

// PhaseClock tracks one absolute deadline with recovery from system sleep.
//
// OS timers do not fire while the machine is suspended, so a phase that
// should have ended during sleep would otherwise linger indefinitely. Every
// heartbeat tick compares the current time against the previous tick's mark;
// a gap well above the heartbeat interval means the process was not
// scheduled. The clock then recomputes the remainder against the unchanged
// deadline: still ahead, the completion timer is re-armed for the corrected
// remainder; already passed, the completion is reported at once with the
// overdue amount as a measurement, not an error.
//
// Completion and warning callbacks are invoked without internal locks held,
// so handlers may call back into the clock (typically to start the next
// phase).
type PhaseClock struct {
	sched             Scheduler
	heartbeatInterval time.Duration
	gapThreshold      time.Duration
	warningOffset     time.Duration

	// onFinished receives every completion with the amount by which the
	// deadline was missed (zero for an on-time fire).
	onFinished func(missedBy time.Duration)
	// onWarning receives the pre-deadline notification, at most once per
	// armed deadline.
	onWarning func()

	mu sync.Mutex
	// generation invalidates callbacks from timers that were superseded by a
	// later Start, Extend, Stop or recovery re-arm.
	generation uint64
	// endsAt is the absolute deadline; zero while idle.
	endsAt time.Time
	// lastHeartbeat is the wall-clock mark of the previous heartbeat tick;
	// zero while idle.
	lastHeartbeat time.Time
	// warningFired records that the warning already went out for the
	// currently armed deadline.
	warningFired bool

	phaseTimer   Timer
	warningTimer Timer
	heartbeat    Timer
}

// NewPhaseClock builds a clock reporting through the provided callbacks.
// Nil callbacks are replaced with no-ops.
func NewPhaseClock(
	sched Scheduler,
	cfg ClockConfig,
	onFinished func(missedBy time.Duration),
	onWarning func(),
) *PhaseClock {
	if sched == nil {
		sched = SystemScheduler()
	}

	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = DefaultHeartbeatInterval
	}

	if cfg.SleepGapThreshold <= 0 {
		cfg.SleepGapThreshold = DefaultSleepGapThreshold
	}

	if cfg.WarningOffset <= 0 {
		cfg.WarningOffset = DefaultWarningOffset
	}

	if onFinished == nil {
		onFinished = func(time.Duration) {}
	}

	if onWarning == nil {
		onWarning = func() {}
	}

	return &PhaseClock{
		sched:             sched,
		heartbeatInterval: cfg.HeartbeatInterval,
		gapThreshold:      cfg.SleepGapThreshold,
		warningOffset:     cfg.WarningOffset,
		onFinished:        onFinished,
		onWarning:         onWarning,
	}
}

// Start arms the clock to finish d from now. Negative durations clamp to
// zero. Previously armed completion and warning timers are canceled first;
// the heartbeat keeps its cadence if it is already running so it is never
// restarted mid-interval. When the whole duration already falls inside the
// warning window, the warning fires synchronously within this call.
func (c *PhaseClock) Start(d time.Duration) {
	if d < 0 {
		d = 0
	}

	c.mu.Lock()

	now := c.sched.Now()
	c.generation++
	gen := c.generation

	c.endsAt = now.Add(d)
	c.lastHeartbeat = now

	stopTimer(&c.phaseTimer)
	c.phaseTimer = c.sched.AfterFunc(d, func() { c.phaseTimerFired(gen) })

	if c.heartbeat == nil {
		c.heartbeat = c.sched.TickFunc(c.heartbeatInterval, c.heartbeatTick)
	}

	warnNow := c.scheduleWarningLocked(now, gen, true)

	c.mu.Unlock()

	if warnNow {
		c.onWarning()
	}
}

// Stop cancels all timers and clears the deadline and heartbeat mark.
// Idempotent.
func (c *PhaseClock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++

	stopTimer(&c.phaseTimer)
	stopTimer(&c.warningTimer)
	stopTimer(&c.heartbeat)

	c.endsAt = time.Time{}
	c.lastHeartbeat = time.Time{}
	c.warningFired = false
}

// Extend pushes the armed deadline d further out, re-arms the completion
// timer for the corrected remainder (clamped at zero) and reschedules the
// warning. No-op while idle.
func (c *PhaseClock) Extend(d time.Duration) {
	c.mu.Lock()

	if c.endsAt.IsZero() {
		c.mu.Unlock()
		return
	}

	now := c.sched.Now()
	c.endsAt = c.endsAt.Add(d)

	remaining := c.endsAt.Sub(now)
	if remaining < 0 {
		remaining = 0
	}

	c.generation++
	gen := c.generation

	stopTimer(&c.phaseTimer)
	c.phaseTimer = c.sched.AfterFunc(remaining, func() { c.phaseTimerFired(gen) })

	if c.heartbeat == nil {
		c.heartbeat = c.sched.TickFunc(c.heartbeatInterval, c.heartbeatTick)
	}

	warnNow := c.scheduleWarningLocked(now, gen, true)

	c.mu.Unlock()

	if warnNow {
		c.onWarning()
	}
}

// Remaining returns the time left until the deadline, clamped at zero, and
// whether a deadline is armed at all.
func (c *PhaseClock) Remaining() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.endsAt.IsZero() {
		return 0, false
	}

	remaining := c.endsAt.Sub(c.sched.Now())
	if remaining < 0 {
		remaining = 0
	}

	return remaining, true
}

// EndsAt returns the absolute deadline and whether one is armed.
func (c *PhaseClock) EndsAt() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.endsAt, !c.endsAt.IsZero()
}

// detectSleepGapLocked reports whether the span since the last heartbeat mark
// exceeds the sleep gap threshold. Pure: the caller owns updating the mark,
// so detection can be probed without double bookkeeping.
func (c *PhaseClock) detectSleepGapLocked(now time.Time) bool {
	if c.lastHeartbeat.IsZero() {
		return false
	}

	return now.Sub(c.lastHeartbeat) > c.gapThreshold
}

// heartbeatTick runs on every heartbeat. On a detected sleep gap it either
// finishes the phase as overdue or re-arms the completion timer for the
// corrected remainder; the heartbeat mark is updated unconditionally.
func (c *PhaseClock) heartbeatTick() {
	var (
		missedBy time.Duration
		finished bool
		warnNow  bool
	)

	c.mu.Lock()

	now := c.sched.Now()
	gapDetected := c.detectSleepGapLocked(now)
	c.lastHeartbeat = now

	if gapDetected && !c.endsAt.IsZero() {
		remaining := c.endsAt.Sub(now)

		if remaining <= 0 {
			// The true end of the phase passed while suspended. Report how
			// overdue it is and go idle without re-arming.
			missedBy = -remaining
			finished = true

			c.generation++
			stopTimer(&c.phaseTimer)
			stopTimer(&c.warningTimer)

			c.endsAt = time.Time{}
			c.warningFired = false
		} else {
			// The deadline is still ahead; the OS timer that should cover it
			// slept through, so re-arm against the unchanged deadline.
			c.generation++
			gen := c.generation

			stopTimer(&c.phaseTimer)
			c.phaseTimer = c.sched.AfterFunc(remaining, func() { c.phaseTimerFired(gen) })

			warnNow = c.scheduleWarningLocked(now, gen, false)
		}
	}

	c.mu.Unlock()

	if finished {
		c.onFinished(missedBy)
	}

	if warnNow {
		c.onWarning()
	}
}

// phaseTimerFired handles the single-shot completion timer.
func (c *PhaseClock) phaseTimerFired(gen uint64) {
	c.mu.Lock()

	if gen != c.generation || c.endsAt.IsZero() {
		c.mu.Unlock()
		return
	}

	c.generation++
	stopTimer(&c.warningTimer)

	c.endsAt = time.Time{}
	c.warningFired = false

	c.mu.Unlock()

	c.onFinished(0)
}

// warningTimerFired handles the single-shot pre-deadline warning timer.
func (c *PhaseClock) warningTimerFired(gen uint64) {
	c.mu.Lock()

	if gen != c.generation || c.warningFired {
		c.mu.Unlock()
		return
	}

	c.warningFired = true

	c.mu.Unlock()

	c.onWarning()
}

// scheduleWarningLocked cancels any armed warning timer and schedules the
// next one at deadline minus offset. When the warning moment already passed,
// it marks the warning as fired and reports true so the caller emits it after
// releasing the lock. With reset false (the sleep-recovery path) a warning
// that already went out for this deadline is not repeated.
func (c *PhaseClock) scheduleWarningLocked(now time.Time, gen uint64, reset bool) bool {
	stopTimer(&c.warningTimer)

	if reset {
		c.warningFired = false
	}

	if c.endsAt.IsZero() || c.warningFired {
		return false
	}

	warningAt := c.endsAt.Add(-c.warningOffset)
	if !now.Before(warningAt) {
		c.warningFired = true
		return true
	}

	c.warningTimer = c.sched.AfterFunc(warningAt.Sub(now), func() { c.warningTimerFired(gen) })

	return false
}

// stopTimer cancels and clears a timer slot if one is armed.
func stopTimer(t *Timer) {
	if *t == nil {
		return
	}

	(*t).Stop()
	*t = nil
}
