// Package session implements the pomodoro phase state machine and its
// sleep-recovery clock.
//
// A Manager owns the current phase (work, break, pause) and drives exactly
// one PhaseClock. The clock tracks a single absolute deadline and runs a
// recurring heartbeat: when the span between two heartbeats is much larger
// than the configured interval, the host was suspended and the completion
// timer may have been skipped, so the clock either re-arms for the corrected
// remainder or reports the deadline as missed. The Manager turns clock
// completions into phase transitions and restarts the whole session when a
// completion arrives too late to be meaningful.
//
// The package performs no I/O besides logging; callers consume typed events
// registered through the Manager's On* methods.
package session
