package session

import "time"

// Status is a point-in-time snapshot of the session.
type Status struct {
	// Phase is the session phase at snapshot time.
	Phase Phase
	// EndsAt is the absolute phase deadline. The zero time means no deadline
	// is armed.
	EndsAt time.Time
	// Remaining is the time left until EndsAt, clamped at zero. Meaningful
	// only when EndsAt is non-zero.
	Remaining time.Duration
	// Summary is a one-line human-readable description of the session.
	Summary string
}

// Status assembles a snapshot of the current session state.
func (m *Manager) Status() Status {
	st := Status{
		Phase:   m.currentPhase(),
		Summary: m.String(),
	}

	if endsAt, ok := m.EndsAt(); ok {
		st.EndsAt = endsAt
	}

	if remaining, ok := m.Remaining(); ok {
		st.Remaining = remaining
	}

	return st
}
