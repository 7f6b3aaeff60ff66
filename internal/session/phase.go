package session

// Phase identifies the current operating mode of a pomodoro session.
type Phase string

const (
	// PhaseWork is the focused work interval.
	PhaseWork Phase = "Work"
	// PhaseBreak is the rest interval between work phases.
	PhaseBreak Phase = "Break"
	// PhasePause is an explicitly bounded suspension until a target time.
	PhasePause Phase = "Pause"
)

// String returns the human-readable phase name.
func (p Phase) String() string {
	return string(p)
}
