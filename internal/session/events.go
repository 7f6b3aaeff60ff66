package session

// PhaseChangedFunc observes every phase transition, forced or natural.
type PhaseChangedFunc func(previous, current Phase)

// EndingSoonFunc observes the pre-deadline warning for the active phase.
type EndingSoonFunc func(phase Phase)

// WorkEndedFunc observes the natural end of a work phase. It fires exactly
// once per work-to-break transition, before the break phase starts, so a
// presentation layer can show its check-in prompt first.
type WorkEndedFunc func()

// OnPhaseChanged registers an observer for phase transitions. Observers are
// invoked synchronously in registration order.
func (m *Manager) OnPhaseChanged(f PhaseChangedFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.phaseChangedSubs = append(m.phaseChangedSubs, f)
}

// OnPhaseEndingSoon registers an observer for pre-deadline warnings.
func (m *Manager) OnPhaseEndingSoon(f EndingSoonFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.endingSoonSubs = append(m.endingSoonSubs, f)
}

// OnWorkEnded registers an observer for natural work phase completions.
func (m *Manager) OnWorkEnded(f WorkEndedFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workEndedSubs = append(m.workEndedSubs, f)
}

// emitPhaseChanged delivers the transition to all observers.
func (m *Manager) emitPhaseChanged(previous, current Phase) {
	m.mu.RLock()
	subs := m.phaseChangedSubs
	m.mu.RUnlock()

	for _, f := range subs {
		f(previous, current)
	}
}

// emitEndingSoon delivers the warning to all observers.
func (m *Manager) emitEndingSoon(phase Phase) {
	m.mu.RLock()
	subs := m.endingSoonSubs
	m.mu.RUnlock()

	for _, f := range subs {
		f(phase)
	}
}

// emitWorkEnded delivers the work completion to all observers.
func (m *Manager) emitWorkEnded() {
	m.mu.RLock()
	subs := m.workEndedSubs
	m.mu.RUnlock()

	for _, f := range subs {
		f()
	}
}
