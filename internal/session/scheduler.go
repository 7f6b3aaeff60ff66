package session

import (
	"sync"
	"time"
)

// Timer represents a pending scheduled callback.
type Timer interface {
	// Stop prevents the callback from firing. It returns false if the
	// callback already fired or was stopped before.
	Stop() bool
}

// Scheduler abstracts wall-clock reads and timer registration so the session
// core can run against a deterministic double in tests instead of waiting on
// real timers.
type Scheduler interface {
	// Now returns the current wall-clock time.
	Now() time.Time
	// AfterFunc calls f in its own goroutine once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
	// TickFunc calls f in its own goroutine every interval until the
	// returned Timer is stopped.
	TickFunc(interval time.Duration, f func()) Timer
}

// SystemScheduler returns the Scheduler backed by the time package. This is
// what production code runs on.
func SystemScheduler() Scheduler {
	return systemScheduler{}
}

// systemScheduler implements Scheduler on top of the standard time package.
type systemScheduler struct{}

// Now returns time.Now.
func (systemScheduler) Now() time.Time {
	return time.Now()
}

// AfterFunc wraps time.AfterFunc.
//
//nolint:ireturn // Returning the Timer interface is the point of the abstraction.
func (systemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return systemTimer{timer: time.AfterFunc(d, f)}
}

// TickFunc runs f on every tick of a time.Ticker until stopped.
//
//nolint:ireturn // Returning the Timer interface is the point of the abstraction.
func (systemScheduler) TickFunc(interval time.Duration, f func()) Timer {
	ticker := &systemTicker{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}

	go ticker.run(f)

	return ticker
}

// systemTimer adapts *time.Timer to the Timer interface.
type systemTimer struct {
	timer *time.Timer
}

// Stop cancels the pending callback.
func (t systemTimer) Stop() bool {
	return t.timer.Stop()
}

// systemTicker adapts *time.Ticker plus a pump goroutine to the Timer interface.
type systemTicker struct {
	// ticker produces the periodic ticks.
	ticker *time.Ticker
	// done signals the pump goroutine to exit.
	done chan struct{}
	// once guards Stop against repeated calls.
	once sync.Once
}

// run pumps ticks into the callback until the ticker is stopped.
func (t *systemTicker) run(f func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			f()
		}
	}
}

// Stop terminates the pump goroutine and releases the ticker.
func (t *systemTicker) Stop() bool {
	stopped := false

	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)

		stopped = true
	})

	return stopped
}
