package session

import (
	"sync"
	"time"

	"github.com/guessparty/guessparty/internal/model"
)

// TimerCoordinator owns the single authoritative round timer per session.
// Arming happens only as part of starting a round; any transition away
// from active disarms. Disarming is an optimization: a timer that fires
// after the round already ended hits the status re-check in the timeout
// handler and has no effect.
type TimerCoordinator struct {
	mu     sync.Mutex
	timers map[model.SessionID]*time.Timer
}

// NewTimerCoordinator creates a new TimerCoordinator
func NewTimerCoordinator() *TimerCoordinator {
	return &TimerCoordinator{
		timers: make(map[model.SessionID]*time.Timer),
	}
}

// Arm schedules fire to run after d. An existing timer for the same
// session is stopped and replaced.
func (t *TimerCoordinator) Arm(id model.SessionID, d time.Duration, fire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if existing, ok := t.timers[id]; ok {
		existing.Stop()
	}
	t.timers[id] = time.AfterFunc(d, func() {
		t.mu.Lock()
		delete(t.timers, id)
		t.mu.Unlock()
		fire()
	})
}

// Disarm cancels the session's timer if one is armed. Returns whether a
// timer was found; a timer mid-fire may already be gone.
func (t *TimerCoordinator) Disarm(id model.SessionID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	timer, ok := t.timers[id]
	if !ok {
		return false
	}
	timer.Stop()
	delete(t.timers, id)
	return true
}

// Armed reports whether a timer is currently armed for the session
func (t *TimerCoordinator) Armed(id model.SessionID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.timers[id]
	return ok
}

// Stop disarms all outstanding timers
func (t *TimerCoordinator) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, timer := range t.timers {
		timer.Stop()
		delete(t.timers, id)
	}
}
