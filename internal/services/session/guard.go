package session

import (
	"sync"

	"github.com/guessparty/guessparty/internal/model"
)

// Guard serializes mutating operations per session id. At most one
// operation is in flight for a given id at a time; operations on
// different ids proceed fully in parallel. Entries are reference-counted
// so the lock table does not grow with dead session ids.
type Guard struct {
	mu    sync.Mutex
	locks map[model.SessionID]*guardEntry
}

type guardEntry struct {
	mu   sync.Mutex
	refs int
}

// NewGuard creates a new Guard
func NewGuard() *Guard {
	return &Guard{
		locks: make(map[model.SessionID]*guardEntry),
	}
}

// Do runs fn while holding exclusive access to the given session id.
func (g *Guard) Do(id model.SessionID, fn func() error) error {
	entry := g.acquire(id)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		g.release(id, entry)
	}()
	return fn()
}

func (g *Guard) acquire(id model.SessionID) *guardEntry {
	g.mu.Lock()
	defer g.mu.Unlock()
	entry, ok := g.locks[id]
	if !ok {
		entry = &guardEntry{}
		g.locks[id] = entry
	}
	entry.refs++
	return entry
}

func (g *Guard) release(id model.SessionID, entry *guardEntry) {
	g.mu.Lock()
	defer g.mu.Unlock()
	entry.refs--
	if entry.refs == 0 {
		delete(g.locks, id)
	}
}
