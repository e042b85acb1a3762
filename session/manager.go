package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultTTL = 2 * time.Hour

type entry struct {
	store    *Store
	lastSeen time.Time
}

// Manager maps session ids to stores. Sessions are created explicitly,
// touched on every lookup, and swept after sitting idle past the TTL.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

func NewManager() *Manager {
	m := &Manager{
		sessions: make(map[string]*entry),
		ttl:      defaultTTL,
		done:     make(chan struct{}),
	}
	go m.sweep()
	return m
}

// Create registers a fresh session and returns its id.
func (m *Manager) Create() string {
	id := uuid.NewString()
	m.mu.Lock()
	m.sessions[id] = &entry{store: NewStore(), lastSeen: time.Now()}
	m.mu.Unlock()
	return id
}

// Get looks up a session store and refreshes its idle timer.
func (m *Manager) Get(id string) (*Store, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = time.Now()
	return e.store, true
}

// Stop terminates the sweeper goroutine.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.done) })
}

func (m *Manager) sweep() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-m.ttl)
			m.mu.Lock()
			for id, e := range m.sessions {
				if e.lastSeen.Before(cutoff) {
					delete(m.sessions, id)
				}
			}
			m.mu.Unlock()
		case <-m.done:
			return
		}
	}
}
