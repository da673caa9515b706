package session

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/utils"
)

const (
	DefaultMaxSessions = 1024
	DefaultMaxIdle     = 24 * time.Hour
)

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Manager tracks the live sessions of one web application instance.
//
// Sessions idle for longer than the idle limit are dropped. When the manager
// is full, starting a session evicts the least recently seen one.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ids      utils.IDGenerator

	maxSessions int
	maxIdle     time.Duration
	now         func() time.Time
}

// ManagerOption configures a [Manager].
type ManagerOption func(*Manager)

// WithMaxSessions caps the number of live sessions. n <= 0 keeps the default.
func WithMaxSessions(n int) ManagerOption {
	return func(m *Manager) {
		if n > 0 {
			m.maxSessions = n
		}
	}
}

// WithMaxIdle sets how long an unused session stays live. d <= 0 keeps the default.
func WithMaxIdle(d time.Duration) ManagerOption {
	return func(m *Manager) {
		if d > 0 {
			m.maxIdle = d
		}
	}
}

// NewManager returns an empty manager that names sessions with ids.
func NewManager(ids utils.IDGenerator, opts ...ManagerOption) *Manager {
	m := &Manager{
		sessions:    make(map[string]*entry),
		ids:         ids,
		maxSessions: DefaultMaxSessions,
		maxIdle:     DefaultMaxIdle,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// New starts a session and registers it.
func (m *Manager) New() *Session {
	s := New(m.ids.Generate())

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.reapLocked(now)
	for len(m.sessions) >= m.maxSessions {
		m.evictOldestLocked()
	}

	m.sessions[s.ID] = &entry{session: s, lastSeen: now}
	return s
}

// Get returns the live session with id and marks it as seen.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return nil, false
	}

	now := m.now()
	if m.expired(e, now) {
		delete(m.sessions, id)
		return nil, false
	}
	e.lastSeen = now
	return e.session, true
}

// Discard ends the session with id and drops its state.
func (m *Manager) Discard(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
}

// EvictItem removes the translations of itemID from every live session.
func (m *Manager) EvictItem(itemID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.sessions {
		e.session.Cache.Evict(itemID)
	}
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reapLocked(m.now())
	return len(m.sessions)
}

func (m *Manager) expired(e *entry, now time.Time) bool {
	return now.Sub(e.lastSeen) > m.maxIdle
}

func (m *Manager) reapLocked(now time.Time) {
	for id, e := range m.sessions {
		if m.expired(e, now) {
			delete(m.sessions, id)
		}
	}
}

func (m *Manager) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
		found    bool
	)
	for id, e := range m.sessions {
		if !found || e.lastSeen.Before(oldest) {
			oldestID, oldest, found = id, e.lastSeen, true
		}
	}
	delete(m.sessions, oldestID)
}
