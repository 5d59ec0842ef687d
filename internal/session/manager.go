package session

import (
	"sync"
	"time"
)

// Manager keeps one Controller per learner and serializes access to each.
// Different learners never share state or block each other beyond the
// brief map lookup.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*managed
	factory  func(key string) *Controller
	now      func() time.Time
}

type managed struct {
	mu       sync.Mutex
	c        *Controller
	lastUsed time.Time
}

// NewManager creates a Manager that builds controllers with factory on
// first use of a key.
func NewManager(factory func(key string) *Controller) *Manager {
	return &Manager{
		sessions: make(map[string]*managed),
		factory:  factory,
		now:      time.Now,
	}
}

// Do runs fn with exclusive access to the learner's controller, creating
// it on first use.
func (m *Manager) Do(key string, fn func(c *Controller) error) error {
	return m.run(key, true, fn)
}

// Existing is Do for learners that already have a controller. For an
// unknown key it returns ErrNotStarted without calling fn.
func (m *Manager) Existing(key string, fn func(c *Controller) error) error {
	return m.run(key, false, fn)
}

func (m *Manager) run(key string, create bool, fn func(c *Controller) error) error {
	m.mu.Lock()
	entry, ok := m.sessions[key]
	if !ok {
		if !create {
			m.mu.Unlock()
			return ErrNotStarted
		}
		entry = &managed{c: m.factory(key)}
		m.sessions[key] = entry
	}
	entry.lastUsed = m.now()
	m.mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.c)
}

// Idle returns the learners whose controller was last used before cutoff.
func (m *Manager) Idle(cutoff time.Time) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []string
	for key, entry := range m.sessions {
		if entry.lastUsed.Before(cutoff) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Drop forgets the learner's controller. A call already running on it
// finishes normally.
func (m *Manager) Drop(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, key)
}

// Len returns the number of learners with a controller.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
