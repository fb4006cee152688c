package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"lumina-storefront/internal/session"
)

var ErrSessionNotFound = errors.New("session not found")

type sessionEntry struct {
	session  *session.Session
	lastSeen time.Time
}

// SessionRepo keeps live storefront sessions in memory. Nothing survives a
// restart; sessions idle longer than ttl are evicted.
type SessionRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*sessionEntry
	ttl      time.Duration
	now      func() time.Time
	stopChan chan struct{}
}

func NewSessionRepo(ttl time.Duration) *SessionRepo {
	return &SessionRepo{
		sessions: make(map[uuid.UUID]*sessionEntry),
		ttl:      ttl,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}
}

// StartCleanup evicts idle sessions every interval until Stop is called.
func (r *SessionRepo) StartCleanup(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.EvictIdle()
			case <-r.stopChan:
				return
			}
		}
	}()
}

func (r *SessionRepo) Stop() {
	close(r.stopChan)
}

func (r *SessionRepo) Add(s *session.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = &sessionEntry{session: s, lastSeen: r.now()}
}

// Get returns the session and refreshes its idle timer.
func (r *SessionRepo) Get(id uuid.UUID) (*session.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	e.lastSeen = r.now()
	return e.session, nil
}

func (r *SessionRepo) Delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

func (r *SessionRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// EvictIdle removes sessions not seen within ttl and returns how many were removed.
func (r *SessionRepo) EvictIdle() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	n := 0
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}
