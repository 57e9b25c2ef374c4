package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("checkout session not found")

type registryEntry struct {
	session  *CheckoutSession
	lastSeen time.Time
}

// SessionRegistry keeps the open checkout sessions of this process. A session
// not touched for ttl is closed and dropped; a ttl of zero keeps sessions
// until Close.
type SessionRegistry struct {
	mu       sync.RWMutex
	deps     Dependencies
	ttl      time.Duration
	now      func() time.Time
	sessions map[uuid.UUID]*registryEntry
}

func NewSessionRegistry(deps Dependencies, ttl time.Duration) *SessionRegistry {
	now := deps.Clock
	if now == nil {
		now = time.Now
	}
	return &SessionRegistry{
		deps:     deps,
		ttl:      ttl,
		now:      now,
		sessions: make(map[uuid.UUID]*registryEntry),
	}
}

// Create opens a session and runs its load sequence. A session whose cart
// failed to load is still registered so its failed state can be read back
// until it expires.
func (r *SessionRegistry) Create(ctx context.Context) (*CheckoutSession, error) {
	session := NewCheckoutSession(r.deps)

	r.mu.Lock()
	r.sessions[session.ID()] = &registryEntry{session: session, lastSeen: r.now()}
	r.mu.Unlock()

	return session, session.Load(ctx)
}

// Get returns the session and refreshes its idle timer.
func (r *SessionRegistry) Get(id uuid.UUID) (*CheckoutSession, error) {
	now := r.now()

	r.mu.Lock()
	entry, ok := r.sessions[id]
	if !ok {
		r.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if r.expired(entry, now) {
		delete(r.sessions, id)
		r.mu.Unlock()
		entry.session.Close()
		return nil, ErrSessionNotFound
	}
	entry.lastSeen = now
	r.mu.Unlock()
	return entry.session, nil
}

func (r *SessionRegistry) Close(id uuid.UUID) error {
	r.mu.Lock()
	entry, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	entry.session.Close()
	return nil
}

// Sweep closes every expired session and returns how many were dropped.
func (r *SessionRegistry) Sweep() int {
	now := r.now()

	var expired []*CheckoutSession
	r.mu.Lock()
	for id, entry := range r.sessions {
		if r.expired(entry, now) {
			expired = append(expired, entry.session)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, session := range expired {
		session.Close()
	}
	return len(expired)
}

// RunSweeper calls Sweep every interval until ctx is done.
func (r *SessionRegistry) RunSweeper(ctx context.Context, interval time.Duration) {
	if r.ttl <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 && r.deps.Logger != nil {
				r.deps.Logger.WithField("expired", n).Info("expired idle checkout sessions")
			}
		}
	}
}

func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *SessionRegistry) expired(entry *registryEntry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(entry.lastSeen) >= r.ttl
}
