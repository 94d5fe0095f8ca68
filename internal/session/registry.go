package session

import (
	"context"
	"sync"
	"time"

	"leembo/internal/domain"
	"leembo/internal/util"

	"go.uber.org/zap"
)

// Registry keeps one Store per learner session. Each session is guarded by
// its own mutex so a slow generation in one session never blocks another.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	ttl     time.Duration
	now     func() time.Time
	logger  *zap.Logger
}

type entry struct {
	mu       sync.Mutex
	store    *Store
	lastUsed time.Time
}

// NewRegistry creates a registry. Sessions idle for longer than ttl expire;
// a non-positive ttl disables expiry.
func NewRegistry(ttl time.Duration, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		entries: make(map[string]*entry),
		ttl:     ttl,
		now:     time.Now,
		logger:  logger,
	}
}

// Create registers a new empty session and returns its id.
func (r *Registry) Create() string {
	id := util.NewULID()
	store := NewStore()
	store.current.ID = id

	r.mu.Lock()
	r.entries[id] = &entry{store: store, lastUsed: r.now()}
	r.mu.Unlock()

	r.logger.Debug("Session created", zap.String("session_id", id))
	return id
}

// With runs fn with exclusive access to the session's Store. It returns a
// session-not-found DomainError when id is unknown or expired.
func (r *Registry) With(id string, fn func(*Store) error) error {
	e, ok := r.lookup(id)
	if !ok {
		return domain.NewSessionNotFoundError(id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	err := fn(e.store)

	r.mu.Lock()
	e.lastUsed = r.now()
	r.mu.Unlock()
	return err
}

// Delete removes a session. It reports whether the session existed.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[id]
	delete(r.entries, id)
	return ok
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep drops expired sessions and returns how many were removed.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, e := range r.entries {
		if r.expired(e) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

// RunJanitor sweeps expired sessions every interval until ctx is done.
func (r *Registry) RunJanitor(ctx context.Context, interval time.Duration) {
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
			if n := r.Sweep(); n > 0 {
				r.logger.Info("Expired idle sessions", zap.Int("count", n))
			}
		}
	}
}

func (r *Registry) lookup(id string) (*entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	if r.expired(e) {
		delete(r.entries, id)
		return nil, false
	}
	e.lastUsed = r.now()
	return e, true
}

// expired must be called with r.mu held.
func (r *Registry) expired(e *entry) bool {
	return r.ttl > 0 && r.now().Sub(e.lastUsed) > r.ttl
}
