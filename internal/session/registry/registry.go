// Package registry keeps live session states in memory and drops them after a period of inactivity.
package registry

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"palay-protector/internal/session/domain"
)

// DefaultIdleTTL is used when no idle TTL is configured.
const DefaultIdleTTL = 30 * time.Minute

// Registry maps session ids to states. Safe for concurrent use; each State carries its own lock.
type Registry struct {
	cache *cache.Cache
	nowF  func() time.Time
}

// New returns a Registry whose sessions expire after idleTTL without access.
func New(idleTTL time.Duration) *Registry {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	cleanup := idleTTL / 2
	if cleanup < time.Second {
		cleanup = time.Second
	}
	return &Registry{cache: cache.New(idleTTL, cleanup), nowF: time.Now}
}

// Create registers a new anonymous session on the login screen.
func (r *Registry) Create() *domain.State {
	st := domain.NewState(uuid.New().String(), r.nowF().UTC())
	r.cache.Set(st.ID, st, cache.DefaultExpiration)
	return st
}

// Get returns the session with id and extends its idle expiry.
func (r *Registry) Get(id string) (*domain.State, bool) {
	v, ok := r.cache.Get(id)
	if !ok {
		return nil, false
	}
	st, ok := v.(*domain.State)
	if !ok {
		return nil, false
	}
	_ = r.cache.Replace(id, st, cache.DefaultExpiration)
	return st, true
}

// Delete forgets the session with id. Missing ids are ignored.
func (r *Registry) Delete(id string) {
	r.cache.Delete(id)
}

// Len returns the number of live sessions, including expired ones not yet cleaned up.
func (r *Registry) Len() int {
	return r.cache.ItemCount()
}
