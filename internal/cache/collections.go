// Package cache holds fetched upstream collections between reads, with
// explicit invalidation after mutations. A displayed list is always the
// cached server collection narrowed by local predicates; mutations mark
// the collection stale so the next read re-issues the network call.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Collection names for the staff screens. They are shared across staff
// sessions: the upstream data is the same for every admin.
const (
	KeyBookings = "bookings"
	KeyRooms    = "rooms"
	KeyUsers    = "users"
	KeyAdmins   = "admins"
)

// Visitor collection names. These are scoped per session via Scoped
// since every visitor sees their own bookings.
const (
	KeyVisitorRooms    = "visitor_rooms"
	KeyVisitorBookings = "visitor_bookings"
	KeyVisitorHistory  = "visitor_history"
)

// Collections is an in-memory TTL cache of upstream list responses.
type Collections struct {
	store *gocache.Cache
}

// New creates a collection cache with the given TTL.
func New(ttl time.Duration) *Collections {
	return &Collections{store: gocache.New(ttl, 2*ttl)}
}

// Scoped returns a per-session key for a visitor collection.
func Scoped(key, sessionID string) string {
	return key + ":" + sessionID
}

// Get returns the cached collection for a key, if fresh.
func (c *Collections) Get(key string) (any, bool) {
	return c.store.Get(key)
}

// Set stores a collection under a key with the default TTL.
func (c *Collections) Set(key string, value any) {
	c.store.SetDefault(key, value)
}

// Invalidate drops the named collections so the next read refetches.
func (c *Collections) Invalidate(keys ...string) {
	for _, key := range keys {
		c.store.Delete(key)
	}
}

// InvalidateScoped drops per-session visitor collections.
func (c *Collections) InvalidateScoped(sessionID string, keys ...string) {
	for _, key := range keys {
		c.store.Delete(Scoped(key, sessionID))
	}
}
