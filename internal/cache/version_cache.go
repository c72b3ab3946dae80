// Package cache remembers, per live connection and room, the scene version
// that was last persisted or loaded, so unchanged scenes are not re-saved.
package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/MKhiriev/scene-keeper/internal/scene"
	"github.com/MKhiriev/scene-keeper/models"
)

const (
	// DefaultTTL is how long an entry survives without being refreshed.
	DefaultTTL = 24 * time.Hour

	// DefaultMaxEntries bounds the cache when no limit is configured.
	DefaultMaxEntries = 100_000
)

// Portal is the room context of a connection as seen by the cache.
type Portal interface {
	RoomID() string
	RoomKey() string
	ConnectionID() models.ConnectionID
}

// NewPortal returns the Portal of connID in room.
func NewPortal(room models.RoomIdentity, connID models.ConnectionID) Portal {
	return connectionPortal{room: room, connID: connID}
}

type connectionPortal struct {
	room   models.RoomIdentity
	connID models.ConnectionID
}

func (p connectionPortal) RoomID() string                    { return p.room.RoomID }
func (p connectionPortal) RoomKey() string                   { return p.room.RoomKey }
func (p connectionPortal) ConnectionID() models.ConnectionID { return p.connID }

type entry struct {
	connID    models.ConnectionID
	roomID    string
	version   int64
	expiresAt time.Time
}

// VersionCache maps a connection and the room it addressed to the last
// known persisted scene version. Entries are removed by Forget when the
// connection closes, by Sweep once their TTL has passed, or by eviction of
// the least recently set entry once the cache holds maxEntries. Safe for
// concurrent use.
type VersionCache struct {
	mu      sync.RWMutex
	entries map[models.ConnectionID]map[string]*list.Element
	// order holds *entry values, most recently set at the front
	order *list.List

	ttl        time.Duration
	maxEntries int
	versioner  scene.Versioner
	now        func() time.Time
}

// NewVersionCache constructs a VersionCache. A non-positive ttl selects
// [DefaultTTL]; a non-positive maxEntries selects [DefaultMaxEntries].
func NewVersionCache(versioner scene.Versioner, ttl time.Duration, maxEntries int) *VersionCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &VersionCache{
		entries:    make(map[models.ConnectionID]map[string]*list.Element),
		order:      list.New(),
		ttl:        ttl,
		maxEntries: maxEntries,
		versioner:  versioner,
		now:        time.Now,
	}
}

// Get returns the cached version of roomID for connID. Expired entries are
// reported as absent.
func (c *VersionCache) Get(connID models.ConnectionID, roomID string) (int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	el, ok := c.entries[connID][roomID]
	if !ok {
		return 0, false
	}
	e := el.Value.(*entry)
	if !c.now().Before(e.expiresAt) {
		return 0, false
	}
	return e.version, true
}

// Set records version of roomID for connID and refreshes its TTL. Empty ids
// are ignored.
func (c *VersionCache) Set(connID models.ConnectionID, roomID string, version int64) {
	if connID == "" || roomID == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)

	if el, ok := c.entries[connID][roomID]; ok {
		e := el.Value.(*entry)
		e.version = version
		e.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return
	}

	rooms, ok := c.entries[connID]
	if !ok {
		rooms = make(map[string]*list.Element)
		c.entries[connID] = rooms
	}
	rooms[roomID] = c.order.PushFront(&entry{
		connID:    connID,
		roomID:    roomID,
		version:   version,
		expiresAt: expiresAt,
	})

	for c.order.Len() > c.maxEntries {
		c.remove(c.order.Back())
	}
}

// Forget drops every entry of a closed connection.
func (c *VersionCache) Forget(connID models.ConnectionID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, el := range c.entries[connID] {
		c.order.Remove(el)
	}
	delete(c.entries, connID)
}

// Sweep removes every entry expired at now and returns how many were
// removed.
func (c *VersionCache) Sweep(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for el := c.order.Front(); el != nil; {
		next := el.Next()
		if !now.Before(el.Value.(*entry).expiresAt) {
			c.remove(el)
			removed++
		}
		el = next
	}
	return removed
}

// Len returns the number of entries, expired ones included.
func (c *VersionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.order.Len()
}

// remove unlinks el. The caller holds the write lock.
func (c *VersionCache) remove(el *list.Element) {
	e := c.order.Remove(el).(*entry)

	rooms := c.entries[e.connID]
	delete(rooms, e.roomID)
	if len(rooms) == 0 {
		delete(c.entries, e.connID)
	}
}

// IsSaved reports whether elements are already persisted for the portal's
// connection in the portal's room.
//
// Without a complete room context (connection, room id and room key) there
// is nothing to save to, so the scene counts as saved. Otherwise the result
// is true only when the cached version equals the version of elements; a
// missing entry means unsaved.
func (c *VersionCache) IsSaved(portal Portal, elements models.Elements) bool {
	if portal == nil {
		return true
	}

	connID := portal.ConnectionID()
	if connID == "" || portal.RoomID() == "" || portal.RoomKey() == "" {
		return true
	}

	cached, ok := c.Get(connID, portal.RoomID())
	if !ok {
		return false
	}
	return cached == c.versioner.Version(elements)
}
