package api

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"counterparty/pkg/registry"
)

// snapshot is one built view of the sheet: the immutable table plus the
// field map resolved against its headers.
type snapshot struct {
	table  *registry.Table
	fields registry.FieldMap
}

// snapshotCache holds the current snapshot for the cache TTL. A successful
// write invalidates it so the next read re-fetches; a failed write leaves
// it alone.
type snapshotCache struct {
	lru *expirable.LRU[string, *snapshot]
	key string
}

func newSnapshotCache(worksheet string, ttl time.Duration) *snapshotCache {
	return &snapshotCache{
		lru: expirable.NewLRU[string, *snapshot](1, nil, ttl),
		key: worksheet,
	}
}

func (c *snapshotCache) get() (*snapshot, bool) {
	return c.lru.Get(c.key)
}

func (c *snapshotCache) put(s *snapshot) {
	c.lru.Add(c.key, s)
}

func (c *snapshotCache) invalidate() {
	c.lru.Remove(c.key)
}
