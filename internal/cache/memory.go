package cache

import (
	"context"
	"sync"
	"time"

	"trackify_backend/internal/models"
)

type memoryEntry struct {
	complaints []models.Complaint
	expiresAt  time.Time
}

// MemoryCache is the default in-process backend, used when no Redis
// address is configured.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

func (c *MemoryCache) Get(ctx context.Context, key string) ([]models.Complaint, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.complaints, true
}

func (c *MemoryCache) Set(ctx context.Context, key string, complaints []models.Complaint) {
	c.mu.Lock()
	c.entries[key] = memoryEntry{
		complaints: complaints,
		expiresAt:  time.Now().Add(c.ttl),
	}
	c.mu.Unlock()
}

func (c *MemoryCache) Invalidate(ctx context.Context) {
	c.mu.Lock()
	c.entries = make(map[string]memoryEntry)
	c.mu.Unlock()
}
