package cache

import (
	"context"
	"testing"
	"time"

	"trackify_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCacheSetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute)

	_, ok := c.Get(ctx, "u=1")
	assert.False(t, ok, "miss on a cold cache")

	complaints := []models.Complaint{{Title: "Pothole on Main St"}}
	c.Set(ctx, "u=1", complaints)

	got, ok := c.Get(ctx, "u=1")
	assert.True(t, ok)
	assert.Len(t, got, 1)
	assert.Equal(t, "Pothole on Main St", got[0].Title)

	_, ok = c.Get(ctx, "u=2")
	assert.False(t, ok, "keys are scoped")
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(10 * time.Millisecond)

	c.Set(ctx, "all", []models.Complaint{{Title: "old"}})

	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get(ctx, "all")
	assert.False(t, ok, "entries expire after the TTL")
}

func TestMemoryCacheInvalidateFlushesEverything(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute)

	c.Set(ctx, "u=1", []models.Complaint{{Title: "a"}})
	c.Set(ctx, "o=acme", []models.Complaint{{Title: "b"}})

	c.Invalidate(ctx)

	_, ok := c.Get(ctx, "u=1")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "o=acme")
	assert.False(t, ok)
}

func TestMemoryCacheCachesEmptyLists(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute)

	c.Set(ctx, "u=1", nil)

	got, ok := c.Get(ctx, "u=1")
	assert.True(t, ok, "an empty result is still a hit")
	assert.Empty(t, got)
}
