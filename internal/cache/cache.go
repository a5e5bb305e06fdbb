package cache

import (
	"context"
	"time"

	"trackify_backend/internal/models"
)

// ListCache is a read-through cache for complaint listings, keyed by
// visibility scope. Invalidation rule: every complaint write flushes
// the whole cache, so a hit is never older than the latest write plus
// the TTL. This replaces the old ad hoc client-side mirror with
// defined refresh semantics.
type ListCache interface {
	Get(ctx context.Context, key string) ([]models.Complaint, bool)
	Set(ctx context.Context, key string, complaints []models.Complaint)
	Invalidate(ctx context.Context)
}

// DefaultTTL bounds staleness even without writes.
const DefaultTTL = 30 * time.Second
