package middleware

import (
	"time"

	"github.com/sunilmaharaj1991-max/BlinkLean/internal/service/cache"
)

// idempotencyCacheSize bounds the number of replayable responses held in memory.
const idempotencyCacheSize = 10_000

// cachedResponse stores a cached HTTP response for idempotency.
type cachedResponse struct {
	StatusCode  int
	ContentType string
	Headers     map[string]string
	Body        []byte
}

// idempotencyCache stores replayable responses keyed by request fingerprint.
type idempotencyCache = cache.Cache[string, *cachedResponse]

// newIdempotencyCache creates a bounded TTL cache for idempotent replays.
func newIdempotencyCache(ttl time.Duration) idempotencyCache {
	return cache.NewTTL[string, *cachedResponse]("idempotency", idempotencyCacheSize, ttl)
}
