package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewShardedRateLimiter(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		window     time.Duration
		numShards  int
		wantShards int
		wantWindow time.Duration
	}{
		{
			name:       "default shards when zero",
			limit:      10,
			window:     time.Minute,
			wantShards: defaultNumShards,
			wantWindow: time.Minute,
		},
		{
			name:       "default shards when negative",
			limit:      10,
			window:     time.Minute,
			numShards:  -1,
			wantShards: defaultNumShards,
			wantWindow: time.Minute,
		},
		{
			name:       "custom shard count",
			limit:      10,
			window:     30 * time.Second,
			numShards:  8,
			wantShards: 8,
			wantWindow: 30 * time.Second,
		},
		{
			name:       "non-positive window defaults to a minute",
			limit:      10,
			numShards:  2,
			wantShards: 2,
			wantWindow: time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewShardedRateLimiter(tt.limit, tt.window, tt.numShards)
			defer rl.Stop()

			assert.Len(t, rl.shards, tt.wantShards)
			assert.Equal(t, tt.limit, rl.limit)
			assert.Equal(t, tt.wantWindow, rl.window)
		})
	}
}

func TestRateLimiter_Allow(t *testing.T) {
	tests := []struct {
		name        string
		limit       int
		requests    int
		wantAllowed int
	}{
		{name: "all requests allowed under limit", limit: 5, requests: 3, wantAllowed: 3},
		{name: "exact limit", limit: 5, requests: 5, wantAllowed: 5},
		{name: "exceeds limit", limit: 5, requests: 8, wantAllowed: 5},
		{name: "single request allowed", limit: 1, requests: 3, wantAllowed: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewShardedRateLimiter(tt.limit, time.Hour, 4)
			defer rl.Stop()

			allowed := 0
			for range tt.requests {
				if ok, _ := rl.allow("client"); ok {
					allowed++
				}
			}
			assert.Equal(t, tt.wantAllowed, allowed)
		})
	}
}

func TestRateLimiter_RemainingTokens(t *testing.T) {
	rl := NewRateLimiter(3, time.Hour)
	defer rl.Stop()

	_, remaining := rl.allow("client")
	assert.Equal(t, 2, remaining)
	_, remaining = rl.allow("client")
	assert.Equal(t, 1, remaining)
	_, remaining = rl.allow("client")
	assert.Equal(t, 0, remaining)
	ok, remaining := rl.allow("client")
	assert.False(t, ok)
	assert.Equal(t, 0, remaining)
}

func TestRateLimiter_IndependentClients(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)
	defer rl.Stop()

	ok, _ := rl.allow("a")
	assert.True(t, ok)
	ok, _ = rl.allow("b")
	assert.True(t, ok)
	ok, _ = rl.allow("a")
	assert.False(t, ok)
}

func TestRateLimiter_Refills(t *testing.T) {
	rl := NewRateLimiter(2, 100*time.Millisecond)
	defer rl.Stop()

	rl.allow("client")
	rl.allow("client")
	ok, _ := rl.allow("client")
	assert.False(t, ok)

	time.Sleep(120 * time.Millisecond)
	ok, _ = rl.allow("client")
	assert.True(t, ok)
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := NewRateLimiter(2, time.Hour)
	defer rl.Stop()

	router := gin.New()
	router.Use(RequestID(), rl.RateLimit())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		last = w
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "2", last.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", last.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, last.Header().Get("Retry-After"))
	assert.Contains(t, last.Body.String(), "rate_limit_exceeded")
}

func TestRateLimiter_CleanupIdle(t *testing.T) {
	rl := NewShardedRateLimiter(5, time.Second, 2)
	defer rl.Stop()

	rl.allow("a")
	rl.allow("b")
	total, perShard := rl.Stats()
	assert.Equal(t, 2, total)
	assert.Len(t, perShard, 2)

	rl.cleanupIdle(time.Now().Add(time.Hour))
	total, _ = rl.Stats()
	assert.Zero(t, total)
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, time.Second)
	assert.NotPanics(t, func() {
		rl.Stop()
		rl.Stop()
	})
}
