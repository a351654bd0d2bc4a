package middleware

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdempotencyCache(t *testing.T) {
	c := newIdempotencyCache(time.Minute)
	t.Cleanup(c.Stop)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	resp := &cachedResponse{StatusCode: http.StatusOK, ContentType: "application/json", Body: []byte(`{}`)}
	c.Set("key", resp)

	got, ok := c.Get("key")
	assert.True(t, ok)
	assert.Same(t, resp, got)
}

func TestGenerateCacheKey(t *testing.T) {
	newReq := func(method, path, body string) *http.Request {
		req, _ := http.NewRequest(method, path, strings.NewReader(body))
		return req
	}

	a, err := generateCacheKey("k", newReq(http.MethodPost, "/a", "x"))
	assert.NoError(t, err)
	b, _ := generateCacheKey("k", newReq(http.MethodPost, "/a", "x"))
	c, _ := generateCacheKey("k", newReq(http.MethodPost, "/a", "y"))
	d, _ := generateCacheKey("k2", newReq(http.MethodPost, "/a", "x"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
	assert.Len(t, a, 64)
}
