package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func TestRateLimiter_ReusesLimiterPerIP(t *testing.T) {
	rl := NewRateLimiter(1, 2)

	first := rl.getLimiter("10.0.0.1")
	second := rl.getLimiter("10.0.0.1")
	other := rl.getLimiter("10.0.0.2")

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
}

func TestRateLimiter_RemoveIdle_KeepsActiveVisitor(t *testing.T) {
	rl := NewRateLimiter(1, 2)

	limiter := rl.getLimiter("10.0.0.1")
	rl.removeIdle(time.Now().Add(-visitorTTL))

	assert.Same(t, limiter, rl.getLimiter("10.0.0.1"),
		"a visitor seen within the TTL must keep its bucket")
}

func TestRateLimiter_RemoveIdle_DropsIdleVisitor(t *testing.T) {
	rl := NewRateLimiter(1, 2)

	limiter := rl.getLimiter("10.0.0.1")
	rl.mu.Lock()
	rl.visitors["10.0.0.1"].lastSeen = time.Now().Add(-visitorTTL - time.Minute)
	rl.mu.Unlock()

	rl.removeIdle(time.Now().Add(-visitorTTL))

	assert.NotSame(t, limiter, rl.getLimiter("10.0.0.1"),
		"an idle visitor must be forgotten and start a fresh bucket")
}

func TestRateLimiter_Limit_RejectsExhaustedBurst(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)

	r := ginext.New("test")
	r.Use(rl.Limit())
	r.GET("/ping", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_Limit_IsolatesClients(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)

	r := ginext.New("test")
	r.Use(rl.Limit())
	r.GET("/ping", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	do := func(addr string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = addr
		r.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, do("10.0.0.1:1234"))
	require.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, do("10.0.0.2:1234"),
		"one client's exhausted bucket must not throttle another")
}
