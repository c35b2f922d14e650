package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimitMiddleware(1, 2)
	defer rl.Stop()
	handler := rl.Middleware(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/books", nil)
		req.RemoteAddr = "127.0.0.1:5000"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodGet, "/v1/books", nil)
	req.RemoteAddr = "127.0.0.2:5000"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitMiddleware_StopTwice(t *testing.T) {
	rl := NewRateLimitMiddleware(1, 1)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}

func TestClientKey(t *testing.T) {
	assert.Equal(t, "10.0.0.1", clientKey(&http.Request{RemoteAddr: "10.0.0.1:1234"}))
	assert.Equal(t, "pipe", clientKey(&http.Request{RemoteAddr: "pipe"}))
}

func TestRateLimitMiddleware_RetryAfter(t *testing.T) {
	rl := NewRateLimitMiddleware(0.25, 1)
	defer rl.Stop()
	handler := rl.Middleware(okHandler())

	var w *httptest.ResponseRecorder
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/books", nil)
		req.RemoteAddr = "127.0.0.1:5000"
		w = httptest.NewRecorder()
		handler.ServeHTTP(w, req)
	}
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "4", w.Header().Get("Retry-After"))
}

func TestRetryAfter(t *testing.T) {
	assert.Equal(t, "1", retryAfter(0))
	assert.Equal(t, "1", retryAfter(200*time.Millisecond))
	assert.Equal(t, "3", retryAfter(2100*time.Millisecond))
}

func TestRateLimitMiddleware_Prune(t *testing.T) {
	rl := NewRateLimitMiddleware(1, 1)
	defer rl.Stop()

	start := time.Now()
	rl.limiterFor("a", start)
	rl.limiterFor("b", start.Add(4*time.Minute))

	assert.Equal(t, 2, rl.prune(start.Add(5*time.Minute)))
	assert.Equal(t, 1, rl.prune(start.Add(6*time.Minute)))
	assert.Equal(t, 0, rl.prune(start.Add(10*time.Minute)))
}
