package handlers

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// RateLimiter allows a fixed number of requests per client IP per minute.
type RateLimiter struct {
	Limit int

	mu      sync.Mutex
	ipCount map[string]*rateBucket
	now     func() time.Time
}

type rateBucket struct {
	count  int
	window time.Time
}

func NewRateLimiter(limit int) *RateLimiter {
	return &RateLimiter{
		Limit:   limit,
		ipCount: make(map[string]*rateBucket),
		now:     time.Now,
	}
}

func (l *RateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.ipCount[ip]
	if !ok || now.Sub(b.window) > time.Minute {
		l.ipCount[ip] = &rateBucket{count: 1, window: now}
		return true
	}
	b.count++
	return b.count <= l.Limit
}

func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return strings.TrimSpace(strings.Split(ip, ",")[0])
	}
	return r.RemoteAddr
}

// Middleware rejects requests over the limit with 429.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.allow(clientIP(r)) {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
