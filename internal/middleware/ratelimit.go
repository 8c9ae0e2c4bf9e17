package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Register and login are the only credential-bearing endpoints, so they get a
// per-IP sliding window tight enough to blunt brute-force and enumeration
// attempts without bothering a user who fat-fingers a password.
const (
	authAttemptLimit  = 5
	authAttemptWindow = 15 * time.Minute
)

// slidingWindow counts recent attempts per client IP.
type slidingWindow struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	limit    int
	window   time.Duration
}

func newSlidingWindow(limit int, window time.Duration) *slidingWindow {
	sw := &slidingWindow{
		attempts: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
	}
	go sw.evictLoop()
	return sw
}

// allow records an attempt for ip and reports whether it is within the limit.
// Attempts older than the window are pruned in place on every call.
func (sw *slidingWindow) allow(ip string) bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	cutoff := time.Now().Add(-sw.window)
	recent := sw.attempts[ip][:0]
	for _, at := range sw.attempts[ip] {
		if at.After(cutoff) {
			recent = append(recent, at)
		}
	}

	if len(recent) >= sw.limit {
		sw.attempts[ip] = recent
		return false
	}

	sw.attempts[ip] = append(recent, time.Now())
	return true
}

// evictLoop drops IPs whose attempts have all aged out, so the map does not
// grow with every client that ever touched an auth endpoint.
func (sw *slidingWindow) evictLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		sw.mu.Lock()
		cutoff := time.Now().Add(-sw.window)
		for ip, attempts := range sw.attempts {
			stale := true
			for _, at := range attempts {
				if at.After(cutoff) {
					stale = false
					break
				}
			}
			if stale {
				delete(sw.attempts, ip)
			}
		}
		sw.mu.Unlock()
	}
}

// RateLimitAuth limits register/login to authAttemptLimit attempts per IP per
// authAttemptWindow. Rejected requests get a 429 with the API's JSON error
// shape.
func RateLimitAuth() func(http.HandlerFunc) http.HandlerFunc {
	return RateLimit(authAttemptLimit, authAttemptWindow)
}

// RateLimit builds a per-IP limiter with explicit bounds. All routes wrapped
// by the same returned function share one window.
func RateLimit(limit int, window time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	limiter := newSlidingWindow(limit, window)

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			if !limiter.allow(ip) {
				slog.Warn("rate limit exceeded", "ip", ip, "path", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"too many attempts, please try again later"}`))
				return
			}

			next(w, r)
		}
	}
}

// clientIP resolves the originating address, preferring proxy headers over
// RemoteAddr so deployments behind a load balancer limit the real client.
func clientIP(r *http.Request) string {
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	xri := r.Header.Get("X-Real-IP")
	if xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
