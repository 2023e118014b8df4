package middleware

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultLoginRateLimit is the default number of auth attempts per minute
	DefaultLoginRateLimit = 10
	// DefaultLoginBurst is the default burst size for auth attempts
	DefaultLoginBurst = 5
	// CleanupInterval is the interval for cleaning up stale limiters
	CleanupInterval = 5 * time.Minute
	// LimiterTTL is the time-to-live for inactive limiters
	LimiterTTL = 10 * time.Minute
)

// LoginRateLimiter throttles register/login attempts per client address so a
// single origin cannot hammer the credential endpoints.
type LoginRateLimiter struct {
	limiters  map[string]*limiterEntry
	mu        sync.Mutex
	rateLimit float64
	burst     int
	stopCh    chan struct{}
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLoginRateLimiter creates a LoginRateLimiter with default settings
func NewLoginRateLimiter() *LoginRateLimiter {
	return NewLoginRateLimiterWithConfig(DefaultLoginRateLimit, DefaultLoginBurst)
}

// NewLoginRateLimiterWithConfig creates a LoginRateLimiter with custom configuration
func NewLoginRateLimiterWithConfig(attemptsPerMinute, burst int) *LoginRateLimiter {
	rl := &LoginRateLimiter{
		limiters:  make(map[string]*limiterEntry),
		rateLimit: float64(attemptsPerMinute) / 60.0,
		burst:     burst,
		stopCh:    make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

// Allow checks if an attempt from the given client key is allowed
func (r *LoginRateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.limiters[key]
	if !exists {
		entry = &limiterEntry{
			limiter: rate.NewLimiter(rate.Limit(r.rateLimit), r.burst),
		}
		r.limiters[key] = entry
	}
	entry.lastSeen = time.Now()

	return entry.limiter.Allow()
}

// Stop terminates the cleanup goroutine
func (r *LoginRateLimiter) Stop() {
	close(r.stopCh)
}

func (r *LoginRateLimiter) cleanup() {
	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.mu.Lock()
			cutoff := time.Now().Add(-LimiterTTL)
			for key, entry := range r.limiters {
				if entry.lastSeen.Before(cutoff) {
					delete(r.limiters, key)
				}
			}
			r.mu.Unlock()
		case <-r.stopCh:
			return
		}
	}
}
