// Package ratelimit provides per-client token-bucket rate limiting for the
// search API surface.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Config sets the bucket size and refill rate applied to every client.
type Config struct {
	// Capacity is the burst size per client.
	Capacity int
	// RefillPerSecond is how many tokens a client regains per second.
	RefillPerSecond float64
	// Disabled turns the limiter into a pass-through.
	Disabled bool
}

// LoadConfig reads limiter settings from the environment, with defaults
// suitable for an interactive search UI.
func LoadConfig() Config {
	cfg := Config{Capacity: 30, RefillPerSecond: 5}
	if v := os.Getenv("SEARCH_RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Capacity = n
		}
	}
	if v := os.Getenv("SEARCH_RATE_LIMIT_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.RefillPerSecond = f
		}
	}
	if os.Getenv("SEARCH_RATE_LIMIT_DISABLED") == "true" {
		cfg.Disabled = true
	}
	return cfg
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
	lastSeen   time.Time
}

// Limiter tracks one token bucket per client ID.
type Limiter struct {
	cfg     Config
	mu      sync.Mutex
	buckets map[string]*bucket
	done    chan struct{}
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup loop.
func NewLimiter(cfg Config) *Limiter {
	l := &Limiter{
		cfg:     cfg,
		buckets: make(map[string]*bucket),
		done:    make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow consumes one token for the client, reporting whether the request may
// proceed and how many tokens remain.
func (l *Limiter) Allow(clientID string) (allowed bool, remaining int) {
	if l.cfg.Disabled {
		return true, l.cfg.Capacity
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{tokens: float64(l.cfg.Capacity), lastRefill: now}
		l.buckets[clientID] = b
	}

	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = min(float64(l.cfg.Capacity), b.tokens+elapsed*l.cfg.RefillPerSecond)
	b.lastRefill = now
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		return true, int(b.tokens)
	}
	return false, 0
}

// Stop terminates the cleanup loop.
func (l *Limiter) Stop() {
	close(l.done)
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.mu.Lock()
			cutoff := time.Now().Add(-10 * time.Minute)
			for id, b := range l.buckets {
				if b.lastSeen.Before(cutoff) {
					delete(l.buckets, id)
				}
			}
			l.mu.Unlock()
		}
	}
}
