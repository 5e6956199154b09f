// Package ratelimit provides per-client rate limiting using token buckets.
// The server uses it to guard the auto-fill endpoint, where every request
// can turn into one or more model calls.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket allows a number of requests per window, with tokens
// refilling at a steady rate.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow consumes a token if one is available.
func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// status reports remaining tokens and when the bucket will be full again,
// without consuming a token.
func (tb *tokenBucket) status() (remaining int, resetTime time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	remaining = int(tb.tokens)
	resetTime = now
	if tb.tokens < float64(tb.capacity) {
		secondsUntilFull := (float64(tb.capacity) - tb.tokens) / tb.refillRate
		resetTime = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	}
	return remaining, resetTime
}

// nextTokenIn reports how long until a single token is available.
func (tb *tokenBucket) nextTokenIn() time.Duration {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		return 0
	}
	seconds := (1.0 - tb.tokens) / tb.refillRate
	return time.Duration(seconds * float64(time.Second))
}

// Info describes the rate limit state returned with every decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	// Limit is the number of requests allowed per Window. Zero or negative
	// disables limiting.
	Limit  int
	Window time.Duration
	// Burst is the bucket capacity; defaults to Limit when zero.
	Burst int
	// CleanupInterval controls how often idle client buckets are dropped.
	CleanupInterval time.Duration
}

// DefaultConfig allows ten auto-fill requests per minute per client,
// roughly one probe sweep plus a handful of retries.
func DefaultConfig() Config {
	return Config{
		Limit:           10,
		Window:          time.Minute,
		CleanupInterval: 5 * time.Minute,
	}
}

// Limiter manages one token bucket per client.
type Limiter struct {
	config  Config
	buckets map[string]*tokenBucket
	mu      sync.RWMutex

	lastAccess map[string]time.Time
	accessMu   sync.Mutex

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a rate limiter with the given configuration.
func NewLimiter(config Config) *Limiter {
	l := &Limiter{
		config:     config,
		buckets:    make(map[string]*tokenBucket),
		lastAccess: make(map[string]time.Time),
	}

	if config.Limit > 0 && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow checks whether a request from the given client is allowed.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if l.config.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	bucket := l.getBucket(clientID)

	l.accessMu.Lock()
	l.lastAccess[clientID] = time.Now()
	l.accessMu.Unlock()

	allowed := bucket.allow()
	remaining, resetTime := bucket.status()

	// Retry-After only needs the next token, not a full bucket.
	var retryAfter time.Duration
	if !allowed {
		retryAfter = bucket.nextTokenIn()
	}

	return allowed, Info{
		Allowed:    allowed,
		Limit:      l.config.Limit,
		Remaining:  remaining,
		ResetTime:  resetTime,
		RetryAfter: retryAfter,
	}
}

func (l *Limiter) getBucket(clientID string) *tokenBucket {
	l.mu.RLock()
	bucket, exists := l.buckets[clientID]
	l.mu.RUnlock()
	if exists {
		return bucket
	}

	capacity := l.config.Burst
	if capacity <= 0 {
		capacity = l.config.Limit
	}
	refillRate := float64(l.config.Limit) / l.config.Window.Seconds()
	bucket = newTokenBucket(capacity, refillRate)

	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, exists := l.buckets[clientID]; exists {
		return existing
	}
	l.buckets[clientID] = bucket
	return bucket
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.cleanupBuckets()
		case <-l.cleanupStop:
			return
		}
	}
}

// cleanupBuckets drops buckets idle for over an hour.
func (l *Limiter) cleanupBuckets() {
	cutoff := time.Now().Add(-1 * time.Hour)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.accessMu.Lock()
	defer l.accessMu.Unlock()

	for clientID, last := range l.lastAccess {
		if last.Before(cutoff) {
			delete(l.buckets, clientID)
			delete(l.lastAccess, clientID)
		}
	}
}

// Stop stops the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
