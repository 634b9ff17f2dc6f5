// Package auth holds the login gate pieces: the per-address attempt limiter
// and the password hashing helpers. The limiter is an explicit value wired
// into the server, not package state, so tests and multi-instance setups can
// hold their own.
package auth

import (
	"sync"
	"time"
)

const (
	// DefaultMaxAttempts is how many login attempts an address gets inside
	// one window. The attempt that reaches the limit is still evaluated;
	// everything after it is rejected outright.
	DefaultMaxAttempts = 5

	// DefaultWindow is the lockout duration, measured from the first
	// attempt in the window, not sliding.
	DefaultWindow = 15 * time.Minute
)

type attemptEntry struct {
	count        int
	firstAttempt time.Time
}

// LoginLimiter tracks login attempts per client address. Any attempt counts,
// successful or not; a success clears the address. Entries expire lazily on
// the next attempt and eagerly via a background sweep.
type LoginLimiter struct {
	mu          sync.Mutex
	attempts    map[string]*attemptEntry
	maxAttempts int
	window      time.Duration
	stopC       chan struct{}
}

// NewLoginLimiter starts a limiter allowing maxAttempts per window for each
// address, plus a sweep goroutine evicting stale entries. Call Stop when done.
func NewLoginLimiter(maxAttempts int, window time.Duration) *LoginLimiter {
	l := &LoginLimiter{
		attempts:    make(map[string]*attemptEntry),
		maxAttempts: maxAttempts,
		window:      window,
		stopC:       make(chan struct{}),
	}
	go l.sweep()
	return l
}

// Attempt registers a login attempt from addr. It returns false when the
// address is locked out; locked-out attempts are not counted, so they never
// extend the lockout past window-from-first-attempt.
func (l *LoginLimiter) Attempt(addr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	e, ok := l.attempts[addr]
	if ok && now.Sub(e.firstAttempt) > l.window {
		delete(l.attempts, addr)
		e, ok = nil, false
	}

	if ok && e.count >= l.maxAttempts {
		return false
	}

	if !ok {
		l.attempts[addr] = &attemptEntry{count: 1, firstAttempt: now}
		return true
	}
	e.count++
	return true
}

// Reset clears the attempt history for addr, used after a successful login.
func (l *LoginLimiter) Reset(addr string) {
	l.mu.Lock()
	delete(l.attempts, addr)
	l.mu.Unlock()
}

// Locked reports whether addr is currently locked out, without counting an
// attempt. The status endpoint and tests use this; the login path goes
// through Attempt.
func (l *LoginLimiter) Locked(addr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.attempts[addr]
	if !ok {
		return false
	}
	if time.Since(e.firstAttempt) > l.window {
		delete(l.attempts, addr)
		return false
	}
	return e.count >= l.maxAttempts
}

// Stop terminates the sweep goroutine.
func (l *LoginLimiter) Stop() {
	close(l.stopC)
}

// sweep drops entries whose window has passed, keeping the map from growing
// one entry per address ever seen.
func (l *LoginLimiter) sweep() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.evictExpired()
		case <-l.stopC:
			return
		}
	}
}

func (l *LoginLimiter) evictExpired() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	for addr, e := range l.attempts {
		if now.Sub(e.firstAttempt) > l.window {
			delete(l.attempts, addr)
		}
	}
}
