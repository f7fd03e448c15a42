package server

import (
	"sync"
	"time"
)

// loginLimiter throttles login attempts per key (session + client address)
// so access codes cannot be enumerated by hammering the login endpoint.
type loginLimiter struct {
	mu     sync.Mutex
	limits map[string]*attemptWindow
}

type attemptWindow struct {
	count     int
	windowEnd time.Time
}

func newLoginLimiter() *loginLimiter {
	return &loginLimiter{limits: make(map[string]*attemptWindow)}
}

func (l *loginLimiter) Allow(key string, limit int, window time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w := l.limits[key]
	if w == nil || now.After(w.windowEnd) {
		l.limits[key] = &attemptWindow{count: 1, windowEnd: now.Add(window)}
		return true
	}
	if w.count < limit {
		w.count++
		return true
	}
	return false
}

// StartCleanup evicts stale windows in the background.
func (l *loginLimiter) StartCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			l.mu.Lock()
			now := time.Now()
			for key, w := range l.limits {
				if now.After(w.windowEnd.Add(5 * time.Minute)) {
					delete(l.limits, key)
				}
			}
			l.mu.Unlock()
		}
	}()
}
