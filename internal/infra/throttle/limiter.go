package throttle

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxIdleEntries bounds memory before idle limiters are pruned.
const maxIdleEntries = 10000

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter keeps one token bucket per key.
type KeyedLimiter struct {
	mu       sync.Mutex
	entries  map[string]*entry
	interval time.Duration
	burst    int
	now      func() time.Time
}

func NewKeyedLimiter(interval time.Duration, burst int) *KeyedLimiter {
	if burst < 1 {
		burst = 1
	}
	return &KeyedLimiter{
		entries:  make(map[string]*entry),
		interval: interval,
		burst:    burst,
		now:      time.Now,
	}
}

func (l *KeyedLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]
	if !ok {
		if len(l.entries) >= maxIdleEntries {
			l.prune(now)
		}
		e = &entry{limiter: rate.NewLimiter(rate.Every(l.interval), l.burst)}
		l.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// prune drops keys whose bucket has refilled completely.
func (l *KeyedLimiter) prune(now time.Time) {
	idle := l.interval * time.Duration(l.burst)
	for k, e := range l.entries {
		if now.Sub(e.lastSeen) >= idle {
			delete(l.entries, k)
		}
	}
}
