package token_bucket

import (
	"sync"
	"time"
)

// TokenBucket пропускает burst запросов сразу и восполняет qps токенов в секунду.
type TokenBucket struct {
	mu         sync.Mutex
	burst      float64
	tokens     float64
	qps        float64
	lastRefill time.Time
	now        func() time.Time
}

func New(qps float64, burst int) *TokenBucket {
	return newWithClock(qps, burst, time.Now)
}

func newWithClock(qps float64, burst int, now func() time.Time) *TokenBucket {
	return &TokenBucket{
		burst:      float64(burst),
		tokens:     float64(burst),
		qps:        qps,
		lastRefill: now(),
		now:        now,
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

// refill дробные токены копятся между вызовами, поэтому низкий qps тоже восполняется.
func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens = min(t.burst, t.tokens+elapsed*t.qps)
	t.lastRefill = now
}
