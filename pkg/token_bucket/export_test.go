package token_bucket

import "time"

func NewWithClock(qps float64, burst int, now func() time.Time) *TokenBucket {
	return newWithClock(qps, burst, now)
}
