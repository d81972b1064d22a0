package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// OnRetryFunc вызывается перед паузой, next это длительность паузы.
type OnRetryFunc func(err error, next time.Duration)

// Config параметры экспоненциального backoff.
type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// nil ретраит все ошибки, иначе только те, для которых функция вернула true
	ShouldRetry ShouldRetryFunc
	OnRetry     OnRetryFunc
}
