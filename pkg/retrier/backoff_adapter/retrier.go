package backoff_adapter

import (
	"context"

	"github.com/cenkalti/backoff/v4"
	"service/pkg/retrier"
)

// Retrier экспоненциальный backoff поверх cenkalti/backoff.
// Ошибка, отвергнутая ShouldRetry, возвращается без паузы и без OnRetry.
type Retrier struct {
	config retrier.Config
}

func New(config retrier.Config) *Retrier {
	return &Retrier{config: config}
}

func (r *Retrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	policy := backoff.WithContext(r.newBackOff(), ctx)

	return backoff.RetryNotify(func() error {
		err := fn(ctx)
		if err == nil || r.retriable(err) {
			return err
		}
		return backoff.Permanent(err)
	}, policy, backoff.Notify(r.config.OnRetry))
}

func (r *Retrier) newBackOff() *backoff.ExponentialBackOff {
	return backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.config.InitialInterval),
		backoff.WithMaxInterval(r.config.MaxInterval),
		backoff.WithMaxElapsedTime(r.config.MaxElapsedTime),
		backoff.WithRandomizationFactor(r.config.Randomization),
		backoff.WithMultiplier(r.config.Multiplier),
	)
}

func (r *Retrier) retriable(err error) bool {
	return r.config.ShouldRetry == nil || r.config.ShouldRetry(err)
}
