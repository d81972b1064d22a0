package entity_stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"service/pkg/logger"
)

type EntityStats struct {
	log      taskLogger
	counters []Counter
	interval time.Duration
}

func NewEntityStats(log taskLogger, interval time.Duration, counters ...Counter) *EntityStats {
	return &EntityStats{
		log:      log,
		counters: counters,
		interval: interval,
	}
}

func (e *EntityStats) TTL() time.Duration {
	return e.interval
}

// Do обновляет gauge по каждой сущности. Ошибка одной сущности не мешает остальным.
func (e *EntityStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, e.interval)
	defer cancel()

	var errs []error
	for _, counter := range e.counters {
		rows, err := counter.Count(ctxWithTimeout)
		if err != nil {
			errs = append(errs, fmt.Errorf("count %s: %w", counter.Entity(), err))
			continue
		}

		EntityRows.WithLabelValues(counter.Entity()).Set(float64(rows))
		e.log.With(
			logger.NewField("entity", counter.Entity()),
			logger.NewField("rows", rows),
		).Info("entity stats")
	}

	return errors.Join(errs...)
}

func (e *EntityStats) Info() string {
	return "entity stats"
}
