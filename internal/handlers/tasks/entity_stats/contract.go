//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=entity_stats_test
package entity_stats

import (
	"context"

	"service/pkg/logger"
)

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Counter interface {
	Entity() string
	Count(ctx context.Context) (int64, error)
}
