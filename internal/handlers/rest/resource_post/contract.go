//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=resource_post_test
package resource_post

import (
	"context"

	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service[E any] interface {
	Create(ctx context.Context, entity E) (*E, error)
}
