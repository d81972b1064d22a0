//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=resource_put_test
package resource_put

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

type Service[E any, ID comparable] interface {
	Update(ctx context.Context, id ID, entity E) (*E, error)
}
