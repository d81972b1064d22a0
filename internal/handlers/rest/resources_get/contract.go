//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=resources_get_test
package resources_get

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
	List(ctx context.Context) ([]E, error)
}
