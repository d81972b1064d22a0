//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=resource_delete_test
package resource_delete

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

type Service[ID comparable] interface {
	Delete(ctx context.Context, id ID) error
}
