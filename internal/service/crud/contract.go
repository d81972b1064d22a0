//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=crud_test
package crud

import (
	"context"

	"service/internal/entities"
)

type Repository[E any, ID comparable] interface {
	GetAll(ctx context.Context) ([]E, error)
	GetByID(ctx context.Context, id ID) (*E, error)
	Create(ctx context.Context, entity E) (*E, error)
	Update(ctx context.Context, entity E) (*E, error)
	Delete(ctx context.Context, id ID) error
	Count(ctx context.Context) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Validator interface {
	Struct(value any) error
}

// Notifier получает событие после успешной записи. Ошибки доставки остаются на стороне Notifier.
type Notifier interface {
	Notify(ctx context.Context, event entities.ChangeEvent)
}
