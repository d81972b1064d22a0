package order

import (
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository/store"
)

type Repository = store.Store[entities.Order, string]

var table = store.Table[entities.Order, string]{
	Name:     "orders",
	IDColumn: "order_id",
	Columns:  []string{"user_id", "item", "quantity", "amount", "status", "order_date"},
	ID: func(o entities.Order) string {
		return o.OrderID
	},
	Values: func(o entities.Order) []any {
		model := FromDomain(o)
		return []any{model.UserID, model.Item, model.Quantity, model.Amount, model.Status, model.OrderDate}
	},
	Scan: scan,
}

func New(querier store.Querier) *Repository {
	return store.New(querier, table)
}

func scan(row pgx.Row) (entities.Order, error) {
	var model OrderDB
	err := row.Scan(
		&model.OrderID,
		&model.UserID,
		&model.Item,
		&model.Quantity,
		&model.Amount,
		&model.Status,
		&model.OrderDate,
	)
	if err != nil {
		return entities.Order{}, err
	}
	return ToDomain(model), nil
}
