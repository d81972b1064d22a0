package delivery

import (
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository/store"
)

type Repository = store.Store[entities.Delivery, string]

var table = store.Table[entities.Delivery, string]{
	Name:     "deliveries",
	IDColumn: "delivery_id",
	Columns:  []string{"order_id", "emp_id", "address", "status", "delivery_date"},
	ID: func(d entities.Delivery) string {
		return d.DeliveryID
	},
	Values: func(d entities.Delivery) []any {
		model := FromDomain(d)
		return []any{model.OrderID, model.EmpID, model.Address, model.Status, model.DeliveryDate}
	},
	Scan: scan,
}

func New(querier store.Querier) *Repository {
	return store.New(querier, table)
}

func scan(row pgx.Row) (entities.Delivery, error) {
	var model DeliveryDB
	err := row.Scan(
		&model.DeliveryID,
		&model.OrderID,
		&model.EmpID,
		&model.Address,
		&model.Status,
		&model.DeliveryDate,
	)
	if err != nil {
		return entities.Delivery{}, err
	}
	return ToDomain(model), nil
}
