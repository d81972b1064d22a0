package bill

import (
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository/store"
)

type Repository = store.Store[entities.Bill, int64]

var table = store.Table[entities.Bill, int64]{
	Name:        "bills",
	IDColumn:    "bill_id",
	Columns:     []string{"order_id", "amount", "payment_mode", "bill_date"},
	GeneratedID: true,
	ID: func(b entities.Bill) int64 {
		return b.BillID
	},
	Values: func(b entities.Bill) []any {
		model := FromDomain(b)
		return []any{model.OrderID, model.Amount, model.PaymentMode, model.BillDate}
	},
	Scan: scan,
}

func New(querier store.Querier) *Repository {
	return store.New(querier, table)
}

func scan(row pgx.Row) (entities.Bill, error) {
	var model BillDB
	err := row.Scan(
		&model.BillID,
		&model.OrderID,
		&model.Amount,
		&model.PaymentMode,
		&model.BillDate,
	)
	if err != nil {
		return entities.Bill{}, err
	}
	return ToDomain(model), nil
}
