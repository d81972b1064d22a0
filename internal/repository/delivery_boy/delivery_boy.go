package delivery_boy

import (
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository/store"
)

type Repository = store.Store[entities.DeliveryBoy, int64]

// emp_id bigserial, при создании значение из тела запроса игнорируется.
var table = store.Table[entities.DeliveryBoy, int64]{
	Name:        "delivery_boys",
	IDColumn:    "emp_id",
	Columns:     []string{"ename", "email", "vehicle", "phone_number"},
	GeneratedID: true,
	ID: func(d entities.DeliveryBoy) int64 {
		return d.EmpID
	},
	Values: func(d entities.DeliveryBoy) []any {
		model := FromDomain(d)
		return []any{model.Ename, model.Email, model.Vehicle, model.PhoneNumber}
	},
	Scan: scan,
}

func New(querier store.Querier) *Repository {
	return store.New(querier, table)
}

func scan(row pgx.Row) (entities.DeliveryBoy, error) {
	var model DeliveryBoyDB
	err := row.Scan(&model.EmpID, &model.Ename, &model.Email, &model.Vehicle, &model.PhoneNumber)
	if err != nil {
		return entities.DeliveryBoy{}, err
	}
	return ToDomain(model), nil
}
