package user

import (
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository/store"
)

type Repository = store.Store[entities.User, string]

var table = store.Table[entities.User, string]{
	Name:     "users",
	IDColumn: "user_id",
	Columns:  []string{"name", "email", "phone_num"},
	ID: func(u entities.User) string {
		return u.UserID
	},
	Values: func(u entities.User) []any {
		model := FromDomain(u)
		return []any{model.Name, model.Email, model.PhoneNum}
	},
	Scan: scan,
}

func New(querier store.Querier) *Repository {
	return store.New(querier, table)
}

func scan(row pgx.Row) (entities.User, error) {
	var model UserDB
	err := row.Scan(&model.UserID, &model.Name, &model.Email, &model.PhoneNum)
	if err != nil {
		return entities.User{}, err
	}
	return ToDomain(model), nil
}
