package order

import (
	"github.com/AlekSi/pointer"
	"service/internal/entities"
)

func ToDomain(o OrderDB) entities.Order {
	return entities.Order{
		OrderID:   o.OrderID,
		UserID:    pointer.Get(o.UserID),
		Item:      pointer.Get(o.Item),
		Quantity:  o.Quantity,
		Amount:    o.Amount,
		Status:    pointer.Get(o.Status),
		OrderDate: o.OrderDate,
	}
}

func FromDomain(o entities.Order) OrderDB {
	return OrderDB{
		OrderID:   o.OrderID,
		UserID:    pointer.ToOrNil(o.UserID),
		Item:      pointer.ToOrNil(o.Item),
		Quantity:  o.Quantity,
		Amount:    o.Amount,
		Status:    pointer.ToOrNil(o.Status),
		OrderDate: o.OrderDate,
	}
}
