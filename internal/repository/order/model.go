package order

import "time"

type OrderDB struct {
	OrderID   string
	UserID    *string
	Item      *string
	Quantity  int32
	Amount    float64
	Status    *string
	OrderDate *time.Time
}
