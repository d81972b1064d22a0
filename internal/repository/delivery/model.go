package delivery

import "time"

type DeliveryDB struct {
	DeliveryID   string
	OrderID      *string
	EmpID        int64
	Address      *string
	Status       *string
	DeliveryDate *time.Time
}
