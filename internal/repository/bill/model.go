package bill

import "time"

type BillDB struct {
	BillID      int64
	OrderID     *string
	Amount      float64
	PaymentMode *string
	BillDate    *time.Time
}
