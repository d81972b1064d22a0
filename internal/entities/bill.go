package entities

import (
	"fmt"
	"time"
)

// Bill billID назначается базой при создании.
type Bill struct {
	BillID      int64      `json:"billId"`
	OrderID     string     `json:"orderId" validate:"max=36"`
	Amount      float64    `json:"amount" validate:"gte=0"`
	PaymentMode string     `json:"paymentMode" validate:"max=32"`
	BillDate    *time.Time `json:"billDate,omitempty"`
}

var billMessages = FieldMessages{
	"OrderID.max":     "Order ID must be at most 36 characters",
	"Amount.gte":      "Amount cannot be negative",
	"PaymentMode.max": "Payment mode must be at most 32 characters",
}

func (b Bill) Identity() int64 {
	return b.BillID
}

func (b Bill) WithIdentity(id int64) Bill {
	b.BillID = id
	return b
}

func (b Bill) ValidationMessages() FieldMessages {
	return billMessages
}

func (b Bill) String() string {
	return fmt.Sprintf("Bill{billId=%d, orderId=%s, amount=%.2f, paymentMode=%s, billDate=%s}",
		b.BillID, b.OrderID, b.Amount, b.PaymentMode, formatDate(b.BillDate))
}
