package entities

import (
	"fmt"
	"time"
)

type Order struct {
	OrderID   string     `json:"orderId" validate:"required,max=36"`
	UserID    string     `json:"userId" validate:"max=3"`
	Item      string     `json:"item" validate:"max=255"`
	Quantity  int32      `json:"quantity" validate:"gte=0"`
	Amount    float64    `json:"amount" validate:"gte=0"`
	Status    string     `json:"status" validate:"max=32"`
	OrderDate *time.Time `json:"orderDate,omitempty"`
}

var orderMessages = FieldMessages{
	"OrderID.required": "Order ID cannot be blank",
	"OrderID.max":      "Order ID must be at most 36 characters",
	"UserID.max":       "User ID must be at most 3 characters",
	"Item.max":         "Item must be at most 255 characters",
	"Quantity.gte":     "Quantity cannot be negative",
	"Amount.gte":       "Amount cannot be negative",
	"Status.max":       "Status must be at most 32 characters",
}

func (o Order) Identity() string {
	return o.OrderID
}

func (o Order) WithIdentity(id string) Order {
	o.OrderID = id
	return o
}

func (o Order) ValidationMessages() FieldMessages {
	return orderMessages
}

func (o Order) String() string {
	return fmt.Sprintf("Order{orderId=%s, userId=%s, item=%s, quantity=%d, amount=%.2f, status=%s, orderDate=%s}",
		o.OrderID, o.UserID, o.Item, o.Quantity, o.Amount, o.Status, formatDate(o.OrderDate))
}
