package entities

import (
	"fmt"
	"time"
)

type DeliveryStatusType string

const (
	DeliveryPending   DeliveryStatusType = "pending"
	DeliveryInTransit DeliveryStatusType = "in_transit"
	DeliveryDelivered DeliveryStatusType = "delivered"
	DeliveryCancelled DeliveryStatusType = "cancelled"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

type Delivery struct {
	DeliveryID   string             `json:"deliveryId" validate:"required,max=36"`
	OrderID      string             `json:"orderId" validate:"max=36"`
	EmpID        int64              `json:"empId" validate:"gte=0"`
	Address      string             `json:"address" validate:"max=255"`
	Status       DeliveryStatusType `json:"status" validate:"omitempty,oneof=pending in_transit delivered cancelled"`
	DeliveryDate *time.Time         `json:"deliveryDate,omitempty"`
}

var deliveryMessages = FieldMessages{
	"DeliveryID.required": "Delivery ID cannot be blank",
	"DeliveryID.max":      "Delivery ID must be at most 36 characters",
	"OrderID.max":         "Order ID must be at most 36 characters",
	"EmpID.gte":           "Employee ID cannot be negative",
	"Address.max":         "Address must be at most 255 characters",
	"Status.oneof":        "Status must be one of pending, in_transit, delivered, cancelled",
}

func (d Delivery) Identity() string {
	return d.DeliveryID
}

func (d Delivery) WithIdentity(id string) Delivery {
	d.DeliveryID = id
	return d
}

func (d Delivery) ValidationMessages() FieldMessages {
	return deliveryMessages
}

func (d Delivery) String() string {
	return fmt.Sprintf("Delivery{deliveryId=%s, orderId=%s, empId=%d, address=%s, status=%s, deliveryDate=%s}",
		d.DeliveryID, d.OrderID, d.EmpID, d.Address, d.Status, formatDate(d.DeliveryDate))
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "null"
	}
	return t.UTC().Format(time.RFC3339)
}
