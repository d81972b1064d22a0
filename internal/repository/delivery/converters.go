package delivery

import (
	"github.com/AlekSi/pointer"
	"service/internal/entities"
)

func ToDomain(d DeliveryDB) entities.Delivery {
	return entities.Delivery{
		DeliveryID:   d.DeliveryID,
		OrderID:      pointer.Get(d.OrderID),
		EmpID:        d.EmpID,
		Address:      pointer.Get(d.Address),
		Status:       entities.DeliveryStatusType(pointer.Get(d.Status)),
		DeliveryDate: d.DeliveryDate,
	}
}

// FromDomain пустые строки хранятся как NULL.
func FromDomain(d entities.Delivery) DeliveryDB {
	return DeliveryDB{
		DeliveryID:   d.DeliveryID,
		OrderID:      pointer.ToOrNil(d.OrderID),
		EmpID:        d.EmpID,
		Address:      pointer.ToOrNil(d.Address),
		Status:       pointer.ToOrNil(d.Status.String()),
		DeliveryDate: d.DeliveryDate,
	}
}
