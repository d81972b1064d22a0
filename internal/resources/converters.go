package resources

import (
	"github.com/AlekSi/pointer"
	"service/internal/entities"
	"service/internal/generated/dto"
)

func userFromDTO(in dto.User) entities.User {
	return entities.User{
		UserID:   in.UserID,
		Name:     in.Name,
		Email:    in.Email,
		PhoneNum: in.PhoneNum,
	}
}

func userToDTO(u entities.User) dto.User {
	return dto.User{
		UserID:   u.UserID,
		Name:     u.Name,
		Email:    u.Email,
		PhoneNum: u.PhoneNum,
	}
}

func deliveryBoyFromDTO(in dto.DeliveryBoy) entities.DeliveryBoy {
	return entities.DeliveryBoy{
		EmpID:       in.EmpID,
		Ename:       in.Ename,
		Email:       in.Email,
		Vehicle:     in.Vehicle,
		PhoneNumber: in.PhoneNumber,
	}
}

func deliveryBoyToDTO(d entities.DeliveryBoy) dto.DeliveryBoy {
	return dto.DeliveryBoy{
		EmpID:       d.EmpID,
		Ename:       d.Ename,
		Email:       d.Email,
		Vehicle:     d.Vehicle,
		PhoneNumber: d.PhoneNumber,
	}
}

// deliveryFromDTO статус вне перечисления проходит как есть и отсекается валидацией.
func deliveryFromDTO(in dto.Delivery) entities.Delivery {
	return entities.Delivery{
		DeliveryID:   in.DeliveryID,
		OrderID:      in.OrderID,
		EmpID:        in.EmpID,
		Address:      in.Address,
		Status:       entities.DeliveryStatusType(pointer.Get(in.Status)),
		DeliveryDate: in.DeliveryDate,
	}
}

func deliveryToDTO(d entities.Delivery) dto.Delivery {
	return dto.Delivery{
		DeliveryID:   d.DeliveryID,
		OrderID:      d.OrderID,
		EmpID:        d.EmpID,
		Address:      d.Address,
		Status:       pointer.ToOrNil(dto.DeliveryStatus(d.Status)),
		DeliveryDate: d.DeliveryDate,
	}
}

func orderFromDTO(in dto.Order) entities.Order {
	return entities.Order{
		OrderID:   in.OrderID,
		UserID:    in.UserID,
		Item:      in.Item,
		Quantity:  in.Quantity,
		Amount:    in.Amount,
		Status:    in.Status,
		OrderDate: in.OrderDate,
	}
}

func orderToDTO(o entities.Order) dto.Order {
	return dto.Order{
		OrderID:   o.OrderID,
		UserID:    o.UserID,
		Item:      o.Item,
		Quantity:  o.Quantity,
		Amount:    o.Amount,
		Status:    o.Status,
		OrderDate: o.OrderDate,
	}
}

func billFromDTO(in dto.Bill) entities.Bill {
	return entities.Bill{
		BillID:      in.BillID,
		OrderID:     in.OrderID,
		Amount:      in.Amount,
		PaymentMode: in.PaymentMode,
		BillDate:    in.BillDate,
	}
}

func billToDTO(b entities.Bill) dto.Bill {
	return dto.Bill{
		BillID:      b.BillID,
		OrderID:     b.OrderID,
		Amount:      b.Amount,
		PaymentMode: b.PaymentMode,
		BillDate:    b.BillDate,
	}
}
