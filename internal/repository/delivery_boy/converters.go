package delivery_boy

import "service/internal/entities"

func ToDomain(d DeliveryBoyDB) entities.DeliveryBoy {
	return entities.DeliveryBoy{
		EmpID:       d.EmpID,
		Ename:       d.Ename,
		Email:       d.Email,
		Vehicle:     d.Vehicle,
		PhoneNumber: d.PhoneNumber,
	}
}

func FromDomain(d entities.DeliveryBoy) DeliveryBoyDB {
	return DeliveryBoyDB{
		EmpID:       d.EmpID,
		Ename:       d.Ename,
		Email:       d.Email,
		Vehicle:     d.Vehicle,
		PhoneNumber: d.PhoneNumber,
	}
}
