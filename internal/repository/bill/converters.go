package bill

import (
	"github.com/AlekSi/pointer"
	"service/internal/entities"
)

func ToDomain(b BillDB) entities.Bill {
	return entities.Bill{
		BillID:      b.BillID,
		OrderID:     pointer.Get(b.OrderID),
		Amount:      b.Amount,
		PaymentMode: pointer.Get(b.PaymentMode),
		BillDate:    b.BillDate,
	}
}

func FromDomain(b entities.Bill) BillDB {
	return BillDB{
		BillID:      b.BillID,
		OrderID:     pointer.ToOrNil(b.OrderID),
		Amount:      b.Amount,
		PaymentMode: pointer.ToOrNil(b.PaymentMode),
		BillDate:    b.BillDate,
	}
}
