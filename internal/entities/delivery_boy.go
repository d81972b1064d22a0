package entities

import "fmt"

// DeliveryBoy empID назначается базой при создании.
type DeliveryBoy struct {
	EmpID       int64  `json:"empId"`
	Ename       string `json:"ename" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Vehicle     string `json:"vehicle" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone10"`
}

var deliveryBoyMessages = FieldMessages{
	"Ename.required":       "Name cannot be empty",
	"Email.required":       "Email cannot be empty",
	"Email.email":          "Email should be valid",
	"Vehicle.required":     "Vehicle cannot be empty",
	"PhoneNumber.required": "Phone number should be 10 digits",
	"PhoneNumber.phone10":  "Phone number should be 10 digits",
}

func (d DeliveryBoy) Identity() int64 {
	return d.EmpID
}

func (d DeliveryBoy) WithIdentity(id int64) DeliveryBoy {
	d.EmpID = id
	return d
}

func (d DeliveryBoy) ValidationMessages() FieldMessages {
	return deliveryBoyMessages
}

func (d DeliveryBoy) String() string {
	return fmt.Sprintf("DeliveryBoy{empId=%d, ename=%s, email=%s, vehicle=%s, phoneNumber=%s}",
		d.EmpID, d.Ename, d.Email, d.Vehicle, d.PhoneNumber)
}
