package delivery_boy

type DeliveryBoyDB struct {
	EmpID       int64
	Ename       string
	Email       string
	Vehicle     string
	PhoneNumber string
}
