package user

type UserDB struct {
	UserID   string
	Name     string
	Email    string
	PhoneNum string
}
