package entities

import "fmt"

type User struct {
	UserID   string `json:"userId" validate:"required,max=3"`
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	PhoneNum string `json:"phoneNum" validate:"required,phone10"`
}

var userMessages = FieldMessages{
	"UserID.required":   "User ID cannot be blank",
	"UserID.max":        "User ID must be at most 3 characters",
	"Name.required":     "Name cannot be blank",
	"Name.max":          "Name must be at most 100 characters",
	"Email.required":    "Email cannot be blank",
	"Email.email":       "Email should be valid",
	"Email.max":         "Email must be at most 100 characters",
	"PhoneNum.required": "Phone number cannot be blank",
	"PhoneNum.phone10":  "Phone number must be 10 digits",
}

func (u User) Identity() string {
	return u.UserID
}

func (u User) WithIdentity(id string) User {
	u.UserID = id
	return u
}

func (u User) ValidationMessages() FieldMessages {
	return userMessages
}

func (u User) String() string {
	return fmt.Sprintf("User{userId=%s, name=%s, email=%s, phoneNum=%s}",
		u.UserID, u.Name, u.Email, u.PhoneNum)
}
