package user

import "service/internal/entities"

func ToDomain(u UserDB) entities.User {
	return entities.User{
		UserID:   u.UserID,
		Name:     u.Name,
		Email:    u.Email,
		PhoneNum: u.PhoneNum,
	}
}

func FromDomain(u entities.User) UserDB {
	return UserDB{
		UserID:   u.UserID,
		Name:     u.Name,
		Email:    u.Email,
		PhoneNum: u.PhoneNum,
	}
}
