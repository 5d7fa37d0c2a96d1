package models

import "gorm.io/datatypes"

type User struct {
	ID           uint           `gorm:"primaryKey" json:"id_user"`
	Email        string         `gorm:"size:50;uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"size:256;not null" json:"-"`
	BirthDate    datatypes.Date `gorm:"not null" json:"birth_date"`
	FirstName    string         `gorm:"size:30;not null" json:"first_name"`
	LastName     string         `gorm:"size:50;not null" json:"last_name"`
	PhoneNumber  string         `gorm:"size:19;not null" json:"phone_number"`
	Role         string         `gorm:"size:10;not null" json:"role"`
}
