package models

// Address is owned by exactly one hotel.
type Address struct {
	ID       uint   `gorm:"primaryKey" json:"id_address"`
	Country  string `gorm:"size:2;not null" json:"country"`
	City     string `gorm:"size:50;not null" json:"city"`
	Street   string `gorm:"size:50;not null" json:"street"`
	Building string `gorm:"size:5;not null" json:"building"`
	ZipCode  string `gorm:"size:15;not null" json:"zip_code"`
}
