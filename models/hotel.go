package models

type Hotel struct {
	ID          uint    `gorm:"primaryKey" json:"id_hotel"`
	Name        string  `gorm:"size:50;not null" json:"name"`
	GeoLength   float64 `gorm:"not null" json:"geo_length"`
	GeoLatitude float64 `gorm:"not null" json:"geo_latitude"`
	Stars       int     `gorm:"not null" json:"stars"`
	AddressID   uint    `gorm:"not null;index" json:"-"`

	Address    Address         `gorm:"foreignKey:AddressID" json:"address,omitempty"`
	Facilities []HotelFacility `gorm:"many2many:hotels_hotel_facilities" json:"facilities,omitempty"`
}
