package models

import "github.com/shopspring/decimal"

// Room is immutable after creation: capacity, nightly rate and owning
// hotel never change, so availability math can read them without locking.
type Room struct {
	ID            uint            `gorm:"primaryKey" json:"id_room"`
	Capacity      int             `gorm:"not null" json:"capacity"`
	PricePerNight decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"price_per_night"`
	HotelID       uint            `gorm:"not null;index" json:"id_hotel"`

	Hotel      Hotel          `gorm:"foreignKey:HotelID" json:"-"`
	Facilities []RoomFacility `gorm:"many2many:rooms_room_facilities" json:"facilities,omitempty"`
}
