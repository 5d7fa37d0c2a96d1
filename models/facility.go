package models

// RoomFacility and HotelFacility are separate catalogs with unique names.
// Membership goes through the many2many join tables declared on Room and
// Hotel, one row per (entity, facility) pair.

type RoomFacility struct {
	ID           uint   `gorm:"primaryKey" json:"id_room_facility"`
	FacilityName string `gorm:"size:50;uniqueIndex;not null" json:"facility_name"`
}

type HotelFacility struct {
	ID           uint   `gorm:"primaryKey" json:"id_hotel_facility"`
	FacilityName string `gorm:"size:50;uniqueIndex;not null" json:"facility_name"`
}
