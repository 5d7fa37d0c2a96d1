package models

type HotelImage struct {
	ID          uint   `gorm:"primaryKey" json:"id_image"`
	HotelID     uint   `gorm:"not null;index" json:"id_hotel"`
	ImageURL    string `gorm:"size:255;not null" json:"url"`
	Description string `gorm:"size:100" json:"description"`
	IsMain      bool   `gorm:"default:false" json:"is_main"`
}
