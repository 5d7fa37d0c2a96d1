package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Reservation status codes. A reservation is never deleted; the only
// transition is Active -> Cancelled.
const (
	ReservationStatusActive    = "A"
	ReservationStatusCancelled = "C"
)

// Bill type codes: invoice or receipt.
const (
	BillTypeInvoice = "I"
	BillTypeReceipt = "R"
)

// Reservation holds one booking of a room. FirstNight and LastNight are
// inclusive calendar days; for any room, non-cancelled reservations must
// never overlap.
type Reservation struct {
	ID                uint            `gorm:"primaryKey" json:"id_reservation"`
	FirstNight        datatypes.Date  `gorm:"not null" json:"first_night"`
	LastNight         datatypes.Date  `gorm:"not null" json:"last_night"`
	FullName          string          `gorm:"size:50;not null" json:"full_name"`
	Price             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	BillType          string          `gorm:"size:1;not null" json:"bill_type"`
	NIP               string          `gorm:"size:20" json:"nip,omitempty"`
	ReservationStatus string          `gorm:"size:1;not null;index" json:"status"`
	RoomID            uint            `gorm:"not null;index" json:"id_room"`
	UserID            uint            `gorm:"not null;index" json:"id_user"`

	Room Room `gorm:"foreignKey:RoomID" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}
