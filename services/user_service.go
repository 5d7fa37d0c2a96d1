package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/utils"
)

// UserService exposes account self-management. Every method takes the
// caller identity resolved from the access token and refuses to act on
// another user's account.
type UserService struct {
	DB         *gorm.DB
	BcryptCost int
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db, BcryptCost: bcrypt.DefaultCost}
}

// Profile returns the caller's own account.
func (s *UserService) Profile(ctx context.Context, callerID, userID uint) (*models.User, error) {
	if OwnedBy(callerID, userID) != nil {
		return nil, forbidden("no permission to view this account")
	}
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user does not exist")
		}
		return nil, err
	}
	return &user, nil
}

// ChangePassword replaces the caller's password after verifying the
// current one and re-running the password policy on the new one.
func (s *UserService) ChangePassword(ctx context.Context, callerID, userID uint, currentPassword, newPassword string) error {
	if OwnedBy(callerID, userID) != nil {
		return forbidden("no permission to change this account's password")
	}

	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("user does not exist")
		}
		return err
	}
	if !utils.VerifyPassword(user.PasswordHash, currentPassword) {
		return invalid("current password is incorrect")
	}
	if err := utils.ValidatePassword(newPassword); err != nil {
		return invalid(err.Error())
	}

	hash, err := utils.HashPassword(newPassword, s.BcryptCost)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Model(&user).Update("password_hash", hash).Error
}

// Delete removes the caller's account together with its reservations.
func (s *UserService) Delete(ctx context.Context, callerID, userID uint) error {
	if OwnedBy(callerID, userID) != nil {
		return forbidden("no permission to delete this account")
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("user does not exist")
			}
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

// ReservationRoom is the room section of a reservation listing.
type ReservationRoom struct {
	IDRoom        uint     `json:"id_room"`
	Capacity      int      `json:"capacity"`
	PricePerNight float64  `json:"price_per_night"`
	Facilities    []string `json:"facilities"`
}

// ReservationHotel is the hotel section of a reservation listing.
type ReservationHotel struct {
	IDHotel    uint     `json:"id_hotel"`
	Name       string   `json:"name"`
	Stars      int      `json:"stars"`
	City       string   `json:"city"`
	Country    string   `json:"country"`
	Facilities []string `json:"facilities"`
}

// ReservationDetail is one reservation in the caller's history, expanded
// with its room and hotel.
type ReservationDetail struct {
	IDReservation uint             `json:"id_reservation"`
	FirstNight    string           `json:"first_night"`
	LastNight     string           `json:"last_night"`
	FullName      string           `json:"full_name"`
	Price         float64          `json:"price"`
	BillType      string           `json:"bill_type"`
	NIP           string           `json:"nip,omitempty"`
	Status        string           `json:"status"`
	Room          ReservationRoom  `json:"room"`
	Hotel         ReservationHotel `json:"hotel"`
}

// Reservations lists the caller's active or cancelled reservations,
// oldest first.
func (s *UserService) Reservations(ctx context.Context, callerID, userID uint, status string) ([]ReservationDetail, error) {
	if OwnedBy(callerID, userID) != nil {
		return nil, forbidden("no permission to view this user's reservations")
	}

	var statusCode string
	switch status {
	case "active":
		statusCode = models.ReservationStatusActive
	case "cancelled":
		statusCode = models.ReservationStatusCancelled
	default:
		return nil, invalid("status must be active or cancelled")
	}

	var reservations []models.Reservation
	err := s.DB.WithContext(ctx).
		Preload("Room.Facilities").
		Preload("Room.Hotel.Address").
		Preload("Room.Hotel.Facilities").
		Where("user_id = ? AND reservation_status = ?", userID, statusCode).
		Order("id ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}

	details := make([]ReservationDetail, 0, len(reservations))
	for _, r := range reservations {
		details = append(details, ReservationDetail{
			IDReservation: r.ID,
			FirstNight:    time.Time(r.FirstNight).Format(dateLayout),
			LastNight:     time.Time(r.LastNight).Format(dateLayout),
			FullName:      r.FullName,
			Price:         r.Price.InexactFloat64(),
			BillType:      r.BillType,
			NIP:           r.NIP,
			Status:        r.ReservationStatus,
			Room: ReservationRoom{
				IDRoom:        r.Room.ID,
				Capacity:      r.Room.Capacity,
				PricePerNight: r.Room.PricePerNight.InexactFloat64(),
				Facilities:    roomFacilityNames(r.Room.Facilities),
			},
			Hotel: ReservationHotel{
				IDHotel:    r.Room.Hotel.ID,
				Name:       r.Room.Hotel.Name,
				Stars:      r.Room.Hotel.Stars,
				City:       r.Room.Hotel.Address.City,
				Country:    r.Room.Hotel.Address.Country,
				Facilities: hotelFacilityNames(r.Room.Hotel.Facilities),
			},
		})
	}
	return details, nil
}

func roomFacilityNames(facilities []models.RoomFacility) []string {
	names := make([]string, 0, len(facilities))
	for _, f := range facilities {
		names = append(names, f.FacilityName)
	}
	return names
}

func hotelFacilityNames(facilities []models.HotelFacility) []string {
	names := make([]string, 0, len(facilities))
	for _, f := range facilities {
		names = append(names, f.FacilityName)
	}
	return names
}
