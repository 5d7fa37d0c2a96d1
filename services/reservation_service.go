package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/queue"
)

// Notifier receives reservation lifecycle events after they commit. A nil
// Notifier disables notifications.
type Notifier interface {
	ReservationConfirmed(ctx context.Context, ev queue.ReservationConfirmedEvent)
	ReservationCancelled(ctx context.Context, ev queue.ReservationCancelledEvent)
}

// ReservationService creates and cancels reservations. Both mutations run
// in a transaction holding the relevant row lock so concurrent requests
// for the same room serialize.
type ReservationService struct {
	DB       *gorm.DB
	Notifier Notifier
}

func NewReservationService(db *gorm.DB, notifier Notifier) *ReservationService {
	return &ReservationService{DB: db, Notifier: notifier}
}

// CreateReservationInput carries a parsed booking request. Dates are
// midnight UTC.
type CreateReservationInput struct {
	RoomID     uint
	UserID     uint
	FirstNight time.Time
	LastNight  time.Time
	FullName   string
	BillType   string
	NIP        string
}

// Create books a room for [FirstNight, LastNight]. The room row is locked
// before the conflict check so the check and the insert are atomic; the
// total price is the nightly rate times the number of nights.
func (s *ReservationService) Create(ctx context.Context, callerID uint, in CreateReservationInput) (*models.Reservation, error) {
	if OwnedBy(callerID, in.UserID) != nil {
		return nil, forbidden("no permission to make a reservation for this user")
	}
	if !in.FirstNight.Before(in.LastNight) {
		return nil, invalid("first_night must be earlier than last_night")
	}
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return nil, invalid("full_name must not be empty")
	}
	if in.BillType != models.BillTypeInvoice && in.BillType != models.BillTypeReceipt {
		return nil, invalid("bill_type must be I (invoice) or R (receipt)")
	}
	if in.BillType == models.BillTypeInvoice && strings.TrimSpace(in.NIP) == "" {
		return nil, invalid("nip is required when bill_type is I")
	}

	var created models.Reservation
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := lockForUpdate(tx).First(&room, in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("room does not exist")
			}
			return err
		}

		var user models.User
		if err := tx.First(&user, in.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("user does not exist")
			}
			return err
		}

		taken, err := HasReservationConflict(tx, room.ID, in.FirstNight, in.LastNight)
		if err != nil {
			return err
		}
		if taken {
			return conflict("room is already reserved for the selected dates")
		}

		nights := nightsBetween(in.FirstNight, in.LastNight)
		created = models.Reservation{
			FirstNight:        datatypes.Date(in.FirstNight),
			LastNight:         datatypes.Date(in.LastNight),
			FullName:          fullName,
			Price:             room.PricePerNight.Mul(decimal.NewFromInt(int64(nights))),
			BillType:          in.BillType,
			NIP:               strings.TrimSpace(in.NIP),
			ReservationStatus: models.ReservationStatusActive,
			RoomID:            room.ID,
			UserID:            in.UserID,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		return nil, err
	}

	s.notifyConfirmed(ctx, &created)
	return &created, nil
}

// Cancel marks an active reservation cancelled. Only the owner may cancel,
// and cancelling twice is rejected.
func (s *ReservationService) Cancel(ctx context.Context, callerID uint, reservationID uint) (*models.Reservation, error) {
	var res models.Reservation
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&res, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("reservation does not exist")
			}
			return err
		}
		if OwnedBy(callerID, res.UserID) != nil {
			return forbidden("no permission to cancel this reservation")
		}
		if res.ReservationStatus == models.ReservationStatusCancelled {
			return conflict("reservation is already cancelled")
		}
		res.ReservationStatus = models.ReservationStatusCancelled
		return tx.Model(&res).Update("reservation_status", models.ReservationStatusCancelled).Error
	})
	if err != nil {
		return nil, err
	}

	s.notifyCancelled(ctx, &res)
	return &res, nil
}

// lockForUpdate adds FOR UPDATE where the dialect supports it. sqlite has
// a single writer, which already serializes the check-and-insert.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func (s *ReservationService) notifyConfirmed(ctx context.Context, res *models.Reservation) {
	if s.Notifier == nil {
		return
	}
	room, user, err := s.loadNotificationContext(ctx, res)
	if err != nil {
		log.Printf("services: skipping confirmation notification for reservation %d: %v", res.ID, err)
		return
	}
	s.Notifier.ReservationConfirmed(ctx, queue.ReservationConfirmedEvent{
		ReservationID: res.ID,
		UserID:        user.ID,
		UserEmail:     user.Email,
		FullName:      res.FullName,
		HotelName:     room.Hotel.Name,
		City:          room.Hotel.Address.City,
		Country:       room.Hotel.Address.Country,
		Street:        room.Hotel.Address.Street,
		Building:      room.Hotel.Address.Building,
		FirstNight:    time.Time(res.FirstNight).Format(dateLayout),
		LastNight:     time.Time(res.LastNight).Format(dateLayout),
		Price:         res.Price.StringFixed(2),
		ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *ReservationService) notifyCancelled(ctx context.Context, res *models.Reservation) {
	if s.Notifier == nil {
		return
	}
	room, user, err := s.loadNotificationContext(ctx, res)
	if err != nil {
		log.Printf("services: skipping cancellation notification for reservation %d: %v", res.ID, err)
		return
	}
	s.Notifier.ReservationCancelled(ctx, queue.ReservationCancelledEvent{
		ReservationID: res.ID,
		UserID:        user.ID,
		UserEmail:     user.Email,
		FullName:      res.FullName,
		HotelName:     room.Hotel.Name,
		FirstNight:    time.Time(res.FirstNight).Format(dateLayout),
		LastNight:     time.Time(res.LastNight).Format(dateLayout),
		CancelledAt:   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *ReservationService) loadNotificationContext(ctx context.Context, res *models.Reservation) (*models.Room, *models.User, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).Preload("Hotel.Address").First(&room, res.RoomID).Error; err != nil {
		return nil, nil, err
	}
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, res.UserID).Error; err != nil {
		return nil, nil, err
	}
	return &room, &user, nil
}
