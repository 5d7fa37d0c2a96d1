package services

import (
	"time"

	"gorm.io/gorm"

	"hotel-reservation-backend/models"
)

// Two stays conflict when their night ranges intersect, both endpoints
// inclusive: a reservation ending on a given night blocks another one
// starting on that same night.
//
// overlapCond is the SQL form of the predicate. The availability search
// and the write-time conflict check both build on it so that a room
// returned as free can always be booked for the same dates.
const overlapCond = "NOT (last_night < ? OR first_night > ?)"

// DateRangesOverlap reports whether [start1, end1] and [start2, end2]
// intersect, endpoints inclusive.
func DateRangesOverlap(start1, end1, start2, end2 time.Time) bool {
	return !(end1.Before(start2) || start1.After(end2))
}

// HasReservationConflict reports whether the room has a non-cancelled
// reservation overlapping [firstNight, lastNight]. When used to guard an
// insert it must run on the same transaction that holds the room row lock.
func HasReservationConflict(tx *gorm.DB, roomID uint, firstNight, lastNight time.Time) (bool, error) {
	var count int64
	err := tx.Model(&models.Reservation{}).
		Where("room_id = ?", roomID).
		Where("reservation_status <> ?", models.ReservationStatusCancelled).
		Where(overlapCond, firstNight, lastNight).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func nightsBetween(firstNight, lastNight time.Time) int {
	return int(lastNight.Sub(firstNight).Hours() / 24)
}
