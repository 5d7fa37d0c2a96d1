// Package queue defines the reservation notification events exchanged over
// the message broker and the consumer that turns them into guest emails.
package queue

// ReservationConfirmedEvent is published after a reservation commits. It
// carries everything the mail consumer needs without re-querying the
// primary database.
type ReservationConfirmedEvent struct {
	ReservationID uint   `json:"reservation_id"`
	UserID        uint   `json:"user_id"`
	UserEmail     string `json:"user_email"`
	FullName      string `json:"full_name"`
	HotelName     string `json:"hotel_name"`
	City          string `json:"city"`
	Country       string `json:"country"`
	Street        string `json:"street"`
	Building      string `json:"building"`
	FirstNight    string `json:"first_night"`
	LastNight     string `json:"last_night"`
	Price         string `json:"price"`
	ConfirmedAt   string `json:"confirmed_at"`
}

// ReservationCancelledEvent is published after a cancellation commits.
type ReservationCancelledEvent struct {
	ReservationID uint   `json:"reservation_id"`
	UserID        uint   `json:"user_id"`
	UserEmail     string `json:"user_email"`
	FullName      string `json:"full_name"`
	HotelName     string `json:"hotel_name"`
	FirstNight    string `json:"first_night"`
	LastNight     string `json:"last_night"`
	CancelledAt   string `json:"cancelled_at"`
}
