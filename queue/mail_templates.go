package queue

import "fmt"

func confirmationMail(ev ReservationConfirmedEvent) (subject, body string) {
	subject = fmt.Sprintf("Reservation confirmed - %s", ev.HotelName)
	body = fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your reservation #%d at %s has been confirmed.\n\n"+
			"Stay: %s to %s (both nights inclusive)\n"+
			"Address: %s %s, %s, %s\n"+
			"Total price: %s\n\n"+
			"We look forward to welcoming you.\n",
		ev.FullName, ev.ReservationID, ev.HotelName,
		ev.FirstNight, ev.LastNight,
		ev.Street, ev.Building, ev.City, ev.Country,
		ev.Price,
	)
	return subject, body
}

func cancellationMail(ev ReservationCancelledEvent) (subject, body string) {
	subject = fmt.Sprintf("Reservation cancelled - %s", ev.HotelName)
	body = fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your reservation #%d at %s (%s to %s) has been cancelled.\n\n"+
			"If this was not you, please contact our support.\n",
		ev.FullName, ev.ReservationID, ev.HotelName,
		ev.FirstNight, ev.LastNight,
	)
	return subject, body
}
