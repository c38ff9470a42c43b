package scheduler

import (
	"fmt"

	"detailflow/models"
)

// DraftConfirmation renders the confirmation text for a booked slot.
func (s *DefaultSchedulerService) DraftConfirmation(customerName string, booking models.Booking) string {
	location := "at your place"
	if booking.LocationType == models.LocationWashBay {
		location = "at the wash bay"
	}
	msg := fmt.Sprintf("You're booked, %s! %s on %s at %s, %s.",
		customerName, booking.ServiceType, booking.Date, booking.Time, location)
	if booking.Price > 0 {
		msg += fmt.Sprintf(" Quoted at $%.2f.", booking.Price)
	}
	msg += " Reply here if anything changes."
	return msg
}

// DraftReminder renders a day-before reminder for an upcoming booking.
func DraftReminder(customerName string, booking models.Booking) string {
	return fmt.Sprintf("Reminder for %s: your %s is tomorrow (%s) at %s. See you then!",
		customerName, booking.ServiceType, booking.Date, booking.Time)
}
