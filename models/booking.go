package models

import (
	"fmt"
	"time"
)

// BookingStatus enumerates the lifecycle states of a booking.
type BookingStatus string

const (
	StatusScheduled  BookingStatus = "scheduled"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusNoShow     BookingStatus = "no_show"
)

// ParseBookingStatus validates a raw string against the closed status set.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch st := BookingStatus(s); st {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow:
		return st, nil
	}
	return "", fmt.Errorf("unknown booking status %q", s)
}

// OccupiesCapacity reports whether a booking in this status blocks
// calendar slots. Completed, cancelled and no-show bookings do not.
func (s BookingStatus) OccupiesCapacity() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress:
		return true
	}
	return false
}

// LocationType enumerates where a service is performed.
type LocationType string

const (
	LocationWashBay      LocationType = "wash_bay"
	LocationCustomerHome LocationType = "customer_home"
)

// Booking represents an appointment record.
type Booking struct {
	ID            string        `bson:"id" json:"id"`
	CustomerID    string        `bson:"customerId" json:"customerId"`
	VehicleID     string        `bson:"vehicleId,omitempty" json:"vehicleId,omitempty"`
	ServiceType   ServiceType   `bson:"serviceType" json:"serviceType"`
	Date          string        `bson:"date" json:"date"` // "2006-01-02"
	Time          string        `bson:"time" json:"time"` // "15:04"
	Price         float64       `bson:"price" json:"price"`
	Tip           float64       `bson:"tip,omitempty" json:"tip,omitempty"`
	Status        BookingStatus `bson:"status" json:"status"`
	LocationType  LocationType  `bson:"locationType,omitempty" json:"locationType,omitempty"`
	FinanceSynced bool          `bson:"financeSynced" json:"financeSynced"`
	Notes         string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// StartTime parses the booking's date and time in the given location.
func (b Booking) StartTime(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("booking %s has malformed date/time: %w", b.ID, err)
	}
	return t, nil
}

// OccupiedInterval returns the half-open interval [start, start+duration+buffer)
// the booking holds on the calendar.
func (b Booking) OccupiedInterval(loc *time.Location) (start, end time.Time, err error) {
	start, err = b.StartTime(loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end = start.Add(b.ServiceType.Duration() + BookingBuffer)
	return start, end, nil
}
