package scheduler

import (
	"context"
	"time"

	bookingRepo "detailflow/database/repository/booking"
	"detailflow/models"
)

// SchedulerService exposes availability checks, ranked time suggestions,
// rebooking interval math and message drafting for the scheduling tools.
type SchedulerService interface {
	CheckAvailability(ctx context.Context, from, to string, serviceType models.ServiceType) (models.AvailabilityResult, error)
	SuggestTimes(ctx context.Context, req SuggestionRequest) (models.SuggestionResult, error)
	ComputeRebooking(lastServiceDate, frequency string) (models.RebookingPlan, error)
	DraftConfirmation(customerName string, booking models.Booking) string
}

// SuggestionRequest carries the caller preferences for ranked slots.
type SuggestionRequest struct {
	CustomerName      string
	PreferredWeekdays []string // "Monday", "Tuesday", ...
	TimeBand          string   // "morning", "afternoon", "evening"
	Urgency           string   // "asap", "this_week", "next_week", "flexible"
	ServiceType       models.ServiceType
}

// DefaultSchedulerService is the production implementation.
type DefaultSchedulerService struct {
	Bookings         bookingRepo.BookingRepository
	WorkingHourStart int
	WorkingHourEnd   int
	Location         *time.Location
	Now              func() time.Time
}

func (s *DefaultSchedulerService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultSchedulerService) loc() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}

func (s *DefaultSchedulerService) hours() (start, end int) {
	start, end = s.WorkingHourStart, s.WorkingHourEnd
	if start == 0 && end == 0 {
		start, end = DefaultWorkingHourStart, DefaultWorkingHourEnd
	}
	return start, end
}
