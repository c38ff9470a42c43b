package scheduler

import (
	"context"
	"fmt"
	"time"

	"detailflow/models"
	"detailflow/utils"

	"go.uber.org/zap"
)

// Default working hours when none are configured.
const (
	DefaultWorkingHourStart = 9
	DefaultWorkingHourEnd   = 21
)

// DaySlots generates hourly candidate slots for one date and marks each
// against the existing bookings of that day. A candidate holds its bare
// hour [h, h+1h); an existing active booking holds
// [start, start+duration+buffer). Half-open overlap: s1 < e2 && e1 > s2.
// The first conflicting booking found is reported; iteration follows the
// order bookings were handed in (repo order: date then time ascending).
func DaySlots(date string, workStart, workEnd int, bookings []models.Booking, loc *time.Location) ([]models.TimeSlot, error) {
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, fmt.Errorf("malformed date %q: %w", date, err)
	}

	var slots []models.TimeSlot
	for h := workStart; h < workEnd; h++ {
		slotStart := day.Add(time.Duration(h) * time.Hour)
		slotEnd := slotStart.Add(time.Hour)

		slot := models.TimeSlot{Date: date, Hour: h, Available: true}
		for _, b := range bookings {
			if b.Date != date || !b.Status.OccupiesCapacity() {
				continue
			}
			bStart, bEnd, err := b.OccupiedInterval(loc)
			if err != nil {
				// Malformed stored times are skipped rather than failing the check.
				continue
			}
			if slotStart.Before(bEnd) && slotEnd.After(bStart) {
				slot.Available = false
				slot.ConflictsWith = b.ID
				break
			}
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// SeasonalLocationHint maps the current calendar month to the suggested
// service location: wash bay through the cold months, the customer's
// home otherwise (April and October fall to the shoulder default).
func SeasonalLocationHint(month time.Month) models.LocationType {
	switch month {
	case time.November, time.December, time.January, time.February, time.March:
		return models.LocationWashBay
	}
	return models.LocationCustomerHome
}

// CheckAvailability returns every hourly slot in [from, to] within working
// hours, partitioned into available and unavailable. Zero open slots is a
// valid negative result with a descriptive message, not an error.
func (s *DefaultSchedulerService) CheckAvailability(ctx context.Context, from, to string, serviceType models.ServiceType) (models.AvailabilityResult, error) {
	logger := utils.GetLogger()
	if to == "" {
		to = from
	}

	bookings, err := s.Bookings.FindByDateRange(ctx, from, to)
	if err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("availability query failed: %w", err)
	}

	workStart, workEnd := s.hours()
	byDate := make(map[string][]models.Booking)
	for _, b := range bookings {
		byDate[b.Date] = append(byDate[b.Date], b)
	}

	loc := s.loc()
	start, err := time.ParseInLocation("2006-01-02", from, loc)
	if err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("malformed from date %q: %w", from, err)
	}
	end, err := time.ParseInLocation("2006-01-02", to, loc)
	if err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("malformed to date %q: %w", to, err)
	}

	result := models.AvailabilityResult{
		// Hint follows the current month, not the month being queried.
		LocationHint: SeasonalLocationHint(s.now().Month()),
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format("2006-01-02")
		daySlots, err := DaySlots(dateStr, workStart, workEnd, byDate[dateStr], loc)
		if err != nil {
			logger.Error("error generating slots", zap.String("date", dateStr), zap.Error(err))
			continue
		}
		result.Slots = append(result.Slots, daySlots...)
	}

	for _, slot := range result.Slots {
		if slot.Available {
			result.Open = append(result.Open, slot)
		}
	}

	if len(result.Open) == 0 {
		result.Message = fmt.Sprintf("No availability between %s and %s. Try widening the date range.", from, to)
	} else {
		result.Message = fmt.Sprintf("%d open hourly slots between %s and %s.", len(result.Open), from, to)
		if serviceType != "" {
			result.Message += fmt.Sprintf(" A %s takes about %d minutes plus a 30-minute buffer.",
				serviceType, int(serviceType.Duration().Minutes()))
		}
	}
	return result, nil
}
