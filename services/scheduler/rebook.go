package scheduler

import (
	"fmt"
	"time"

	"detailflow/models"
)

// rebookingIntervals maps a frequency label to its interval in days.
var rebookingIntervals = map[string]int{
	"weekly":    7,
	"biweekly":  14,
	"monthly":   30,
	"bimonthly": 60,
	"quarterly": 90,
}

// ComputeRebookingAt computes the next service date from the last one:
// last + interval, snapped forward to now+7d when the computed date has
// already passed. Pure so tests can fix the clock.
func ComputeRebookingAt(lastServiceDate, frequency string, now time.Time, loc *time.Location) (models.RebookingPlan, error) {
	days, ok := rebookingIntervals[frequency]
	if !ok {
		return models.RebookingPlan{}, fmt.Errorf("unknown rebooking frequency %q", frequency)
	}

	last, err := time.ParseInLocation("2006-01-02", lastServiceDate, loc)
	if err != nil {
		return models.RebookingPlan{}, fmt.Errorf("malformed last service date %q: %w", lastServiceDate, err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	next := last.AddDate(0, 0, days)
	snapped := false
	if next.Before(today) {
		next = today.AddDate(0, 0, 7)
		snapped = true
	}

	nextStr := next.Format("2006-01-02")
	messages := []string{
		fmt.Sprintf("Hey! It's been about %d days since your last detail. Want to lock in %s?", days, nextStr),
		fmt.Sprintf("Time for a refresh. We have openings around %s; shall I pencil you in?", nextStr),
		fmt.Sprintf("Your %s maintenance slot is coming up on %s. Reply to confirm or pick another day.", frequency, nextStr),
	}
	if hint := SeasonalLocationHint(now.Month()); hint == models.LocationWashBay {
		for i := range messages {
			messages[i] += " Winter note: we'll run this one in the wash bay."
		}
	}

	return models.RebookingPlan{NextDate: nextStr, Snapped: snapped, Messages: messages}, nil
}

// ComputeRebooking is the service wrapper around ComputeRebookingAt.
func (s *DefaultSchedulerService) ComputeRebooking(lastServiceDate, frequency string) (models.RebookingPlan, error) {
	return ComputeRebookingAt(lastServiceDate, frequency, s.now(), s.loc())
}
