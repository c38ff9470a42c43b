package scheduler

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"detailflow/models"
)

const maxSuggestions = 5

// timeBands maps each preferred band to its [start, end) hours.
var timeBands = map[string][2]int{
	"morning":   {9, 12},
	"afternoon": {12, 17},
	"evening":   {17, 21},
}

// urgencyWindow returns the [first, last] day offsets from today covered
// by an urgency class.
func urgencyWindow(urgency string) (firstOffset, lastOffset int, err error) {
	switch urgency {
	case "asap":
		return 0, 3, nil
	case "this_week":
		return 0, 7, nil
	case "next_week":
		return 7, 14, nil
	case "flexible", "":
		return 0, 14, nil
	}
	return 0, 0, fmt.Errorf("unknown urgency %q", urgency)
}

// hourConflicts applies the coarse same-day rule used by the ranker:
// hour h conflicts iff it falls within [bookingHour, bookingHour+ceil(dur/60))
// for any active booking on that date. The 30-minute buffer is
// deliberately not applied here; the availability checker honors it.
func hourConflicts(h int, date string, bookings []models.Booking) bool {
	for _, b := range bookings {
		if b.Date != date || !b.Status.OccupiesCapacity() {
			continue
		}
		parts := strings.SplitN(b.Time, ":", 2)
		bh, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}
		span := int((b.ServiceType.Duration() + time.Hour - 1) / time.Hour)
		if h >= bh && h < bh+span {
			return true
		}
	}
	return false
}

// scoreSlot applies the additive heuristic: base 100, +20 on a preferred
// weekday, up to +30 decaying by 5 per day out when urgency is asap,
// +10 for the popular evening hours 17 and 18.
func scoreSlot(weekday string, hour, daysOut int, preferredWeekdays []string, urgency string) int {
	score := 100
	for _, d := range preferredWeekdays {
		if strings.EqualFold(d, weekday) {
			score += 20
			break
		}
	}
	if urgency == "asap" {
		if bonus := 30 - 5*daysOut; bonus > 0 {
			score += bonus
		}
	}
	if hour == 17 || hour == 18 {
		score += 10
	}
	return score
}

// SuggestTimes enumerates every open hour in the preferred band across
// the urgency window, scores each slot, and returns the top five sorted
// by score descending. Ties keep generation order (date asc, hour asc).
// No open slots is a valid result with guidance text.
func (s *DefaultSchedulerService) SuggestTimes(ctx context.Context, req SuggestionRequest) (models.SuggestionResult, error) {
	firstOffset, lastOffset, err := urgencyWindow(req.Urgency)
	if err != nil {
		return models.SuggestionResult{}, err
	}

	workStart, workEnd := s.hours()
	bandStart, bandEnd := workStart, workEnd
	if req.TimeBand != "" {
		band, ok := timeBands[req.TimeBand]
		if !ok {
			return models.SuggestionResult{}, fmt.Errorf("unknown time band %q", req.TimeBand)
		}
		bandStart, bandEnd = band[0], band[1]
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc())
	from := today.AddDate(0, 0, firstOffset).Format("2006-01-02")
	to := today.AddDate(0, 0, lastOffset).Format("2006-01-02")

	bookings, err := s.Bookings.FindByDateRange(ctx, from, to)
	if err != nil {
		return models.SuggestionResult{}, fmt.Errorf("suggestion query failed: %w", err)
	}

	var suggestions []models.Suggestion
	for offset := firstOffset; offset <= lastOffset; offset++ {
		day := today.AddDate(0, 0, offset)
		dateStr := day.Format("2006-01-02")
		for h := bandStart; h < bandEnd; h++ {
			// Skip hours already behind us today.
			if offset == 0 && h <= now.Hour() {
				continue
			}
			if hourConflicts(h, dateStr, bookings) {
				continue
			}
			suggestions = append(suggestions, models.Suggestion{
				Date:    dateStr,
				Hour:    h,
				Weekday: day.Weekday().String(),
				Score:   scoreSlot(day.Weekday().String(), h, offset, req.PreferredWeekdays, req.Urgency),
			})
		}
	}

	if len(suggestions) == 0 {
		return models.SuggestionResult{
			Message: fmt.Sprintf("No open %s slots for %s in the next %d days. Try a wider date range or a different time of day.",
				req.TimeBand, req.CustomerName, lastOffset),
		}, nil
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	return models.SuggestionResult{
		Suggestions: suggestions,
		Message:     fmt.Sprintf("Top %d suggested times for %s.", len(suggestions), req.CustomerName),
	}, nil
}
