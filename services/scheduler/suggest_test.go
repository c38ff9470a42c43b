package scheduler

import (
	"context"
	"testing"
	"time"

	"detailflow/models"
)

// monday8am is a fixed clock: Monday 2026-03-02, 08:00 UTC.
func monday8am() time.Time {
	return time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
}

func newSuggestService(repo *fakeBookingRepo, now func() time.Time) *DefaultSchedulerService {
	return &DefaultSchedulerService{Bookings: repo, Location: time.UTC, Now: now}
}

func TestSuggestTimesStableTieOrder(t *testing.T) {
	// No bookings, no preferences: every morning slot scores the same,
	// so the top five must keep generation order (date asc, hour asc).
	svc := newSuggestService(&fakeBookingRepo{}, monday8am)

	result, err := svc.SuggestTimes(context.Background(), SuggestionRequest{
		CustomerName: "Dana",
		TimeBand:     "morning",
		Urgency:      "flexible",
		ServiceType:  models.ServiceWash,
	})
	if err != nil {
		t.Fatalf("SuggestTimes returned error: %v", err)
	}
	if len(result.Suggestions) != 5 {
		t.Fatalf("expected 5 suggestions, got %d", len(result.Suggestions))
	}

	want := []struct {
		date string
		hour int
	}{
		{"2026-03-02", 9},
		{"2026-03-02", 10},
		{"2026-03-02", 11},
		{"2026-03-03", 9},
		{"2026-03-03", 10},
	}
	for i, w := range want {
		got := result.Suggestions[i]
		if got.Date != w.date || got.Hour != w.hour {
			t.Errorf("suggestion %d = %s %02d:00, want %s %02d:00", i, got.Date, got.Hour, w.date, w.hour)
		}
	}
}

func TestSuggestTimesScoring(t *testing.T) {
	// Preferred Tuesday + asap urgency + evening band: Tuesday 17:00
	// collects every bonus (100 base + 20 weekday + 25 decayed asap + 10
	// evening hour).
	svc := newSuggestService(&fakeBookingRepo{}, monday8am)

	result, err := svc.SuggestTimes(context.Background(), SuggestionRequest{
		CustomerName:      "Dana",
		PreferredWeekdays: []string{"Tuesday"},
		TimeBand:          "evening",
		Urgency:           "asap",
		ServiceType:       models.ServiceExterior,
	})
	if err != nil {
		t.Fatalf("SuggestTimes returned error: %v", err)
	}
	if len(result.Suggestions) != 5 {
		t.Fatalf("expected 5 suggestions, got %d", len(result.Suggestions))
	}

	top := result.Suggestions[0]
	if top.Date != "2026-03-03" || top.Hour != 17 {
		t.Fatalf("top suggestion = %s %02d:00, want 2026-03-03 17:00", top.Date, top.Hour)
	}
	if top.Score != 155 {
		t.Errorf("top score = %d, want 155", top.Score)
	}
	for i := 1; i < len(result.Suggestions); i++ {
		if result.Suggestions[i].Score > result.Suggestions[i-1].Score {
			t.Errorf("suggestions not sorted by score at index %d", i)
		}
	}
}

func TestSuggestTimesSkipsConflictingHours(t *testing.T) {
	// Tuesday 17:00 interior spans hours 17-19 under the coarse rule,
	// leaving only 20:00 open in the evening band that day.
	repo := &fakeBookingRepo{bookings: []models.Booking{{
		ID:          "b1",
		ServiceType: models.ServiceInterior,
		Date:        "2026-03-03",
		Time:        "17:00",
		Status:      models.StatusScheduled,
	}}}
	svc := newSuggestService(repo, monday8am)

	result, err := svc.SuggestTimes(context.Background(), SuggestionRequest{
		TimeBand:    "evening",
		Urgency:     "asap",
		ServiceType: models.ServiceWash,
	})
	if err != nil {
		t.Fatalf("SuggestTimes returned error: %v", err)
	}
	for _, s := range result.Suggestions {
		if s.Date == "2026-03-03" && s.Hour != 20 {
			t.Errorf("suggested booked hour %02d:00 on 2026-03-03", s.Hour)
		}
	}
}

func TestSuggestTimesNoOpenSlots(t *testing.T) {
	// A 09:00 full detail blocks the whole morning band every day of the
	// asap window.
	var blocked []models.Booking
	for offset := 0; offset <= 3; offset++ {
		date := monday8am().AddDate(0, 0, offset).Format("2006-01-02")
		blocked = append(blocked, models.Booking{
			ID:          "fd-" + date,
			ServiceType: models.ServiceFullDetail,
			Date:        date,
			Time:        "09:00",
			Status:      models.StatusConfirmed,
		})
	}
	svc := newSuggestService(&fakeBookingRepo{bookings: blocked}, monday8am)

	result, err := svc.SuggestTimes(context.Background(), SuggestionRequest{
		CustomerName: "Dana",
		TimeBand:     "morning",
		Urgency:      "asap",
		ServiceType:  models.ServiceWash,
	})
	if err != nil {
		t.Fatalf("SuggestTimes returned error: %v", err)
	}
	if len(result.Suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %d", len(result.Suggestions))
	}
	if result.Message == "" {
		t.Error("expected guidance text for the empty result")
	}
}

func TestSuggestTimesUnknownInputs(t *testing.T) {
	svc := newSuggestService(&fakeBookingRepo{}, monday8am)

	if _, err := svc.SuggestTimes(context.Background(), SuggestionRequest{Urgency: "yesterday"}); err == nil {
		t.Error("expected error for unknown urgency")
	}
	if _, err := svc.SuggestTimes(context.Background(), SuggestionRequest{TimeBand: "midnight"}); err == nil {
		t.Error("expected error for unknown time band")
	}
}
