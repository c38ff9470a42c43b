package scheduler

import (
	"context"
	"testing"
	"time"

	"detailflow/models"
)

func TestDaySlotsBufferedConflict(t *testing.T) {
	// A 180-minute interior at 18:00 occupies 18:00-21:30 with the buffer.
	bookings := []models.Booking{{
		ID:          "b1",
		ServiceType: models.ServiceInterior,
		Date:        "2026-05-11",
		Time:        "18:00",
		Status:      models.StatusScheduled,
	}}

	slots, err := DaySlots("2026-05-11", 9, 21, bookings, time.UTC)
	if err != nil {
		t.Fatalf("DaySlots returned error: %v", err)
	}
	if len(slots) != 12 {
		t.Fatalf("expected 12 hourly slots for 9-21, got %d", len(slots))
	}

	for _, s := range slots {
		wantAvailable := s.Hour < 18
		if s.Available != wantAvailable {
			t.Errorf("hour %d: available = %v, want %v", s.Hour, s.Available, wantAvailable)
		}
		if !s.Available && s.ConflictsWith != "b1" {
			t.Errorf("hour %d: conflictsWith = %q, want b1", s.Hour, s.ConflictsWith)
		}
	}
}

func TestDaySlotsPartitionNoOverlap(t *testing.T) {
	bookings := []models.Booking{
		{ID: "wash", ServiceType: models.ServiceWash, Date: "2026-05-12", Time: "10:00", Status: models.StatusConfirmed},
		{ID: "coating", ServiceType: models.ServiceCoating, Date: "2026-05-12", Time: "13:00", Status: models.StatusScheduled},
		{ID: "cancelled", ServiceType: models.ServiceFullDetail, Date: "2026-05-12", Time: "09:00", Status: models.StatusCancelled},
		{ID: "garbled", ServiceType: models.ServiceWash, Date: "2026-05-12", Time: "nope", Status: models.StatusScheduled},
	}

	slots, err := DaySlots("2026-05-12", 9, 21, bookings, time.UTC)
	if err != nil {
		t.Fatalf("DaySlots returned error: %v", err)
	}

	day := time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)
	for _, s := range slots {
		if !s.Available {
			continue
		}
		slotStart := day.Add(time.Duration(s.Hour) * time.Hour)
		slotEnd := slotStart.Add(time.Hour)
		for _, b := range bookings {
			if !b.Status.OccupiesCapacity() {
				continue
			}
			bStart, bEnd, err := b.OccupiedInterval(time.UTC)
			if err != nil {
				continue
			}
			if slotStart.Before(bEnd) && slotEnd.After(bStart) {
				t.Errorf("available hour %d overlaps booking %s [%v, %v)", s.Hour, b.ID, bStart, bEnd)
			}
		}
	}

	// The cancelled 09:00 full detail must not block the morning.
	for _, s := range slots {
		if s.Hour == 9 && !s.Available {
			t.Errorf("hour 9 blocked by a cancelled booking")
		}
	}
}

func TestSeasonalLocationHint(t *testing.T) {
	tests := []struct {
		month time.Month
		want  models.LocationType
	}{
		{time.January, models.LocationWashBay},
		{time.March, models.LocationWashBay},
		{time.April, models.LocationCustomerHome},
		{time.July, models.LocationCustomerHome},
		{time.October, models.LocationCustomerHome},
		{time.November, models.LocationWashBay},
	}
	for _, tc := range tests {
		if got := SeasonalLocationHint(tc.month); got != tc.want {
			t.Errorf("SeasonalLocationHint(%v) = %v, want %v", tc.month, got, tc.want)
		}
	}
}

func TestCheckAvailabilityNoOpenSlots(t *testing.T) {
	// Two coatings swallow the whole working day.
	repo := &fakeBookingRepo{bookings: []models.Booking{
		{ID: "c1", ServiceType: models.ServiceCoating, Date: "2026-05-13", Time: "09:00", Status: models.StatusScheduled},
		{ID: "c2", ServiceType: models.ServiceCoating, Date: "2026-05-13", Time: "15:30", Status: models.StatusConfirmed},
	}}
	svc := &DefaultSchedulerService{
		Bookings: repo,
		Location: time.UTC,
		Now:      func() time.Time { return time.Date(2026, 5, 13, 8, 0, 0, 0, time.UTC) },
	}

	result, err := svc.CheckAvailability(context.Background(), "2026-05-13", "2026-05-13", models.ServiceWash)
	if err != nil {
		t.Fatalf("CheckAvailability returned error: %v", err)
	}
	if len(result.Open) != 0 {
		t.Fatalf("expected zero open slots, got %d", len(result.Open))
	}
	if result.Message == "" {
		t.Error("expected a guidance message for the empty result")
	}
	if result.LocationHint != models.LocationCustomerHome {
		t.Errorf("May hint = %v, want customer_home", result.LocationHint)
	}
}
