package scheduler

import (
	"strings"
	"testing"

	"detailflow/models"
)

func TestDraftConfirmation(t *testing.T) {
	svc := &DefaultSchedulerService{}
	booking := models.Booking{
		ServiceType:  models.ServiceFullDetail,
		Date:         "2026-05-20",
		Time:         "10:00",
		Price:        250,
		LocationType: models.LocationWashBay,
	}

	msg := svc.DraftConfirmation("Dana", booking)
	for _, want := range []string{"Dana", "full_detail", "2026-05-20", "10:00", "wash bay", "$250.00"} {
		if !strings.Contains(msg, want) {
			t.Errorf("confirmation missing %q: %s", want, msg)
		}
	}
}

func TestDraftConfirmationNoPrice(t *testing.T) {
	svc := &DefaultSchedulerService{}
	msg := svc.DraftConfirmation("Dana", models.Booking{
		ServiceType: models.ServiceWash,
		Date:        "2026-05-21",
		Time:        "09:00",
	})
	if strings.Contains(msg, "$") {
		t.Errorf("unpriced booking should not quote a price: %s", msg)
	}
	if !strings.Contains(msg, "at your place") {
		t.Errorf("default location should read as the customer's place: %s", msg)
	}
}

func TestDraftReminder(t *testing.T) {
	msg := DraftReminder("Dana", models.Booking{
		ServiceType: models.ServiceInterior,
		Date:        "2026-05-22",
		Time:        "14:00",
	})
	for _, want := range []string{"Dana", "interior", "2026-05-22", "14:00"} {
		if !strings.Contains(msg, want) {
			t.Errorf("reminder missing %q: %s", want, msg)
		}
	}
}
