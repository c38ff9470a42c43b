package scheduler

import (
	"strings"
	"testing"
	"time"
)

func TestComputeRebookingMonthly(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	plan, err := ComputeRebookingAt("2026-01-01", "monthly", now, time.UTC)
	if err != nil {
		t.Fatalf("ComputeRebookingAt returned error: %v", err)
	}
	if plan.NextDate != "2026-01-31" {
		t.Errorf("next date = %s, want 2026-01-31", plan.NextDate)
	}
	if plan.Snapped {
		t.Error("future date must not be snapped")
	}
	if len(plan.Messages) != 3 {
		t.Fatalf("expected 3 message variants, got %d", len(plan.Messages))
	}
	for i, msg := range plan.Messages {
		if !strings.Contains(msg, "wash bay") {
			t.Errorf("message %d missing the January wash bay note: %q", i, msg)
		}
	}
}

func TestComputeRebookingSnapsForward(t *testing.T) {
	now := time.Date(2026, 6, 10, 10, 0, 0, 0, time.UTC)

	plan, err := ComputeRebookingAt("2026-06-01", "weekly", now, time.UTC)
	if err != nil {
		t.Fatalf("ComputeRebookingAt returned error: %v", err)
	}
	// 2026-06-08 already passed; snap to today + 7 days.
	if plan.NextDate != "2026-06-17" {
		t.Errorf("next date = %s, want 2026-06-17", plan.NextDate)
	}
	if !plan.Snapped {
		t.Error("overdue date must be snapped")
	}
	for i, msg := range plan.Messages {
		if strings.Contains(msg, "wash bay") {
			t.Errorf("message %d has a winter note in June: %q", i, msg)
		}
	}
}

func TestComputeRebookingIntervals(t *testing.T) {
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		frequency string
		want      string
	}{
		{"weekly", "2026-01-08"},
		{"biweekly", "2026-01-15"},
		{"monthly", "2026-01-31"},
		{"bimonthly", "2026-03-02"},
		{"quarterly", "2026-04-01"},
	}
	for _, tc := range tests {
		plan, err := ComputeRebookingAt("2026-01-01", tc.frequency, now, time.UTC)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.frequency, err)
		}
		if plan.NextDate != tc.want {
			t.Errorf("%s: next date = %s, want %s", tc.frequency, plan.NextDate, tc.want)
		}
	}
}

func TestComputeRebookingBadInputs(t *testing.T) {
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	if _, err := ComputeRebookingAt("2026-01-01", "hourly", now, time.UTC); err == nil {
		t.Error("expected error for unknown frequency")
	}
	if _, err := ComputeRebookingAt("January 1st", "monthly", now, time.UTC); err == nil {
		t.Error("expected error for malformed date")
	}
}
