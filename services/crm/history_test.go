package crm

import (
	"testing"

	"detailflow/models"
)

func TestDeriveStats(t *testing.T) {
	bookings := []models.Booking{
		{Status: models.StatusCompleted, Price: 200, Tip: 20},
		{Status: models.StatusCompleted, Price: 100},
		{Status: models.StatusScheduled, Price: 300},
		{Status: models.StatusCancelled, Price: 150, Tip: 15},
	}

	stats := DeriveStats(bookings)

	if stats.CompletedCount != 2 {
		t.Errorf("completedCount = %d, want 2", stats.CompletedCount)
	}
	if stats.TotalRevenue != 300 {
		t.Errorf("totalRevenue = %v, want 300", stats.TotalRevenue)
	}
	if stats.TotalTips != 20 {
		t.Errorf("totalTips = %v, want 20", stats.TotalTips)
	}
	if stats.AverageTicket != 150 {
		t.Errorf("averageTicket = %v, want 150", stats.AverageTicket)
	}
}

func TestDeriveStatsEmpty(t *testing.T) {
	stats := DeriveStats(nil)
	if stats.CompletedCount != 0 || stats.AverageTicket != 0 {
		t.Errorf("empty stats should be zero, got %+v", stats)
	}
}
