package scheduler

import (
	"context"

	"detailflow/models"
)

// fakeBookingRepo serves canned bookings for scheduler tests.
type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, b models.Booking) (string, error) {
	f.bookings = append(f.bookings, b)
	return b.ID, nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			return &f.bookings[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Booking, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeBookingRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListRecent(ctx context.Context, limit int64) ([]models.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) FindByDateRange(ctx context.Context, from, to string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date >= from && b.Date <= to {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) MarkFinanceSynced(ctx context.Context, id string) (*models.Booking, error) {
	return f.GetByID(ctx, id)
}
