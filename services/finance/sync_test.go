package finance

import (
	"context"
	"errors"
	"testing"

	bookingRepo "detailflow/database/repository/booking"
	"detailflow/models"
)

// fakeBookingRepo implements the check-and-set sync flag in memory.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, b models.Booking) (string, error) {
	f.bookings[b.ID] = &b
	return b.ID, nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if b, ok := f.bookings[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Booking, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeBookingRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) ListRecent(ctx context.Context, limit int64) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingRepo) FindByDateRange(ctx context.Context, from, to string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) MarkFinanceSynced(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	if b.FinanceSynced {
		copied := *b
		return &copied, bookingRepo.ErrAlreadySynced
	}
	b.FinanceSynced = true
	copied := *b
	return &copied, nil
}

type fakeLedgerRepo struct {
	created []models.Transaction
}

func (f *fakeLedgerRepo) Create(ctx context.Context, tx models.Transaction) (string, error) {
	f.created = append(f.created, tx)
	return tx.ID, nil
}

func (f *fakeLedgerRepo) FindByBookingID(ctx context.Context, bookingID string) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, tx := range f.created {
		if tx.BookingID == bookingID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (f *fakeLedgerRepo) FindByDateRange(ctx context.Context, from, to string) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, tx := range f.created {
		if tx.Date >= from && tx.Date <= to {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (f *fakeLedgerRepo) FindByEntity(ctx context.Context, entity string) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, tx := range f.created {
		if tx.Entity == entity {
			out = append(out, tx)
		}
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[string]*models.Customer
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c models.Customer) (string, error) {
	f.customers[c.ID] = &c
	return c.ID, nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	if c, ok := f.customers[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Customer, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeCustomerRepo) ListRecent(ctx context.Context, limit int64) ([]models.Customer, error) {
	return nil, nil
}

func newTestService() (*DefaultFinanceService, *fakeBookingRepo, *fakeLedgerRepo) {
	bookings := &fakeBookingRepo{bookings: map[string]*models.Booking{
		"b1": {
			ID:          "b1",
			CustomerID:  "c1",
			ServiceType: models.ServiceFullDetail,
			Date:        "2026-04-10",
			Price:       250,
			Tip:         30,
			Status:      models.StatusCompleted,
		},
		"b2": {
			ID:          "b2",
			CustomerID:  "c1",
			ServiceType: models.ServiceWash,
			Date:        "2026-04-11",
			Price:       40,
			Status:      models.StatusScheduled,
		},
	}}
	ledger := &fakeLedgerRepo{}
	customers := &fakeCustomerRepo{customers: map[string]*models.Customer{
		"c1": {ID: "c1", Name: "Dana Reyes"},
	}}
	svc := &DefaultFinanceService{Bookings: bookings, Ledger: ledger, Customers: customers, Currency: "usd"}
	return svc, bookings, ledger
}

func TestSyncBookingPostsServiceAndTip(t *testing.T) {
	svc, _, ledger := newTestService()

	outcome, err := svc.SyncBooking(context.Background(), "b1")
	if err != nil {
		t.Fatalf("SyncBooking returned error: %v", err)
	}
	if outcome.AlreadySynced {
		t.Fatal("first sync reported already synced")
	}
	if len(outcome.Posted) != 2 {
		t.Fatalf("posted %d transactions, want 2", len(outcome.Posted))
	}

	service, tip := ledger.created[0], ledger.created[1]
	if service.Amount != 250 || service.Category != "detailing_income" {
		t.Errorf("service tx = %+v, want amount 250 category detailing_income", service)
	}
	if tip.Amount != 30 || tip.Category != tipCategory {
		t.Errorf("tip tx = %+v, want amount 30 category tips", tip)
	}
	if service.Entity != "Dana Reyes" {
		t.Errorf("entity = %q, want customer name", service.Entity)
	}
}

func TestSyncBookingIsIdempotent(t *testing.T) {
	svc, _, ledger := newTestService()

	if _, err := svc.SyncBooking(context.Background(), "b1"); err != nil {
		t.Fatalf("first sync failed: %v", err)
	}
	outcome, err := svc.SyncBooking(context.Background(), "b1")
	if err != nil {
		t.Fatalf("second sync failed: %v", err)
	}
	if !outcome.AlreadySynced {
		t.Error("second sync must report already synced")
	}
	if len(ledger.created) != 2 {
		t.Errorf("ledger has %d transactions after double sync, want exactly 2", len(ledger.created))
	}
}

func TestSyncBookingRequiresCompletion(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.SyncBooking(context.Background(), "b2")
	if !errors.Is(err, ErrNotCompleted) {
		t.Fatalf("err = %v, want ErrNotCompleted", err)
	}
}

func TestSyncBookingNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	outcome, err := svc.SyncBooking(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != nil {
		t.Fatalf("expected nil outcome for a missing booking, got %+v", outcome)
	}
}

func TestSyncRecentIsolatesItems(t *testing.T) {
	svc, bookings, ledger := newTestService()
	bookings.bookings["b3"] = &models.Booking{
		ID:          "b3",
		CustomerID:  "c1",
		ServiceType: models.ServiceWash,
		Date:        "2026-04-12",
		Price:       40,
		Status:      models.StatusCompleted,
	}

	results, err := svc.SyncRecent(context.Background())
	if err != nil {
		t.Fatalf("SyncRecent returned error: %v", err)
	}
	// b1 and b3 are completed and unsynced; b2 is skipped.
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, item := range results {
		if item.Error != "" {
			t.Errorf("booking %s failed: %s", item.BookingID, item.Error)
		}
	}
	// b1 posts a pair, b3 posts a single service transaction.
	if len(ledger.created) != 3 {
		t.Errorf("ledger has %d transactions, want 3", len(ledger.created))
	}
}
