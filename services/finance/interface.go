package finance

import (
	"context"

	bookingRepo "detailflow/database/repository/booking"
	customerRepo "detailflow/database/repository/customer"
	ledgerRepo "detailflow/database/repository/ledger"
	"detailflow/models"
)

// FinanceService posts completed bookings to the ledger and answers
// aggregate revenue questions.
type FinanceService interface {
	SyncBooking(ctx context.Context, bookingID string) (*models.SyncOutcome, error)
	SyncRecent(ctx context.Context) ([]models.BulkSyncItem, error)
	RevenueReport(ctx context.Context, from, to string) (*models.RevenueReport, error)
	CustomerValue(ctx context.Context, customerID string) (*models.CustomerValue, error)
	CreateDepositLink(ctx context.Context, bookingID string, amount float64) (*models.DepositLink, error)
}

// DefaultFinanceService is the production implementation.
type DefaultFinanceService struct {
	Bookings  bookingRepo.BookingRepository
	Ledger    ledgerRepo.LedgerRepository
	Customers customerRepo.CustomerRepository
	Currency  string
}

func (s *DefaultFinanceService) currency() string {
	if s.Currency == "" {
		return "usd"
	}
	return s.Currency
}
