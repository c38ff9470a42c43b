package finance

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "detailflow/database/repository/booking"
	"detailflow/models"
	"detailflow/utils"

	"go.uber.org/zap"
)

// incomeCategories maps each service type to its ledger income category.
var incomeCategories = map[models.ServiceType]string{
	models.ServiceFullDetail: "detailing_income",
	models.ServiceInterior:   "detailing_income",
	models.ServiceExterior:   "detailing_income",
	models.ServiceCoating:    "coating_income",
	models.ServiceWash:       "wash_income",
	models.ServiceOther:      "detailing_income",
}

const (
	tipCategory    = "tips"
	defaultAccount = "business_checking"
	ledgerSource   = "detailflow"
)

// ErrNotCompleted is returned when a sync is requested for a booking
// that has not reached the completed status.
var ErrNotCompleted = errors.New("booking is not completed")

// SyncBooking posts a completed booking to the ledger as a service
// transaction plus an optional tip transaction. The financeSynced flag
// is claimed with an atomic check-and-set before posting, so concurrent
// syncs of the same booking post exactly one pair. Nil result means the
// booking does not exist.
func (s *DefaultFinanceService) SyncBooking(ctx context.Context, bookingID string) (*models.SyncOutcome, error) {
	logger := utils.GetLogger()

	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, nil
	}
	if booking.Status != models.StatusCompleted {
		return nil, fmt.Errorf("%w: booking %s is %s", ErrNotCompleted, bookingID, booking.Status)
	}

	claimed, err := s.Bookings.MarkFinanceSynced(ctx, bookingID)
	if errors.Is(err, bookingRepo.ErrAlreadySynced) {
		return &models.SyncOutcome{BookingID: bookingID, AlreadySynced: true}, nil
	}
	if err != nil {
		return nil, err
	}
	if claimed == nil {
		return nil, nil
	}

	entity := s.entityName(ctx, booking.CustomerID)
	posted := make([]models.Transaction, 0, 2)

	serviceTx := models.Transaction{
		Date:        booking.Date,
		Description: fmt.Sprintf("%s for %s", booking.ServiceType, entity),
		Amount:      booking.Price,
		Category:    incomeCategories[booking.ServiceType],
		Entity:      entity,
		Account:     defaultAccount,
		Currency:    s.currency(),
		Source:      ledgerSource,
		BookingID:   booking.ID,
		Metadata: map[string]string{
			"serviceType": string(booking.ServiceType),
			"customerId":  booking.CustomerID,
		},
	}
	if _, err := s.Ledger.Create(ctx, serviceTx); err != nil {
		return nil, fmt.Errorf("failed to post service transaction for booking %s: %w", bookingID, err)
	}
	posted = append(posted, serviceTx)

	if booking.Tip > 0 {
		tipTx := serviceTx
		tipTx.Description = fmt.Sprintf("tip from %s", entity)
		tipTx.Amount = booking.Tip
		tipTx.Category = tipCategory
		if _, err := s.Ledger.Create(ctx, tipTx); err != nil {
			return nil, fmt.Errorf("failed to post tip transaction for booking %s: %w", bookingID, err)
		}
		posted = append(posted, tipTx)
	}

	logger.Info("synced booking to ledger",
		zap.String("bookingId", bookingID), zap.Int("transactions", len(posted)))
	return &models.SyncOutcome{BookingID: bookingID, Posted: posted}, nil
}

// SyncRecent sweeps recent completed, unsynced bookings. Failures are
// isolated per booking so one bad record never aborts the sweep.
func (s *DefaultFinanceService) SyncRecent(ctx context.Context) ([]models.BulkSyncItem, error) {
	bookings, err := s.Bookings.ListRecent(ctx, 100)
	if err != nil {
		return nil, err
	}

	var results []models.BulkSyncItem
	for _, b := range bookings {
		if b.Status != models.StatusCompleted || b.FinanceSynced {
			continue
		}
		item := models.BulkSyncItem{BookingID: b.ID}
		outcome, err := s.SyncBooking(ctx, b.ID)
		switch {
		case err != nil:
			item.Error = err.Error()
		case outcome == nil:
			item.Error = "booking disappeared during sync"
		case outcome.AlreadySynced:
			item.AlreadySynced = true
		default:
			item.PostedCount = len(outcome.Posted)
		}
		results = append(results, item)
	}
	return results, nil
}

func (s *DefaultFinanceService) entityName(ctx context.Context, customerID string) string {
	customer, err := s.Customers.GetByID(ctx, customerID)
	if err != nil || customer == nil {
		return customerID
	}
	return customer.Name
}
