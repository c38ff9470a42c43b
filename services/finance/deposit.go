package finance

import (
	"context"
	"fmt"
	"math"

	"detailflow/models"
	"detailflow/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// depositFraction is the default deposit when no amount is given.
const depositFraction = 0.25

// CreateDepositLink opens a Stripe payment intent for a booking deposit.
// A zero amount defaults to a quarter of the quoted price. Nil result
// means the booking does not exist.
func (s *DefaultFinanceService) CreateDepositLink(ctx context.Context, bookingID string, amount float64) (*models.DepositLink, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, nil
	}

	if amount <= 0 {
		amount = booking.Price * depositFraction
	}
	cents := int64(math.Round(amount * 100))
	if cents <= 0 {
		return nil, fmt.Errorf("booking %s has no price to take a deposit against", bookingID)
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(cents),
		Currency:    stripe.String(s.currency()),
		Description: stripe.String(fmt.Sprintf("Deposit for %s on %s", booking.ServiceType, booking.Date)),
	}
	params.AddMetadata("bookingId", booking.ID)
	params.AddMetadata("customerId", booking.CustomerID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent for booking %s: %w", bookingID, err)
	}

	utils.GetLogger().Info("created deposit payment intent",
		zap.String("bookingId", bookingID), zap.Int64("amountCents", cents))
	return &models.DepositLink{
		BookingID:       booking.ID,
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          float64(cents) / 100,
		Currency:        s.currency(),
	}, nil
}
