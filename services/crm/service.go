package crm

import (
	"context"
	"fmt"
	"strings"

	"detailflow/models"
	"detailflow/utils"

	"go.uber.org/zap"
)

// CreateCustomer inserts a customer record. An unset price tier starts
// at standard; tier upgrades are explicit updates.
func (s *DefaultCRMService) CreateCustomer(ctx context.Context, customer models.Customer) (*models.Customer, error) {
	if customer.Name == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if customer.PriceTier == "" {
		customer.PriceTier = models.TierStandard
	}
	id, err := s.Customers.Create(ctx, customer)
	if err != nil {
		return nil, err
	}
	return s.Customers.GetByID(ctx, id)
}

// UpdateCustomer applies a partial update; nil result means not found.
func (s *DefaultCRMService) UpdateCustomer(ctx context.Context, id string, updates map[string]interface{}) (*models.Customer, error) {
	customer, err := s.Customers.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	s.invalidateHistory(ctx, id)
	return customer, nil
}

// GetCustomer fetches a customer by ID; nil result means not found.
func (s *DefaultCRMService) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	return s.Customers.GetByID(ctx, id)
}

// SearchCustomers runs a case-insensitive substring match on name and
// phone over a recent page of records, client-side.
func (s *DefaultCRMService) SearchCustomers(ctx context.Context, query string) ([]models.Customer, error) {
	page, err := s.Customers.ListRecent(ctx, searchPageSize)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return page, nil
	}
	var matches []models.Customer
	for _, c := range page {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(c.Phone, q) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

// AddVehicle registers a vehicle under an existing customer.
func (s *DefaultCRMService) AddVehicle(ctx context.Context, vehicle models.Vehicle) (*models.Vehicle, error) {
	owner, err := s.Customers.GetByID(ctx, vehicle.CustomerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, nil
	}
	id, err := s.Vehicles.Create(ctx, vehicle)
	if err != nil {
		return nil, err
	}
	s.invalidateHistory(ctx, vehicle.CustomerID)
	return s.Vehicles.GetByID(ctx, id)
}

// ListVehicles fetches a customer's vehicles.
func (s *DefaultCRMService) ListVehicles(ctx context.Context, customerID string) ([]models.Vehicle, error) {
	return s.Vehicles.ListByCustomer(ctx, customerID)
}

// CreateBooking inserts a booking for an existing customer. A capacity-
// occupying status cascades the customer's nextAppointmentAt.
func (s *DefaultCRMService) CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	owner, err := s.Customers.GetByID(ctx, booking.CustomerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, nil
	}
	if booking.Status == "" {
		booking.Status = models.StatusScheduled
	}
	id, err := s.Bookings.Create(ctx, booking)
	if err != nil {
		return nil, err
	}
	if booking.Status.OccupiesCapacity() {
		s.cascadeCustomerDates(ctx, booking.CustomerID, "nextAppointmentAt", booking.Date)
	}
	s.invalidateHistory(ctx, booking.CustomerID)
	return s.Bookings.GetByID(ctx, id)
}

// GetBooking fetches a booking by ID; nil result means not found.
func (s *DefaultCRMService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.Bookings.GetByID(ctx, id)
}

// UpdateBookingStatus transitions a booking and cascades the customer's
// service dates: completed refreshes lastServiceAt, scheduled/confirmed
// refresh nextAppointmentAt.
func (s *DefaultCRMService) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	booking, err := s.Bookings.Update(ctx, id, map[string]interface{}{"status": status})
	if err != nil || booking == nil {
		return booking, err
	}

	switch status {
	case models.StatusCompleted:
		s.cascadeCustomerDates(ctx, booking.CustomerID, "lastServiceAt", booking.Date)
	case models.StatusScheduled, models.StatusConfirmed:
		s.cascadeCustomerDates(ctx, booking.CustomerID, "nextAppointmentAt", booking.Date)
	}
	s.invalidateHistory(ctx, booking.CustomerID)
	return booking, nil
}

// ListBookings fetches bookings for one customer, or a recent page when
// no customer is given.
func (s *DefaultCRMService) ListBookings(ctx context.Context, customerID string) ([]models.Booking, error) {
	if customerID == "" {
		return s.Bookings.ListRecent(ctx, searchPageSize)
	}
	return s.Bookings.ListByCustomer(ctx, customerID)
}

// LogCommunication stores a communication entry for an existing customer.
func (s *DefaultCRMService) LogCommunication(ctx context.Context, comm models.Communication) (*models.Communication, error) {
	owner, err := s.Customers.GetByID(ctx, comm.CustomerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, nil
	}
	id, err := s.Comms.Create(ctx, comm)
	if err != nil {
		return nil, err
	}
	comm.ID = id
	s.invalidateHistory(ctx, comm.CustomerID)
	return &comm, nil
}

func (s *DefaultCRMService) cascadeCustomerDates(ctx context.Context, customerID, field, date string) {
	if _, err := s.Customers.Update(ctx, customerID, map[string]interface{}{field: date}); err != nil {
		utils.GetLogger().Warn("failed to cascade customer date",
			zap.String("customerId", customerID), zap.String("field", field), zap.Error(err))
	}
}
