package crm

import (
	"context"

	bookingRepo "detailflow/database/repository/booking"
	communicationRepo "detailflow/database/repository/communication"
	customerRepo "detailflow/database/repository/customer"
	vehicleRepo "detailflow/database/repository/vehicle"
	"detailflow/models"

	"github.com/go-redis/redis/v8"
)

// CRMService exposes the record-store operations consumed by the CRM
// tools: plain CRUD plus the denormalized customer history aggregate.
type CRMService interface {
	CreateCustomer(ctx context.Context, customer models.Customer) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id string, updates map[string]interface{}) (*models.Customer, error)
	GetCustomer(ctx context.Context, id string) (*models.Customer, error)
	SearchCustomers(ctx context.Context, query string) ([]models.Customer, error)

	AddVehicle(ctx context.Context, vehicle models.Vehicle) (*models.Vehicle, error)
	ListVehicles(ctx context.Context, customerID string) ([]models.Vehicle, error)

	CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error)
	ListBookings(ctx context.Context, customerID string) ([]models.Booking, error)

	LogCommunication(ctx context.Context, comm models.Communication) (*models.Communication, error)

	CustomerHistory(ctx context.Context, customerID string) (*models.CustomerHistory, error)
}

// DefaultCRMService is the production implementation.
type DefaultCRMService struct {
	Customers customerRepo.CustomerRepository
	Vehicles  vehicleRepo.VehicleRepository
	Bookings  bookingRepo.BookingRepository
	Comms     communicationRepo.CommunicationRepository
	Cache     *redis.Client
}

// searchPageSize bounds the recent page the substring search scans.
// Acceptable for a single-operator data volume; an index-backed search
// is the alternative if that ever grows.
const searchPageSize = 100
