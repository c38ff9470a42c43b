package bookingRepo

import (
	"context"
	"errors"

	"detailflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrAlreadySynced is returned by MarkFinanceSynced when the booking's
// sync flag was already set. Callers treat it as a recoverable no-op.
var ErrAlreadySynced = errors.New("booking already synced to finance")

type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	ListRecent(ctx context.Context, limit int64) ([]models.Booking, error)
	FindByDateRange(ctx context.Context, from, to string) ([]models.Booking, error)
	MarkFinanceSynced(ctx context.Context, id string) (*models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{coll: db.Collection("bookings")}
}
