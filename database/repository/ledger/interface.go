package ledgerRepo

import (
	"context"

	"detailflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type LedgerRepository interface {
	Create(ctx context.Context, tx models.Transaction) (string, error)
	FindByBookingID(ctx context.Context, bookingID string) ([]models.Transaction, error)
	FindByDateRange(ctx context.Context, from, to string) ([]models.Transaction, error)
	FindByEntity(ctx context.Context, entity string) ([]models.Transaction, error)
}

type mongoLedgerRepo struct {
	coll *mongo.Collection
}

// NewMongoLedgerRepo returns a LedgerRepository backed by MongoDB.
func NewMongoLedgerRepo(db *mongo.Database) LedgerRepository {
	return &mongoLedgerRepo{coll: db.Collection("transactions")}
}
