package ledgerRepo

import (
	"context"
	"fmt"
	"time"

	"detailflow/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a ledger transaction and returns its ID.
func (r *mongoLedgerRepo) Create(ctx context.Context, tx models.Transaction) (string, error) {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	tx.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("failed to insert transaction: %w", err)
	}
	return tx.ID, nil
}

// FindByBookingID fetches the transactions posted for a booking.
func (r *mongoLedgerRepo) FindByBookingID(ctx context.Context, bookingID string) ([]models.Transaction, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"bookingId": bookingID})
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for booking %s: %w", bookingID, err)
	}
	defer cursor.Close(ctx)

	var txs []models.Transaction
	if err := cursor.All(ctx, &txs); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}
	return txs, nil
}

// FindByDateRange fetches transactions dated within [from, to], oldest first.
func (r *mongoLedgerRepo) FindByDateRange(ctx context.Context, from, to string) ([]models.Transaction, error) {
	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	opts := options.Find().SetSort(bson.M{"date": 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions %s..%s: %w", from, to, err)
	}
	defer cursor.Close(ctx)

	var txs []models.Transaction
	if err := cursor.All(ctx, &txs); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}
	return txs, nil
}

// FindByEntity fetches all transactions attributed to one entity
// (customer name), used for lifetime value.
func (r *mongoLedgerRepo) FindByEntity(ctx context.Context, entity string) ([]models.Transaction, error) {
	opts := options.Find().SetSort(bson.M{"date": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"entity": entity}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for %s: %w", entity, err)
	}
	defer cursor.Close(ctx)

	var txs []models.Transaction
	if err := cursor.All(ctx, &txs); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}
	return txs, nil
}
