package communicationRepo

import (
	"context"
	"fmt"
	"time"

	"detailflow/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a communication log entry and returns its ID.
func (r *mongoCommunicationRepo) Create(ctx context.Context, comm models.Communication) (string, error) {
	if comm.ID == "" {
		comm.ID = uuid.New().String()
	}
	comm.CreatedAt = time.Now()
	comm.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, comm)
	if err != nil {
		return "", fmt.Errorf("failed to insert communication: %w", err)
	}
	return comm.ID, nil
}

// ListByCustomer fetches all communications for a customer, newest first.
func (r *mongoCommunicationRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Communication, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.coll.Find(ctx, bson.M{"customerId": customerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list communications for customer %s: %w", customerID, err)
	}
	defer cursor.Close(ctx)

	var comms []models.Communication
	if err := cursor.All(ctx, &comms); err != nil {
		return nil, fmt.Errorf("failed to decode communications: %w", err)
	}
	return comms, nil
}

// ListRecent returns the most recent communications across all customers.
func (r *mongoCommunicationRepo) ListRecent(ctx context.Context, limit int64) ([]models.Communication, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list communications: %w", err)
	}
	defer cursor.Close(ctx)

	var comms []models.Communication
	if err := cursor.All(ctx, &comms); err != nil {
		return nil, fmt.Errorf("failed to decode communications: %w", err)
	}
	return comms, nil
}
