package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"detailflow/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return "", fmt.Errorf("failed to insert booking: %w", err)
	}
	return booking.ID, nil
}

// GetByID returns a booking by its ID, or nil when not found.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

// Update applies a partial field update and returns the updated document.
func (r *mongoBookingRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Booking, error) {
	set := bson.M{"updatedAt": time.Now()}
	for k, v := range updates {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	return &booking, nil
}

// MarkFinanceSynced atomically flips financeSynced from false to true and
// returns the booking. The filter on financeSynced:false is the
// check-and-set that makes a concurrent double sync post exactly one
// transaction pair: the second caller gets ErrAlreadySynced.
func (r *mongoBookingRepo) MarkFinanceSynced(ctx context.Context, id string) (*models.Booking, error) {
	filter := bson.M{"id": id, "financeSynced": false}
	update := bson.M{"$set": bson.M{"financeSynced": true, "updatedAt": time.Now()}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		// Distinguish "missing" from "already synced".
		existing, getErr := r.GetByID(ctx, id)
		if getErr != nil {
			return nil, getErr
		}
		if existing == nil {
			return nil, nil
		}
		return existing, ErrAlreadySynced
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mark booking %s synced: %w", id, err)
	}
	return &booking, nil
}
