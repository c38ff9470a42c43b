package vehicleRepo

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

// Create inserts a new vehicle and returns its ID.
func (r *mongoVehicleRepo) Create(ctx context.Context, vehicle models.Vehicle) (string, error) {
	if vehicle.ID == "" {
		vehicle.ID = uuid.New().String()
	}
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, vehicle)
	if err != nil {
		return "", fmt.Errorf("failed to insert vehicle: %w", err)
	}
	return vehicle.ID, nil
}

// GetByID returns a vehicle by its ID, or nil when not found.
func (r *mongoVehicleRepo) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&vehicle)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vehicle %s: %w", id, err)
	}
	return &vehicle, nil
}

// Update applies a partial field update and returns the updated document.
func (r *mongoVehicleRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Vehicle, error) {
	set := bson.M{"updatedAt": time.Now()}
	for k, v := range updates {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var vehicle models.Vehicle
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&vehicle)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update vehicle %s: %w", id, err)
	}
	return &vehicle, nil
}

// ListByCustomer fetches all vehicles registered to a customer.
func (r *mongoVehicleRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Vehicle, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"customerId": customerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles for customer %s: %w", customerID, err)
	}
	defer cursor.Close(ctx)

	var vehicles []models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to decode vehicles: %w", err)
	}
	return vehicles, nil
}
