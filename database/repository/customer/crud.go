package customerRepo

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

// Create inserts a new customer and returns its ID.
func (r *mongoCustomerRepo) Create(ctx context.Context, customer models.Customer) (string, error) {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, customer)
	if err != nil {
		return "", fmt.Errorf("failed to insert customer: %w", err)
	}
	return customer.ID, nil
}

// GetByID returns a customer by its ID, or nil when not found.
func (r *mongoCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&customer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer %s: %w", id, err)
	}
	return &customer, nil
}

// Update applies a partial field update and returns the updated document.
// updatedAt is always refreshed on write.
func (r *mongoCustomerRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Customer, error) {
	set := bson.M{"updatedAt": time.Now()}
	for k, v := range updates {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var customer models.Customer
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&customer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update customer %s: %w", id, err)
	}
	return &customer, nil
}

// ListRecent returns the most recently updated customers. Search over
// this page is done client-side by the CRM service.
func (r *mongoCustomerRepo) ListRecent(ctx context.Context, limit int64) ([]models.Customer, error) {
	opts := options.Find().SetSort(bson.M{"updatedAt": -1}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}
	return customers, nil
}
