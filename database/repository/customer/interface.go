package customerRepo

import (
	"context"

	"detailflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer models.Customer) (string, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Customer, error)
	ListRecent(ctx context.Context, limit int64) ([]models.Customer, error)
}

type mongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo returns a CustomerRepository backed by MongoDB.
func NewMongoCustomerRepo(db *mongo.Database) CustomerRepository {
	return &mongoCustomerRepo{coll: db.Collection("customers")}
}
