package vehicleRepo

import (
	"context"

	"detailflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle models.Vehicle) (string, error)
	GetByID(ctx context.Context, id string) (*models.Vehicle, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Vehicle, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Vehicle, error)
}

type mongoVehicleRepo struct {
	coll *mongo.Collection
}

// NewMongoVehicleRepo returns a VehicleRepository backed by MongoDB.
func NewMongoVehicleRepo(db *mongo.Database) VehicleRepository {
	return &mongoVehicleRepo{coll: db.Collection("vehicles")}
}
