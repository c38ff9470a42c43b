package communicationRepo

import (
	"context"

	"detailflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CommunicationRepository interface {
	Create(ctx context.Context, comm models.Communication) (string, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Communication, error)
	ListRecent(ctx context.Context, limit int64) ([]models.Communication, error)
}

type mongoCommunicationRepo struct {
	coll *mongo.Collection
}

// NewMongoCommunicationRepo returns a CommunicationRepository backed by MongoDB.
func NewMongoCommunicationRepo(db *mongo.Database) CommunicationRepository {
	return &mongoCommunicationRepo{coll: db.Collection("communications")}
}
