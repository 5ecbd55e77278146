// File: database/repository/provider/interface.go
package providerRepo

import (
	"context"
	"errors"

	"telecare/database"
	"telecare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no provider document matches the query.
var ErrNotFound = errors.New("provider not found")

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	// GetByIDWithProjection retrieves a provider by its unique ID with a projection.
	GetByIDWithProjection(ctx context.Context, id string, projection bson.M) (*models.Provider, error)
	// Create inserts a new provider record.
	Create(ctx context.Context, provider *models.Provider) error
	// UpdateAvailability replaces the provider's scheduling profile.
	UpdateAvailability(ctx context.Context, id string, profile models.SchedulingProfile) error
	// Delete removes a provider record by its ID.
	Delete(ctx context.Context, id string) error
}

type mongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs a new MongoDB ProviderRepository.
func NewMongoProviderRepo() ProviderRepository {
	db := database.MongoClient.Database("telecare")
	return &mongoProviderRepo{
		coll: db.Collection("providers"),
	}
}
