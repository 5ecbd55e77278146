// File: database/repository/provider/provider_mongo.go
package providerRepo

import (
	"context"
	"fmt"
	"time"

	"telecare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	return r.GetByIDWithProjection(ctx, id, nil)
}

func (r *mongoProviderRepo) GetByIDWithProjection(ctx context.Context, id string, projection bson.M) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	findOpts := options.FindOne()
	if projection != nil {
		findOpts.SetProjection(projection)
	}

	var provider models.Provider
	err := r.coll.FindOne(ctx, bson.M{"id": id}, findOpts).Decode(&provider)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch provider %s: %w", id, err)
	}
	return &provider, nil
}

func (r *mongoProviderRepo) Create(ctx context.Context, provider *models.Provider) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	provider.CreatedAt = now
	provider.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, provider); err != nil {
		return fmt.Errorf("failed to insert provider: %w", err)
	}
	return nil
}

func (r *mongoProviderRepo) UpdateAvailability(ctx context.Context, id string, profile models.SchedulingProfile) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"scheduling": profile,
			"updatedAt":  time.Now().UTC(),
		},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update provider availability: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoProviderRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete provider: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
