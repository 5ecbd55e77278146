package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// HoldStore tracks short-lived slot claims so two patients cannot race
// for the same slot between listing and confirmation.
type HoldStore interface {
	// PlaceHold claims the slot for patientID. Returns false when another
	// patient already holds it.
	PlaceHold(ctx context.Context, providerID string, start time.Time, patientID string, ttl time.Duration) (bool, error)
	// GetHold returns the holding patient ID, or "" when the slot is free.
	GetHold(ctx context.Context, providerID string, start time.Time) (string, error)
	// ReleaseHold drops the claim if present.
	ReleaseHold(ctx context.Context, providerID string, start time.Time) error
}

type redisHoldStore struct {
	client *redis.Client
}

// NewRedisHoldStore constructs a HoldStore backed by the given Redis client.
func NewRedisHoldStore(client *redis.Client) HoldStore {
	return &redisHoldStore{client: client}
}

func holdKey(providerID string, start time.Time) string {
	return fmt.Sprintf("hold:%s:%s", providerID, start.UTC().Format(time.RFC3339))
}

func (s *redisHoldStore) PlaceHold(ctx context.Context, providerID string, start time.Time, patientID string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, holdKey(providerID, start), patientID, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to place slot hold: %w", err)
	}
	if ok {
		return true, nil
	}
	// SetNX lost the race; the slot may still be ours from an earlier hold.
	holder, err := s.GetHold(ctx, providerID, start)
	if err != nil {
		return false, err
	}
	return holder == patientID, nil
}

func (s *redisHoldStore) GetHold(ctx context.Context, providerID string, start time.Time) (string, error) {
	holder, err := s.client.Get(ctx, holdKey(providerID, start)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read slot hold: %w", err)
	}
	return holder, nil
}

func (s *redisHoldStore) ReleaseHold(ctx context.Context, providerID string, start time.Time) error {
	if err := s.client.Del(ctx, holdKey(providerID, start)).Err(); err != nil {
		return fmt.Errorf("failed to release slot hold: %w", err)
	}
	return nil
}
