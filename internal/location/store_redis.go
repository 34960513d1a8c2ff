package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "loc:consent:"

// RedisStore persists location records as JSON blobs keyed by consent ID.
// Records have no TTL; they live until the consent is deleted.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, record Record) (Record, error) {
	if record.ConsentID == "" {
		return Record{}, errMissingConsentID
	}
	record.UpdatedAt = time.Now().UTC()

	payload, err := json.Marshal(record)
	if err != nil {
		return Record{}, fmt.Errorf("marshal location record: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+record.ConsentID, payload, 0).Err(); err != nil {
		return Record{}, fmt.Errorf("store location record: %w", err)
	}
	return record, nil
}

func (s *RedisStore) Delete(ctx context.Context, consentID string) (Result, error) {
	if consentID == "" {
		return Result{}, errMissingConsentID
	}

	removed, err := s.client.Del(ctx, keyPrefix+consentID).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return Result{}, fmt.Errorf("delete location record: %w", err)
	}
	if removed == 0 {
		return Result{}, fmt.Errorf("no location data for consent ID %s", consentID)
	}
	return Result{Message: "Location data deleted successfully.", ConsentID: consentID}, nil
}
