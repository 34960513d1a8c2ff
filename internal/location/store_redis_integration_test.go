//go:build integration

package location_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"consentry/internal/location"
	"consentry/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *location.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.store = location.NewRedisStore(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestSaveAndDelete() {
	ctx := context.Background()

	saved, err := s.store.Save(ctx, location.Record{
		ConsentID: "c1",
		IPAddress: "203.0.113.7",
		City:      "Berlin",
		Country:   "DE",
		Latitude:  52.52,
		Longitude: 13.4,
	})
	s.Require().NoError(err)
	s.Equal("c1", saved.ConsentID)
	s.False(saved.UpdatedAt.IsZero())

	exists, err := s.redis.Client.Exists(ctx, "loc:consent:c1").Result()
	s.Require().NoError(err)
	s.Equal(int64(1), exists)

	result, err := s.store.Delete(ctx, "c1")
	s.Require().NoError(err)
	s.Equal("Location data deleted successfully.", result.Message)
	s.Equal("c1", result.ConsentID)

	exists, err = s.redis.Client.Exists(ctx, "loc:consent:c1").Result()
	s.Require().NoError(err)
	s.Equal(int64(0), exists)
}

func (s *RedisStoreSuite) TestSaveOverwrites() {
	ctx := context.Background()

	_, err := s.store.Save(ctx, location.Record{ConsentID: "c1", City: "Berlin"})
	s.Require().NoError(err)
	saved, err := s.store.Save(ctx, location.Record{ConsentID: "c1", City: "Hamburg"})
	s.Require().NoError(err)
	s.Equal("Hamburg", saved.City)
}

func (s *RedisStoreSuite) TestDeleteUnknown() {
	_, err := s.store.Delete(context.Background(), "ghost")
	s.EqualError(err, "no location data for consent ID ghost")
}

func (s *RedisStoreSuite) TestMissingConsentID() {
	ctx := context.Background()
	_, err := s.store.Save(ctx, location.Record{City: "Berlin"})
	s.EqualError(err, "consent ID is required")

	_, err = s.store.Delete(ctx, "")
	s.EqualError(err, "consent ID is required")
}
