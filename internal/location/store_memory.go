package location

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var errMissingConsentID = errors.New("consent ID is required")

// InMemoryStore keeps location records in a map keyed by consent ID.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]Record)}
}

func (s *InMemoryStore) Save(_ context.Context, record Record) (Record, error) {
	if record.ConsentID == "" {
		return Record{}, errMissingConsentID
	}
	record.UpdatedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.ConsentID] = record
	return record, nil
}

func (s *InMemoryStore) Delete(_ context.Context, consentID string) (Result, error) {
	if consentID == "" {
		return Result{}, errMissingConsentID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[consentID]; !ok {
		return Result{}, fmt.Errorf("no location data for consent ID %s", consentID)
	}
	delete(s.records, consentID)
	return Result{Message: "Location data deleted successfully.", ConsentID: consentID}, nil
}
