package consent

import (
	"context"
	"sync"

	"consentry/pkg/platform/sentinel"
)

// InMemoryStore keeps the initial implementation lightweight and testable. It
// intentionally favors clarity over performance.
type InMemoryStore struct {
	mu      sync.RWMutex
	records []ConsentRecord
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Save(_ context.Context, record ConsentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if matchesKey(s.records[i], record) {
			s.records[i] = record
			return nil
		}
	}
	s.records = append(s.records, record)
	return nil
}

// matchesKey reports whether existing is the record the write addresses, using
// the same key precedence as the service: userId first, then consentId.
func matchesKey(existing, incoming ConsentRecord) bool {
	if incoming.UserID != "" {
		return existing.UserID == incoming.UserID
	}
	if incoming.ConsentID != "" {
		return existing.ConsentID == incoming.ConsentID
	}
	return false
}

func (s *InMemoryStore) FindByUserID(_ context.Context, userID string) (ConsentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if userID != "" && r.UserID == userID {
			return r, nil
		}
	}
	return ConsentRecord{}, sentinel.ErrNotFound
}

func (s *InMemoryStore) FindByConsentID(_ context.Context, consentID string) (ConsentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if consentID != "" && r.ConsentID == consentID {
			return r, nil
		}
	}
	return ConsentRecord{}, sentinel.ErrNotFound
}

func (s *InMemoryStore) FindBySessionID(_ context.Context, sessionID string) (ConsentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if sessionID != "" && r.SessionID == sessionID {
			return r, nil
		}
	}
	return ConsentRecord{}, sentinel.ErrNotFound
}

func (s *InMemoryStore) DeleteByConsentID(_ context.Context, consentID string) (ConsentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if consentID != "" && r.ConsentID == consentID {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return r, nil
		}
	}
	return ConsentRecord{}, sentinel.ErrNotFound
}

// Len reports the number of stored records. Test helper.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
