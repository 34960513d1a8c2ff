package consent

import "context"

// Store is the consent-record persistence adapter. Save upserts on whichever
// alternate key the record carries; uniqueness per key is the backing store's
// job (unique indexes in Postgres, keyed maps in memory), not the service's.
type Store interface {
	Save(ctx context.Context, record ConsentRecord) error
	FindByUserID(ctx context.Context, userID string) (ConsentRecord, error)
	FindByConsentID(ctx context.Context, consentID string) (ConsentRecord, error)
	FindBySessionID(ctx context.Context, sessionID string) (ConsentRecord, error)
	// DeleteByConsentID removes the record and returns it so the caller can
	// cascade to the owning user.
	DeleteByConsentID(ctx context.Context, consentID string) (ConsentRecord, error)
}
