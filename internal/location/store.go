package location

import "context"

// Store is the location persistence adapter. Save upserts by consent ID and
// returns the stored record; Delete removes it and reports the outcome.
type Store interface {
	Save(ctx context.Context, record Record) (Record, error)
	Delete(ctx context.Context, consentID string) (Result, error)
}
