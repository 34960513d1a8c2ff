// Package user is the user-account collaborator. The consent service reaches
// it only to resolve sessions and to cascade-delete an account when consent is
// withdrawn; account lifecycle is otherwise owned elsewhere.
package user

import "context"

// User carries the identity fields this service consumes.
type User struct {
	ID        string
	SessionID string
	Email     string
}

// Store is interface-driven to keep the domain logic testable and to allow
// swapping in-memory or external persistence without rewiring business code.
type Store interface {
	Save(ctx context.Context, u User) error
	FindBySessionID(ctx context.Context, sessionID string) (User, error)
	Delete(ctx context.Context, id string) error
}
