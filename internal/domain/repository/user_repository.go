// Package repository defines the persistence contracts of the domain layer.
// Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"runclub/internal/domain/entity"
	"runclub/internal/errors"
)

// ErrUserNotFound is returned when no user row matches the lookup key.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the credential store: it persists and retrieves user
// records keyed by email. Email uniqueness is enforced by the store itself
// (unique index), not only by the caller's pre-insert check.
type UserRepository interface {
	// FindByEmail returns the full stored record, including the password
	// hash, for an exact email match. Returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create inserts a new user row and fills in the store-assigned ID and
	// timestamps. A unique-index conflict on email surfaces as
	// domainerrors.ErrDuplicateEmail.
	Create(ctx context.Context, user *entity.User) error
}
