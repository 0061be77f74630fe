// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"net"

	"runclub/internal/domain/entity"
	domainerrors "runclub/internal/domain/errors"
	"runclub/internal/domain/repository"
	"runclub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByEmail retrieves a single user by an exact email match. The returned
// entity carries the password hash; callers must not forward it to clients.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		if isUnavailable(err) {
			return nil, domainerrors.ErrStoreUnavailable.WrapMessage("failed to find user by email")
		}

		// Otherwise, return the original database error.
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return userM.ToDomain(), nil
}

// Create persists a new user entity. The unique index on email makes the
// store the final arbiter of duplicate signups; a conflict surfaces as
// ErrDuplicateEmail even when the caller's pre-insert check passed.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	// Map the pure domain entity to a GORM persistence model.
	userM := model.FromDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateEmail.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("missing required user information")
		}
		if isUnavailable(err) {
			return domainerrors.ErrStoreUnavailable.WrapMessage("failed to create user")
		}

		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// isUnavailable reports whether the error indicates the store itself was
// unreachable (timeout, cancellation, network failure) rather than a query
// problem.
func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
