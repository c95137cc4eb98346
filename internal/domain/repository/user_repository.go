// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"localdeal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindIDsByCity returns the IDs of users whose profile city equals city, skipping excludeID.
	FindIDsByCity(ctx context.Context, city string, excludeID uuid.UUID) ([]uuid.UUID, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update overwrites the profile fields of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// CreateIfNotExists inserts the user unless a row with the same ID already exists.
	// It reports whether a row was inserted.
	CreateIfNotExists(ctx context.Context, user *entity.User) (bool, error)
}
