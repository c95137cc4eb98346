package repository

import (
	"context"

	"localdeal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for business persistence.
var (
	// ErrBusinessNotFound is returned when a business is not found.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrBusinessAlreadyExists is returned when an owner already has a business.
	ErrBusinessAlreadyExists = errors.New("owner already has a business")
)

// BusinessRepository defines the operations on businesses.
type BusinessRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindByOwnerID retrieves the single business of an owner.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error)

	// FindByIDs batch-loads businesses. Unknown IDs are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Business, error)

	// FindByCity lists the businesses of a city ordered by name.
	FindByCity(ctx context.Context, city string) ([]*entity.Business, error)

	Create(ctx context.Context, business *entity.Business) error
	Update(ctx context.Context, business *entity.Business) error
}
