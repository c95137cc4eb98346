package repository

import (
	"context"

	"localdeal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAuthNotFound is returned when no user is linked to an external identity yet.
var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository defines the operations on the links between users and external identities.
type AuthRepository interface {
	// CreateAuthentication persists a new identity link.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves an identity link by its provider and provider-specific ID.
	FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error)

	// UpdateSignInMethod records a new sign-in method, e.g. after an anonymous account was linked to Google.
	UpdateSignInMethod(ctx context.Context, id uuid.UUID, signInMethod string) error
}
