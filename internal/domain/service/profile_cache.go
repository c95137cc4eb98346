package service

import (
	"context"

	"localdeal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileCacheMiss is returned when no profile is cached for a user.
var ErrProfileCacheMiss = errors.New("profile not cached")

// ProfileCache keeps the last known profile of each user, plus profile edits that
// still have to be written to the database.
type ProfileCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	Set(ctx context.Context, user *entity.User) error

	// Delete drops the cached profile and any pending edit.
	Delete(ctx context.Context, userID uuid.UUID) error

	// SetPending caches user and records it as an edit the database has not seen yet.
	SetPending(ctx context.Context, user *entity.User) error

	// GetPending returns the unsaved edit, or ErrProfileCacheMiss.
	GetPending(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	ClearPending(ctx context.Context, userID uuid.UUID) error
}
