package usecase

import (
	"context"

	"localdeal/internal/domain/entity"

	"github.com/google/uuid"
)

// Where a returned profile was read from.
const (
	ProfileSourceDatabase = "database"
	ProfileSourceCache    = "cache"
)

// UpdateUserRoleInput completes or edits a profile.
type UpdateUserRoleInput struct {
	Role entity.Role
	City string
	Name string // Optional; a default display name is used when empty.
}

// ProfileOutput is a profile together with where it came from.
type ProfileOutput struct {
	User    *entity.User
	Source  string
	Warning string // Set when the database could not be reached.
}

// UpdateUserRoleOutput is the result of a profile write.
type UpdateUserRoleOutput struct {
	User        *entity.User
	AccessToken string // Carries the new role.
	Persisted   bool   // False when only the cache holds the change.
	Warning     string
	State       entity.SessionState
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)

	// UpdateUserRole overwrites name, email, role and city. Repeating a call is a no-op.
	UpdateUserRole(ctx context.Context, userID uuid.UUID, input *UpdateUserRoleInput) (*UpdateUserRoleOutput, error)
}
