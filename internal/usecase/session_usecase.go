// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"localdeal/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignInInput carries the Firebase ID token obtained by the client (anonymous or Google).
type SignInInput struct {
	IDToken string
}

// --- Output DTOs ---

// SessionOutput returns the generated tokens after a successful sign-in.
type SessionOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
	State        entity.SessionState
	IsNewUser    bool
}

// RefreshOutput returns a fresh access token.
type RefreshOutput struct {
	AccessToken string
	User        *entity.User
	State       entity.SessionState
}

// SessionUsecase defines the interface for sign-in and session management operations.
type SessionUsecase interface {
	// SignIn verifies the identity token, finds or creates the user and issues tokens.
	SignIn(ctx context.Context, input *SignInInput) (*SessionOutput, error)

	// Refresh issues a new access token carrying the user's current roles.
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// SignOut ends the session of refreshToken and clears the cached profile.
	SignOut(ctx context.Context, userID uuid.UUID, refreshToken string) (entity.SessionState, error)

	// PruneExpiredSessions deletes expired refresh tokens.
	PruneExpiredSessions(ctx context.Context) (int64, error)
}
