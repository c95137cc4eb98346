// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeFirebase is the only identity provider; anonymous and Google sign-ins both arrive as Firebase ID tokens.
const ProviderTypeFirebase = "firebase"

// Sign-in methods recorded on an Authentication.
const (
	SignInMethodAnonymous = "anonymous"
	SignInMethodGoogle    = "google"
)

// Authentication links a User to an external identity.
type Authentication struct {
	ID             uuid.UUID // The unique ID for this authentication record.
	UserID         uuid.UUID // Links this identity to the User it belongs to.
	Provider       string    // The identity provider, always "firebase" today.
	ProviderUserID string    // The Firebase UID.
	SignInMethod   string    // "anonymous" or "google"; updated when an anonymous account is upgraded.
	CreatedAt      time.Time // Timestamp of the first sign-in with this identity.
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new Access Token after the old one expires, without signing in again.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // Stores a SHA-256 hash of the raw refresh token for secure comparison in the database.
	ExpiresAt time.Time // The exact time when this refresh token will expire and become invalid.
	CreatedAt time.Time // Timestamp of when this session was created.
}
