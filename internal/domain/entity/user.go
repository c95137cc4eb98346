// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultNameSuffixLength = 6

// User is the core entity in the system, representing a person signed in through Firebase.
// Role and City stay empty until the profile has been completed.
type User struct {
	ID        uuid.UUID `json:"id"`         // Opaque identifier of the account.
	Name      string    `json:"name"`       // Display name.
	Email     string    `json:"email"`      // Contact email, may be empty for anonymous sessions.
	Role      Role      `json:"role"`       // "user" or "owner"; empty while the profile is incomplete.
	City      string    `json:"city"`       // The city scope used for offer browsing.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last profile change.
}

// IsProfileComplete reports whether both role and city have been chosen.
func (u *User) IsProfileComplete() bool {
	return u != nil && u.Role.IsValid() && strings.TrimSpace(u.City) != ""
}

// Roles returns the roles carried in access tokens. Incomplete profiles carry none.
func (u *User) Roles() Roles {
	if !u.IsProfileComplete() {
		return Roles{}
	}

	return Roles{u.Role}
}

// DefaultDisplayName builds the placeholder name given to profiles completed without a name.
func DefaultDisplayName(userID uuid.UUID, role Role) string {
	id := userID.String()
	suffix := id[len(id)-defaultNameSuffixLength:]
	if role == RoleOwner {
		return fmt.Sprintf("Business Owner %s", suffix)
	}

	return fmt.Sprintf("Customer %s", suffix)
}

// DefaultEmail builds the placeholder address stored for anonymous accounts.
func DefaultEmail(userID uuid.UUID) string {
	return fmt.Sprintf("anonymous-%s@local.app", userID.String())
}
