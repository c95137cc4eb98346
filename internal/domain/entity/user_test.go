package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_IsProfileComplete(t *testing.T) {
	assert.False(t, (*User)(nil).IsProfileComplete())
	assert.False(t, (&User{}).IsProfileComplete())
	assert.False(t, (&User{Role: RoleUser}).IsProfileComplete())
	assert.False(t, (&User{Role: "admin", City: "Pune"}).IsProfileComplete())
	assert.True(t, (&User{Role: RoleOwner, City: "Pune"}).IsProfileComplete())

	assert.Empty(t, (&User{Role: RoleUser}).Roles())
	assert.Equal(t, Roles{RoleOwner}, (&User{Role: RoleOwner, City: "Pune"}).Roles())
}

func TestDefaultProfileValues(t *testing.T) {
	id := uuid.MustParse("5f0c8a2e-7b1d-4c3e-9a6f-0123456789ab")

	assert.Equal(t, "Business Owner 6789ab", DefaultDisplayName(id, RoleOwner))
	assert.Equal(t, "Customer 6789ab", DefaultDisplayName(id, RoleUser))
	assert.Equal(t, "anonymous-5f0c8a2e-7b1d-4c3e-9a6f-0123456789ab@local.app", DefaultEmail(id))
}

func TestSessionState_CanTransition(t *testing.T) {
	assert.True(t, SessionUnauthenticated.CanTransition(SessionAuthenticating))
	assert.True(t, SessionAuthenticating.CanTransition(SessionProfileIncomplete))
	assert.True(t, SessionAuthenticating.CanTransition(SessionUnauthenticated))
	assert.True(t, SessionProfileIncomplete.CanTransition(SessionProfileComplete))
	assert.True(t, SessionProfileComplete.CanTransition(SessionAuthenticated))
	assert.True(t, SessionAuthenticated.CanTransition(SessionSignedOut))

	assert.False(t, SessionUnauthenticated.CanTransition(SessionAuthenticated))
	assert.False(t, SessionProfileIncomplete.CanTransition(SessionAuthenticated))
	assert.False(t, SessionSignedOut.CanTransition(SessionAuthenticated))

	assert.Equal(t, SessionProfileIncomplete, SessionStateFor(&User{}))
	assert.Equal(t, SessionAuthenticated, SessionStateFor(&User{Role: RoleUser, City: "Delhi"}))
}

func TestNearestCity(t *testing.T) {
	city, distance, ok := NearestCity(DefaultCities, 18.52, 73.85)
	assert.True(t, ok)
	assert.Equal(t, "Pune", city.Name)
	assert.Less(t, distance, 5000.0)

	city, _, ok = NearestCity(DefaultCities, 28.50, 77.05)
	assert.True(t, ok)
	assert.Equal(t, "Gurgaon", city.Name)

	_, _, ok = NearestCity(nil, 0, 0)
	assert.False(t, ok)

	assert.Len(t, DefaultCities, 34)
}
