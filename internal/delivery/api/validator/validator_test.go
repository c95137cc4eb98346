package validator

import (
	"testing"

	domainerrors "localdeal/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Token    string `json:"fcm_token" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
	Rating   int    `json:"rating" validate:"min=1,max=5"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sampleRequest{Token: "t", Platform: "ios", Rating: 4}))

	err := v.Validate(&sampleRequest{Platform: "symbian", Rating: 9})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, map[string]string{
		"fcm_token": "fcm_token is required",
		"platform":  "platform must be one of: ios android web",
		"rating":    "rating must be at most 5",
	}, validationErr.FieldErrors())
}
