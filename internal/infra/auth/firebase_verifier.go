package auth

import (
	"context"

	"localdeal/internal/domain/constants"
	"localdeal/internal/domain/entity"
	"localdeal/internal/domain/service"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

// idTokenVerifier is the subset of *auth.Client used to verify client ID tokens.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

type firebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier creates an IdentityVerifier backed by Firebase Authentication.
func NewFirebaseVerifier(client *firebaseauth.Client) service.IdentityVerifier {
	return &firebaseVerifier{client: client}
}

// VerifyIDToken checks the token signature, audience and expiry and extracts the identity.
func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.Identity, error) {
	if idToken == "" {
		return nil, errors.New("id token is empty")
	}

	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify id token")
	}

	identity := &service.Identity{
		UID:   token.UID,
		Email: stringClaim(token.Claims, "email"),
		Name:  stringClaim(token.Claims, "name"),
	}

	switch token.Firebase.SignInProvider {
	case constants.FirebaseSignInAnonymous:
		identity.SignInMethod = entity.SignInMethodAnonymous
	case constants.FirebaseSignInGoogle:
		identity.SignInMethod = entity.SignInMethodGoogle
	default:
		return nil, errors.Errorf("unsupported sign-in provider: %q", token.Firebase.SignInProvider)
	}

	return identity, nil
}

func stringClaim(claims map[string]any, key string) string {
	value, _ := claims[key].(string)

	return value
}
