package service

import "context"

// Identity is the verified result of a Firebase ID token.
type Identity struct {
	UID          string // Firebase UID, stable across anonymous-to-Google linking.
	Email        string // Empty for anonymous sign-ins.
	Name         string
	SignInMethod string // entity.SignInMethodAnonymous or entity.SignInMethodGoogle.
}

// IdentityVerifier verifies ID tokens issued to clients by the identity provider.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
}
