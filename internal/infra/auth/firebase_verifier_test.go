package auth

import (
	"context"
	"testing"

	"localdeal/internal/domain/entity"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenVerifier struct {
	token *firebaseauth.Token
	err   error
}

func (s *stubTokenVerifier) VerifyIDToken(_ context.Context, _ string) (*firebaseauth.Token, error) {
	return s.token, s.err
}

func TestFirebaseVerifier_Google(t *testing.T) {
	verifier := &firebaseVerifier{client: &stubTokenVerifier{token: &firebaseauth.Token{
		UID:      "uid-google",
		Claims:   map[string]any{"email": "asha@example.com", "name": "Asha"},
		Firebase: firebaseauth.FirebaseInfo{SignInProvider: "google.com"},
	}}}

	identity, err := verifier.VerifyIDToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "uid-google", identity.UID)
	assert.Equal(t, "asha@example.com", identity.Email)
	assert.Equal(t, "Asha", identity.Name)
	assert.Equal(t, entity.SignInMethodGoogle, identity.SignInMethod)
}

func TestFirebaseVerifier_Anonymous(t *testing.T) {
	verifier := &firebaseVerifier{client: &stubTokenVerifier{token: &firebaseauth.Token{
		UID:      "uid-anon",
		Claims:   map[string]any{},
		Firebase: firebaseauth.FirebaseInfo{SignInProvider: "anonymous"},
	}}}

	identity, err := verifier.VerifyIDToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Empty(t, identity.Email)
	assert.Equal(t, entity.SignInMethodAnonymous, identity.SignInMethod)
}

func TestFirebaseVerifier_Errors(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		stub    *stubTokenVerifier
		wantErr string
	}{
		{
			name:    "empty token",
			token:   "",
			stub:    &stubTokenVerifier{},
			wantErr: "id token is empty",
		},
		{
			name:    "verification failure",
			token:   "bad",
			stub:    &stubTokenVerifier{err: errors.New("expired")},
			wantErr: "failed to verify id token",
		},
		{
			name:  "unsupported provider",
			token: "token",
			stub: &stubTokenVerifier{token: &firebaseauth.Token{
				UID:      "uid",
				Firebase: firebaseauth.FirebaseInfo{SignInProvider: "password"},
			}},
			wantErr: "unsupported sign-in provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &firebaseVerifier{client: tt.stub}

			identity, err := verifier.VerifyIDToken(context.Background(), tt.token)
			require.Error(t, err)
			assert.Nil(t, identity)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
