package impl

import (
	"context"
	"testing"
	"time"

	"localdeal/internal/domain/entity"
	domainerrors "localdeal/internal/domain/errors"
	"localdeal/internal/domain/repository"
	"localdeal/internal/domain/service"
	mockRepo "localdeal/internal/mocks/repository"
	mockSvc "localdeal/internal/mocks/service"
	"localdeal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service          usecase.SessionUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	verifier         *mockSvc.MockIdentityVerifier
	tokenService     *mockSvc.MockTokenService
	profileCache     *mockSvc.MockProfileCache
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	f := sessionServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		verifier:         mockSvc.NewMockIdentityVerifier(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		profileCache:     mockSvc.NewMockProfileCache(t),
	}
	f.service = NewSessionService(SessionServiceParams{
		TxManager:        f.txManager,
		UserRepo:         f.userRepo,
		RefreshTokenRepo: f.refreshTokenRepo,
		Verifier:         f.verifier,
		TokenService:     f.tokenService,
		ProfileCache:     f.profileCache,
		Logger:           newDiscardLogger(),
	})

	return f
}

// runInTx makes the transaction manager invoke fn with a factory over the given repositories.
func runInTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(userRepo *mockRepo.MockUserRepository, authRepo *mockRepo.MockAuthRepository, refreshRepo *mockRepo.MockRefreshTokenRepository)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			authRepo := mockRepo.NewMockAuthRepository(t)
			refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			factory.EXPECT().NewUserRepository().Return(userRepo).Maybe()
			factory.EXPECT().NewAuthRepository().Return(authRepo).Maybe()
			factory.EXPECT().NewRefreshTokenRepository().Return(refreshRepo).Maybe()

			setup(userRepo, authRepo, refreshRepo)

			return fn(factory)
		})
}

func TestSessionService_SignIn_NewAnonymousUser(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	identity := &service.Identity{UID: "firebase-uid", SignInMethod: entity.SignInMethodAnonymous}
	f.verifier.EXPECT().VerifyIDToken(ctx, "id-token").Return(identity, nil)

	runInTx(t, f.txManager, func(userRepo *mockRepo.MockUserRepository, authRepo *mockRepo.MockAuthRepository, refreshRepo *mockRepo.MockRefreshTokenRepository) {
		authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeFirebase, "firebase-uid").Return(nil, repository.ErrAuthNotFound)
		userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
		authRepo.EXPECT().
			CreateAuthentication(ctx, mock.MatchedBy(func(a *entity.Authentication) bool {
				return a.ProviderUserID == "firebase-uid" && a.SignInMethod == entity.SignInMethodAnonymous
			})).
			Return(nil)
		refreshRepo.EXPECT().
			CreateRefreshToken(ctx, mock.MatchedBy(func(rt *entity.RefreshToken) bool {
				return rt.TokenHash == "hashed-refresh"
			})).
			Return(nil)
	})

	f.tokenService.EXPECT().GenerateTokens(mock.Anything, []string{}).Return("access", "refresh", nil)
	f.tokenService.EXPECT().HashToken("refresh").Return("hashed-refresh")
	f.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	f.profileCache.EXPECT().Set(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	out, err := f.service.SignIn(ctx, &usecase.SignInInput{IDToken: "id-token"})
	require.NoError(t, err)
	assert.True(t, out.IsNewUser)
	assert.Equal(t, entity.SessionProfileIncomplete, out.State)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.NotEqual(t, uuid.Nil, out.User.ID)
}

func TestSessionService_SignIn_ExistingUserUpgradedToGoogle(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	userID := uuid.New()
	authID := uuid.New()
	user := &entity.User{ID: userID, Email: entity.DefaultEmail(userID), Role: entity.RoleOwner, City: "Pune"}
	identity := &service.Identity{UID: "uid", Email: "owner@example.com", Name: "Asha", SignInMethod: entity.SignInMethodGoogle}

	f.verifier.EXPECT().VerifyIDToken(ctx, "id-token").Return(identity, nil)
	runInTx(t, f.txManager, func(userRepo *mockRepo.MockUserRepository, authRepo *mockRepo.MockAuthRepository, refreshRepo *mockRepo.MockRefreshTokenRepository) {
		authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeFirebase, "uid").
			Return(&entity.Authentication{ID: authID, UserID: userID, SignInMethod: entity.SignInMethodAnonymous}, nil)
		userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		authRepo.EXPECT().UpdateSignInMethod(ctx, authID, entity.SignInMethodGoogle).Return(nil)
		userRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Email == "owner@example.com" })).
			Return(nil)
		refreshRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)
	})

	f.tokenService.EXPECT().GenerateTokens(userID, []string{"owner"}).Return("access", "refresh", nil)
	f.tokenService.EXPECT().HashToken("refresh").Return("h")
	f.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	f.profileCache.EXPECT().Set(ctx, user).Return(errors.New("redis down"))

	out, err := f.service.SignIn(ctx, &usecase.SignInInput{IDToken: "id-token"})
	require.NoError(t, err)
	assert.False(t, out.IsNewUser)
	assert.Equal(t, entity.SessionAuthenticated, out.State)
	assert.Equal(t, "Asha", out.User.Name)
}

func TestSessionService_SignIn_VerificationFails(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	f.verifier.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, errors.New("token expired"))

	out, err := f.service.SignIn(ctx, &usecase.SignInInput{IDToken: "bad"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrAuthFailed)
}

func TestSessionService_SignIn_TransactionFails(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	f.verifier.EXPECT().VerifyIDToken(ctx, "id-token").Return(&service.Identity{UID: "uid"}, nil)
	runInTx(t, f.txManager, func(_ *mockRepo.MockUserRepository, authRepo *mockRepo.MockAuthRepository, _ *mockRepo.MockRefreshTokenRepository) {
		authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeFirebase, "uid").Return(nil, errors.New("connection reset"))
	})

	_, err := f.service.SignIn(ctx, &usecase.SignInInput{IDToken: "id-token"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestSessionService_Refresh_Success(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Role: entity.RoleUser, City: "Delhi"}

	f.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
	f.tokenService.EXPECT().HashToken("refresh").Return("h")
	f.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "h").
		Return(&entity.RefreshToken{UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	f.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	f.tokenService.EXPECT().GenerateAccessToken(userID, []string{"user"}).Return("new-access", nil)

	out, err := f.service.Refresh(ctx, "refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
	assert.Equal(t, entity.SessionAuthenticated, out.State)
}

func TestSessionService_Refresh_RevokedToken(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: userID}, nil)
	f.tokenService.EXPECT().HashToken("refresh").Return("h")
	f.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "h").Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := f.service.Refresh(ctx, "refresh")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestSessionService_Refresh_ForeignOrExpiredToken(t *testing.T) {
	tests := []struct {
		name   string
		stored func(userID uuid.UUID) *entity.RefreshToken
	}{
		{
			name: "other user",
			stored: func(uuid.UUID) *entity.RefreshToken {
				return &entity.RefreshToken{UserID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}
			},
		},
		{
			name: "expired",
			stored: func(userID uuid.UUID) *entity.RefreshToken {
				return &entity.RefreshToken{UserID: userID, ExpiresAt: time.Now().Add(-time.Minute)}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestSessionService(t)
			ctx := context.Background()
			userID := uuid.New()

			f.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: userID}, nil)
			f.tokenService.EXPECT().HashToken("refresh").Return("h")
			f.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "h").Return(tt.stored(userID), nil)

			_, err := f.service.Refresh(ctx, "refresh")
			assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
		})
	}
}

func TestSessionService_Refresh_FallsBackToCachedProfile(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	userID := uuid.New()
	cached := &entity.User{ID: userID, Role: entity.RoleOwner, City: "Pune"}

	f.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: userID}, nil)
	f.tokenService.EXPECT().HashToken("refresh").Return("h")
	f.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "h").
		Return(&entity.RefreshToken{UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	f.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, errors.New("db down"))
	f.profileCache.EXPECT().Get(ctx, userID).Return(cached, nil)
	f.tokenService.EXPECT().GenerateAccessToken(userID, []string{"owner"}).Return("access", nil)

	out, err := f.service.Refresh(ctx, "refresh")
	require.NoError(t, err)
	assert.Equal(t, cached, out.User)
}

func TestSessionService_Refresh_ProfileUnavailable(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: userID}, nil)
	f.tokenService.EXPECT().HashToken("refresh").Return("h")
	f.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "h").
		Return(&entity.RefreshToken{UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	f.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, errors.New("db down"))
	f.profileCache.EXPECT().Get(ctx, userID).Return(nil, service.ErrProfileCacheMiss)

	_, err := f.service.Refresh(ctx, "refresh")
	assert.ErrorIs(t, err, domainerrors.ErrProfileUnavailable)
}

func TestSessionService_SignOut_DeletesSession(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.tokenService.EXPECT().HashToken("refresh").Return("h")
	f.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "h").Return(&entity.RefreshToken{UserID: userID}, nil)
	f.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "h").Return(nil)
	f.profileCache.EXPECT().Delete(ctx, userID).Return(nil)

	state, err := f.service.SignOut(ctx, userID, "refresh")
	require.NoError(t, err)
	assert.Equal(t, entity.SessionSignedOut, state)
}

func TestSessionService_SignOut_AllSessions(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.refreshTokenRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)
	f.profileCache.EXPECT().Delete(ctx, userID).Return(errors.New("redis down"))

	state, err := f.service.SignOut(ctx, userID, "")
	require.NoError(t, err)
	assert.Equal(t, entity.SessionSignedOut, state)
}

func TestSessionService_SignOut_ForeignToken(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.tokenService.EXPECT().HashToken("refresh").Return("h")
	f.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "h").Return(&entity.RefreshToken{UserID: uuid.New()}, nil)

	_, err := f.service.SignOut(ctx, userID, "refresh")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestSessionService_PruneExpiredSessions(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	f.refreshTokenRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(int64(3), nil)

	count, err := f.service.PruneExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
