// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "localdeal/internal/delivery/context"
	"localdeal/internal/domain/entity"
	domainerrors "localdeal/internal/domain/errors"
	"localdeal/internal/domain/repository"
	"localdeal/internal/domain/service"
	"localdeal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	verifier         service.IdentityVerifier
	tokenService     service.TokenService
	profileCache     service.ProfileCache
	logger           *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Verifier         service.IdentityVerifier
	TokenService     service.TokenService
	ProfileCache     service.ProfileCache
	Logger           *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		verifier:         params.Verifier,
		tokenService:     params.TokenService,
		profileCache:     params.ProfileCache,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn verifies the Firebase ID token and finds or creates the matching user in one transaction.
func (srv *sessionService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SessionOutput, error) {
	identity, err := srv.verifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("ID token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrAuthFailed, err.Error())
	}

	var output *usecase.SessionOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, isNew, err := srv.findOrCreateUser(ctx, repoFactory, identity)
		if err != nil {
			return err
		}

		accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		now := time.Now()
		record := &entity.RefreshToken{
			ID:        uuid.New(),
			UserID:    user.ID,
			TokenHash: srv.tokenService.HashToken(refreshToken),
			ExpiresAt: now.Add(srv.tokenService.GetRefreshTokenDuration()),
			CreatedAt: now,
		}
		if err := repoFactory.NewRefreshTokenRepository().CreateRefreshToken(ctx, record); err != nil {
			return errors.Wrap(err, "failed to store refresh token")
		}

		output = &usecase.SessionOutput{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			User:         user,
			State:        entity.SessionStateFor(user),
			IsNewUser:    isNew,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute sign-in transaction", slog.String("uid", identity.UID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to sign in")
	}

	if err := srv.profileCache.Set(ctx, output.User); err != nil {
		srv.log(ctx).Warn("Failed to cache profile after sign-in", slog.Any("userID", output.User.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("User signed in",
		slog.Any("userID", output.User.ID),
		slog.String("signInMethod", identity.SignInMethod),
		slog.Bool("isNewUser", output.IsNewUser),
		slog.String("state", string(output.State)),
	)

	return output, nil
}

func (srv *sessionService) findOrCreateUser(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	identity *service.Identity,
) (*entity.User, bool, error) {
	userRepo := repoFactory.NewUserRepository()
	authRepo := repoFactory.NewAuthRepository()

	authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeFirebase, identity.UID)
	if errors.Is(err, repository.ErrAuthNotFound) {
		user, err := srv.createUser(ctx, userRepo, authRepo, identity)

		return user, true, err
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to find authentication")
	}

	user, err := userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to find user for authentication")
	}

	// An anonymous account linked to Google keeps its UID but gains an email.
	if authRecord.SignInMethod != identity.SignInMethod {
		if err := authRepo.UpdateSignInMethod(ctx, authRecord.ID, identity.SignInMethod); err != nil {
			return nil, false, errors.Wrap(err, "failed to update sign-in method")
		}
	}
	if identity.Email != "" && (user.Email == "" || user.Email == entity.DefaultEmail(user.ID)) {
		user.Email = identity.Email
		if user.Name == "" {
			user.Name = identity.Name
		}
		if err := userRepo.Update(ctx, user); err != nil {
			return nil, false, errors.Wrap(err, "failed to update user email")
		}
	}

	return user, false, nil
}

func (srv *sessionService) createUser(
	ctx context.Context,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	identity *service.Identity,
) (*entity.User, error) {
	now := time.Now()
	user := &entity.User{
		ID:        uuid.New(),
		Name:      identity.Name,
		Email:     identity.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	authRecord := &entity.Authentication{
		ID:             uuid.New(),
		UserID:         user.ID,
		Provider:       entity.ProviderTypeFirebase,
		ProviderUserID: identity.UID,
		SignInMethod:   identity.SignInMethod,
		CreatedAt:      now,
	}
	if err := authRepo.CreateAuthentication(ctx, authRecord); err != nil {
		return nil, errors.Wrap(err, "failed to create authentication")
	}

	return user, nil
}

// Refresh validates the refresh token against its stored hash and issues a new access token.
func (srv *sessionService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken))
	if errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token was revoked")
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find refresh token")
	}
	if stored.UserID != claims.UserID || stored.ExpiresAt.Before(time.Now()) {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token does not match session")
	}

	user, err := srv.currentUser(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.RefreshOutput{
		AccessToken: accessToken,
		User:        user,
		State:       entity.SessionStateFor(user),
	}, nil
}

// currentUser reads the user from the database and falls back to the cached profile.
func (srv *sessionService) currentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err == nil {
		return user, nil
	}
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "user no longer exists")
	}

	cached, cacheErr := srv.profileCache.Get(ctx, userID)
	if cacheErr != nil {
		srv.log(ctx).Error("Failed to load user for refresh", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrProfileUnavailable, err.Error())
	}

	srv.log(ctx).Warn("Using cached profile for refresh", slog.Any("userID", userID), slog.Any("error", err))

	return cached, nil
}

// SignOut deletes the session of refreshToken, or every session of the user when no token is given.
func (srv *sessionService) SignOut(ctx context.Context, userID uuid.UUID, refreshToken string) (entity.SessionState, error) {
	if refreshToken == "" {
		if err := srv.refreshTokenRepo.DeleteRefreshTokensByUserID(ctx, userID); err != nil {
			return "", domainerrors.NewDatabaseExecuteError(err, "failed to delete refresh tokens")
		}
	} else {
		hash := srv.tokenService.HashToken(refreshToken)
		stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, hash)
		switch {
		case errors.Is(err, repository.ErrRefreshTokenNotFound):
			srv.log(ctx).Debug("Refresh token already gone at sign-out", slog.Any("userID", userID))
		case err != nil:
			return "", domainerrors.NewDatabaseExecuteError(err, "failed to find refresh token")
		case stored.UserID != userID:
			return "", errors.Wrap(domainerrors.ErrForbidden, "refresh token belongs to another user")
		default:
			if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, hash); err != nil &&
				!errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return "", domainerrors.NewDatabaseExecuteError(err, "failed to delete refresh token")
			}
		}
	}

	if err := srv.profileCache.Delete(ctx, userID); err != nil {
		srv.log(ctx).Warn("Failed to clear cached profile at sign-out", slog.Any("userID", userID), slog.Any("error", err))
	}

	srv.log(ctx).Info("User signed out", slog.Any("userID", userID))

	return entity.SessionSignedOut, nil
}

// PruneExpiredSessions deletes refresh tokens past their expiry.
func (srv *sessionService) PruneExpiredSessions(ctx context.Context) (int64, error) {
	count, err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired refresh tokens")
	}

	srv.log(ctx).Info("Pruned expired refresh tokens", slog.Int64("count", count))

	return count, nil
}
