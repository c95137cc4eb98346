package impl

import (
	"context"
	"log/slog"
	"strings"
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

const (
	warnProfileFromCache      = "profile served from cache, the database is unavailable"
	warnProfileRestored       = "profile restored from cache"
	warnProfileNotPersisted   = "profile saved in cache only, it is written to the database on the next profile read that reaches it"
	warnProfileWrittenBack    = "profile changes saved while the database was unavailable have now been stored"
	warnPendingProfileDropped = "profile changes saved while the database was unavailable were replaced by a newer stored profile, sign in again to refresh your access"
)

// profileService implements the ProfileUsecase interface.
// PostgreSQL is authoritative. The cache is refreshed on every successful read and write, and
// holds a pending copy of any edit the database rejected until a later read writes it back.
type profileService struct {
	userRepo     repository.UserRepository
	cityRepo     repository.CityRepository
	profileCache service.ProfileCache
	tokenService service.TokenService
	logger       *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	CityRepo     repository.CityRepository
	ProfileCache service.ProfileCache
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:     params.UserRepo,
		cityRepo:     params.CityRepo,
		profileCache: params.ProfileCache,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile reads the profile through the cache.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err == nil {
		return srv.reconcilePending(ctx, user), nil
	}

	if errors.Is(err, repository.ErrUserNotFound) {
		return srv.restoreFromCache(ctx, userID)
	}

	srv.log(ctx).Warn("Failed to read profile from database", slog.Any("userID", userID), slog.Any("error", err))

	cached, cacheErr := srv.profileCache.Get(ctx, userID)
	if cacheErr != nil {
		return nil, errors.Wrap(domainerrors.ErrProfileUnavailable, err.Error())
	}

	return &usecase.ProfileOutput{
		User:    cached,
		Source:  usecase.ProfileSourceCache,
		Warning: warnProfileFromCache,
	}, nil
}

// reconcilePending compares an unsaved cached edit with the stored row. A newer edit is written
// back. An edit older than the row is dropped, and the caller is told.
func (srv *profileService) reconcilePending(ctx context.Context, stored *entity.User) *usecase.ProfileOutput {
	fromDB := &usecase.ProfileOutput{User: stored, Source: usecase.ProfileSourceDatabase}

	pending, err := srv.profileCache.GetPending(ctx, stored.ID)
	switch {
	case errors.Is(err, service.ErrProfileCacheMiss):
		srv.refreshCache(ctx, stored)

		return fromDB
	case err != nil:
		// Leave the cache alone, it may still hold the only copy of an edit.
		srv.log(ctx).Warn("Failed to check pending profile", slog.Any("userID", stored.ID), slog.Any("error", err))

		return fromDB
	case pending.UpdatedAt.After(stored.UpdatedAt):
		if err := srv.userRepo.Update(ctx, pending); err != nil {
			srv.log(ctx).Warn("Failed to write back pending profile", slog.Any("userID", stored.ID), slog.Any("error", err))

			return &usecase.ProfileOutput{User: pending, Source: usecase.ProfileSourceCache, Warning: warnProfileNotPersisted}
		}
		srv.clearPending(ctx, stored.ID)
		srv.refreshCache(ctx, pending)
		srv.log(ctx).Info("Pending profile written back", slog.Any("userID", stored.ID))

		return &usecase.ProfileOutput{User: pending, Source: usecase.ProfileSourceDatabase, Warning: warnProfileWrittenBack}
	default:
		srv.clearPending(ctx, stored.ID)
		srv.refreshCache(ctx, stored)
		if pending.UpdatedAt.Equal(stored.UpdatedAt) {
			return fromDB
		}
		srv.log(ctx).Warn("Dropped pending profile older than stored row",
			slog.Any("userID", stored.ID),
			slog.Time("pendingAt", pending.UpdatedAt),
			slog.Time("storedAt", stored.UpdatedAt),
		)
		fromDB.Warning = warnPendingProfileDropped

		return fromDB
	}
}

// restoreFromCache writes a complete cached profile back when its database row is missing.
// An existing row is never overwritten.
func (srv *profileService) restoreFromCache(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	cached, err := srv.profileCache.Get(ctx, userID)
	if err != nil || !cached.IsProfileComplete() {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "no stored profile")
	}

	inserted, err := srv.userRepo.CreateIfNotExists(ctx, cached)
	if err != nil {
		srv.log(ctx).Warn("Failed to restore profile from cache", slog.Any("userID", userID), slog.Any("error", err))

		return &usecase.ProfileOutput{User: cached, Source: usecase.ProfileSourceCache, Warning: warnProfileFromCache}, nil
	}

	if !inserted {
		// Someone else created the row in between; that row wins.
		user, err := srv.userRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrProfileUnavailable, err.Error())
		}
		srv.refreshCache(ctx, user)

		return &usecase.ProfileOutput{User: user, Source: usecase.ProfileSourceDatabase}, nil
	}

	srv.clearPending(ctx, userID)
	srv.log(ctx).Info("Restored profile from cache", slog.Any("userID", userID))

	return &usecase.ProfileOutput{User: cached, Source: usecase.ProfileSourceDatabase, Warning: warnProfileRestored}, nil
}

// UpdateUserRole completes or edits a profile. The write goes to PostgreSQL first, then to the cache.
func (srv *profileService) UpdateUserRole(ctx context.Context, userID uuid.UUID, input *usecase.UpdateUserRoleInput) (*usecase.UpdateUserRoleOutput, error) {
	city, err := srv.validateRoleInput(ctx, input)
	if err != nil {
		return nil, err
	}

	user, stored, err := srv.loadForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	changed := applyProfileInput(user, input.Role, city, input.Name)

	// A stored row that already holds these values is not written again.
	persisted := true
	if changed || !stored {
		user.UpdatedAt = time.Now()
		if err := srv.persist(ctx, user); err != nil {
			persisted = false
			srv.log(ctx).Error("Failed to persist profile, keeping it in cache", slog.Any("userID", userID), slog.Any("error", err))
		}
	}

	if persisted {
		srv.clearPending(ctx, userID)
		srv.refreshCache(ctx, user)
	} else if err := srv.profileCache.SetPending(ctx, user); err != nil {
		return nil, errors.Wrap(domainerrors.ErrUserUpdateFailed, err.Error())
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	output := &usecase.UpdateUserRoleOutput{
		User:        user,
		AccessToken: accessToken,
		Persisted:   persisted,
		State:       entity.SessionAuthenticated,
	}
	if !persisted {
		output.Warning = warnProfileNotPersisted
	}

	srv.log(ctx).Info("Profile updated",
		slog.Any("userID", userID),
		slog.String("role", user.Role.String()),
		slog.String("city", user.City),
		slog.Bool("persisted", persisted),
	)

	return output, nil
}

func (srv *profileService) validateRoleInput(ctx context.Context, input *usecase.UpdateUserRoleInput) (string, error) {
	fields := map[string]string{}
	if !input.Role.IsValid() {
		fields["role"] = "role must be user or owner"
	}

	city := strings.TrimSpace(input.City)
	switch {
	case city == "":
		fields["city"] = "city is required"
	case !srv.isKnownCity(ctx, city):
		fields["city"] = "city is not supported"
	}

	if len(fields) > 0 {
		return "", domainerrors.NewValidationError(fields)
	}

	return city, nil
}

func (srv *profileService) isKnownCity(ctx context.Context, name string) bool {
	return knownCity(ctx, srv.cityRepo, name, srv.log(ctx))
}

// loadForUpdate returns the stored user, or the cached one while the database is unavailable.
// stored reports whether user is the database row.
func (srv *profileService) loadForUpdate(ctx context.Context, userID uuid.UUID) (user *entity.User, stored bool, err error) {
	user, err = srv.userRepo.FindByID(ctx, userID)
	if err == nil {
		return user, true, nil
	}

	cached, cacheErr := srv.profileCache.Get(ctx, userID)
	if cacheErr == nil {
		return cached, false, nil
	}

	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, errors.Wrap(domainerrors.ErrUserNotFound, "profile does not exist")
	}

	srv.log(ctx).Warn("Profile unavailable, continuing with session identity", slog.Any("userID", userID), slog.Any("error", err))

	return &entity.User{ID: userID, CreatedAt: time.Now()}, false, nil
}

// applyProfileInput sets the role, city and display fields and reports whether any of them changed.
func applyProfileInput(user *entity.User, role entity.Role, city, name string) bool {
	before := *user

	user.Role = role
	user.City = city
	if name = strings.TrimSpace(name); name != "" {
		user.Name = name
	} else if strings.TrimSpace(user.Name) == "" {
		user.Name = entity.DefaultDisplayName(user.ID, role)
	}
	if user.Email == "" {
		user.Email = entity.DefaultEmail(user.ID)
	}

	return user.Role != before.Role || user.City != before.City ||
		user.Name != before.Name || user.Email != before.Email
}

func (srv *profileService) persist(ctx context.Context, user *entity.User) error {
	err := srv.userRepo.Update(ctx, user)
	if errors.Is(err, repository.ErrUserNotFound) {
		_, err = srv.userRepo.CreateIfNotExists(ctx, user)
	}

	return err
}

func (srv *profileService) clearPending(ctx context.Context, userID uuid.UUID) {
	if err := srv.profileCache.ClearPending(ctx, userID); err != nil {
		srv.log(ctx).Warn("Failed to clear pending profile", slog.Any("userID", userID), slog.Any("error", err))
	}
}

func (srv *profileService) refreshCache(ctx context.Context, user *entity.User) {
	if err := srv.profileCache.Set(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to refresh cached profile", slog.Any("userID", user.ID), slog.Any("error", err))
	}
}
