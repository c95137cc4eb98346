package impl

import (
	"context"
	"log/slog"

	"localdeal/config"
	deliverycontext "localdeal/internal/delivery/context"
	"localdeal/internal/domain/entity"
	domainerrors "localdeal/internal/domain/errors"
	"localdeal/internal/domain/repository"
	"localdeal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	offerRepo    repository.OfferRepository
	businessRepo repository.BusinessRepository
	presenter    offerPresenter
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	OfferRepo    repository.OfferRepository
	BusinessRepo repository.BusinessRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewFavoriteService creates the bookmark use case.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		offerRepo:    params.OfferRepo,
		businessRepo: params.BusinessRepo,
		presenter:    newOfferPresenter(params.Config),
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Toggle removes the user's favorite for the offer if present and creates it otherwise.
func (srv *favoriteService) Toggle(ctx context.Context, userID, offerID uuid.UUID) (*usecase.FavoriteStatus, error) {
	if _, err := findOffer(ctx, srv.offerRepo, offerID); err != nil {
		return nil, err
	}

	key := entity.FavoriteKey(userID, offerID)
	_, err := srv.favoriteRepo.FindByKey(ctx, key)
	switch {
	case err == nil:
		if err := srv.favoriteRepo.DeleteByKey(ctx, key); err != nil && !errors.Is(err, repository.ErrFavoriteNotFound) {
			return nil, domainerrors.WrapDatabaseError(err, "failed to remove favorite")
		}

		srv.log(ctx).Debug("Favorite removed", slog.String("key", key))

		return &usecase.FavoriteStatus{OfferID: offerID, IsFavorite: false}, nil
	case !errors.Is(err, repository.ErrFavoriteNotFound):
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load favorite")
	}

	if err := srv.favoriteRepo.Create(ctx, entity.NewFavorite(userID, offerID)); err != nil && !errors.Is(err, repository.ErrDuplicateFavorite) {
		return nil, domainerrors.WrapDatabaseError(err, "failed to add favorite")
	}

	srv.log(ctx).Debug("Favorite added", slog.String("key", key))

	return &usecase.FavoriteStatus{OfferID: offerID, IsFavorite: true}, nil
}

func (srv *favoriteService) Status(ctx context.Context, userID, offerID uuid.UUID) (*usecase.FavoriteStatus, error) {
	_, err := srv.favoriteRepo.FindByKey(ctx, entity.FavoriteKey(userID, offerID))
	if err == nil {
		return &usecase.FavoriteStatus{OfferID: offerID, IsFavorite: true}, nil
	}
	if errors.Is(err, repository.ErrFavoriteNotFound) {
		return &usecase.FavoriteStatus{OfferID: offerID, IsFavorite: false}, nil
	}

	return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load favorite")
}

// List keeps the favorite order (newest first) and skips offers deleted in the meantime.
func (srv *favoriteService) List(ctx context.Context, userID uuid.UUID) ([]*usecase.OfferDetail, error) {
	favorites, err := srv.favoriteRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOffersUnavailable, err.Error())
	}
	if len(favorites) == 0 {
		return []*usecase.OfferDetail{}, nil
	}

	ids := make([]uuid.UUID, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.OfferID)
	}

	offers, err := srv.offerRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOffersUnavailable, err.Error())
	}

	byID := make(map[uuid.UUID]*entity.Offer, len(offers))
	for _, o := range offers {
		byID[o.ID] = o
	}

	ordered := make([]*entity.Offer, 0, len(offers))
	for _, f := range favorites {
		if o, ok := byID[f.OfferID]; ok {
			ordered = append(ordered, o)
		}
	}

	businesses, err := loadBusinesses(ctx, srv.businessRepo, ordered)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOffersUnavailable, err.Error())
	}

	return srv.presenter.details(ordered, businesses), nil
}
