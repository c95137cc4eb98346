package impl

import (
	"context"
	"log/slog"
	"strings"

	"localdeal/config"
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

type offerService struct {
	offerRepo    repository.OfferRepository
	businessRepo repository.BusinessRepository
	qrcode       service.QRCodeService
	presenter    offerPresenter
	logger       *slog.Logger
}

// OfferServiceParams holds dependencies for OfferService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	OfferRepo    repository.OfferRepository
	BusinessRepo repository.BusinessRepository
	QRCode       service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewOfferService creates the read side of offers.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	return &offerService{
		offerRepo:    params.OfferRepo,
		businessRepo: params.BusinessRepo,
		qrcode:       params.QRCode,
		presenter:    newOfferPresenter(params.Config),
		logger:       params.Logger,
	}
}

func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOffers fetches the city-scoped offers and applies the search term in memory.
func (srv *offerService) ListOffers(ctx context.Context, query *usecase.OfferQuery) ([]*usecase.OfferDetail, error) {
	if strings.TrimSpace(query.City) == "" {
		return []*usecase.OfferDetail{}, nil
	}

	filter := repository.OfferFilter{
		City:     query.City,
		Category: entity.NormalizeCategoryFilter(query.Category),
	}

	offers, err := srv.offerRepo.FindByCity(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to query offers", slog.String("city", query.City), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOffersUnavailable, err.Error())
	}

	businesses, err := loadBusinesses(ctx, srv.businessRepo, offers)
	if err != nil {
		srv.log(ctx).Error("Failed to load offer businesses", slog.String("city", query.City), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOffersUnavailable, err.Error())
	}

	matched := make([]*entity.Offer, 0, len(offers))
	for _, offer := range offers {
		var businessName string
		if b, ok := businesses[offer.BusinessID]; ok {
			businessName = b.Name
		}
		if entity.MatchesSearch(offer, businessName, query.Search) {
			matched = append(matched, offer)
		}
	}

	srv.log(ctx).Debug("Listed offers",
		slog.String("city", query.City),
		slog.String("category", filter.Category),
		slog.Int("fetched", len(offers)),
		slog.Int("matched", len(matched)),
	)

	return srv.presenter.details(matched, businesses), nil
}

func (srv *offerService) GetOffer(ctx context.Context, offerID uuid.UUID) (*usecase.OfferDetail, error) {
	offer, err := findOffer(ctx, srv.offerRepo, offerID)
	if err != nil {
		return nil, err
	}

	business, err := srv.businessRepo.FindByID(ctx, offer.BusinessID)
	if err != nil && !errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, errors.Wrap(domainerrors.ErrOffersUnavailable, err.Error())
	}

	return srv.presenter.detail(offer, business), nil
}

func (srv *offerService) ListBusinessOffers(ctx context.Context, businessID uuid.UUID) ([]*usecase.OfferDetail, error) {
	business, err := srv.businessRepo.FindByID(ctx, businessID)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, errors.Wrap(domainerrors.ErrBusinessNotFound, businessID.String())
	}
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOffersUnavailable, err.Error())
	}

	offers, err := srv.offerRepo.FindByBusinessID(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOffersUnavailable, err.Error())
	}

	return srv.presenter.details(offers, map[uuid.UUID]*entity.Business{business.ID: business}), nil
}

func (srv *offerService) GenerateOfferQR(ctx context.Context, offerID uuid.UUID) ([]byte, error) {
	offer, err := findOffer(ctx, srv.offerRepo, offerID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GeneratePNG(srv.presenter.shareURL(offer.ID))
	if err != nil {
		srv.log(ctx).Error("Failed to generate offer QR code", slog.Any("offerID", offerID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrQRCodeFailed, err.Error())
	}

	return png, nil
}

// findOffer maps repository errors of an offer lookup to application errors.
func findOffer(ctx context.Context, repo repository.OfferRepository, offerID uuid.UUID) (*entity.Offer, error) {
	offer, err := repo.FindByID(ctx, offerID)
	if errors.Is(err, repository.ErrOfferNotFound) {
		return nil, errors.Wrap(domainerrors.ErrOfferNotFound, offerID.String())
	}
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOffersUnavailable, err.Error())
	}

	return offer, nil
}
