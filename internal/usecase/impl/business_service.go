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
	"localdeal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type businessService struct {
	businessRepo repository.BusinessRepository
	cityRepo     repository.CityRepository
	txManager    repository.TransactionManager
	countryCode  string
	logger       *slog.Logger
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	CityRepo     repository.CityRepository
	TxManager    repository.TransactionManager
	Config       *config.Config
	Logger       *slog.Logger
}

// NewBusinessService creates the business profile use case.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	srv := &businessService{
		businessRepo: params.BusinessRepo,
		cityRepo:     params.CityRepo,
		txManager:    params.TxManager,
		logger:       params.Logger,
	}
	if params.Config != nil && params.Config.Contact != nil {
		srv.countryCode = params.Config.Contact.CountryCode
	}

	return srv
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *businessService) detail(business *entity.Business) *usecase.BusinessDetail {
	return &usecase.BusinessDetail{
		Business: business,
		Contact:  entity.BusinessContactLinks(business, srv.countryCode, entity.BusinessWhatsAppMessage),
	}
}

func (srv *businessService) GetMyBusiness(ctx context.Context, ownerID uuid.UUID) (*usecase.BusinessDetail, error) {
	business, err := srv.businessRepo.FindByOwnerID(ctx, ownerID)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, domainerrors.ErrBusinessNotFound.WrapMessage("owner has no business yet")
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load business")
	}

	return srv.detail(business), nil
}

// SaveMyBusiness creates the owner's single business on first save and updates it afterwards.
func (srv *businessService) SaveMyBusiness(ctx context.Context, ownerID uuid.UUID, form *entity.BusinessForm) (*usecase.SaveBusinessOutput, error) {
	normalized := form.Normalize()
	result := entity.ValidateBusinessForm(normalized)
	if normalized.City != "" && !srv.isKnownCity(ctx, normalized.City) {
		if result.FieldErrors == nil {
			result.FieldErrors = make(map[string]string)
		}
		result.FieldErrors["city"] = "city must be one of the supported cities"
	}
	if !result.Valid() {
		return nil, domainerrors.NewValidationError(result.FieldErrors)
	}

	business, err := srv.businessRepo.FindByOwnerID(ctx, ownerID)
	switch {
	case errors.Is(err, repository.ErrBusinessNotFound):
		business = &entity.Business{ID: uuid.New(), OwnerID: ownerID}
		business.ApplyForm(normalized, srv.countryCode)
		if err := srv.businessRepo.Create(ctx, business); err != nil {
			if errors.Is(err, repository.ErrBusinessAlreadyExists) {
				return nil, domainerrors.ErrConflict.WrapMessage("owner already has a business")
			}

			return nil, domainerrors.WrapDatabaseError(err, "failed to create business")
		}

		srv.log(ctx).Info("Business created", slog.Any("businessID", business.ID), slog.Any("ownerID", ownerID))

		return &usecase.SaveBusinessOutput{Business: srv.detail(business), Created: true}, nil
	case err != nil:
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load business")
	}

	previousCity := business.City
	business.ApplyForm(normalized, srv.countryCode)
	if business.City == previousCity {
		if err := srv.businessRepo.Update(ctx, business); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update business")
		}

		return &usecase.SaveBusinessOutput{Business: srv.detail(business)}, nil
	}

	if err := srv.relocate(ctx, business, previousCity); err != nil {
		return nil, err
	}

	return &usecase.SaveBusinessOutput{Business: srv.detail(business)}, nil
}

// relocate updates the business and moves its offers to the new city in one transaction,
// so city listings never show them apart.
func (srv *businessService) relocate(ctx context.Context, business *entity.Business, previousCity string) error {
	var moved int64
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.NewBusinessRepository().Update(ctx, business); err != nil {
			return err
		}

		var err error
		moved, err = repos.NewOfferRepository().MoveToCity(ctx, business.ID, business.City)

		return err
	})
	if err != nil {
		return domainerrors.WrapDatabaseError(err, "failed to move business to new city")
	}

	srv.log(ctx).Info("Business moved",
		slog.Any("businessID", business.ID),
		slog.String("from", previousCity),
		slog.String("to", business.City),
		slog.Int64("offers", moved),
	)

	return nil
}

func (srv *businessService) GetBusiness(ctx context.Context, businessID uuid.UUID) (*usecase.BusinessDetail, error) {
	business, err := srv.businessRepo.FindByID(ctx, businessID)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, errors.Wrap(domainerrors.ErrBusinessNotFound, businessID.String())
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load business")
	}

	return srv.detail(business), nil
}

func (srv *businessService) ListBusinesses(ctx context.Context, city string) ([]*usecase.BusinessDetail, error) {
	if strings.TrimSpace(city) == "" {
		return []*usecase.BusinessDetail{}, nil
	}

	businesses, err := srv.businessRepo.FindByCity(ctx, city)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list businesses")
	}

	result := make([]*usecase.BusinessDetail, 0, len(businesses))
	for _, b := range businesses {
		result = append(result, srv.detail(b))
	}

	return result, nil
}

// isKnownCity falls back to the built-in city list when the catalogue cannot be read.
func (srv *businessService) isKnownCity(ctx context.Context, city string) bool {
	return knownCity(ctx, srv.cityRepo, city, srv.log(ctx))
}
