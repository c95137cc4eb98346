package impl

import (
	"context"
	"log/slog"

	deliverycontext "localdeal/internal/delivery/context"
	"localdeal/internal/domain/entity"
	domainerrors "localdeal/internal/domain/errors"
	"localdeal/internal/domain/repository"
	"localdeal/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cityService struct {
	cityRepo repository.CityRepository
	logger   *slog.Logger
}

// CityServiceParams holds dependencies for CityService, injected by Fx.
type CityServiceParams struct {
	fx.In

	CityRepo repository.CityRepository
	Logger   *slog.Logger
}

// NewCityService creates the city catalogue use case.
func NewCityService(params CityServiceParams) usecase.CityUsecase {
	return &cityService{
		cityRepo: params.CityRepo,
		logger:   params.Logger,
	}
}

func (srv *cityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCities returns the catalogue, or the built-in list when the catalogue is empty or unreadable.
func (srv *cityService) ListCities(ctx context.Context) ([]*entity.City, error) {
	cities, err := srv.cityRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to list cities, using built-in list", slog.Any("error", err))

		return defaultCityList(), nil
	}
	if len(cities) == 0 {
		return defaultCityList(), nil
	}

	return cities, nil
}

func (srv *cityService) NearestCity(ctx context.Context, lat, lon float64) (*usecase.NearestCityOutput, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, domainerrors.NewValidationError(map[string]string{
			"coordinates": "lat must be within [-90, 90] and lon within [-180, 180]",
		})
	}

	cities, err := srv.ListCities(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]entity.City, 0, len(cities))
	for _, c := range cities {
		candidates = append(candidates, *c)
	}

	nearest, distance, ok := entity.NearestCity(candidates, lat, lon)
	if !ok {
		return nil, domainerrors.ErrCityNotFound
	}

	return &usecase.NearestCityOutput{City: &nearest, DistanceMeters: distance}, nil
}

// SeedCities upserts the built-in city list.
func (srv *cityService) SeedCities(ctx context.Context) (int, error) {
	if err := srv.cityRepo.Upsert(ctx, entity.DefaultCities); err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to seed cities")
	}

	srv.log(ctx).Info("Seeded cities", slog.Int("count", len(entity.DefaultCities)))

	return len(entity.DefaultCities), nil
}

func defaultCityList() []*entity.City {
	cities := make([]*entity.City, 0, len(entity.DefaultCities))
	for i := range entity.DefaultCities {
		c := entity.DefaultCities[i]
		cities = append(cities, &c)
	}

	return cities
}

// knownCity checks the city table and falls back to the built-in list when it cannot be read.
func knownCity(ctx context.Context, repo repository.CityRepository, name string, logger *slog.Logger) bool {
	_, err := repo.FindByName(ctx, name)
	if err == nil {
		return true
	}
	if errors.Is(err, repository.ErrCityNotFound) {
		return false
	}

	logger.Warn("Failed to look up city, using built-in list", slog.String("city", name), slog.Any("error", err))
	for _, c := range entity.DefaultCities {
		if c.Name == name {
			return true
		}
	}

	return false
}
