package impl

import (
	"context"
	"testing"

	"localdeal/internal/domain/entity"
	domainerrors "localdeal/internal/domain/errors"
	mockRepo "localdeal/internal/mocks/repository"
	"localdeal/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cityServiceFixtures struct {
	service  usecase.CityUsecase
	cityRepo *mockRepo.MockCityRepository
}

func createTestCityService(t *testing.T) cityServiceFixtures {
	cityRepo := mockRepo.NewMockCityRepository(t)

	return cityServiceFixtures{
		service:  NewCityService(CityServiceParams{CityRepo: cityRepo, Logger: newDiscardLogger()}),
		cityRepo: cityRepo,
	}
}

func TestCityService_ListCities_FallsBackToBuiltInList(t *testing.T) {
	f := createTestCityService(t)
	ctx := context.Background()

	f.cityRepo.EXPECT().List(ctx).Return(nil, errors.New("db down")).Once()
	cities, err := f.service.ListCities(ctx)
	require.NoError(t, err)
	assert.Len(t, cities, len(entity.DefaultCities))

	f.cityRepo.EXPECT().List(ctx).Return([]*entity.City{{Name: "Pune"}}, nil).Once()
	cities, err = f.service.ListCities(ctx)
	require.NoError(t, err)
	assert.Len(t, cities, 1)
}

func TestCityService_NearestCity(t *testing.T) {
	f := createTestCityService(t)
	ctx := context.Background()

	f.cityRepo.EXPECT().List(ctx).Return([]*entity.City{
		{Name: "Mumbai", Latitude: 19.0760, Longitude: 72.8777},
		{Name: "Pune", Latitude: 18.5204, Longitude: 73.8567},
	}, nil)

	// Lonavala sits between the two, closer to Pune.
	out, err := f.service.NearestCity(ctx, 18.7546, 73.4062)
	require.NoError(t, err)
	assert.Equal(t, "Pune", out.City.Name)
	assert.Greater(t, out.DistanceMeters, 40000.0)
	assert.Less(t, out.DistanceMeters, 60000.0)
}

func TestCityService_NearestCity_InvalidCoordinates(t *testing.T) {
	f := createTestCityService(t)

	_, err := f.service.NearestCity(context.Background(), 91, 0)

	var validationErr *domainerrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCityService_SeedCities(t *testing.T) {
	f := createTestCityService(t)
	ctx := context.Background()

	f.cityRepo.EXPECT().Upsert(ctx, entity.DefaultCities).Return(nil)

	n, err := f.service.SeedCities(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(entity.DefaultCities), n)
}
