package handler

import (
	"net/http"
	"testing"

	"localdeal/internal/domain/entity"
	mockUsecase "localdeal/internal/mocks/usecase"
	"localdeal/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCityHandler_NearestCity(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setupMock  func(m *mockUsecase.MockCityUsecase)
		wantStatus int
		wantCity   string
	}{
		{
			name:  "inside pune",
			query: "?lat=18.52&lon=73.85",
			setupMock: func(m *mockUsecase.MockCityUsecase) {
				m.EXPECT().NearestCity(mock.Anything, 18.52, 73.85).Return(&usecase.NearestCityOutput{
					City:           &entity.City{Name: "Pune", State: "Maharashtra", Latitude: 18.5204, Longitude: 73.8567},
					DistanceMeters: 720,
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantCity:   "Pune",
		},
		{name: "missing longitude", query: "?lat=18.52", wantStatus: http.StatusBadRequest},
		{name: "latitude out of range", query: "?lat=118&lon=73.85", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cityUC := mockUsecase.NewMockCityUsecase(t)
			if tt.setupMock != nil {
				tt.setupMock(cityUC)
			}
			e := newTestEcho()
			e.GET("/api/v1/cities/nearest", NewCityHandler(CityHandlerParams{CityUC: cityUC, Logger: discardLogger}).NearestCity)

			rec := doRequest(e, http.MethodGet, "/api/v1/cities/nearest"+tt.query, "", nil)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantCity != "" {
				got := decodeData[NearestCityResponse](t, rec)
				assert.Equal(t, tt.wantCity, got.City.Name)
				assert.InDelta(t, 720, got.DistanceMeters, 0.001)
			}
		})
	}
}

func TestCityHandler_ListCities(t *testing.T) {
	cityUC := mockUsecase.NewMockCityUsecase(t)
	cityUC.EXPECT().ListCities(mock.Anything).Return([]*entity.City{{Name: "Pune"}, {Name: "Mumbai"}}, nil)

	e := newTestEcho()
	e.GET("/api/v1/cities", NewCityHandler(CityHandlerParams{CityUC: cityUC, Logger: discardLogger}).ListCities)

	rec := doRequest(e, http.MethodGet, "/api/v1/cities", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]entity.City](t, rec), 2)
}
