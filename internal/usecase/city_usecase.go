package usecase

import (
	"context"

	"localdeal/internal/domain/entity"
)

// NearestCityOutput is the closest known city to a coordinate.
type NearestCityOutput struct {
	City           *entity.City
	DistanceMeters float64
}

// CityUsecase defines city operations.
type CityUsecase interface {
	ListCities(ctx context.Context) ([]*entity.City, error)
	NearestCity(ctx context.Context, lat, lon float64) (*NearestCityOutput, error)
	// SeedCities upserts the built-in city list and returns how many cities were written.
	SeedCities(ctx context.Context) (int, error)
}
