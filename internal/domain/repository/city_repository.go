package repository

import (
	"context"

	"localdeal/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCityNotFound is returned when a city is not in the catalogue.
var ErrCityNotFound = errors.New("city not found")

// CityRepository defines the operations on the city catalogue.
type CityRepository interface {
	// List returns every city ordered by name.
	List(ctx context.Context) ([]*entity.City, error)

	FindByName(ctx context.Context, name string) (*entity.City, error)

	// Upsert inserts the cities, updating state and coordinates of existing names.
	Upsert(ctx context.Context, cities []entity.City) error
}
