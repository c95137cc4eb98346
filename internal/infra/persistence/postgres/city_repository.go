package postgres

import (
	"context"

	"localdeal/internal/domain/entity"
	domainerrors "localdeal/internal/domain/errors"
	"localdeal/internal/domain/repository"
	"localdeal/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cityRepository struct {
	db *gorm.DB
}

// NewCityRepository is the constructor for cityRepository.
func NewCityRepository(db *gorm.DB) repository.CityRepository {
	return &cityRepository{
		db: db,
	}
}

// List returns every city ordered by name.
func (repo *cityRepository) List(ctx context.Context) ([]*entity.City, error) {
	var cityModels []*model.CityModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&cityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cities")
	}

	cities := make([]*entity.City, 0, len(cityModels))
	for _, cityM := range cityModels {
		cities = append(cities, toCityDomain(cityM))
	}

	return cities, nil
}

func (repo *cityRepository) FindByName(ctx context.Context, name string) (*entity.City, error) {
	var cityM model.CityModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		Take(&cityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to find city")
	}

	return toCityDomain(&cityM), nil
}

// Upsert inserts the cities and refreshes state and coordinates of existing ones.
func (repo *cityRepository) Upsert(ctx context.Context, cities []entity.City) error {
	if len(cities) == 0 {
		return nil
	}

	cityModels := make([]*model.CityModel, 0, len(cities))
	for _, c := range cities {
		cityModels = append(cityModels, &model.CityModel{
			Name:      c.Name,
			State:     c.State,
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
		})
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"state", "latitude", "longitude"}),
		}).
		Create(&cityModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert cities")
	}

	return nil
}

func toCityDomain(data *model.CityModel) *entity.City {
	return &entity.City{
		Name:      data.Name,
		State:     data.State,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
	}
}
