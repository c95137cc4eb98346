package postgres

import (
	"context"

	"localdeal/internal/domain/entity"
	domainerrors "localdeal/internal/domain/errors"
	"localdeal/internal/domain/repository"
	"localdeal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByOwnerID retrieves the single business of an owner.
func (repo *businessRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error) {
	return repo.findOne(ctx, "owner_id = ?", ownerID)
}

func (repo *businessRepository) findOne(ctx context.Context, where string, arg any) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where(where, arg).
		Take(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return toBusinessDomain(&businessM), nil
}

// FindByIDs batch-loads businesses by ID.
func (repo *businessRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Business, error) {
	if len(ids) == 0 {
		return []*entity.Business{}, nil
	}

	var businessModels []*model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find businesses by ids")
	}

	return toBusinessDomains(businessModels), nil
}

// FindByCity lists the businesses of a city ordered by name.
func (repo *businessRepository) FindByCity(ctx context.Context, city string) ([]*entity.Business, error) {
	var businessModels []*model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("city = ?", city).
		Order("name ASC").
		Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find businesses by city")
	}

	return toBusinessDomains(businessModels), nil
}

// Create persists a new business. An owner can only have one.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrBusinessAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// Update overwrites the editable fields of a business.
func (repo *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", business.ID).
		Updates(map[string]any{
			"name":            business.Name,
			"description":     business.Description,
			"address":         business.Address,
			"city":            business.City,
			"phone":           business.Phone,
			"whatsapp_number": business.WhatsAppNumber,
			"website":         business.Website,
			"category":        business.Category,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toBusinessDomains(models []*model.BusinessModel) []*entity.Business {
	businesses := make([]*entity.Business, 0, len(models))
	for _, businessM := range models {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses
}

func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	return &entity.Business{
		ID:             data.ID,
		OwnerID:        data.OwnerID,
		Name:           data.Name,
		Description:    data.Description,
		Address:        data.Address,
		City:           data.City,
		Phone:          data.Phone,
		WhatsAppNumber: data.WhatsAppNumber,
		Website:        data.Website,
		Category:       data.Category,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	return &model.BusinessModel{
		ID:             data.ID,
		OwnerID:        data.OwnerID,
		Name:           data.Name,
		Description:    data.Description,
		Address:        data.Address,
		City:           data.City,
		Phone:          data.Phone,
		WhatsAppNumber: data.WhatsAppNumber,
		Website:        data.Website,
		Category:       data.Category,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
