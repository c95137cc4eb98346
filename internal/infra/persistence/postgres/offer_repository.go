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

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

// FindByID retrieves an offer by its ID.
func (repo *offerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by id")
	}

	return toOfferDomain(&offerM), nil
}

// FindByIDs batch-loads offers by ID.
func (repo *offerRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Offer, error) {
	if len(ids) == 0 {
		return []*entity.Offer{}, nil
	}

	var offerModels []*model.OfferModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find offers by ids")
	}

	return toOfferDomains(offerModels), nil
}

// FindByCity lists the offers of a city, optionally of one category, newest first.
func (repo *offerRepository) FindByCity(ctx context.Context, filter repository.OfferFilter) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel

	tx := repo.db.WithContext(ctx).Where("city = ?", filter.City)
	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}

	if err := tx.Order("created_at DESC").Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find offers by city")
	}

	return toOfferDomains(offerModels), nil
}

// FindByBusinessID lists the offers of a business, newest first.
func (repo *offerRepository) FindByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find offers by business")
	}

	return toOfferDomains(offerModels), nil
}

// Create persists a new offer.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("invalid business reference")
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("offer violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt

	return nil
}

// Update persists the editable fields. created_at, business_id and city are left untouched.
func (repo *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ?", offer.ID).
		Updates(map[string]any{
			"title":            offer.Title,
			"description":      offer.Description,
			"original_price":   offer.OriginalPrice,
			"discounted_price": offer.DiscountedPrice,
			"category":         offer.Category,
			"valid_until":      offer.ValidUntil,
			"image_url":        offer.ImageURL,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update offer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// MoveToCity keeps offers.city in line with the city of their business.
func (repo *offerRepository) MoveToCity(ctx context.Context, businessID uuid.UUID, city string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("business_id = ? AND city <> ?", businessID, city).
		Update("city", city)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to move offers to city")
	}

	return result.RowsAffected, nil
}

// Delete removes the offer. Favorites and reviews are removed in the same statement set.
func (repo *offerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("offer_id = ?", id).Delete(&model.FavoriteModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete offer favorites")
		}
		if err := tx.Where("offer_id = ?", id).Delete(&model.ReviewModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete offer reviews")
		}

		result := tx.Where("id = ?", id).Delete(&model.OfferModel{})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete offer")
		}
		if result.RowsAffected == 0 {
			return repository.ErrOfferNotFound
		}

		return nil
	})
}

// --- Mapper Functions ---

func toOfferDomains(models []*model.OfferModel) []*entity.Offer {
	offers := make([]*entity.Offer, 0, len(models))
	for _, offerM := range models {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers
}

func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	return &entity.Offer{
		ID:              data.ID,
		BusinessID:      data.BusinessID,
		Title:           data.Title,
		Description:     data.Description,
		OriginalPrice:   data.OriginalPrice,
		DiscountedPrice: data.DiscountedPrice,
		Category:        data.Category,
		City:            data.City,
		ValidUntil:      data.ValidUntil.UTC(),
		ImageURL:        data.ImageURL,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	if data == nil {
		return nil
	}

	return &model.OfferModel{
		ID:              data.ID,
		BusinessID:      data.BusinessID,
		Title:           data.Title,
		Description:     data.Description,
		OriginalPrice:   data.OriginalPrice,
		DiscountedPrice: data.DiscountedPrice,
		Category:        data.Category,
		City:            data.City,
		ValidUntil:      data.ValidUntil.UTC(),
		ImageURL:        data.ImageURL,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
