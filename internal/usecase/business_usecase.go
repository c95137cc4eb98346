package usecase

import (
	"context"

	"localdeal/internal/domain/entity"

	"github.com/google/uuid"
)

// BusinessDetail is a business with its contact links.
type BusinessDetail struct {
	Business *entity.Business
	Contact  entity.ContactLinks
}

// SaveBusinessOutput reports whether the business was created or updated.
type SaveBusinessOutput struct {
	Business *BusinessDetail
	Created  bool
}

// BusinessUsecase defines business profile operations.
type BusinessUsecase interface {
	GetMyBusiness(ctx context.Context, ownerID uuid.UUID) (*BusinessDetail, error)
	// SaveMyBusiness creates the owner's business or updates the existing one.
	SaveMyBusiness(ctx context.Context, ownerID uuid.UUID, form *entity.BusinessForm) (*SaveBusinessOutput, error)
	GetBusiness(ctx context.Context, businessID uuid.UUID) (*BusinessDetail, error)
	ListBusinesses(ctx context.Context, city string) ([]*BusinessDetail, error)
}
