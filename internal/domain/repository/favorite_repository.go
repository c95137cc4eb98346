package repository

import (
	"context"

	"localdeal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for favorite persistence.
var (
	ErrFavoriteNotFound  = errors.New("favorite not found")
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository defines the operations on favorites, keyed by "<userId>_<offerId>".
type FavoriteRepository interface {
	FindByKey(ctx context.Context, key string) (*entity.Favorite, error)

	// FindByUserID lists a user's favorites, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)

	Create(ctx context.Context, favorite *entity.Favorite) error
	DeleteByKey(ctx context.Context, key string) error
}
