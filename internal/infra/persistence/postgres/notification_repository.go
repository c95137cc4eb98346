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

const notificationLogBatchSize = 100

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new offer notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.OfferNotification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt
	notification.UpdatedAt = notificationM.UpdatedAt

	return nil
}

// FindNotificationsByBusiness retrieves the notifications of a business with pagination.
func (repo *notificationRepository) FindNotificationsByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.OfferNotification, error) {
	var notificationModels []*model.OfferNotificationModel

	query := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("published_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by business")
	}

	notifications := make([]*entity.OfferNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// UpdateNotificationStatus updates the total sent and failed counts for a notification.
func (repo *notificationRepository) UpdateNotificationStatus(ctx context.Context, id uuid.UUID, totalSent, totalFailed int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferNotificationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_sent":   totalSent,
			"total_failed": totalFailed,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notification status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// BatchCreateNotificationLogs persists multiple notification log entries in batches.
func (repo *notificationRepository) BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.NotificationLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, &model.NotificationLogModel{
			ID:             log.ID,
			NotificationID: log.NotificationID,
			UserID:         log.UserID,
			DeviceID:       log.DeviceID,
			Status:         log.Status,
			FCMMessageID:   log.FCMMessageID,
			ErrorMessage:   log.ErrorMessage,
			SentAt:         log.SentAt,
		})
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, notificationLogBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create notification logs")
	}

	for i, logM := range logModels {
		logs[i].ID = logM.ID
	}

	return nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.OfferNotificationModel) *entity.OfferNotification {
	if data == nil {
		return nil
	}

	return &entity.OfferNotification{
		ID:          data.ID,
		OfferID:     data.OfferID,
		BusinessID:  data.BusinessID,
		City:        data.City,
		Title:       data.Title,
		Body:        data.Body,
		TotalSent:   data.TotalSent,
		TotalFailed: data.TotalFailed,
		PublishedAt: data.PublishedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromNotificationDomain(data *entity.OfferNotification) *model.OfferNotificationModel {
	if data == nil {
		return nil
	}

	return &model.OfferNotificationModel{
		ID:          data.ID,
		OfferID:     data.OfferID,
		BusinessID:  data.BusinessID,
		City:        data.City,
		Title:       data.Title,
		Body:        data.Body,
		TotalSent:   data.TotalSent,
		TotalFailed: data.TotalFailed,
		PublishedAt: data.PublishedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
