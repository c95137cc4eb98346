package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "localdeal/internal/delivery/context"
	"localdeal/internal/domain/constants"
	"localdeal/internal/domain/entity"
	domainerrors "localdeal/internal/domain/errors"
	"localdeal/internal/domain/repository"
	"localdeal/internal/domain/service"
	"localdeal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	deviceRepo       repository.DeviceRepository
	businessRepo     repository.BusinessRepository
	notificationSvc  service.NotificationService
	now              func() time.Time
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	UserRepo         repository.UserRepository
	DeviceRepo       repository.DeviceRepository
	BusinessRepo     repository.BusinessRepository
	NotificationSvc  service.NotificationService
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		userRepo:         params.UserRepo,
		deviceRepo:       params.DeviceRepo,
		businessRepo:     params.BusinessRepo,
		notificationSvc:  params.NotificationSvc,
		now:              time.Now,
		logger:           params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// DeliverOfferPublished pushes a published offer to the active devices of the customers in the offer city.
// Errors other than ErrInvalidEvent are transient and the event may be redelivered.
func (s *notificationService) DeliverOfferPublished(ctx context.Context, event *service.OfferPublishedEvent) (*entity.OfferNotification, error) {
	offerID, businessID, ownerID, err := parseOfferEvent(event)
	if err != nil {
		return nil, err
	}

	now := s.now()
	publishedAt := event.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = now
	}

	msg := offerPushMessage(event)
	notification := &entity.OfferNotification{
		ID:          uuid.New(),
		OfferID:     offerID,
		BusinessID:  businessID,
		City:        event.City,
		Title:       msg.Title,
		Body:        msg.Body,
		PublishedAt: publishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	msg.Data["notification_id"] = notification.ID.String()

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	userIDs, err := s.userRepo.FindIDsByCity(ctx, event.City, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find customers in city")
	}
	if len(userIDs) == 0 {
		s.log(ctx).Info("No customers to notify", slog.String("city", event.City), slog.Any("offerID", offerID))

		return notification, nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUsers(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch devices")
	}
	if len(devices) == 0 {
		return notification, nil
	}

	// token -> device; a token shared by two registrations is pushed once
	tokens := make([]string, 0, len(devices))
	deviceByToken := make(map[string]*entity.UserDevice, len(devices))
	for _, device := range devices {
		if _, dup := deviceByToken[device.FCMToken]; dup || device.FCMToken == "" {
			continue
		}
		tokens = append(tokens, device.FCMToken)
		deviceByToken[device.FCMToken] = device
	}

	var (
		totalSent     int
		totalFailed   int
		invalidTokens []string
		logs          = make([]*entity.NotificationLog, 0, len(tokens))
	)

	for start := 0; start < len(tokens); start += constants.FCMBatchSize {
		end := min(start+constants.FCMBatchSize, len(tokens))
		batch := tokens[start:end]

		result, err := s.notificationSvc.SendBatchNotification(ctx, batch, msg)
		if err != nil {
			s.log(ctx).Error("Failed to send notification batch",
				slog.Any("notificationID", notification.ID),
				slog.Int("batchSize", len(batch)),
				slog.Any("error", err),
			)
			totalFailed += len(batch)
			for _, token := range batch {
				logs = append(logs, s.deliveryLog(notification.ID, deviceByToken[token], service.TokenResult{Token: token, Err: err}))
			}

			continue
		}

		totalSent += result.SuccessCount
		totalFailed += result.FailureCount
		invalidTokens = append(invalidTokens, result.InvalidTokens()...)
		for _, res := range result.Results {
			device, ok := deviceByToken[res.Token]
			if !ok {
				continue
			}
			logs = append(logs, s.deliveryLog(notification.ID, device, res))
		}
	}

	if len(logs) > 0 {
		if err := s.notificationRepo.BatchCreateNotificationLogs(ctx, logs); err != nil {
			s.log(ctx).Warn("Failed to create notification logs", slog.Any("notificationID", notification.ID), slog.Any("error", err))
		}
	}

	if len(invalidTokens) > 0 {
		if err := s.deviceRepo.DeactivateDevicesByTokens(ctx, invalidTokens); err != nil {
			s.log(ctx).Warn("Failed to deactivate invalid devices", slog.Int("count", len(invalidTokens)), slog.Any("error", err))
		} else {
			s.log(ctx).Info("Deactivated invalid devices", slog.Int("count", len(invalidTokens)))
		}
	}

	if err := s.notificationRepo.UpdateNotificationStatus(ctx, notification.ID, totalSent, totalFailed); err != nil {
		return nil, errors.Wrap(err, "failed to update notification status")
	}

	notification.TotalSent = totalSent
	notification.TotalFailed = totalFailed

	s.log(ctx).Info("Offer notification delivered",
		slog.Any("notificationID", notification.ID),
		slog.Any("offerID", offerID),
		slog.String("city", event.City),
		slog.Int("devices", len(tokens)),
		slog.Int("sent", totalSent),
		slog.Int("failed", totalFailed),
	)

	return notification, nil
}

// GetNotificationHistory lists the notifications sent for the owner's business, newest first.
func (s *notificationService) GetNotificationHistory(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.OfferNotification, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)
	offset = max(offset, 0)

	business, err := s.businessRepo.FindByOwnerID(ctx, ownerID)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return []*entity.OfferNotification{}, nil
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load business")
	}

	notifications, err := s.notificationRepo.FindNotificationsByBusiness(ctx, business.ID, limit, offset)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list notifications")
	}

	return notifications, nil
}

func (s *notificationService) deliveryLog(notificationID uuid.UUID, device *entity.UserDevice, res service.TokenResult) *entity.NotificationLog {
	log := &entity.NotificationLog{
		ID:             uuid.New(),
		NotificationID: notificationID,
		UserID:         device.UserID,
		DeviceID:       device.ID,
		Status:         entity.NotificationStatusSent,
		FCMMessageID:   res.MessageID,
		SentAt:         s.now(),
	}
	if res.Err != nil {
		log.Status = entity.NotificationStatusFailed
		log.ErrorMessage = res.Err.Error()
	}

	return log
}

func parseOfferEvent(event *service.OfferPublishedEvent) (offerID, businessID, ownerID uuid.UUID, err error) {
	if event == nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, errors.Wrap(usecase.ErrInvalidEvent, "event is nil")
	}

	if offerID, err = uuid.Parse(event.OfferID); err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, errors.Wrapf(usecase.ErrInvalidEvent, "offer_id %q", event.OfferID)
	}
	if businessID, err = uuid.Parse(event.BusinessID); err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, errors.Wrapf(usecase.ErrInvalidEvent, "business_id %q", event.BusinessID)
	}
	if event.OwnerID != "" {
		if ownerID, err = uuid.Parse(event.OwnerID); err != nil {
			return uuid.Nil, uuid.Nil, uuid.Nil, errors.Wrapf(usecase.ErrInvalidEvent, "owner_id %q", event.OwnerID)
		}
	}
	if strings.TrimSpace(event.City) == "" {
		return uuid.Nil, uuid.Nil, uuid.Nil, errors.Wrap(usecase.ErrInvalidEvent, "city is empty")
	}

	return offerID, businessID, ownerID, nil
}

func offerPushMessage(event *service.OfferPublishedEvent) service.PushMessage {
	title := fmt.Sprintf("New deal in %s", event.City)
	if event.BusinessName != "" {
		title = fmt.Sprintf("New deal at %s", event.BusinessName)
	}

	body := event.Title
	if event.DiscountPercent > 0 {
		body = fmt.Sprintf("%s: %d%% off", event.Title, event.DiscountPercent)
	}

	return service.PushMessage{
		Title: title,
		Body:  body,
		Data: map[string]string{
			"type":        constants.EventTypeOfferPublished,
			"offer_id":    event.OfferID,
			"business_id": event.BusinessID,
			"city":        event.City,
		},
	}
}
