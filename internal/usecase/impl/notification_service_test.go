package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"localdeal/internal/domain/constants"
	"localdeal/internal/domain/entity"
	"localdeal/internal/domain/repository"
	"localdeal/internal/domain/service"
	mockRepo "localdeal/internal/mocks/repository"
	mockSvc "localdeal/internal/mocks/service"
	"localdeal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	userRepo         *mockRepo.MockUserRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	businessRepo     *mockRepo.MockBusinessRepository
	pushService      *mockSvc.MockNotificationService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	f := notificationServiceFixtures{
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		deviceRepo:       mockRepo.NewMockDeviceRepository(t),
		businessRepo:     mockRepo.NewMockBusinessRepository(t),
		pushService:      mockSvc.NewMockNotificationService(t),
	}
	f.service = NewNotificationService(NotificationServiceParams{
		NotificationRepo: f.notificationRepo,
		UserRepo:         f.userRepo,
		DeviceRepo:       f.deviceRepo,
		BusinessRepo:     f.businessRepo,
		NotificationSvc:  f.pushService,
		Logger:           newDiscardLogger(),
	})

	return f
}

func testOfferEvent() *service.OfferPublishedEvent {
	return &service.OfferPublishedEvent{
		OfferID:         uuid.NewString(),
		BusinessID:      uuid.NewString(),
		OwnerID:         uuid.NewString(),
		BusinessName:    "Chai Point",
		Title:           "Masala chai",
		City:            "Pune",
		DiscountPercent: 25,
		PublishedAt:     time.Now(),
	}
}

func TestNotificationService_DeliverOfferPublished_InvalidEvent(t *testing.T) {
	f := createTestNotificationService(t)

	tests := []struct {
		name   string
		mutate func(e *service.OfferPublishedEvent)
	}{
		{name: "bad offer id", mutate: func(e *service.OfferPublishedEvent) { e.OfferID = "x" }},
		{name: "bad business id", mutate: func(e *service.OfferPublishedEvent) { e.BusinessID = "" }},
		{name: "bad owner id", mutate: func(e *service.OfferPublishedEvent) { e.OwnerID = "nope" }},
		{name: "no city", mutate: func(e *service.OfferPublishedEvent) { e.City = " " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := testOfferEvent()
			tt.mutate(event)

			_, err := f.service.DeliverOfferPublished(context.Background(), event)
			assert.ErrorIs(t, err, usecase.ErrInvalidEvent)
		})
	}

	_, err := f.service.DeliverOfferPublished(context.Background(), nil)
	assert.ErrorIs(t, err, usecase.ErrInvalidEvent)
}

func TestNotificationService_DeliverOfferPublished_NoCustomers(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()
	event := testOfferEvent()
	ownerID := uuid.MustParse(event.OwnerID)

	f.notificationRepo.EXPECT().CreateNotification(ctx, mock.AnythingOfType("*entity.OfferNotification")).Return(nil)
	f.userRepo.EXPECT().FindIDsByCity(ctx, "Pune", ownerID).Return(nil, nil)

	notification, err := f.service.DeliverOfferPublished(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, "Pune", notification.City)
	assert.Equal(t, "New deal at Chai Point", notification.Title)
	assert.Equal(t, "Masala chai: 25% off", notification.Body)
	assert.Zero(t, notification.TotalSent)
}

func TestNotificationService_DeliverOfferPublished_SendsAndDeactivatesInvalidTokens(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()
	event := testOfferEvent()

	customerA, customerB := uuid.New(), uuid.New()
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: customerA, FCMToken: "token-a", IsActive: true},
		{ID: uuid.New(), UserID: customerB, FCMToken: "token-b", IsActive: true},
		{ID: uuid.New(), UserID: customerB, FCMToken: "token-b", IsActive: true},
	}

	f.notificationRepo.EXPECT().CreateNotification(ctx, mock.AnythingOfType("*entity.OfferNotification")).Return(nil)
	f.userRepo.EXPECT().FindIDsByCity(ctx, "Pune", mock.Anything).Return([]uuid.UUID{customerA, customerB}, nil)
	f.deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, []uuid.UUID{customerA, customerB}).Return(devices, nil)
	f.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"token-a", "token-b"}, mock.MatchedBy(func(msg service.PushMessage) bool {
			return msg.Data["type"] == constants.EventTypeOfferPublished && msg.Data["notification_id"] != ""
		})).
		Return(&service.BatchResult{
			SuccessCount: 1,
			FailureCount: 1,
			Results: []service.TokenResult{
				{Token: "token-a", MessageID: "m-1"},
				{Token: "token-b", Err: errors.New("unregistered"), Invalid: true},
			},
		}, nil)
	f.notificationRepo.EXPECT().
		BatchCreateNotificationLogs(ctx, mock.MatchedBy(func(logs []*entity.NotificationLog) bool {
			return len(logs) == 2 &&
				logs[0].Status == entity.NotificationStatusSent && logs[0].FCMMessageID == "m-1" &&
				logs[1].Status == entity.NotificationStatusFailed && logs[1].UserID == customerB
		})).
		Return(nil)
	f.deviceRepo.EXPECT().DeactivateDevicesByTokens(ctx, []string{"token-b"}).Return(nil)
	f.notificationRepo.EXPECT().UpdateNotificationStatus(ctx, mock.Anything, 1, 1).Return(nil)

	notification, err := f.service.DeliverOfferPublished(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 1, notification.TotalSent)
	assert.Equal(t, 1, notification.TotalFailed)
}

func TestNotificationService_DeliverOfferPublished_SplitsBatches(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()
	event := testOfferEvent()

	total := constants.FCMBatchSize + 2
	userIDs := make([]uuid.UUID, 0, total)
	devices := make([]*entity.UserDevice, 0, total)
	for i := range total {
		id := uuid.New()
		userIDs = append(userIDs, id)
		devices = append(devices, &entity.UserDevice{ID: uuid.New(), UserID: id, FCMToken: fmt.Sprintf("token-%d", i)})
	}

	f.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	f.userRepo.EXPECT().FindIDsByCity(ctx, "Pune", mock.Anything).Return(userIDs, nil)
	f.deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, userIDs).Return(devices, nil)
	f.pushService.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == constants.FCMBatchSize }), mock.Anything).
		Return(nil, errors.New("quota exceeded")).Once()
	f.pushService.EXPECT().
		SendBatchNotification(ctx, []string{fmt.Sprintf("token-%d", total-2), fmt.Sprintf("token-%d", total-1)}, mock.Anything).
		Return(&service.BatchResult{SuccessCount: 2, Results: []service.TokenResult{
			{Token: fmt.Sprintf("token-%d", total-2)},
			{Token: fmt.Sprintf("token-%d", total-1)},
		}}, nil).Once()
	f.notificationRepo.EXPECT().
		BatchCreateNotificationLogs(ctx, mock.MatchedBy(func(logs []*entity.NotificationLog) bool { return len(logs) == total })).
		Return(errors.New("insert failed"))
	f.notificationRepo.EXPECT().UpdateNotificationStatus(ctx, mock.Anything, 2, constants.FCMBatchSize).Return(nil)

	notification, err := f.service.DeliverOfferPublished(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 2, notification.TotalSent)
	assert.Equal(t, constants.FCMBatchSize, notification.TotalFailed)
}

func TestNotificationService_DeliverOfferPublished_StorageErrorIsRetryable(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()

	f.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(errors.New("db down"))

	_, err := f.service.DeliverOfferPublished(ctx, testOfferEvent())
	require.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrInvalidEvent)
}

func TestNotificationService_GetNotificationHistory(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()
	business := testBusiness("Chai Point", "Pune")
	history := []*entity.OfferNotification{{ID: uuid.New()}}

	f.businessRepo.EXPECT().FindByOwnerID(ctx, business.OwnerID).Return(business, nil)
	f.notificationRepo.EXPECT().FindNotificationsByBusiness(ctx, business.ID, 100, 0).Return(history, nil)

	got, err := f.service.GetNotificationHistory(ctx, business.OwnerID, 500, -3)
	require.NoError(t, err)
	assert.Equal(t, history, got)
}

func TestNotificationService_GetNotificationHistory_NoBusiness(t *testing.T) {
	f := createTestNotificationService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	f.businessRepo.EXPECT().FindByOwnerID(ctx, ownerID).Return(nil, repository.ErrBusinessNotFound)

	got, err := f.service.GetNotificationHistory(ctx, ownerID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
