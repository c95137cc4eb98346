package notification

import (
	"context"

	"localdeal/internal/domain/constants"
	"localdeal/internal/domain/entity"
	"localdeal/internal/domain/service"
	"localdeal/internal/infra/metrics"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
)

// messagingClient is the subset of *messaging.Client used for pushes.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client messagingClient
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(client *messaging.Client) service.NotificationService {
	return newFirebaseService(client)
}

func newFirebaseService(client messagingClient) *firebaseService {
	return &firebaseService{
		client: client,
	}
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token string, msg service.PushMessage) error {
	message := &messaging.Message{
		Token:        token,
		Notification: &messaging.Notification{Title: msg.Title, Body: msg.Body},
		Data:         msg.Data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		metrics.PushNotifications.WithLabelValues(entity.NotificationStatusFailed).Inc()

		return errors.Wrap(err, "failed to send notification")
	}
	metrics.PushNotifications.WithLabelValues(entity.NotificationStatusSent).Inc()

	return nil
}

// SendBatchNotification sends push notifications to multiple device tokens
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, msg service.PushMessage) (*service.BatchResult, error) {
	if len(tokens) == 0 {
		return &service.BatchResult{}, nil
	}

	if len(tokens) > constants.FCMBatchSize {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), constants.FCMBatchSize)
	}

	message := &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: &messaging.Notification{Title: msg.Title, Body: msg.Body},
		Data:         msg.Data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		metrics.PushNotifications.WithLabelValues(entity.NotificationStatusFailed).Add(float64(len(tokens)))

		return nil, errors.Wrap(err, "failed to send multicast notification")
	}
	metrics.PushNotifications.WithLabelValues(entity.NotificationStatusSent).Add(float64(response.SuccessCount))
	metrics.PushNotifications.WithLabelValues(entity.NotificationStatusFailed).Add(float64(response.FailureCount))

	result := &service.BatchResult{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
		Results:      make([]service.TokenResult, 0, len(tokens)),
	}

	for idx, sendResponse := range response.Responses {
		if idx >= len(tokens) || sendResponse == nil {
			continue
		}

		res := service.TokenResult{Token: tokens[idx], MessageID: sendResponse.MessageID}
		if sendResponse.Error != nil {
			res.Err = sendResponse.Error
			res.Invalid = messaging.IsInvalidArgument(sendResponse.Error) ||
				messaging.IsUnregistered(sendResponse.Error)
		}
		result.Results = append(result.Results, res)
	}

	return result, nil
}
