package notification

import (
	"context"
	"testing"

	"localdeal/internal/domain/constants"
	"localdeal/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	response  *messaging.BatchResponse
	err       error
	multicast *messaging.MulticastMessage
	single    *messaging.Message
}

func (f *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.single = message
	if f.err != nil {
		return "", f.err
	}

	return "projects/test/messages/1", nil
}

func (f *fakeMessagingClient) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.multicast = message

	return f.response, f.err
}

func TestSendBatchNotification_Empty(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := newFirebaseService(client)

	result, err := svc.SendBatchNotification(context.Background(), nil, service.PushMessage{Title: "t"})
	require.NoError(t, err)
	assert.Zero(t, result.SuccessCount)
	assert.Nil(t, client.multicast)
}

func TestSendBatchNotification_TooManyTokens(t *testing.T) {
	svc := newFirebaseService(&fakeMessagingClient{})
	tokens := make([]string, constants.FCMBatchSize+1)

	_, err := svc.SendBatchNotification(context.Background(), tokens, service.PushMessage{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token count exceeds limit")
}

func TestSendBatchNotification_MapsResponses(t *testing.T) {
	client := &fakeMessagingClient{
		response: &messaging.BatchResponse{
			SuccessCount: 1,
			FailureCount: 1,
			Responses: []*messaging.SendResponse{
				{Success: true, MessageID: "m-1"},
				{Success: false, Error: errors.New("internal")},
			},
		},
	}
	svc := newFirebaseService(client)

	msg := service.PushMessage{Title: "New deal", Body: "50% off", Data: map[string]string{"offer_id": "o-1"}}
	result, err := svc.SendBatchNotification(context.Background(), []string{"tok-a", "tok-b"}, msg)
	require.NoError(t, err)

	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	require.Len(t, result.Results, 2)
	assert.Equal(t, "m-1", result.Results[0].MessageID)
	assert.NoError(t, result.Results[0].Err)
	assert.Error(t, result.Results[1].Err)
	assert.False(t, result.Results[1].Invalid)
	assert.Empty(t, result.InvalidTokens())

	require.NotNil(t, client.multicast)
	assert.Equal(t, []string{"tok-a", "tok-b"}, client.multicast.Tokens)
	assert.Equal(t, "New deal", client.multicast.Notification.Title)
	assert.Equal(t, "o-1", client.multicast.Data["offer_id"])
}

func TestSendBatchNotification_RequestFailure(t *testing.T) {
	svc := newFirebaseService(&fakeMessagingClient{err: errors.New("unavailable")})

	result, err := svc.SendBatchNotification(context.Background(), []string{"tok"}, service.PushMessage{})
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestSendSingleNotification(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := newFirebaseService(client)

	err := svc.SendSingleNotification(context.Background(), "tok", service.PushMessage{Title: "Hi", Body: "there"})
	require.NoError(t, err)
	require.NotNil(t, client.single)
	assert.Equal(t, "tok", client.single.Token)
	assert.Equal(t, "there", client.single.Notification.Body)
}
