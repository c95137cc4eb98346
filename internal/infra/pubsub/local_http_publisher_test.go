package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"localdeal/internal/domain/constants"
	"localdeal/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishOfferEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	event := &service.OfferPublishedEvent{
		RequestID:       "req-1",
		OfferID:         "offer-1",
		BusinessID:      "biz-1",
		Title:           "Thali for two",
		City:            "Mumbai",
		OriginalPrice:   500,
		DiscountedPrice: 250,
		DiscountPercent: 50,
		ValidUntil:      time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishOfferEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, constants.EventTypeOfferPublished, received.Message.Attributes[AttrEventType])
	assert.Equal(t, "offer-1", received.Message.Attributes[AttrOfferID])
	assert.Equal(t, "Mumbai", received.Message.Attributes[AttrCity])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.OfferPublishedEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "offer-1", decoded.OfferID)
	assert.Equal(t, 50, decoded.DiscountPercent)
	assert.True(t, event.ValidUntil.Equal(decoded.ValidUntil))
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())

	err := publisher.PublishOfferEvent(context.Background(), &service.OfferPublishedEvent{OfferID: "o"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	attrs := eventAttributes(&service.OfferPublishedEvent{OfferID: "o", City: "Pune"})

	_, ok := attrs[AttrRequestID]
	assert.False(t, ok)
	assert.Equal(t, "Pune", attrs[AttrCity])
}

func TestLocalHTTPPublisher_RejectsEventWithoutOfferID(t *testing.T) {
	publisher := NewLocalHTTPPublisher("http://127.0.0.1:1/push", testLogger())

	err := publisher.PublishOfferEvent(context.Background(), &service.OfferPublishedEvent{City: "Pune"})
	require.Error(t, err)
}

func TestOrderingKey(t *testing.T) {
	assert.Equal(t, "new delhi", orderingKey(&service.OfferPublishedEvent{City: " New Delhi "}))
	assert.Empty(t, orderingKey(&service.OfferPublishedEvent{}))
}
