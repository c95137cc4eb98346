package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"localdeal/internal/domain/constants"
	"localdeal/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Message attribute keys, usable for subscription filters.
const (
	AttrEventType = "event_type"
	AttrOfferID   = "offer_id"
	AttrCity      = "city"
	AttrRequestID = "request_id"
)

const localSubscription = "projects/local/subscriptions/offer-events-push"

// PubSubPushMessage is the body Pub/Sub posts to a push subscription endpoint.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func eventAttributes(event *service.OfferPublishedEvent) map[string]string {
	attributes := map[string]string{
		AttrEventType: constants.EventTypeOfferPublished,
		AttrOfferID:   event.OfferID,
		AttrCity:      event.City,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}

// orderingKey keeps the offers of one city in publish order.
func orderingKey(event *service.OfferPublishedEvent) string {
	return strings.ToLower(strings.TrimSpace(event.City))
}

func encodeEvent(event *service.OfferPublishedEvent) ([]byte, error) {
	if event == nil || event.OfferID == "" {
		return nil, errors.New("offer event without offer id")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode offer event")
	}

	return data, nil
}

// newPushMessage wraps data the way a push subscription delivers it.
func newPushMessage(data []byte, attributes map[string]string, now time.Time) PubSubPushMessage {
	var msg PubSubPushMessage
	msg.Subscription = localSubscription
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = now.UTC().Format(time.RFC3339Nano)

	return msg
}
