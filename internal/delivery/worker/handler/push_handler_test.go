package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "localdeal/internal/delivery/context"
	"localdeal/internal/domain/entity"
	"localdeal/internal/domain/service"
	mockUsecase "localdeal/internal/mocks/usecase"
	"localdeal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockNotificationUsecase) {
	uc := mockUsecase.NewMockNotificationUsecase(t)

	return &PushHandler{
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		notificationUC: uc,
		validateToken:  idtoken.Validate,
	}, uc
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/local/subscriptions/offer-events-push"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func encodedEvent(t *testing.T, event *service.OfferPublishedEvent) string {
	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_Delivered(t *testing.T) {
	h, uc := newTestPushHandler(t)
	event := &service.OfferPublishedEvent{OfferID: uuid.NewString(), BusinessID: uuid.NewString(), City: "Pune", Title: "Chai"}

	uc.EXPECT().
		DeliverOfferPublished(mock.Anything, mock.MatchedBy(func(e *service.OfferPublishedEvent) bool {
			return e.OfferID == event.OfferID && e.City == "Pune"
		})).
		Run(func(ctx context.Context, _ *service.OfferPublishedEvent) {
			assert.Equal(t, "req-42", ctxRequestID(ctx))
		}).
		Return(&entity.OfferNotification{ID: uuid.New(), TotalSent: 3}, nil)

	rec := servePush(h, pushBody(t, encodedEvent(t, event), map[string]string{"request_id": "req-42", "event_type": "offer.published"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_Outcomes(t *testing.T) {
	tests := []struct {
		name       string
		deliverErr error
		wantStatus int
	}{
		{name: "invalid event is acknowledged", deliverErr: errors.Wrap(usecase.ErrInvalidEvent, "city is empty"), wantStatus: http.StatusOK},
		{name: "storage failure is retried", deliverErr: errors.New("db down"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newTestPushHandler(t)
			uc.EXPECT().DeliverOfferPublished(mock.Anything, mock.Anything).Return(nil, tt.deliverErr)

			event := &service.OfferPublishedEvent{OfferID: uuid.NewString()}
			rec := servePush(h, pushBody(t, encodedEvent(t, event), nil), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_MalformedPayload(t *testing.T) {
	h, _ := newTestPushHandler(t)

	rec := servePush(h, pushBody(t, "%%not-base64%%", nil), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = servePush(h, pushBody(t, base64.StdEncoding.EncodeToString([]byte("{")), nil), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_IgnoresOtherEventTypes(t *testing.T) {
	h, _ := newTestPushHandler(t)

	rec := servePush(h, pushBody(t, "", map[string]string{"event_type": "offer.deleted"}), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPushHandler_VerifiesPushToken(t *testing.T) {
	h, uc := newTestPushHandler(t)
	h.verifyPushAuth = true

	rec := servePush(h, pushBody(t, "", nil), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "signed", token)
		assert.Equal(t, "http://example.com/push", audience)

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}
	uc.EXPECT().DeliverOfferPublished(mock.Anything, mock.Anything).Return(&entity.OfferNotification{}, nil)

	event := &service.OfferPublishedEvent{OfferID: uuid.NewString()}
	rec = servePush(h, pushBody(t, encodedEvent(t, event), nil), http.Header{"Authorization": []string{"Bearer signed"}})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func ctxRequestID(ctx context.Context) string {
	return deliverycontext.GetRequestIDFromContext(ctx)
}
