// Package handler contains the Pub/Sub push endpoint of the notifier.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"localdeal/config"
	deliverycontext "localdeal/internal/delivery/context"
	"localdeal/internal/domain/constants"
	"localdeal/internal/domain/service"
	"localdeal/internal/infra/metrics"
	"localdeal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// Push outcomes, also used as metric labels.
const (
	outcomeDelivered    = "delivered"
	outcomeSkipped      = "skipped"
	outcomeMalformed    = "malformed"
	outcomeRetry        = "retry"
	outcomeUnauthorized = "unauthorized"
)

const attrEventType = "event_type"

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenValidator checks the OIDC token Pub/Sub attaches to push requests.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns offer published events into push notifications
type PushHandler struct {
	verifyPushAuth bool
	validateToken  TokenValidator
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google pushes are authenticated outside of development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// 2xx acknowledges the message, 503 asks Pub/Sub to redeliver it.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return h.reply(c, http.StatusUnauthorized, outcomeUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return h.reply(c, http.StatusBadRequest, outcomeMalformed)
	}

	if eventType := pushMsg.Message.Attributes[attrEventType]; eventType != "" && eventType != constants.EventTypeOfferPublished {
		h.logger.Info("[Worker] Ignoring event", slog.String("event_type", eventType), slog.String("message_id", pushMsg.Message.MessageID))

		return h.reply(c, http.StatusNoContent, outcomeSkipped)
	}

	event, err := decodeOfferEvent(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode offer event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return h.reply(c, http.StatusBadRequest, outcomeMalformed)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing offer event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("offer_id", event.OfferID),
		slog.String("city", event.City),
	)

	notification, err := h.notificationUC.DeliverOfferPublished(ctx, event)
	switch {
	case errors.Is(err, usecase.ErrInvalidEvent):
		// redelivery cannot fix the payload
		reqLogger.Warn("[Worker] Dropping invalid offer event", slog.Any("error", err))

		return h.reply(c, http.StatusOK, outcomeSkipped)
	case err != nil:
		reqLogger.Error("[Worker] Failed to deliver offer event", slog.String("offer_id", event.OfferID), slog.Any("error", err))

		return h.reply(c, http.StatusServiceUnavailable, outcomeRetry)
	}

	metrics.PushNotifications.WithLabelValues("sent").Add(float64(notification.TotalSent))
	metrics.PushNotifications.WithLabelValues("failed").Add(float64(notification.TotalFailed))

	reqLogger.Info("[Worker] Offer event processed",
		slog.String("offer_id", event.OfferID),
		slog.Any("notification_id", notification.ID),
		slog.Int("total_sent", notification.TotalSent),
		slog.Int("total_failed", notification.TotalFailed),
	)

	return h.reply(c, http.StatusOK, outcomeDelivered)
}

func (h *PushHandler) reply(c echo.Context, status int, outcome string) error {
	metrics.PushEvents.WithLabelValues(outcome).Inc()

	return c.NoContent(status)
}

func decodeOfferEvent(data string) (*service.OfferPublishedEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.OfferPublishedEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal offer event")
	}

	return &event, nil
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.OfferPublishedEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// set by RequestIDMiddleware from X-Request-Id
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
