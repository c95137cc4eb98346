package service

import (
	"context"
)

// PushMessage is the content of one push notification.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// TokenResult is the delivery outcome for a single device token.
type TokenResult struct {
	Token     string
	MessageID string
	Err       error
	Invalid   bool // The token is unregistered or malformed and should not be used again.
}

// BatchResult aggregates the outcome of one multicast request.
type BatchResult struct {
	SuccessCount int
	FailureCount int
	Results      []TokenResult
}

// InvalidTokens returns the tokens reported as unusable.
func (r *BatchResult) InvalidTokens() []string {
	if r == nil {
		return nil
	}

	var tokens []string
	for _, res := range r.Results {
		if res.Invalid {
			tokens = append(tokens, res.Token)
		}
	}

	return tokens
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatchNotification sends one message to up to constants.FCMBatchSize device tokens.
	// A non-nil error means the whole batch was rejected.
	SendBatchNotification(ctx context.Context, tokens []string, msg PushMessage) (*BatchResult, error)

	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token string, msg PushMessage) error
}
