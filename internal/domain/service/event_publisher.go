package service

import (
	"context"
	"time"
)

// OfferPublishedEvent is emitted after an owner created an offer, for the notifier to fan out.
type OfferPublishedEvent struct {
	RequestID       string    `json:"request_id,omitempty"` // For distributed tracing
	OfferID         string    `json:"offer_id"`
	BusinessID      string    `json:"business_id"`
	OwnerID         string    `json:"owner_id"`
	BusinessName    string    `json:"business_name"`
	Title           string    `json:"title"`
	City            string    `json:"city"`
	Category        string    `json:"category"`
	OriginalPrice   float64   `json:"original_price"`
	DiscountedPrice float64   `json:"discounted_price"`
	DiscountPercent int       `json:"discount_percent"`
	ValidUntil      time.Time `json:"valid_until"`
	PublishedAt     time.Time `json:"published_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOfferEvent publishes an offer event for async processing
	PublishOfferEvent(ctx context.Context, event *OfferPublishedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
