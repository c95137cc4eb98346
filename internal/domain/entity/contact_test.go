package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhatsAppLink(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		message string
		want    string
	}{
		{
			name:    "local number gets country code",
			phone:   "98765 43210",
			message: BusinessWhatsAppMessage,
			want:    "https://wa.me/919876543210?text=Hi%2C%20I%20saw%20your%20deal%20on%20LocalDeal",
		},
		{
			name:  "formatted number with country code",
			phone: "+91 (987) 654-3210",
			want:  "https://wa.me/919876543210",
		},
		{
			name:    "empty phone hides the link",
			phone:   "",
			message: BusinessWhatsAppMessage,
			want:    "",
		},
		{
			name:  "no digits",
			phone: "call us",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WhatsAppLink(tt.phone, "91", tt.message))
		})
	}
}

func TestWhatsAppNumber(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{name: "national number", phone: "98765 43210", want: "919876543210"},
		{name: "national number starting with code digits", phone: "9123456789", want: "919123456789"},
		{name: "already international", phone: "+91 91234 56789", want: "919123456789"},
		{name: "trunk zero", phone: "098765 43210", want: "919876543210"},
		{name: "international dialling prefix", phone: "00 91 98765 43210", want: "919876543210"},
		{name: "only zeros", phone: "000", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WhatsAppNumber(tt.phone, "91"))
		})
	}
}

func TestOfferWhatsAppMessage(t *testing.T) {
	offer := &Offer{Title: "Pizza", OriginalPrice: 500, DiscountedPrice: 249.5}
	assert.Equal(t, "Hi, I'm interested in your offer: Pizza (₹249.50 instead of ₹500)", OfferWhatsAppMessage(offer))
}

func TestTelLink(t *testing.T) {
	assert.Equal(t, "tel:+919876543210", TelLink(" +91 98765 43210 "))
	assert.Equal(t, "", TelLink(""))
	assert.Equal(t, "", TelLink("n/a"))
}

func TestWebsiteLink(t *testing.T) {
	assert.Equal(t, "https://example.com", WebsiteLink("example.com"))
	assert.Equal(t, "http://example.com", WebsiteLink("http://example.com"))
	assert.Equal(t, "HTTPS://example.com", WebsiteLink("HTTPS://example.com"))
	assert.Equal(t, "", WebsiteLink("  "))

	assert.True(t, IsValidWebsite("example.com/menu"))
	assert.False(t, IsValidWebsite(""))
	assert.False(t, IsValidWebsite("not a site"))
}

func TestBusinessContactLinks(t *testing.T) {
	business := &Business{Phone: "9876543210", Website: "mario.in"}

	links := BusinessContactLinks(business, "91", "")

	assert.Equal(t, "https://wa.me/919876543210", links.WhatsApp)
	assert.Equal(t, "tel:9876543210", links.Phone)
	assert.Equal(t, "https://mario.in", links.Website)
	assert.Equal(t, ContactLinks{}, BusinessContactLinks(nil, "91", ""))
}
