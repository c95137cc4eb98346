package entity

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

const (
	whatsAppBaseURL = "https://wa.me/"

	// Numbers with at most this many digits are national and get the country code prefixed.
	maxNationalDigits = 10
)

// BusinessWhatsAppMessage is prefilled when a customer contacts a business from its page.
const BusinessWhatsAppMessage = "Hi, I saw your deal on LocalDeal"

// PhoneDigits strips every non-digit character.
func PhoneDigits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// WhatsAppNumber normalises a phone number to digits with the country code prefix.
// Leading zeros (trunk "0" or international "00") are dropped. The code counts as present only
// when the number is longer than a national number, so a 10 digit number starting with the
// code digits is still prefixed. It returns "" when no digits remain.
func WhatsAppNumber(raw, countryCode string) string {
	digits := strings.TrimLeft(PhoneDigits(raw), "0")
	if digits == "" {
		return ""
	}

	code := PhoneDigits(countryCode)
	if code == "" || (len(digits) > maxNationalDigits && strings.HasPrefix(digits, code)) {
		return digits
	}

	return code + digits
}

// WhatsAppLink builds a wa.me deep link with a prefilled message, or "" when there is no number.
func WhatsAppLink(raw, countryCode, message string) string {
	number := WhatsAppNumber(raw, countryCode)
	if number == "" {
		return ""
	}

	link := whatsAppBaseURL + number
	if message != "" {
		link += "?text=" + encodeURIComponent(message)
	}

	return link
}

// OfferWhatsAppMessage is prefilled when a customer contacts a business about an offer.
func OfferWhatsAppMessage(offer *Offer) string {
	return fmt.Sprintf("Hi, I'm interested in your offer: %s (₹%s instead of ₹%s)",
		offer.Title, formatPrice(offer.DiscountedPrice), formatPrice(offer.OriginalPrice))
}

// TelLink builds a tel: link, or "" for an empty number.
func TelLink(raw string) string {
	phone := strings.TrimSpace(raw)
	if PhoneDigits(phone) == "" {
		return ""
	}

	return "tel:" + strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, phone)
}

// WebsiteLink returns an absolute website URL, adding https:// when the scheme is missing.
func WebsiteLink(raw string) string {
	site := strings.TrimSpace(raw)
	if site == "" {
		return ""
	}

	lower := strings.ToLower(site)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		site = "https://" + site
	}

	return site
}

// IsValidWebsite reports whether raw resolves to an absolute URL with a host.
func IsValidWebsite(raw string) bool {
	link := WebsiteLink(raw)
	if link == "" {
		return false
	}

	u, err := url.ParseRequestURI(link)

	return err == nil && u.Host != "" && !strings.ContainsAny(u.Host, " ")
}

// encodeURIComponent escapes like the JavaScript function of the same name, so spaces become %20.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func formatPrice(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}

	return fmt.Sprintf("%.2f", v)
}
