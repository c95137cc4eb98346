package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Business is the shop run by an owner. Each owner has at most one.
type Business struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	Phone          string    `json:"phone"`
	WhatsAppNumber string    `json:"whatsapp_number"` // Digits only, country code prefixed.
	Website        string    `json:"website,omitempty"`
	Category       string    `json:"category"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ApplyForm copies the validated form onto the business. The WhatsApp number falls back to the phone.
func (b *Business) ApplyForm(form BusinessForm, countryCode string) {
	form = form.Normalize()
	b.Name = form.Name
	b.Description = form.Description
	b.Address = form.Address
	b.City = form.City
	b.Phone = form.Phone
	b.Website = form.Website
	b.Category = form.Category

	whatsapp := form.WhatsApp
	if strings.TrimSpace(whatsapp) == "" {
		whatsapp = form.Phone
	}
	b.WhatsAppNumber = WhatsAppNumber(whatsapp, countryCode)
}

// Form returns the editable fields of the business.
func (b *Business) Form() BusinessForm {
	return BusinessForm{
		Name:        b.Name,
		Description: b.Description,
		Address:     b.Address,
		City:        b.City,
		Phone:       b.Phone,
		WhatsApp:    b.WhatsAppNumber,
		Website:     b.Website,
		Category:    b.Category,
	}
}

// ContactLinks are the deep links offered on offer and business pages. Empty links are hidden by clients.
type ContactLinks struct {
	WhatsApp string `json:"whatsapp,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Website  string `json:"website,omitempty"`
}

// BusinessContactLinks builds the contact links for a business, with the given WhatsApp message.
func BusinessContactLinks(b *Business, countryCode, message string) ContactLinks {
	if b == nil {
		return ContactLinks{}
	}

	whatsapp := b.WhatsAppNumber
	if whatsapp == "" {
		whatsapp = b.Phone
	}

	return ContactLinks{
		WhatsApp: WhatsAppLink(whatsapp, countryCode, message),
		Phone:    TelLink(b.Phone),
		Website:  WebsiteLink(b.Website),
	}
}
