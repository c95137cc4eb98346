package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validOfferForm() OfferForm {
	return OfferForm{
		Title:           "Weekend Pizza Deal",
		Description:     "Two large pizzas for the price of one",
		OriginalPrice:   500,
		DiscountedPrice: 250,
		Category:        "Food & Dining",
		ValidUntil:      time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidateOfferForm(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(f *OfferForm)
		wantFields []string
	}{
		{name: "valid", mutate: func(f *OfferForm) {}},
		{name: "blank title", mutate: func(f *OfferForm) { f.Title = "   " }, wantFields: []string{"title"}},
		{name: "missing description", mutate: func(f *OfferForm) { f.Description = "" }, wantFields: []string{"description"}},
		{name: "zero original price", mutate: func(f *OfferForm) { f.OriginalPrice = 0; f.DiscountedPrice = 0 }, wantFields: []string{"original_price", "discounted_price"}},
		{name: "discount above original", mutate: func(f *OfferForm) { f.DiscountedPrice = 600 }, wantFields: []string{"discounted_price"}},
		{name: "discount equal to original", mutate: func(f *OfferForm) { f.DiscountedPrice = 500 }, wantFields: []string{"discounted_price"}},
		{name: "negative discount", mutate: func(f *OfferForm) { f.DiscountedPrice = -1 }, wantFields: []string{"discounted_price"}},
		{name: "unknown category", mutate: func(f *OfferForm) { f.Category = "Pets" }, wantFields: []string{"category"}},
		{name: "missing valid until", mutate: func(f *OfferForm) { f.ValidUntil = time.Time{} }, wantFields: []string{"valid_until"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validOfferForm()
			tt.mutate(&form)

			result := ValidateOfferForm(form)

			if len(tt.wantFields) == 0 {
				assert.True(t, result.Valid(), "unexpected errors: %v", result.FieldErrors)

				return
			}

			assert.False(t, result.Valid())
			assert.Len(t, result.FieldErrors, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, result.FieldErrors, field)
			}
		})
	}
}

func TestValidateBusinessForm(t *testing.T) {
	valid := BusinessForm{
		Name:     "Mario's Kitchen",
		Address:  "12 MG Road",
		City:     "Pune",
		Phone:    "98765 43210",
		Category: "Food & Dining",
	}

	assert.True(t, ValidateBusinessForm(valid).Valid())

	withWebsite := valid
	withWebsite.Website = "mario.in"
	assert.True(t, ValidateBusinessForm(withWebsite).Valid())

	invalid := valid
	invalid.Name = ""
	invalid.Phone = "12"
	invalid.Website = "not a site"
	invalid.Category = "Nope"

	result := ValidateBusinessForm(invalid)
	assert.False(t, result.Valid())
	assert.Equal(t, "name is required", result.FieldErrors["name"])
	assert.Contains(t, result.FieldErrors, "phone")
	assert.Contains(t, result.FieldErrors, "website")
	assert.Contains(t, result.FieldErrors, "category")
}

func TestBusiness_ApplyForm(t *testing.T) {
	business := &Business{}
	business.ApplyForm(BusinessForm{
		Name:     " Mario's Kitchen ",
		Address:  "12 MG Road",
		City:     "Pune",
		Phone:    "98765 43210",
		Category: "Food & Dining",
	}, "91")

	assert.Equal(t, "Mario's Kitchen", business.Name)
	assert.Equal(t, "919876543210", business.WhatsAppNumber)

	business.ApplyForm(BusinessForm{Name: "Mario's", Phone: "98765 43210", WhatsApp: "+91 99999 00000"}, "91")
	assert.Equal(t, "919999900000", business.WhatsAppNumber)
}
