package entity

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

// ValidationResult is either valid or a map of field name to message.
type ValidationResult struct {
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

// Valid reports whether no field failed validation.
func (r ValidationResult) Valid() bool {
	return len(r.FieldErrors) == 0
}

func (r *ValidationResult) add(field, message string) {
	if r.FieldErrors == nil {
		r.FieldErrors = make(map[string]string)
	}
	if _, exists := r.FieldErrors[field]; !exists {
		r.FieldErrors[field] = message
	}
}

// OfferForm holds the owner-editable fields of an offer.
type OfferForm struct {
	Title           string    `json:"title" validate:"required,max=120"`
	Description     string    `json:"description" validate:"required,max=2000"`
	OriginalPrice   float64   `json:"original_price" validate:"gt=0"`
	DiscountedPrice float64   `json:"discounted_price" validate:"gte=0,ltfield=OriginalPrice"`
	Category        string    `json:"category" validate:"required,category"`
	ValidUntil      time.Time `json:"valid_until"`
}

// Normalize trims the text fields.
func (f OfferForm) Normalize() OfferForm {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.Category = strings.TrimSpace(f.Category)
	if !f.ValidUntil.IsZero() {
		f.ValidUntil = f.ValidUntil.UTC()
	}

	return f
}

// BusinessForm holds the owner-editable fields of a business.
type BusinessForm struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"max=2000"`
	Address     string `json:"address" validate:"required,max=300"`
	City        string `json:"city" validate:"required"`
	Phone       string `json:"phone" validate:"required,phone_digits"`
	WhatsApp    string `json:"whatsapp" validate:"omitempty,phone_digits"`
	Website     string `json:"website" validate:"omitempty,website"`
	Category    string `json:"category" validate:"required,category"`
}

// Normalize trims the text fields.
func (f BusinessForm) Normalize() BusinessForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Address = strings.TrimSpace(f.Address)
	f.City = strings.TrimSpace(f.City)
	f.Phone = strings.TrimSpace(f.Phone)
	f.WhatsApp = strings.TrimSpace(f.WhatsApp)
	f.Website = strings.TrimSpace(f.Website)
	f.Category = strings.TrimSpace(f.Category)

	return f
}

// ValidateOfferForm checks an offer form and reports every failing field.
func ValidateOfferForm(form OfferForm) ValidationResult {
	form = form.Normalize()
	result := validateStruct(form)
	if form.ValidUntil.IsZero() {
		result.add("valid_until", "valid_until is required")
	}

	return result
}

// ValidateBusinessForm checks a business form and reports every failing field.
func ValidateBusinessForm(form BusinessForm) ValidationResult {
	return validateStruct(form.Normalize())
}

var (
	formValidator     *validator.Validate
	formValidatorOnce sync.Once
)

func getFormValidator() *validator.Validate {
	formValidatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}

			return name
		})
		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return IsValidCategory(fl.Field().String())
		})
		_ = v.RegisterValidation("phone_digits", func(fl validator.FieldLevel) bool {
			n := len(PhoneDigits(fl.Field().String()))

			return n >= minPhoneDigits && n <= maxPhoneDigits
		})
		_ = v.RegisterValidation("website", func(fl validator.FieldLevel) bool {
			return IsValidWebsite(fl.Field().String())
		})
		formValidator = v
	})

	return formValidator
}

func validateStruct(form any) ValidationResult {
	var result ValidationResult

	err := getFormValidator().Struct(form)
	if err == nil {
		return result
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		result.add("form", err.Error())

		return result
	}

	for _, fe := range validationErrs {
		result.add(fe.Field(), fieldMessage(fe))
	}

	return result
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "ltfield":
		return fmt.Sprintf("%s must be less than original_price", field)
	case "category":
		return fmt.Sprintf("%s must be one of the supported categories", field)
	case "phone_digits":
		return fmt.Sprintf("%s must contain between %d and %d digits", field, minPhoneDigits, maxPhoneDigits)
	case "website":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
