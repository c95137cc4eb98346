package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"localdeal/internal/delivery/api/response"
	"localdeal/internal/domain/entity"
	domainerrors "localdeal/internal/domain/errors"
	"localdeal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const offerImageField = "image"

// OwnerOfferHandlerParams holds dependencies for OwnerOfferHandler, injected by Fx.
type OwnerOfferHandlerParams struct {
	fx.In

	OwnerOfferUC usecase.OwnerOfferUsecase
	Logger       *slog.Logger
}

// OwnerOfferHandler serves offer management for business owners.
type OwnerOfferHandler struct {
	ownerOfferUC usecase.OwnerOfferUsecase
	logger       *slog.Logger
}

// NewOwnerOfferHandler is the constructor for OwnerOfferHandler.
func NewOwnerOfferHandler(params OwnerOfferHandlerParams) *OwnerOfferHandler {
	return &OwnerOfferHandler{
		ownerOfferUC: params.OwnerOfferUC,
		logger:       params.Logger,
	}
}

// OfferRequest is the JSON body of offer create and update. Fields left out keep their value on update.
// Multipart requests carry the same names as form fields plus an "image" file.
type OfferRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	OriginalPrice   *float64 `json:"original_price"`
	DiscountedPrice *float64 `json:"discounted_price"`
	Category        *string  `json:"category"`
	ValidUntil      *string  `json:"valid_until"` // RFC 3339 or YYYY-MM-DD.
}

// ListOwnerOffers handles GET /api/v1/owner/offers.
func (h *OwnerOfferHandler) ListOwnerOffers(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offers, err := h.ownerOfferUC.ListOwnerOffers(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOfferViews(offers))
}

// CreateOffer handles POST /api/v1/owner/offers.
func (h *OwnerOfferHandler) CreateOffer(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	req, image, err := bindOfferRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	validUntil, err := parseValidUntil(req.ValidUntil)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.CreateOfferInput{
		Form: entity.OfferForm{
			Title:           deref(req.Title),
			Description:     deref(req.Description),
			OriginalPrice:   deref(req.OriginalPrice),
			DiscountedPrice: deref(req.DiscountedPrice),
			Category:        deref(req.Category),
		},
		Image: image,
	}
	if validUntil != nil {
		input.Form.ValidUntil = *validUntil
	}

	offer, err := h.ownerOfferUC.CreateOffer(c.Request().Context(), ownerID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newOfferView(offer))
}

// UpdateOffer handles PUT /api/v1/owner/offers/:id.
func (h *OwnerOfferHandler) UpdateOffer(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offerID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	req, image, err := bindOfferRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	validUntil, err := parseValidUntil(req.ValidUntil)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.ownerOfferUC.UpdateOffer(c.Request().Context(), ownerID, offerID, &usecase.UpdateOfferInput{
		Title:           req.Title,
		Description:     req.Description,
		OriginalPrice:   req.OriginalPrice,
		DiscountedPrice: req.DiscountedPrice,
		Category:        req.Category,
		ValidUntil:      validUntil,
		Image:           image,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOfferView(offer))
}

// DeleteOffer handles DELETE /api/v1/owner/offers/:id?confirm=true.
func (h *OwnerOfferHandler) DeleteOffer(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offerID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	confirmed, _ := strconv.ParseBool(c.QueryParam("confirm"))
	if err := h.ownerOfferUC.DeleteOffer(c.Request().Context(), ownerID, offerID, confirmed); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Offer deleted successfully")
}

// bindOfferRequest reads a JSON body or a multipart form with an optional image.
func bindOfferRequest(c echo.Context) (*OfferRequest, *usecase.ImageUpload, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		var req OfferRequest
		if err := c.Bind(&req); err != nil {
			return nil, nil, domainerrors.ErrValidationFailed.WrapMessage("invalid offer input")
		}

		return &req, nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, domainerrors.ErrValidationFailed.WrapMessage("invalid multipart form")
	}

	req, err := offerRequestFromForm(form.Value)
	if err != nil {
		return nil, nil, err
	}

	files := form.File[offerImageField]
	if len(files) == 0 {
		return req, nil, nil
	}

	image, err := readImage(files[0])
	if err != nil {
		return nil, nil, err
	}

	return req, image, nil
}

func offerRequestFromForm(values map[string][]string) (*OfferRequest, error) {
	field := func(name string) *string {
		if v, ok := values[name]; ok && len(v) > 0 {
			return &v[0]
		}

		return nil
	}

	fieldErrors := make(map[string]string)
	price := func(name string) *float64 {
		raw := field(name)
		if raw == nil || strings.TrimSpace(*raw) == "" {
			return nil
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
		if err != nil {
			fieldErrors[name] = name + " must be a number"

			return nil
		}

		return &v
	}

	req := &OfferRequest{
		Title:           field("title"),
		Description:     field("description"),
		OriginalPrice:   price("original_price"),
		DiscountedPrice: price("discounted_price"),
		Category:        field("category"),
		ValidUntil:      field("valid_until"),
	}
	if len(fieldErrors) > 0 {
		return nil, domainerrors.NewValidationError(fieldErrors)
	}

	return req, nil
}

func readImage(fh *multipart.FileHeader) (*usecase.ImageUpload, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "read uploaded image")
	}

	return &usecase.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}

func parseValidUntil(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}

	t, err := entity.ParseValidUntil(*raw)
	if err != nil {
		return nil, domainerrors.NewValidationError(map[string]string{"valid_until": entity.ErrInvalidValidUntil.Error()})
	}

	return &t, nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}

	return *v
}
