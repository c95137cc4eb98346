package handler

import (
	"net/http"
	"testing"
	"time"

	"localdeal/internal/domain/entity"
	domainerrors "localdeal/internal/domain/errors"
	mockUsecase "localdeal/internal/mocks/usecase"
	"localdeal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupOfferHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockOfferUsecase) {
	offerUC := mockUsecase.NewMockOfferUsecase(t)
	h := NewOfferHandler(OfferHandlerParams{OfferUC: offerUC, Logger: discardLogger})

	e := newTestEcho()
	e.GET("/api/v1/offers", h.ListOffers)
	e.GET("/api/v1/offers/:id", h.GetOffer)
	e.GET("/api/v1/offers/:id/qr", h.GetOfferQR)
	e.GET("/api/v1/businesses/:id/offers", h.ListBusinessOffers)

	return e, offerUC
}

func testOfferDetail() *usecase.OfferDetail {
	return &usecase.OfferDetail{
		Offer: &entity.Offer{
			ID:              uuid.New(),
			BusinessID:      uuid.New(),
			Title:           "Thali combo",
			OriginalPrice:   400,
			DiscountedPrice: 300,
			Category:        "food",
			City:            "Pune",
			ValidUntil:      time.Now().Add(48 * time.Hour).UTC(),
		},
		BusinessName:    "Annapurna",
		DiscountPercent: 25,
		DaysLeft:        2,
		IsExpiringSoon:  true,
		Contact:         entity.ContactLinks{WhatsApp: "https://wa.me/919800000000"},
		ShareURL:        "https://localdeal.app/offers/x",
	}
}

func TestOfferHandler_ListOffers(t *testing.T) {
	e, offerUC := setupOfferHandler(t)
	detail := testOfferDetail()

	offerUC.EXPECT().
		ListOffers(mock.Anything, &usecase.OfferQuery{City: "Pune", Category: "food", Search: "thali"}).
		Return([]*usecase.OfferDetail{detail}, nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/offers?city=Pune&category=food&search=thali", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	views := decodeData[[]OfferView](t, rec)
	require.Len(t, views, 1)
	assert.Equal(t, detail.Offer.ID, views[0].ID)
	assert.Equal(t, "Annapurna", views[0].BusinessName)
	assert.Equal(t, 25, views[0].DiscountPercent)
	assert.True(t, views[0].IsExpiringSoon)
	assert.Equal(t, "https://wa.me/919800000000", views[0].Contact.WhatsApp)
}

func TestOfferHandler_ListOffers_Empty(t *testing.T) {
	e, offerUC := setupOfferHandler(t)
	offerUC.EXPECT().ListOffers(mock.Anything, mock.Anything).Return(nil, nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/offers?city=Nashik", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", string(mustRawData(t, rec)))
}

func TestOfferHandler_GetOffer(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		setupMock  func(m *mockUsecase.MockOfferUsecase, id uuid.UUID)
		wantStatus int
		wantCode   string
	}{
		{
			name: "found",
			id:   uuid.NewString(),
			setupMock: func(m *mockUsecase.MockOfferUsecase, id uuid.UUID) {
				m.EXPECT().GetOffer(mock.Anything, id).Return(testOfferDetail(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			id:   uuid.NewString(),
			setupMock: func(m *mockUsecase.MockOfferUsecase, id uuid.UUID) {
				m.EXPECT().GetOffer(mock.Anything, id).Return(nil, domainerrors.ErrOfferNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   domainerrors.ErrOfferNotFound.ErrorCode(),
		},
		{
			name:       "malformed id",
			id:         "not-a-uuid",
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, offerUC := setupOfferHandler(t)
			if tt.setupMock != nil {
				tt.setupMock(offerUC, uuid.MustParse(tt.id))
			}

			rec := doRequest(e, http.MethodGet, "/api/v1/offers/"+tt.id, "", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestOfferHandler_GetOfferQR(t *testing.T) {
	e, offerUC := setupOfferHandler(t)
	offerID := uuid.New()
	png := []byte("\x89PNG\r\n\x1a\nfake")

	offerUC.EXPECT().GenerateOfferQR(mock.Anything, offerID).Return(png, nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/offers/"+offerID.String()+"/qr", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestOfferHandler_ListBusinessOffers(t *testing.T) {
	e, offerUC := setupOfferHandler(t)
	businessID := uuid.New()

	offerUC.EXPECT().ListBusinessOffers(mock.Anything, businessID).Return(nil, domainerrors.ErrBusinessNotFound)

	rec := doRequest(e, http.MethodGet, "/api/v1/businesses/"+businessID.String()+"/offers", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
