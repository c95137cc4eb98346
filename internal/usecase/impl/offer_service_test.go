package impl

import (
	"context"
	"testing"
	"time"

	"localdeal/internal/domain/entity"
	domainerrors "localdeal/internal/domain/errors"
	"localdeal/internal/domain/repository"
	mockRepo "localdeal/internal/mocks/repository"
	mockSvc "localdeal/internal/mocks/service"
	"localdeal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type offerServiceFixtures struct {
	service      *offerService
	offerRepo    *mockRepo.MockOfferRepository
	businessRepo *mockRepo.MockBusinessRepository
	qrcode       *mockSvc.MockQRCodeService
}

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func createTestOfferService(t *testing.T) offerServiceFixtures {
	f := offerServiceFixtures{
		offerRepo:    mockRepo.NewMockOfferRepository(t),
		businessRepo: mockRepo.NewMockBusinessRepository(t),
		qrcode:       mockSvc.NewMockQRCodeService(t),
	}
	f.service = NewOfferService(OfferServiceParams{
		OfferRepo:    f.offerRepo,
		BusinessRepo: f.businessRepo,
		QRCode:       f.qrcode,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*offerService)
	f.service.presenter.now = func() time.Time { return fixedNow }

	return f
}

func testBusiness(name, city string) *entity.Business {
	return &entity.Business{
		ID:             uuid.New(),
		OwnerID:        uuid.New(),
		Name:           name,
		City:           city,
		Phone:          "98765 43210",
		WhatsAppNumber: "919876543210",
		Category:       "Food & Dining",
	}
}

func testOffer(business *entity.Business, title string, validUntil time.Time) *entity.Offer {
	return &entity.Offer{
		ID:              uuid.New(),
		BusinessID:      business.ID,
		Title:           title,
		Description:     "Limited time deal",
		OriginalPrice:   200,
		DiscountedPrice: 150,
		Category:        business.Category,
		City:            business.City,
		ValidUntil:      validUntil,
	}
}

func TestOfferService_ListOffers_EmptyCity(t *testing.T) {
	f := createTestOfferService(t)

	offers, err := f.service.ListOffers(context.Background(), &usecase.OfferQuery{City: "  "})
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestOfferService_ListOffers_FiltersAndDerivesFields(t *testing.T) {
	f := createTestOfferService(t)
	ctx := context.Background()

	cafe := testBusiness("Chai Point", "Pune")
	salon := testBusiness("Glow Salon", "Pune")
	expired := testOffer(cafe, "Masala chai combo", fixedNow.Add(-time.Hour))
	soon := testOffer(salon, "Haircut", fixedNow.Add(36*time.Hour))

	f.offerRepo.EXPECT().
		FindByCity(ctx, repository.OfferFilter{City: "Pune"}).
		Return([]*entity.Offer{soon, expired}, nil)
	f.businessRepo.EXPECT().
		FindByIDs(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return([]*entity.Business{cafe, salon}, nil)

	offers, err := f.service.ListOffers(ctx, &usecase.OfferQuery{City: "Pune", Category: "all", Search: "CHAI"})
	require.NoError(t, err)
	require.Len(t, offers, 1)

	detail := offers[0]
	assert.Equal(t, expired.ID, detail.Offer.ID)
	assert.Equal(t, "Chai Point", detail.BusinessName)
	assert.Equal(t, 25, detail.DiscountPercent)
	assert.True(t, detail.IsExpired)
	assert.False(t, detail.IsExpiringSoon)
	assert.Equal(t, "https://localdeal.example/offers/"+expired.ID.String(), detail.ShareURL)
	assert.Contains(t, detail.Contact.WhatsApp, "wa.me/919876543210")
}

func TestOfferService_ListOffers_SearchMatchesBusinessName(t *testing.T) {
	f := createTestOfferService(t)
	ctx := context.Background()

	salon := testBusiness("Glow Salon", "Pune")
	offer := testOffer(salon, "Haircut", fixedNow.Add(36*time.Hour))

	f.offerRepo.EXPECT().
		FindByCity(ctx, repository.OfferFilter{City: "Pune", Category: "Beauty & Spa"}).
		Return([]*entity.Offer{offer}, nil)
	f.businessRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{salon.ID}).Return([]*entity.Business{salon}, nil)

	offers, err := f.service.ListOffers(ctx, &usecase.OfferQuery{City: "Pune", Category: "Beauty & Spa", Search: "glow"})
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.True(t, offers[0].IsExpiringSoon)
	assert.Equal(t, 2, offers[0].DaysLeft)
}

func TestOfferService_ListOffers_Unavailable(t *testing.T) {
	f := createTestOfferService(t)
	ctx := context.Background()

	f.offerRepo.EXPECT().FindByCity(ctx, mock.Anything).Return(nil, errors.New("timeout"))

	offers, err := f.service.ListOffers(ctx, &usecase.OfferQuery{City: "Pune"})
	assert.Nil(t, offers)
	assert.ErrorIs(t, err, domainerrors.ErrOffersUnavailable)
}

func TestOfferService_GetOffer(t *testing.T) {
	f := createTestOfferService(t)
	ctx := context.Background()

	business := testBusiness("Chai Point", "Pune")
	offer := testOffer(business, "Chai", fixedNow.Add(240*time.Hour))

	f.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)
	f.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	detail, err := f.service.GetOffer(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chai Point", detail.BusinessName)
	assert.Equal(t, 10, detail.DaysLeft)
	assert.Equal(t, "tel:9876543210", detail.Contact.Phone)
}

func TestOfferService_GetOffer_NotFound(t *testing.T) {
	f := createTestOfferService(t)
	ctx := context.Background()
	offerID := uuid.New()

	f.offerRepo.EXPECT().FindByID(ctx, offerID).Return(nil, repository.ErrOfferNotFound)

	_, err := f.service.GetOffer(ctx, offerID)
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
}

func TestOfferService_ListBusinessOffers_UnknownBusiness(t *testing.T) {
	f := createTestOfferService(t)
	ctx := context.Background()
	businessID := uuid.New()

	f.businessRepo.EXPECT().FindByID(ctx, businessID).Return(nil, repository.ErrBusinessNotFound)

	_, err := f.service.ListBusinessOffers(ctx, businessID)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

func TestOfferService_ListBusinessOffers(t *testing.T) {
	f := createTestOfferService(t)
	ctx := context.Background()

	business := testBusiness("Chai Point", "Pune")
	offers := []*entity.Offer{
		testOffer(business, "A", fixedNow.Add(time.Hour)),
		testOffer(business, "B", fixedNow.Add(time.Hour)),
	}

	f.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	f.offerRepo.EXPECT().FindByBusinessID(ctx, business.ID).Return(offers, nil)

	details, err := f.service.ListBusinessOffers(ctx, business.ID)
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "A", details[0].Offer.Title)
	assert.Equal(t, "Chai Point", details[1].BusinessName)
}

func TestOfferService_GenerateOfferQR(t *testing.T) {
	f := createTestOfferService(t)
	ctx := context.Background()

	business := testBusiness("Chai Point", "Pune")
	offer := testOffer(business, "Chai", fixedNow.Add(time.Hour))

	f.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)
	f.qrcode.EXPECT().GeneratePNG("https://localdeal.example/offers/"+offer.ID.String()).Return([]byte("png"), nil)

	png, err := f.service.GenerateOfferQR(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestOfferService_GenerateOfferQR_Failure(t *testing.T) {
	f := createTestOfferService(t)
	ctx := context.Background()

	business := testBusiness("Chai Point", "Pune")
	offer := testOffer(business, "Chai", fixedNow.Add(time.Hour))

	f.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)
	f.qrcode.EXPECT().GeneratePNG(mock.Anything).Return(nil, errors.New("too long"))

	_, err := f.service.GenerateOfferQR(ctx, offer.ID)
	assert.ErrorIs(t, err, domainerrors.ErrQRCodeFailed)
}

func TestOfferPresenter_DefaultShareURL(t *testing.T) {
	p := newOfferPresenter(nil)
	id := uuid.New()

	assert.Equal(t, "localdeal://offers/"+id.String(), p.shareURL(id))
}
