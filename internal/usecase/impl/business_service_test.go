package impl

import (
	"context"
	"testing"

	"localdeal/internal/domain/entity"
	domainerrors "localdeal/internal/domain/errors"
	"localdeal/internal/domain/repository"
	mockRepo "localdeal/internal/mocks/repository"
	"localdeal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type businessServiceFixtures struct {
	service      usecase.BusinessUsecase
	businessRepo *mockRepo.MockBusinessRepository
	cityRepo     *mockRepo.MockCityRepository
	txManager    *mockRepo.MockTransactionManager
}

func createTestBusinessService(t *testing.T) businessServiceFixtures {
	f := businessServiceFixtures{
		businessRepo: mockRepo.NewMockBusinessRepository(t),
		cityRepo:     mockRepo.NewMockCityRepository(t),
		txManager:    mockRepo.NewMockTransactionManager(t),
	}
	f.service = NewBusinessService(BusinessServiceParams{
		BusinessRepo: f.businessRepo,
		CityRepo:     f.cityRepo,
		TxManager:    f.txManager,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return f
}

func validBusinessForm() *entity.BusinessForm {
	return &entity.BusinessForm{
		Name:     "Chai Point",
		Address:  "12 FC Road",
		City:     "Pune",
		Phone:    "98765 43210",
		Website:  "chaipoint.example",
		Category: "Food & Dining",
	}
}

func TestBusinessService_SaveMyBusiness_Creates(t *testing.T) {
	f := createTestBusinessService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	f.cityRepo.EXPECT().FindByName(ctx, "Pune").Return(&entity.City{Name: "Pune"}, nil)
	f.businessRepo.EXPECT().FindByOwnerID(ctx, ownerID).Return(nil, repository.ErrBusinessNotFound)
	f.businessRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(b *entity.Business) bool {
			return b.OwnerID == ownerID && b.WhatsAppNumber == "919876543210"
		})).
		Return(nil)

	out, err := f.service.SaveMyBusiness(ctx, ownerID, validBusinessForm())
	require.NoError(t, err)
	assert.True(t, out.Created)
	assert.Equal(t, "https://chaipoint.example", out.Business.Contact.Website)
	assert.Contains(t, out.Business.Contact.WhatsApp, "https://wa.me/919876543210?text=")
}

func TestBusinessService_SaveMyBusiness_UpdatesExisting(t *testing.T) {
	f := createTestBusinessService(t)
	ctx := context.Background()
	existing := testBusiness("Old name", "Pune")

	f.cityRepo.EXPECT().FindByName(ctx, "Pune").Return(&entity.City{Name: "Pune"}, nil)
	f.businessRepo.EXPECT().FindByOwnerID(ctx, existing.OwnerID).Return(existing, nil)
	f.businessRepo.EXPECT().Update(ctx, existing).Return(nil)

	out, err := f.service.SaveMyBusiness(ctx, existing.OwnerID, validBusinessForm())
	require.NoError(t, err)
	assert.False(t, out.Created)
	assert.Equal(t, "Chai Point", out.Business.Business.Name)
	assert.Equal(t, existing.ID, out.Business.Business.ID)
}

// inBusinessTx runs fn against transaction-bound business and offer repositories.
func inBusinessTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(businessRepo *mockRepo.MockBusinessRepository, offerRepo *mockRepo.MockOfferRepository)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			businessRepo := mockRepo.NewMockBusinessRepository(t)
			offerRepo := mockRepo.NewMockOfferRepository(t)
			factory.EXPECT().NewBusinessRepository().Return(businessRepo).Maybe()
			factory.EXPECT().NewOfferRepository().Return(offerRepo).Maybe()

			setup(businessRepo, offerRepo)

			return fn(factory)
		})
}

func TestBusinessService_SaveMyBusiness_CityChangeMovesOffers(t *testing.T) {
	f := createTestBusinessService(t)
	ctx := context.Background()
	existing := testBusiness("Chai Point", "Mumbai")

	f.cityRepo.EXPECT().FindByName(ctx, "Pune").Return(&entity.City{Name: "Pune"}, nil)
	f.businessRepo.EXPECT().FindByOwnerID(ctx, existing.OwnerID).Return(existing, nil)
	inBusinessTx(t, f.txManager, func(businessRepo *mockRepo.MockBusinessRepository, offerRepo *mockRepo.MockOfferRepository) {
		businessRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(b *entity.Business) bool { return b.City == "Pune" })).
			Return(nil)
		offerRepo.EXPECT().MoveToCity(ctx, existing.ID, "Pune").Return(int64(3), nil)
	})

	out, err := f.service.SaveMyBusiness(ctx, existing.OwnerID, validBusinessForm())

	require.NoError(t, err)
	assert.Equal(t, "Pune", out.Business.Business.City)
}

func TestBusinessService_SaveMyBusiness_CityChangeRollsBack(t *testing.T) {
	f := createTestBusinessService(t)
	ctx := context.Background()
	existing := testBusiness("Chai Point", "Mumbai")

	f.cityRepo.EXPECT().FindByName(ctx, "Pune").Return(&entity.City{Name: "Pune"}, nil)
	f.businessRepo.EXPECT().FindByOwnerID(ctx, existing.OwnerID).Return(existing, nil)
	inBusinessTx(t, f.txManager, func(businessRepo *mockRepo.MockBusinessRepository, offerRepo *mockRepo.MockOfferRepository) {
		businessRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
		offerRepo.EXPECT().MoveToCity(ctx, existing.ID, "Pune").Return(int64(0), errors.New("connection reset"))
	})

	_, err := f.service.SaveMyBusiness(ctx, existing.OwnerID, validBusinessForm())

	var dbErr *domainerrors.DatabaseExecuteError
	assert.ErrorAs(t, err, &dbErr)
}

func TestBusinessService_SaveMyBusiness_Validation(t *testing.T) {
	f := createTestBusinessService(t)
	ctx := context.Background()

	form := validBusinessForm()
	form.City = "Gotham"
	form.Phone = "12"
	form.Category = "Spaceships"

	f.cityRepo.EXPECT().FindByName(ctx, "Gotham").Return(nil, repository.ErrCityNotFound)

	_, err := f.service.SaveMyBusiness(ctx, uuid.New(), form)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	fields := validationErr.FieldErrors()
	assert.Contains(t, fields, "city")
	assert.Contains(t, fields, "phone")
	assert.Contains(t, fields, "category")
}

func TestBusinessService_GetMyBusiness_NotFound(t *testing.T) {
	f := createTestBusinessService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	f.businessRepo.EXPECT().FindByOwnerID(ctx, ownerID).Return(nil, repository.ErrBusinessNotFound)

	_, err := f.service.GetMyBusiness(ctx, ownerID)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

func TestBusinessService_GetBusiness(t *testing.T) {
	f := createTestBusinessService(t)
	ctx := context.Background()
	business := testBusiness("Chai Point", "Pune")

	f.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	detail, err := f.service.GetBusiness(ctx, business.ID)
	require.NoError(t, err)
	assert.Equal(t, "tel:9876543210", detail.Contact.Phone)
}

func TestBusinessService_ListBusinesses(t *testing.T) {
	f := createTestBusinessService(t)
	ctx := context.Background()

	empty, err := f.service.ListBusinesses(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, empty)

	f.businessRepo.EXPECT().FindByCity(ctx, "Pune").Return([]*entity.Business{testBusiness("A", "Pune")}, nil)
	list, err := f.service.ListBusinesses(ctx, "Pune")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	f.businessRepo.EXPECT().FindByCity(ctx, "Delhi").Return(nil, errors.New("db down"))
	_, err = f.service.ListBusinesses(ctx, "Delhi")
	var dbErr *domainerrors.DatabaseExecuteError
	assert.ErrorAs(t, err, &dbErr)
}
