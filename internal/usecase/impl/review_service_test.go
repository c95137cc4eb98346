package impl

import (
	"context"
	"strings"
	"testing"
	"time"

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

type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	reviewRepo *mockRepo.MockReviewRepository
	offerRepo  *mockRepo.MockOfferRepository
	userRepo   *mockRepo.MockUserRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	f := reviewServiceFixtures{
		reviewRepo: mockRepo.NewMockReviewRepository(t),
		offerRepo:  mockRepo.NewMockOfferRepository(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
	}
	f.service = NewReviewService(ReviewServiceParams{
		ReviewRepo: f.reviewRepo,
		OfferRepo:  f.offerRepo,
		UserRepo:   f.userRepo,
		Logger:     newDiscardLogger(),
	})

	return f
}

func TestReviewService_AddReview(t *testing.T) {
	tests := []struct {
		name     string
		user     *entity.User
		userErr  error
		wantName string
	}{
		{name: "named user", user: &entity.User{Name: "Priya"}, wantName: "Priya"},
		{name: "blank name", user: &entity.User{Name: "  "}, wantName: entity.AnonymousReviewer},
		{name: "profile unavailable", userErr: errors.New("db down"), wantName: entity.AnonymousReviewer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestReviewService(t)
			ctx := context.Background()
			userID := uuid.New()
			offer := testOffer(testBusiness("A", "Pune"), "Deal", time.Now().Add(time.Hour))

			f.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)
			f.userRepo.EXPECT().FindByID(ctx, userID).Return(tt.user, tt.userErr)
			f.reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

			review, err := f.service.AddReview(ctx, userID, offer.ID, &usecase.AddReviewInput{Rating: 4, Comment: " Great value "})
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, review.UserName)
			assert.Equal(t, "Great value", review.Comment)
			assert.Equal(t, 4, review.Rating)
		})
	}
}

func TestReviewService_AddReview_Validation(t *testing.T) {
	f := createTestReviewService(t)

	tests := []struct {
		name   string
		input  *usecase.AddReviewInput
		fields []string
	}{
		{name: "rating too low", input: &usecase.AddReviewInput{Rating: 0, Comment: "ok"}, fields: []string{"rating"}},
		{name: "rating too high", input: &usecase.AddReviewInput{Rating: 6, Comment: "ok"}, fields: []string{"rating"}},
		{name: "blank comment", input: &usecase.AddReviewInput{Rating: 3, Comment: "   "}, fields: []string{"comment"}},
		{name: "long comment", input: &usecase.AddReviewInput{Rating: 3, Comment: strings.Repeat("x", 1001)}, fields: []string{"comment"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.AddReview(context.Background(), uuid.New(), uuid.New(), tt.input)

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			for _, field := range tt.fields {
				assert.Contains(t, validationErr.FieldErrors(), field)
			}
		})
	}
}

func TestReviewService_ListReviews(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()
	offer := testOffer(testBusiness("A", "Pune"), "Deal", time.Now().Add(time.Hour))

	reviews := []*entity.Review{{Rating: 5}, {Rating: 4}, {Rating: 4}}
	f.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)
	f.reviewRepo.EXPECT().FindByOfferID(ctx, offer.ID).Return(reviews, nil)

	list, err := f.service.ListReviews(ctx, offer.ID)
	require.NoError(t, err)
	assert.Len(t, list.Reviews, 3)
	assert.Equal(t, 3, list.Summary.Count)
	assert.InDelta(t, 4.3, list.Summary.Average, 0.001)
}

func TestReviewService_ListReviews_UnknownOffer(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()
	offerID := uuid.New()

	f.offerRepo.EXPECT().FindByID(ctx, offerID).Return(nil, repository.ErrOfferNotFound)

	_, err := f.service.ListReviews(ctx, offerID)
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
}
