package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "localdeal/internal/delivery/context"
	"localdeal/internal/domain/entity"
	domainerrors "localdeal/internal/domain/errors"
	"localdeal/internal/domain/repository"
	"localdeal/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const maxReviewCommentLength = 1000

type reviewService struct {
	reviewRepo repository.ReviewRepository
	offerRepo  repository.OfferRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	OfferRepo  repository.OfferRepository
	UserRepo   repository.UserRepository
	Logger     *slog.Logger
}

// NewReviewService creates the review use case.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
		offerRepo:  params.OfferRepo,
		userRepo:   params.UserRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddReview appends a review. The reviewer name is taken from the profile at write time.
func (srv *reviewService) AddReview(ctx context.Context, userID, offerID uuid.UUID, input *usecase.AddReviewInput) (*entity.Review, error) {
	comment := strings.TrimSpace(input.Comment)
	fields := make(map[string]string)
	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		fields["rating"] = "rating must be between 1 and 5"
	}
	switch {
	case comment == "":
		fields["comment"] = "comment is required"
	case len([]rune(comment)) > maxReviewCommentLength:
		fields["comment"] = "comment must be at most 1000 characters"
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	if _, err := findOffer(ctx, srv.offerRepo, offerID); err != nil {
		return nil, err
	}

	review := &entity.Review{
		ID:        uuid.New(),
		UserID:    userID,
		UserName:  srv.reviewerName(ctx, userID),
		OfferID:   offerID,
		Rating:    input.Rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	srv.log(ctx).Info("Review added", slog.Any("offerID", offerID), slog.Int("rating", review.Rating))

	return review, nil
}

func (srv *reviewService) ListReviews(ctx context.Context, offerID uuid.UUID) (*usecase.ReviewList, error) {
	if _, err := findOffer(ctx, srv.offerRepo, offerID); err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.FindByOfferID(ctx, offerID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list reviews")
	}
	if reviews == nil {
		reviews = []*entity.Review{}
	}

	return &usecase.ReviewList{Reviews: reviews, Summary: entity.SummarizeReviews(reviews)}, nil
}

func (srv *reviewService) reviewerName(ctx context.Context, userID uuid.UUID) string {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		srv.log(ctx).Debug("Reviewer profile unavailable", slog.Any("userID", userID), slog.Any("error", err))

		return entity.AnonymousReviewer
	}

	if name := strings.TrimSpace(user.Name); name != "" {
		return name
	}

	return entity.AnonymousReviewer
}
