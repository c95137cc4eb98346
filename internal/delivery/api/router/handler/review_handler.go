package handler

import (
	"log/slog"
	"net/http"

	"localdeal/internal/delivery/api/response"
	"localdeal/internal/domain/entity"
	"localdeal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves offer reviews.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// AddReviewRequest is a new rating with its comment. Bounds are checked by the usecase.
type AddReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewListResponse is the reviews of an offer with their average.
type ReviewListResponse struct {
	Reviews []*entity.Review     `json:"reviews"`
	Summary entity.ReviewSummary `json:"summary"`
}

// AddReview handles POST /api/v1/offers/:id/reviews.
func (h *ReviewHandler) AddReview(c echo.Context) error {
	userID, offerID, err := userAndPathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	review, err := h.reviewUC.AddReview(c.Request().Context(), userID, offerID, &usecase.AddReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review)
}

// ListReviews handles GET /api/v1/offers/:id/reviews.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	offerID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	list, err := h.reviewUC.ListReviews(c.Request().Context(), offerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviews := list.Reviews
	if reviews == nil {
		reviews = []*entity.Review{}
	}

	return response.Success(c, http.StatusOK, ReviewListResponse{Reviews: reviews, Summary: list.Summary})
}
