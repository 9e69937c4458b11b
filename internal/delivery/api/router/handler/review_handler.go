package handler

import (
	"log/slog"

	"github.com/nadoran78/mytable/internal/delivery/api/response"
	"github.com/nadoran78/mytable/internal/delivery/api/validator"
	"github.com/nadoran78/mytable/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves store reviews.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

func reviewID(c echo.Context) (uuid.UUID, error) {
	raw, err := requiredQuery(c, "reviewId")
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, validator.Invalid("reviewId", "유효하지 않은 리뷰 ID입니다.")
	}

	return id, nil
}

func reviewInput(req *ReviewRequest) *usecase.ReviewInput {
	return &usecase.ReviewInput{
		Storename: req.Storename,
		Title:     req.Title,
		Text:      req.Text,
	}
}

// Create handles POST /store/review
func (h *ReviewHandler) Create(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	var req ReviewRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.Create(c.Request().Context(), identity.UID, reviewInput(&req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return created(c, maskedReviewResponse(review))
}

// List handles GET /store/review/list?storename=
func (h *ReviewHandler) List(c echo.Context) error {
	storename, err := requiredQuery(c, "storename")
	if err != nil {
		return err
	}

	page, err := bindPage(c)
	if err != nil {
		return err
	}

	reviews, err := h.reviewUC.ListByStore(c.Request().Context(), storename, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, response.NewPageResponse(reviews, newReviewResponse))
}

// Get handles GET /store/review?reviewId=
func (h *ReviewHandler) Get(c echo.Context) error {
	id, err := reviewID(c)
	if err != nil {
		return err
	}

	review, err := h.reviewUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, maskedReviewResponse(review))
}

// Update handles PUT /store/review?reviewId=
func (h *ReviewHandler) Update(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	id, err := reviewID(c)
	if err != nil {
		return err
	}

	var req ReviewRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.Update(c.Request().Context(), identity.UID, id, reviewInput(&req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, maskedReviewResponse(review))
}

// Delete handles DELETE /store/review?reviewId=
func (h *ReviewHandler) Delete(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	id, err := reviewID(c)
	if err != nil {
		return err
	}

	if err := h.reviewUC.Delete(c.Request().Context(), identity, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"message": "리뷰가 삭제되었습니다."})
}
