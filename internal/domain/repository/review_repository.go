package repository

import (
	"context"

	"github.com/nadoran78/mytable/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrReviewNotFound is returned when no review has the given id.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines persistence for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a review with its writer and store projections.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByStore lists a store's reviews, newest first.
	FindByStore(ctx context.Context, storeID uuid.UUID, page entity.PageRequest) (entity.Page[*entity.Review], error)

	// Update overwrites title and text.
	Update(ctx context.Context, review *entity.Review) error

	Delete(ctx context.Context, review *entity.Review) error
}
