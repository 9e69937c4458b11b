package usecase

import (
	"context"

	"github.com/nadoran78/mytable/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewInput carries a review body. Storename identifies the store and cannot change on update.
type ReviewInput struct {
	Storename string
	Title     string
	Text      string
}

// ReviewUsecase defines review operations.
type ReviewUsecase interface {
	Create(ctx context.Context, customerUID string, input *ReviewInput) (*entity.Review, error)
	ListByStore(ctx context.Context, storename string, page entity.PageRequest) (entity.Page[*entity.Review], error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	Update(ctx context.Context, customerUID string, id uuid.UUID, input *ReviewInput) (*entity.Review, error)
	Delete(ctx context.Context, caller entity.Identity, id uuid.UUID) error
}
