package usecase

import (
	"context"

	"github.com/nadoran78/mytable/internal/domain/entity"
)

// StoreInput carries the editable store attributes. Tables are optional; when set the store
// takes party-sized bookings.
type StoreInput struct {
	Storename   string
	Phone       string
	Address     entity.Address
	Description string
	Tables      []entity.Table
}

// StoreUsecase defines store management operations.
type StoreUsecase interface {
	Register(ctx context.Context, partnerUID string, input *StoreInput) (*entity.Store, error)
	// AutoComplete returns up to ten storenames containing keyword.
	AutoComplete(ctx context.Context, keyword string) ([]string, error)
	GetInfo(ctx context.Context, storename string) (*entity.Store, error)
	Update(ctx context.Context, partnerUID, existingStorename string, input *StoreInput) (*entity.Store, error)
	Delete(ctx context.Context, partnerUID, storename string) error
	ListMine(ctx context.Context, partnerUID string, page entity.PageRequest) (entity.Page[*entity.Store], error)
}
