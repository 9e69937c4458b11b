package repository

import (
	"context"

	"github.com/nadoran78/mytable/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrStoreNotFound is returned when no store has the given storename.
	ErrStoreNotFound = errors.New("store not found")
	// ErrDuplicateStorename is returned when the storename unique constraint fires.
	ErrDuplicateStorename = errors.New("storename already registered")
)

// StoreRepository defines persistence for stores.
type StoreRepository interface {
	// Create persists a store; ErrDuplicateStorename on conflict.
	Create(ctx context.Context, store *entity.Store) error

	// FindByStorename retrieves a store and its owner's uid.
	FindByStorename(ctx context.Context, storename string) (*entity.Store, error)

	// ExistsByStorename reports whether the storename is taken.
	ExistsByStorename(ctx context.Context, storename string) (bool, error)

	// SearchStorenames returns up to limit storenames containing keyword.
	SearchStorenames(ctx context.Context, keyword string, limit int) ([]string, error)

	// FindByPartner lists a partner's stores, oldest first.
	FindByPartner(ctx context.Context, partnerID uuid.UUID, page entity.PageRequest) (entity.Page[*entity.Store], error)

	// Update overwrites storename, phone, address, description and restaurant tables.
	Update(ctx context.Context, store *entity.Store) error

	// Delete removes the store.
	Delete(ctx context.Context, store *entity.Store) error
}
