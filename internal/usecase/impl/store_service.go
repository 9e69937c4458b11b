package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "github.com/nadoran78/mytable/internal/delivery/context"
	"github.com/nadoran78/mytable/internal/domain/constants"
	"github.com/nadoran78/mytable/internal/domain/entity"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
	"github.com/nadoran78/mytable/internal/domain/policy"
	"github.com/nadoran78/mytable/internal/domain/repository"
	"github.com/nadoran78/mytable/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type storeService struct {
	txManager   repository.TransactionManager
	storeRepo   repository.StoreRepository
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	StoreRepo   repository.StoreRepository
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewStoreService creates a new store service instance
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		txManager:   params.TxManager,
		storeRepo:   params.StoreRepo,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a store owned by the partner.
func (srv *storeService) Register(ctx context.Context, partnerUID string, input *usecase.StoreInput) (*entity.Store, error) {
	var registered *entity.Store

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storeRepo := repoFactory.NewStoreRepository()

		partner, err := loadCallerAccount(ctx, repoFactory.NewAccountRepository(), partnerIdentity(partnerUID))
		if err != nil {
			return err
		}

		exists, err := storeRepo.ExistsByStorename(ctx, input.Storename)
		if err != nil {
			return errors.Wrap(err, "failed to check storename")
		}
		if exists {
			return domainerrors.ErrAlreadyRegisteredStorename
		}

		store := &entity.Store{
			PartnerID:    partner.ID,
			PartnerUID:   partner.UID,
			PartnerPhone: partner.Phone,
		}
		applyStoreInput(store, input)

		if err := storeRepo.Create(ctx, store); err != nil {
			if errors.Is(err, repository.ErrDuplicateStorename) {
				return domainerrors.ErrAlreadyRegisteredStorename
			}

			return errors.Wrap(err, "failed to create store")
		}

		registered = store

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Store registered", slog.String("storename", registered.Storename), slog.String("partnerUid", partnerUID))

	return registered, nil
}

// AutoComplete suggests storenames containing the keyword.
func (srv *storeService) AutoComplete(ctx context.Context, keyword string) ([]string, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []string{}, nil
	}

	names, err := srv.storeRepo.SearchStorenames(ctx, keyword, constants.AutoCompleteLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search storenames")
	}

	if names == nil {
		names = []string{}
	}

	return names, nil
}

// GetInfo returns a store by name.
func (srv *storeService) GetInfo(ctx context.Context, storename string) (*entity.Store, error) {
	return findStore(ctx, srv.storeRepo, storename)
}

// Update edits a store owned by the partner; the storename may change to a free one.
func (srv *storeService) Update(ctx context.Context, partnerUID, existingStorename string, input *usecase.StoreInput) (*entity.Store, error) {
	var updated *entity.Store

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storeRepo := repoFactory.NewStoreRepository()

		store, err := findStore(ctx, storeRepo, existingStorename)
		if err != nil {
			return err
		}

		if err := policy.RequireStoreOwner(partnerUID, store); err != nil {
			return err
		}

		if input.Storename != store.Storename {
			exists, err := storeRepo.ExistsByStorename(ctx, input.Storename)
			if err != nil {
				return errors.Wrap(err, "failed to check storename")
			}
			if exists {
				return domainerrors.ErrAlreadyRegisteredStorename
			}
		}

		applyStoreInput(store, input)

		if err := storeRepo.Update(ctx, store); err != nil {
			if errors.Is(err, repository.ErrDuplicateStorename) {
				return domainerrors.ErrAlreadyRegisteredStorename
			}

			return errors.Wrap(err, "failed to update store")
		}

		updated = store

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a store owned by the partner.
func (srv *storeService) Delete(ctx context.Context, partnerUID, storename string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storeRepo := repoFactory.NewStoreRepository()

		store, err := findStore(ctx, storeRepo, storename)
		if err != nil {
			return err
		}

		if err := policy.RequireStoreOwner(partnerUID, store); err != nil {
			return err
		}

		if err := storeRepo.Delete(ctx, store); err != nil {
			return errors.Wrap(err, "failed to delete store")
		}

		srv.log(ctx).Info("Store deleted", slog.String("storename", storename), slog.String("partnerUid", partnerUID))

		return nil
	})
}

// ListMine pages through the partner's stores.
func (srv *storeService) ListMine(ctx context.Context, partnerUID string, page entity.PageRequest) (entity.Page[*entity.Store], error) {
	partner, err := loadCallerAccount(ctx, srv.accountRepo, partnerIdentity(partnerUID))
	if err != nil {
		return entity.Page[*entity.Store]{}, err
	}

	stores, err := srv.storeRepo.FindByPartner(ctx, partner.ID, page)
	if err != nil {
		return entity.Page[*entity.Store]{}, errors.Wrap(err, "failed to list partner stores")
	}

	return stores, nil
}

func applyStoreInput(store *entity.Store, input *usecase.StoreInput) {
	store.Storename = input.Storename
	store.Phone = input.Phone
	store.Address = input.Address
	store.Description = input.Description

	if len(input.Tables) == 0 {
		store.Restaurant = nil

		return
	}

	store.Restaurant = &entity.RestaurantDetail{Tables: append([]entity.Table(nil), input.Tables...)}
}

func findStore(ctx context.Context, storeRepo repository.StoreRepository, storename string) (*entity.Store, error) {
	store, err := storeRepo.FindByStorename(ctx, storename)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return store, nil
}

func partnerIdentity(uid string) entity.Identity {
	return entity.Identity{UID: uid, Roles: entity.Roles{entity.RolePartner}}
}

func customerIdentity(uid string) entity.Identity {
	return entity.Identity{UID: uid, Roles: entity.Roles{entity.RoleCustomer}}
}
