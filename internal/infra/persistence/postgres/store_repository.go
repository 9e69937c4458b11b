package postgres

import (
	"context"

	"github.com/nadoran78/mytable/internal/domain/entity"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
	"github.com/nadoran78/mytable/internal/domain/repository"
	"github.com/nadoran78/mytable/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{
		db: db,
	}
}

// Create persists a store.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Omit("Partner").Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateStorename
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid partner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// FindByStorename retrieves a store together with its owner.
func (repo *storeRepository) FindByStorename(ctx context.Context, storename string) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Preload("Partner").
		Where("storename = ?", storename).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by storename")
	}

	return toStoreDomain(&storeM), nil
}

// ExistsByStorename reports whether the storename is taken.
func (repo *storeRepository) ExistsByStorename(ctx context.Context, storename string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("storename = ?", storename).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check storename")
	}

	return count > 0, nil
}

// SearchStorenames returns up to limit storenames containing keyword.
func (repo *storeRepository) SearchStorenames(ctx context.Context, keyword string, limit int) ([]string, error) {
	var names []string

	if err := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("storename LIKE ?", "%"+escapeLike(keyword)+"%").
		Order("storename ASC").
		Limit(limit).
		Pluck("storename", &names).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search storenames")
	}

	return names, nil
}

// FindByPartner lists a partner's stores, oldest first.
func (repo *storeRepository) FindByPartner(ctx context.Context, partnerID uuid.UUID, page entity.PageRequest) (entity.Page[*entity.Store], error) {
	base := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("partner_id = ?", partnerID)

	rows, total, err := paginate[model.StoreModel](base, page, func(q *gorm.DB) *gorm.DB {
		return q.Preload("Partner").Order("created_at ASC")
	})
	if err != nil {
		return entity.Page[*entity.Store]{}, errors.Wrap(err, "failed to find stores by partner")
	}

	return entity.NewPage(mapModels(rows, toStoreDomain), page, total), nil
}

// Update overwrites the editable store fields.
func (repo *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", store.ID).
		Select("storename", "phone", "sido", "sigungu", "roadname", "detail_address", "description", "is_restaurant", "tables").
		Updates(storeM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateStorename
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update store")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// Delete removes the store.
func (repo *storeRepository) Delete(ctx context.Context, store *entity.Store) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", store.ID).
		Delete(&model.StoreModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidRequest.WrapMessage("store still has reservations or reviews")
		}

		return errors.Wrap(result.Error, "failed to delete store")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	store := &entity.Store{
		ID:        data.ID,
		PartnerID: data.PartnerID,
		Storename: data.Storename,
		Phone:     data.Phone,
		Address: entity.Address{
			Sido:          data.Sido,
			Sigungu:       data.Sigungu,
			Roadname:      data.Roadname,
			DetailAddress: data.DetailAddress,
		},
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Partner != nil {
		store.PartnerUID = data.Partner.UID
		store.PartnerPhone = data.Partner.Phone
	}

	if data.IsRestaurant {
		tables := make([]entity.Table, 0, len(data.Tables))
		for _, t := range data.Tables {
			tables = append(tables, entity.Table{Volume: t.Volume, Amount: t.Amount})
		}
		store.Restaurant = &entity.RestaurantDetail{Tables: tables}
	}

	return store
}

func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	storeM := &model.StoreModel{
		ID:            data.ID,
		PartnerID:     data.PartnerID,
		Storename:     data.Storename,
		Phone:         data.Phone,
		Sido:          data.Address.Sido,
		Sigungu:       data.Address.Sigungu,
		Roadname:      data.Address.Roadname,
		DetailAddress: data.Address.DetailAddress,
		Description:   data.Description,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	if data.Restaurant != nil {
		storeM.IsRestaurant = true
		storeM.Tables = make([]model.TableSpec, 0, len(data.Restaurant.Tables))
		for _, t := range data.Restaurant.Tables {
			storeM.Tables = append(storeM.Tables, model.TableSpec{Volume: t.Volume, Amount: t.Amount})
		}
	}

	return storeM
}
