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

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Omit("Customer", "Store").Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidRequest.WrapMessage("invalid customer or store reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Preload("Store.Partner").
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

func (repo *reviewRepository) FindByStore(ctx context.Context, storeID uuid.UUID, page entity.PageRequest) (entity.Page[*entity.Review], error) {
	base := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("store_id = ?", storeID)

	rows, total, err := paginate[model.ReviewModel](base, page, func(q *gorm.DB) *gorm.DB {
		return q.Preload("Customer").Preload("Store.Partner").Order("created_at DESC")
	})
	if err != nil {
		return entity.Page[*entity.Review]{}, errors.Wrap(err, "failed to find reviews by store")
	}

	return entity.NewPage(mapModels(rows, toReviewDomain), page, total), nil
}

func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Updates(map[string]any{
			"title": review.Title,
			"text":  review.Text,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

func (repo *reviewRepository) Delete(ctx context.Context, review *entity.Review) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", review.ID).
		Delete(&model.ReviewModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	review := &entity.Review{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		StoreID:    data.StoreID,
		Title:      data.Title,
		Text:       data.Text,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}

	if data.Customer != nil {
		review.CustomerUID = data.Customer.UID
		review.CustomerName = data.Customer.Name
	}

	if data.Store != nil {
		review.Storename = data.Store.Storename
		if data.Store.Partner != nil {
			review.PartnerUID = data.Store.Partner.UID
		}
	}

	return review
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		StoreID:    data.StoreID,
		Title:      data.Title,
		Text:       data.Text,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
