package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/nadoran78/mytable/internal/delivery/context"
	"github.com/nadoran78/mytable/internal/domain/entity"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
	"github.com/nadoran78/mytable/internal/domain/policy"
	"github.com/nadoran78/mytable/internal/domain/repository"
	"github.com/nadoran78/mytable/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	storeRepo  repository.StoreRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	StoreRepo  repository.StoreRepository
	Logger     *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		storeRepo:  params.StoreRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a review by a customer who has booked the store at least once.
func (srv *reviewService) Create(ctx context.Context, customerUID string, input *usecase.ReviewInput) (*entity.Review, error) {
	var created *entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		store, err := findStore(ctx, repoFactory.NewStoreRepository(), input.Storename)
		if err != nil {
			return err
		}

		customer, err := loadCallerAccount(ctx, repoFactory.NewAccountRepository(), customerIdentity(customerUID))
		if err != nil {
			return err
		}

		visited, err := repoFactory.NewReservationRepository().ExistsByCustomerAndStore(ctx, customer.ID, store.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check reservation history")
		}
		if !visited {
			return domainerrors.ErrDidNotUseThisStore
		}

		review := &entity.Review{
			CustomerID:   customer.ID,
			CustomerUID:  customer.UID,
			CustomerName: customer.Name,
			StoreID:      store.ID,
			Storename:    store.Storename,
			PartnerUID:   store.PartnerUID,
			Title:        input.Title,
			Text:         input.Text,
		}

		if err := repoFactory.NewReviewRepository().Create(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		created = review

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Review created", slog.String("storename", created.Storename), slog.Any("reviewID", created.ID))

	return created, nil
}

// ListByStore pages through a store's reviews, newest first, with writer names masked.
func (srv *reviewService) ListByStore(ctx context.Context, storename string, page entity.PageRequest) (entity.Page[*entity.Review], error) {
	store, err := findStore(ctx, srv.storeRepo, storename)
	if err != nil {
		return entity.Page[*entity.Review]{}, err
	}

	reviews, err := srv.reviewRepo.FindByStore(ctx, store.ID, page)
	if err != nil {
		return entity.Page[*entity.Review]{}, errors.Wrap(err, "failed to list reviews")
	}

	return entity.MapPage(reviews, func(review *entity.Review) *entity.Review {
		masked := *review
		masked.CustomerName = entity.MaskName(review.CustomerName)

		return &masked
	}), nil
}

func (srv *reviewService) Get(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	return findReview(ctx, srv.reviewRepo, id)
}

// Update edits title and text. Only the writer may edit and the store cannot change.
func (srv *reviewService) Update(ctx context.Context, customerUID string, id uuid.UUID, input *usecase.ReviewInput) (*entity.Review, error) {
	var updated *entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		review, err := findReview(ctx, reviewRepo, id)
		if err != nil {
			return err
		}

		if err := policy.RequireReviewWriter(customerUID, review); err != nil {
			return err
		}

		if input.Storename != review.Storename {
			return domainerrors.ErrCannotUpdateStorename
		}

		review.Title = input.Title
		review.Text = input.Text

		if err := reviewRepo.Update(ctx, review); err != nil {
			return errors.Wrap(err, "failed to update review")
		}

		updated = review

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a review on behalf of its writer or the reviewed store's owner.
func (srv *reviewService) Delete(ctx context.Context, caller entity.Identity, id uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		review, err := findReview(ctx, reviewRepo, id)
		if err != nil {
			return err
		}

		if err := policy.RequireReviewWriterOrStoreOwner(caller, review); err != nil {
			return err
		}

		if err := reviewRepo.Delete(ctx, review); err != nil {
			return errors.Wrap(err, "failed to delete review")
		}

		srv.log(ctx).Info("Review deleted", slog.Any("reviewID", id), slog.String("by", caller.UID))

		return nil
	})
}

func findReview(ctx context.Context, reviewRepo repository.ReviewRepository, id uuid.UUID) (*entity.Review, error) {
	review, err := reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}
