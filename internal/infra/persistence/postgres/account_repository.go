package postgres

import (
	"context"

	"github.com/nadoran78/mytable/internal/domain/entity"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
	"github.com/nadoran78/mytable/internal/domain/repository"
	"github.com/nadoran78/mytable/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create persists a new account.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidRequest.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindByUID retrieves an account by its external uid.
func (repo *accountRepository) FindByUID(ctx context.Context, uid string) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("uid = ?", uid).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by uid")
	}

	return toAccountDomain(&accountM), nil
}

// FindByKindAndEmail retrieves an account of one variant by email.
func (repo *accountRepository) FindByKindAndEmail(ctx context.Context, kind entity.AccountKind, email string) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("kind = ? AND email = ?", string(kind), email).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// ExistsByKindAndEmail reports whether the email is taken within the variant.
func (repo *accountRepository) ExistsByKindAndEmail(ctx context.Context, kind entity.AccountKind, email string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("kind = ? AND email = ?", string(kind), email).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check account email")
	}

	return count > 0, nil
}

// Update overwrites the mutable profile fields.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"email":         account.Email,
			"name":          account.Name,
			"phone":         account.Phone,
			"birth":         account.Birth,
			"password_hash": account.PasswordHash,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Delete removes the account.
func (repo *accountRepository) Delete(ctx context.Context, account *entity.Account) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", account.ID).
		Delete(&model.AccountModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidRequest.WrapMessage("account still owns stores or reservations")
		}

		return errors.Wrap(result.Error, "failed to delete account")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		UID:          data.UID,
		Kind:         entity.AccountKind(data.Kind),
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Phone:        data.Phone,
		Birth:        data.Birth,
		Roles:        entity.RolesFromStrings(data.Roles),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID,
		UID:          data.UID,
		Kind:         string(data.Kind),
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Phone:        data.Phone,
		Birth:        data.Birth,
		Roles:        data.Roles.ToStrings(),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
