// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/nadoran78/mytable/internal/delivery/context"
	"github.com/nadoran78/mytable/internal/domain/entity"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
	"github.com/nadoran78/mytable/internal/domain/repository"
	"github.com/nadoran78/mytable/internal/domain/service"
	"github.com/nadoran78/mytable/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a customer or partner account.
func (srv *accountService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*entity.Account, error) {
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrInvalidRequest.WrapMessage("unknown account kind")
	}

	exists, err := srv.accountRepo.ExistsByKindAndEmail(ctx, input.Kind, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email availability")
	}
	if exists {
		srv.log(ctx).Warn("Sign-up with registered email", slog.String("kind", string(input.Kind)), slog.String("email", input.Email))

		return nil, domainerrors.ErrAlreadyEmailExist
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during sign-up")
	}

	account := &entity.Account{
		UID:          entity.NewExternalUID(),
		Kind:         input.Kind,
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hashed,
		Phone:        input.Phone,
		Birth:        input.Birth,
		Roles:        entity.Roles{input.Kind.Role()},
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrAlreadyEmailExist
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account registered", slog.String("kind", string(account.Kind)), slog.String("uid", account.UID))

	return account, nil
}

// SignIn verifies the credentials and issues an identity token.
func (srv *accountService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	account, err := srv.accountRepo.FindByKindAndEmail(ctx, input.Kind, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find account for sign-in")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Sign-in password mismatch", slog.String("uid", account.UID))

		return nil, domainerrors.ErrIncorrectPassword
	}

	token, err := srv.tokenService.Issue(account.UID, account.Roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.SignInOutput{
		Token:     token,
		ExpiresIn: srv.tokenService.TTL(),
	}, nil
}

// GetInfo returns the caller's own account.
func (srv *accountService) GetInfo(ctx context.Context, caller entity.Identity) (*entity.Account, error) {
	return loadCallerAccount(ctx, srv.accountRepo, caller)
}

// UpdateInfo overwrites the caller's profile. Empty fields are left untouched.
func (srv *accountService) UpdateInfo(ctx context.Context, caller entity.Identity, input *usecase.UpdateAccountInput) (*entity.Account, error) {
	var updated *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := loadCallerAccount(ctx, accountRepo, caller)
		if err != nil {
			return err
		}

		if input.Email != "" && input.Email != account.Email {
			exists, err := accountRepo.ExistsByKindAndEmail(ctx, account.Kind, input.Email)
			if err != nil {
				return errors.Wrap(err, "failed to check email availability")
			}
			if exists {
				return domainerrors.ErrAlreadyEmailExist
			}
			account.Email = input.Email
		}

		if input.Password != "" {
			hashed, err := srv.hasher.Hash(input.Password)
			if err != nil {
				return errors.Wrap(err, "failed to hash password")
			}
			account.PasswordHash = hashed
		}

		if input.Name != "" {
			account.Name = input.Name
		}
		if input.Phone != "" {
			account.Phone = input.Phone
		}
		if !input.Birth.IsZero() {
			account.Birth = input.Birth
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrAlreadyEmailExist
			}

			return errors.Wrap(err, "failed to update account")
		}

		updated = account

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the caller's account after re-verifying the password.
func (srv *accountService) Delete(ctx context.Context, caller entity.Identity, password string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := loadCallerAccount(ctx, accountRepo, caller)
		if err != nil {
			return err
		}

		if !srv.hasher.Check(password, account.PasswordHash) {
			return domainerrors.ErrIncorrectPassword
		}

		if err := accountRepo.Delete(ctx, account); err != nil {
			return errors.Wrap(err, "failed to delete account")
		}

		srv.log(ctx).Info("Account deleted", slog.String("uid", account.UID))

		return nil
	})
}

// loadCallerAccount resolves the identity to an account of the matching kind.
func loadCallerAccount(ctx context.Context, accountRepo repository.AccountRepository, caller entity.Identity) (*entity.Account, error) {
	kind, ok := caller.Kind()
	if !ok {
		return nil, domainerrors.ErrAccessDenied
	}

	account, err := accountRepo.FindByUID(ctx, caller.UID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if account.Kind != kind {
		return nil, domainerrors.ErrUserNotFound
	}

	return account, nil
}
