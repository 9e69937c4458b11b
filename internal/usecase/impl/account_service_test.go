package impl

import (
	"context"
	"testing"
	"time"

	"github.com/nadoran78/mytable/internal/domain/entity"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
	"github.com/nadoran78/mytable/internal/domain/repository"
	mockRepo "github.com/nadoran78/mytable/internal/mocks/repository"
	mockSvc "github.com/nadoran78/mytable/internal/mocks/service"
	"github.com/nadoran78/mytable/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	expectTransactions(t, txManager, txRepos{accounts: accountRepo})

	service := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      service,
		txManager:    txManager,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func testPartnerAccount() *entity.Account {
	return &entity.Account{
		ID:           uuid.New(),
		UID:          testPartnerUID,
		Kind:         entity.AccountKindPartner,
		Email:        "owner@example.com",
		Name:         "박사장",
		PasswordHash: "hashed",
		Phone:        testPartnerPhone,
		Roles:        entity.Roles{entity.RolePartner},
	}
}

func TestAccountService_SignUp_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{
		Kind:     entity.AccountKindPartner,
		Email:    "owner@example.com",
		Password: "secret123",
		Name:     "박사장",
		Phone:    testPartnerPhone,
		Birth:    time.Date(1985, time.March, 2, 0, 0, 0, 0, time.UTC),
	}

	fx.accountRepo.EXPECT().ExistsByKindAndEmail(ctx, entity.AccountKindPartner, "owner@example.com").Return(false, nil)
	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	fx.accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	account, err := fx.service.SignUp(ctx, input)
	require.NoError(t, err)
	assert.Len(t, account.UID, 32)
	assert.Equal(t, "hashed", account.PasswordHash)
	assert.Equal(t, entity.Roles{entity.RolePartner}, account.Roles)
	assert.Equal(t, entity.AccountKindPartner, account.Kind)
}

func TestAccountService_SignUp_DuplicateEmail(t *testing.T) {
	t.Run("caught by the existence check", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.accountRepo.EXPECT().ExistsByKindAndEmail(mock.Anything, entity.AccountKindCustomer, "a@example.com").Return(true, nil)

		_, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{
			Kind: entity.AccountKindCustomer, Email: "a@example.com", Password: "pw",
		})
		assert.ErrorIs(t, err, domainerrors.ErrAlreadyEmailExist)
	})

	t.Run("caught by the unique constraint", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.accountRepo.EXPECT().ExistsByKindAndEmail(mock.Anything, entity.AccountKindCustomer, "a@example.com").Return(false, nil)
		fx.hasher.EXPECT().Hash("pw").Return("hashed", nil)
		fx.accountRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateEmail)

		_, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{
			Kind: entity.AccountKindCustomer, Email: "a@example.com", Password: "pw",
		})
		assert.ErrorIs(t, err, domainerrors.ErrAlreadyEmailExist)
	})
}

func TestAccountService_SignUp_InvalidKind(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{Kind: "ADMIN", Email: "a@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRequest)
}

func TestAccountService_SignIn(t *testing.T) {
	ctx := context.Background()
	account := testPartnerAccount()

	t.Run("issues a token", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.accountRepo.EXPECT().FindByKindAndEmail(ctx, entity.AccountKindPartner, account.Email).Return(account, nil)
		fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)
		fx.tokenService.EXPECT().Issue(testPartnerUID, entity.Roles{entity.RolePartner}).Return("signed.jwt.token", nil)
		fx.tokenService.EXPECT().TTL().Return(time.Hour)

		output, err := fx.service.SignIn(ctx, &usecase.SignInInput{Kind: entity.AccountKindPartner, Email: account.Email, Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, "signed.jwt.token", output.Token)
		assert.Equal(t, time.Hour, output.ExpiresIn)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.accountRepo.EXPECT().FindByKindAndEmail(ctx, entity.AccountKindCustomer, account.Email).Return(nil, repository.ErrAccountNotFound)

		_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Kind: entity.AccountKindCustomer, Email: account.Email, Password: "secret123"})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.accountRepo.EXPECT().FindByKindAndEmail(ctx, entity.AccountKindPartner, account.Email).Return(account, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Kind: entity.AccountKindPartner, Email: account.Email, Password: "nope"})
		assert.ErrorIs(t, err, domainerrors.ErrIncorrectPassword)
	})

	t.Run("token failure", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.accountRepo.EXPECT().FindByKindAndEmail(ctx, entity.AccountKindPartner, account.Email).Return(account, nil)
		fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)
		fx.tokenService.EXPECT().Issue(testPartnerUID, mock.Anything).Return("", errors.New("no key"))

		_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Kind: entity.AccountKindPartner, Email: account.Email, Password: "secret123"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to issue token")
	})
}

func TestAccountService_GetInfo_KindMismatch(t *testing.T) {
	fx := createTestAccountService(t)
	fx.accountRepo.EXPECT().FindByUID(mock.Anything, testPartnerUID).Return(testPartnerAccount(), nil)

	_, err := fx.service.GetInfo(context.Background(), customerIdentity(testPartnerUID))
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAccountService_GetInfo_NoRole(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.GetInfo(context.Background(), entity.Identity{UID: testPartnerUID})
	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}

func TestAccountService_UpdateInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("changes email and password", func(t *testing.T) {
		fx := createTestAccountService(t)
		account := testPartnerAccount()
		fx.accountRepo.EXPECT().FindByUID(ctx, testPartnerUID).Return(account, nil)
		fx.accountRepo.EXPECT().ExistsByKindAndEmail(ctx, entity.AccountKindPartner, "new@example.com").Return(false, nil)
		fx.hasher.EXPECT().Hash("newpass").Return("rehashed", nil)
		fx.accountRepo.EXPECT().Update(ctx, account).Return(nil)

		updated, err := fx.service.UpdateInfo(ctx, partnerIdentity(testPartnerUID), &usecase.UpdateAccountInput{
			Email:    "new@example.com",
			Password: "newpass",
		})
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", updated.Email)
		assert.Equal(t, "rehashed", updated.PasswordHash)
		assert.Equal(t, "박사장", updated.Name)
		assert.Equal(t, testPartnerPhone, updated.Phone)
	})

	t.Run("email taken", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.accountRepo.EXPECT().FindByUID(ctx, testPartnerUID).Return(testPartnerAccount(), nil)
		fx.accountRepo.EXPECT().ExistsByKindAndEmail(ctx, entity.AccountKindPartner, "taken@example.com").Return(true, nil)

		_, err := fx.service.UpdateInfo(ctx, partnerIdentity(testPartnerUID), &usecase.UpdateAccountInput{Email: "taken@example.com"})
		assert.ErrorIs(t, err, domainerrors.ErrAlreadyEmailExist)
		fx.accountRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("same email skips the check", func(t *testing.T) {
		fx := createTestAccountService(t)
		account := testPartnerAccount()
		fx.accountRepo.EXPECT().FindByUID(ctx, testPartnerUID).Return(account, nil)
		fx.accountRepo.EXPECT().Update(ctx, account).Return(nil)

		updated, err := fx.service.UpdateInfo(ctx, partnerIdentity(testPartnerUID), &usecase.UpdateAccountInput{
			Email: account.Email,
			Name:  "박대표",
		})
		require.NoError(t, err)
		assert.Equal(t, "박대표", updated.Name)
		assert.Equal(t, "hashed", updated.PasswordHash)
	})
}

func TestAccountService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("with the right password", func(t *testing.T) {
		fx := createTestAccountService(t)
		account := testPartnerAccount()
		fx.accountRepo.EXPECT().FindByUID(ctx, testPartnerUID).Return(account, nil)
		fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)
		fx.accountRepo.EXPECT().Delete(ctx, account).Return(nil)

		require.NoError(t, fx.service.Delete(ctx, partnerIdentity(testPartnerUID), "secret123"))
	})

	t.Run("with the wrong password", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.accountRepo.EXPECT().FindByUID(ctx, testPartnerUID).Return(testPartnerAccount(), nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		err := fx.service.Delete(ctx, partnerIdentity(testPartnerUID), "nope")
		assert.ErrorIs(t, err, domainerrors.ErrIncorrectPassword)
	})
}
