// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/nadoran78/mytable/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an account of either kind.
type SignUpInput struct {
	Kind     entity.AccountKind
	Email    string
	Password string
	Name     string
	Phone    string
	Birth    time.Time
}

// SignInInput defines the credentials for one account kind.
type SignInInput struct {
	Kind     entity.AccountKind
	Email    string
	Password string
}

// UpdateAccountInput carries the replacement profile. An empty Password keeps the current one.
type UpdateAccountInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Birth    time.Time
}

// --- Output DTOs ---

// SignInOutput returns the identity token issued at sign-in.
type SignInOutput struct {
	Token     string
	ExpiresIn time.Duration
}

// AccountUsecase defines sign-up, sign-in and member info operations.
type AccountUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*entity.Account, error)
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)
	GetInfo(ctx context.Context, caller entity.Identity) (*entity.Account, error)
	UpdateInfo(ctx context.Context, caller entity.Identity, input *UpdateAccountInput) (*entity.Account, error)
	// Delete removes the caller's account after re-verifying the password.
	Delete(ctx context.Context, caller entity.Identity, password string) error
}
