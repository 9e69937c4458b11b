// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/nadoran78/mytable/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when the (kind, email) unique constraint fires.
	ErrDuplicateEmail = errors.New("email already registered")
)

// AccountRepository defines persistence for both account variants.
type AccountRepository interface {
	// Create persists a new account; ErrDuplicateEmail on (kind, email) conflict.
	Create(ctx context.Context, account *entity.Account) error

	// FindByUID retrieves an account by its external uid.
	FindByUID(ctx context.Context, uid string) (*entity.Account, error)

	// FindByKindAndEmail retrieves an account of one variant by email.
	FindByKindAndEmail(ctx context.Context, kind entity.AccountKind, email string) (*entity.Account, error)

	// ExistsByKindAndEmail reports whether the email is taken within the variant.
	ExistsByKindAndEmail(ctx context.Context, kind entity.AccountKind, email string) (bool, error)

	// Update overwrites email, password hash and the mutable profile fields.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes the account.
	Delete(ctx context.Context, account *entity.Account) error
}
