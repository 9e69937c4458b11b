package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountKind is the discriminant between the two account variants.
type AccountKind string

const (
	AccountKindCustomer AccountKind = "CUSTOMER"
	AccountKindPartner  AccountKind = "PARTNER"
)

// IsValid checks if the kind is one of the known variants.
func (k AccountKind) IsValid() bool {
	return k == AccountKindCustomer || k == AccountKindPartner
}

// Role returns the single role granted to accounts of this kind.
func (k AccountKind) Role() Role {
	if k == AccountKindPartner {
		return RolePartner
	}

	return RoleCustomer
}

// ParseAccountKind accepts the lowercase path form ("customer", "partner") as well as the stored form.
func ParseAccountKind(s string) (AccountKind, bool) {
	kind := AccountKind(strings.ToUpper(s))

	return kind, kind.IsValid()
}

// Account is a customer or a partner. Both variants hold credentials, an external uid and a role set.
type Account struct {
	ID           uuid.UUID   // Internal identifier, never exposed.
	UID          string      // Externally visible identity and token subject. Immutable.
	Kind         AccountKind // CUSTOMER or PARTNER.
	Email        string      // Unique within the account's kind.
	Name         string
	PasswordHash string
	Phone        string
	Birth        time.Time
	Roles        Roles
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the result of resolving a caller token.
type Identity struct {
	UID   string
	Roles Roles
}

// IsCustomer reports whether the caller holds only the customer role.
func (i Identity) IsCustomer() bool {
	return i.Roles.Is(RoleCustomer)
}

// IsPartner reports whether the caller holds only the partner role.
func (i Identity) IsPartner() bool {
	return i.Roles.Is(RolePartner)
}

// Kind maps the identity back to its account variant.
func (i Identity) Kind() (AccountKind, bool) {
	switch {
	case i.IsCustomer():
		return AccountKindCustomer, true
	case i.IsPartner():
		return AccountKindPartner, true
	default:
		return "", false
	}
}

// NewExternalUID returns a random 32-character hex identifier.
func NewExternalUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
