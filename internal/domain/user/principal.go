package user

import (
	"neighbiz/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind = errs.Validation("INVALID_PRINCIPAL_KIND", "invalid principal kind")
	ErrNotOwner    = errs.Forbidden("NOT_OWNER", "store owner account required")
	ErrNotConsumer = errs.Forbidden("NOT_CONSUMER", "consumer account required")
	// ErrAccountInactive is returned for deactivated owners and consumers.
	ErrAccountInactive = errs.Forbidden("ACCOUNT_INACTIVE", "account is deactivated")
)

// Kind discriminates the two principal kinds sharing the auth surface.
type Kind string

const (
	KindOwner    Kind = "owner"
	KindConsumer Kind = "consumer"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindOwner, KindConsumer:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

// Principal is resolved once per request from the access token.
type Principal struct {
	id      uuid.UUID
	kind    Kind
	storeID uuid.UUID
}

func NewOwnerPrincipal(ownerID, storeID uuid.UUID) Principal {
	return Principal{id: ownerID, kind: KindOwner, storeID: storeID}
}

func NewConsumerPrincipal(consumerID uuid.UUID) Principal {
	return Principal{id: consumerID, kind: KindConsumer}
}

func (p Principal) ID() uuid.UUID    { return p.id }
func (p Principal) Kind() Kind       { return p.kind }
func (p Principal) IsOwner() bool    { return p.kind == KindOwner }
func (p Principal) IsConsumer() bool { return p.kind == KindConsumer }

// StoreID is uuid.Nil for consumers.
func (p Principal) StoreID() uuid.UUID { return p.storeID }

// RequireOwner returns the owner's store id.
func (p Principal) RequireOwner() (uuid.UUID, error) {
	if !p.IsOwner() || p.storeID == uuid.Nil {
		return uuid.Nil, ErrNotOwner
	}
	return p.storeID, nil
}

func (p Principal) RequireConsumer() (uuid.UUID, error) {
	if !p.IsConsumer() {
		return uuid.Nil, ErrNotConsumer
	}
	return p.id, nil
}
