package queries

import (
	"context"
	"time"

	"neighbiz/internal/domain/policy"
	"neighbiz/internal/domain/store"
	"neighbiz/internal/domain/user"
	"neighbiz/internal/infra"
	"neighbiz/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidOrdering = errs.Validation("INVALID_ORDERING", "ordering must be updated_at, expected_value or monthly_limit, optionally prefixed with -")

const DefaultOrdering = "-updated_at"

var orderings = map[string]bool{
	"updated_at":      true,
	"-updated_at":     true,
	"expected_value":  true,
	"-expected_value": true,
	"monthly_limit":   true,
	"-monthly_limit":  true,
}

// StoreDetailView represents a store page with its current offer
type StoreDetailView struct {
	ID            uuid.UUID           `json:"id"`
	OwnerID       uuid.UUID           `json:"-"`
	Name          string              `json:"name"`
	Category      string              `json:"category"`
	Phone         string              `json:"phone"`
	Address       string              `json:"address"`
	Description   *string             `json:"description,omitempty"`
	ImageKey      *string             `json:"image_key,omitempty"`
	BusinessHours store.BusinessHours `json:"business_hours"`
	IsActive      bool                `json:"is_active"`
	UpdatedAt     time.Time           `json:"updated_at"`
	Policy        *PolicySummary      `json:"policy,omitempty"`
	IsPartnered   bool                `json:"is_partnered"`
}

// DirectoryItemView represents one row of the store directory
type DirectoryItemView struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Address     string        `json:"address"`
	ImageKey    *string       `json:"image_key,omitempty"`
	Policy      PolicySummary `json:"policy"`
	IsPartnered bool          `json:"is_partnered"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type DirectoryFilter struct {
	Category    *string
	Keyword     *string
	ValueMin    *int
	ValueMax    *int
	Duration    *string
	LimitMin    *int
	LimitMax    *int
	IsPartnered *bool
	Ordering    string
	PageRequest
}

type StoreQueries interface {
	GetDetail(ctx context.Context, id uuid.UUID) (*StoreDetailView, error)
	GetMine(ctx context.Context, principal user.Principal) (*StoreDetailView, error)
	SearchDirectory(ctx context.Context, principal user.Principal, filter DirectoryFilter) (*Page[*DirectoryItemView], error)
}

type StoreReadStore interface {
	FindDetail(ctx context.Context, id uuid.UUID) (*StoreDetailView, error)
	FindSummary(ctx context.Context, id uuid.UUID) (*StoreSummary, error)
	Search(ctx context.Context, excludeStoreID uuid.UUID, filter DirectoryFilter) ([]*DirectoryItemView, int64, error)
}

type storeQueriesImpl struct {
	readStore StoreReadStore
}

func NewStoreQueries(readStore StoreReadStore) StoreQueries {
	return &storeQueriesImpl{
		readStore: readStore,
	}
}

func (q *storeQueriesImpl) GetDetail(ctx context.Context, id uuid.UUID) (*StoreDetailView, error) {
	view, err := q.readStore.FindDetail(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, store.ErrStoreNotFound
		}
		return nil, err
	}
	if !view.IsActive {
		return nil, store.ErrStoreNotFound
	}
	return view, nil
}

func (q *storeQueriesImpl) GetMine(ctx context.Context, principal user.Principal) (*StoreDetailView, error) {
	storeID, err := principal.RequireOwner()
	if err != nil {
		return nil, err
	}
	view, err := q.readStore.FindDetail(ctx, storeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, store.ErrStoreNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *storeQueriesImpl) SearchDirectory(ctx context.Context, principal user.Principal, filter DirectoryFilter) (*Page[*DirectoryItemView], error) {
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	items, total, err := q.readStore.Search(ctx, principal.StoreID(), filter)
	if err != nil {
		return nil, err
	}
	return NewPage(items, total, filter.PageRequest), nil
}

func normalizeFilter(f DirectoryFilter) (DirectoryFilter, error) {
	page, err := f.PageRequest.Normalize()
	if err != nil {
		return DirectoryFilter{}, err
	}
	f.PageRequest = page

	if f.Ordering == "" {
		f.Ordering = DefaultOrdering
	}
	if !orderings[f.Ordering] {
		return DirectoryFilter{}, ErrInvalidOrdering
	}
	if f.Category != nil {
		if _, err := store.NewCategory(*f.Category); err != nil {
			return DirectoryFilter{}, err
		}
	}
	if f.Duration != nil {
		if _, err := policy.NewDuration(*f.Duration); err != nil {
			return DirectoryFilter{}, err
		}
	}
	return f, nil
}
