//go:build unit || e2e

package builder

import (
	"time"

	"neighbiz/internal/domain/store"
	"neighbiz/internal/usecase/queries"

	"github.com/google/uuid"
)

type StoreBuilder struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	Category      string
	Phone         string
	Address       string
	Description   *string
	ImageKey      *string
	BusinessHours store.BusinessHours
	IsActive      bool
	UpdatedAt     time.Time
}

func NewStoreBuilder() *StoreBuilder {
	description := "Sourdough and seasonal pastries"
	return &StoreBuilder{
		ID:       uuid.New(),
		OwnerID:  uuid.New(),
		Name:     "Morning Crumb",
		Category: string(store.CategoryBakery),
		Phone:    "0212345678",
		Address:  "12 Mangwon-ro, Mapo-gu, Seoul",
		BusinessHours: store.BusinessHours{
			"mon": {Open: "08:00", Close: "20:00"},
			"sun": {Closed: true},
		},
		Description: &description,
		IsActive:    true,
		UpdatedAt:   time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}
}

func (s *StoreBuilder) With(mutate func(*StoreBuilder)) *StoreBuilder {
	mutate(s)
	return s
}

func (s *StoreBuilder) BuildDomain() *store.Store {
	return store.ReconstructStore(s.ID, s.OwnerID, s.Name, store.Category(s.Category), s.Phone, s.Address,
		s.Description, s.ImageKey, s.BusinessHours, s.IsActive, s.UpdatedAt, s.UpdatedAt)
}

func (s *StoreBuilder) BuildProfile() store.Profile {
	return store.Profile{
		Name:          s.Name,
		Category:      s.Category,
		Phone:         s.Phone,
		Address:       s.Address,
		Description:   s.Description,
		ImageKey:      s.ImageKey,
		BusinessHours: s.BusinessHours,
	}
}

func (s *StoreBuilder) BuildDetailView() *queries.StoreDetailView {
	return &queries.StoreDetailView{
		ID:            s.ID,
		OwnerID:       s.OwnerID,
		Name:          s.Name,
		Category:      s.Category,
		Phone:         s.Phone,
		Address:       s.Address,
		Description:   s.Description,
		ImageKey:      s.ImageKey,
		BusinessHours: s.BusinessHours,
		IsActive:      s.IsActive,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (s *StoreBuilder) BuildSummary() queries.StoreSummary {
	return queries.StoreSummary{
		ID:       s.ID,
		Name:     s.Name,
		Category: s.Category,
		Address:  s.Address,
	}
}
