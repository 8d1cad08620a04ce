package queries

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout renders calendar days (partnership start and end).
const DateLayout = "2006-01-02"

// StoreSummary is the compact store part of proposal, partnership and coupon views
type StoreSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category,omitempty"`
	Address  string    `json:"address,omitempty"`
}

// PolicySummary is the offer a store hands out through partnerships
type PolicySummary struct {
	Description      string `json:"description"`
	ExpectedValue    int    `json:"expected_value"`
	ExpectedDuration string `json:"expected_duration"`
	MonthlyLimit     *int   `json:"monthly_limit,omitempty"`
}

// PolicyView represents the full coupon policy of a store
type PolicyView struct {
	ID               uuid.UUID `json:"id"`
	StoreID          uuid.UUID `json:"store_id"`
	Description      string    `json:"description"`
	ExpectedValue    int       `json:"expected_value"`
	ExpectedDuration string    `json:"expected_duration"`
	DurationDays     int       `json:"duration_days"`
	MonthlyLimit     *int      `json:"monthly_limit,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (v *PolicyView) Summary() PolicySummary {
	return PolicySummary{
		Description:      v.Description,
		ExpectedValue:    v.ExpectedValue,
		ExpectedDuration: v.ExpectedDuration,
		MonthlyLimit:     v.MonthlyLimit,
	}
}

// PartnershipRecord is the stored partnership row as the read side sees it
type PartnershipRecord struct {
	ID         uuid.UUID
	ProposalID uuid.UUID
	StoreAID   uuid.UUID
	StoreBID   uuid.UUID
	SlugForA   string
	SlugForB   string
	StartDate  time.Time
	EndDate    time.Time
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
