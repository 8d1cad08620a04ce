//go:build unit || e2e

package builder

import (
	"time"

	"neighbiz/internal/domain/policy"
	reqdto "neighbiz/internal/handler/dto/request"
	"neighbiz/internal/usecase/queries"

	"github.com/google/uuid"
)

type PolicyBuilder struct {
	ID               uuid.UUID
	StoreID          uuid.UUID
	Description      string
	ExpectedValue    int
	ExpectedDuration string
	MonthlyLimit     *int
	IsActive         bool
	CreatedAt        time.Time
}

func NewPolicyBuilder() *PolicyBuilder {
	return &PolicyBuilder{
		ID:               uuid.New(),
		StoreID:          uuid.New(),
		Description:      "Free americano with any pastry",
		ExpectedValue:    4500,
		ExpectedDuration: string(policy.DurationOneMonth),
		IsActive:         true,
		CreatedAt:        time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (p *PolicyBuilder) With(mutate func(*PolicyBuilder)) *PolicyBuilder {
	mutate(p)
	return p
}

func (p *PolicyBuilder) WithMonthlyLimit(n int) *PolicyBuilder {
	p.MonthlyLimit = &n
	return p
}

func (p *PolicyBuilder) BuildDomain() *policy.CouponPolicy {
	return policy.ReconstructCouponPolicy(p.ID, p.StoreID, p.Description, p.ExpectedValue,
		policy.Duration(p.ExpectedDuration), p.MonthlyLimit, p.IsActive, p.CreatedAt, p.CreatedAt)
}

func (p *PolicyBuilder) BuildTerms() policy.Terms {
	return policy.Terms{
		Description:      p.Description,
		ExpectedValue:    p.ExpectedValue,
		ExpectedDuration: p.ExpectedDuration,
		MonthlyLimit:     p.MonthlyLimit,
	}
}

func (p *PolicyBuilder) BuildCreateDTO() reqdto.CreatePolicyRequest {
	return reqdto.CreatePolicyRequest{
		Description:      p.Description,
		ExpectedValue:    p.ExpectedValue,
		ExpectedDuration: p.ExpectedDuration,
		MonthlyLimit:     p.MonthlyLimit,
	}
}

func (p *PolicyBuilder) BuildView() *queries.PolicyView {
	return &queries.PolicyView{
		ID:               p.ID,
		StoreID:          p.StoreID,
		Description:      p.Description,
		ExpectedValue:    p.ExpectedValue,
		ExpectedDuration: p.ExpectedDuration,
		DurationDays:     30,
		MonthlyLimit:     p.MonthlyLimit,
		IsActive:         p.IsActive,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.CreatedAt,
	}
}
