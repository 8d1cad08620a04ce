package policy

import (
	"strings"
	"time"

	"neighbiz/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyDescription    = errs.Validation("EMPTY_POLICY_DESCRIPTION", "policy description cannot be empty")
	ErrDescriptionTooLong  = errs.Validation("POLICY_DESCRIPTION_TOO_LONG", "policy description is too long")
	ErrInvalidValue        = errs.Validation("INVALID_EXPECTED_VALUE", "expected value must be positive")
	ErrInvalidMonthlyLimit = errs.Validation("INVALID_MONTHLY_LIMIT", "monthly limit must be at least 1")
	ErrPolicyNotFound      = errs.NotFound("POLICY_NOT_FOUND", "coupon policy not found")
	ErrPolicyAlreadyExists = errs.Conflict("POLICY_ALREADY_EXISTS", "store already has an active coupon policy")
	ErrPolicyLocked        = errs.Conflict("POLICY_LOCKED", "policy cannot change while a partnership or proposal is open")
	ErrPolicyInactive      = errs.Conflict("POLICY_INACTIVE", "coupon policy is not active")
)

const MaxDescriptionLength = 1000

type CouponPolicy struct {
	id               uuid.UUID
	storeID          uuid.UUID
	description      string
	expectedValue    int
	expectedDuration Duration
	monthlyLimit     *int
	isActive         bool
	createdAt        time.Time
	updatedAt        time.Time
}

type Terms struct {
	Description      string
	ExpectedValue    int
	ExpectedDuration string
	MonthlyLimit     *int
}

func NewCouponPolicy(storeID uuid.UUID, t Terms, now time.Time) (*CouponPolicy, error) {
	p := &CouponPolicy{
		id:        uuid.New(),
		storeID:   storeID,
		isActive:  true,
		createdAt: now,
	}
	if err := p.apply(t, now); err != nil {
		return nil, err
	}
	return p, nil
}

func ReconstructCouponPolicy(id, storeID uuid.UUID, description string, expectedValue int, expectedDuration Duration, monthlyLimit *int, isActive bool, createdAt, updatedAt time.Time) *CouponPolicy {
	return &CouponPolicy{
		id:               id,
		storeID:          storeID,
		description:      description,
		expectedValue:    expectedValue,
		expectedDuration: expectedDuration,
		monthlyLimit:     monthlyLimit,
		isActive:         isActive,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (p *CouponPolicy) UpdateTerms(t Terms, now time.Time) error {
	if !p.isActive {
		return ErrPolicyInactive
	}
	return p.apply(t, now)
}

func (p *CouponPolicy) Deactivate(now time.Time) error {
	if !p.isActive {
		return ErrPolicyInactive
	}
	p.isActive = false
	p.updatedAt = now
	return nil
}

func (p *CouponPolicy) apply(t Terms, now time.Time) error {
	desc := strings.TrimSpace(t.Description)
	if desc == "" {
		return ErrEmptyDescription
	}
	if len([]rune(desc)) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if t.ExpectedValue <= 0 {
		return ErrInvalidValue
	}
	duration, err := NewDuration(t.ExpectedDuration)
	if err != nil {
		return err
	}
	if t.MonthlyLimit != nil && *t.MonthlyLimit < 1 {
		return ErrInvalidMonthlyLimit
	}

	p.description = desc
	p.expectedValue = t.ExpectedValue
	p.expectedDuration = duration
	p.monthlyLimit = t.MonthlyLimit
	p.updatedAt = now
	return nil
}

// AllowsIssuance reports whether another coupon fits under the monthly cap.
func (p *CouponPolicy) AllowsIssuance(issuedThisMonth int) bool {
	return p.monthlyLimit == nil || issuedThisMonth < *p.monthlyLimit
}

func (p *CouponPolicy) Terms() Terms {
	return Terms{
		Description:      p.description,
		ExpectedValue:    p.expectedValue,
		ExpectedDuration: p.expectedDuration.String(),
		MonthlyLimit:     p.monthlyLimit,
	}
}

func (p *CouponPolicy) ID() uuid.UUID              { return p.id }
func (p *CouponPolicy) StoreID() uuid.UUID         { return p.storeID }
func (p *CouponPolicy) Description() string        { return p.description }
func (p *CouponPolicy) ExpectedValue() int         { return p.expectedValue }
func (p *CouponPolicy) ExpectedDuration() Duration { return p.expectedDuration }
func (p *CouponPolicy) MonthlyLimit() *int         { return p.monthlyLimit }
func (p *CouponPolicy) IsActive() bool             { return p.isActive }
func (p *CouponPolicy) CreatedAt() time.Time       { return p.createdAt }
func (p *CouponPolicy) UpdatedAt() time.Time       { return p.updatedAt }
