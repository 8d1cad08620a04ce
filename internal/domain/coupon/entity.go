package coupon

import (
	"time"

	"neighbiz/internal/pkg/errs"
	"neighbiz/internal/pkg/random"

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound      = errs.NotFound("COUPON_NOT_FOUND", "coupon not found")
	ErrCouponExpired       = errs.Expired("COUPON_EXPIRED", "coupon has expired")
	ErrCouponResolved      = errs.Conflict("ALREADY_RESOLVED", "coupon has already been used or expired")
	ErrMonthlyLimitReached = errs.Conflict("MONTHLY_LIMIT_REACHED", "monthly issuance limit reached for this offer")
	ErrNoActivePolicy      = errs.Conflict("NO_ACTIVE_POLICY", "partner store has no active offer")
	ErrInvalidShortCode    = errs.Validation("INVALID_SHORT_CODE", "short code must be 8 letters or digits")
	ErrInvalidStatus       = errs.Validation("INVALID_COUPON_STATUS", "invalid coupon status")
)

const ShortCodeLength = 8

type Status string

const (
	StatusActive  Status = "active"
	StatusUsed    Status = "used"
	StatusExpired Status = "expired"
)

func NewStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusActive, StatusUsed, StatusExpired:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func NewShortCode() (string, error) {
	return random.UpperAlnum(ShortCodeLength)
}

// NormalizeShortCode upper-cases input and checks its shape.
func NormalizeShortCode(s string) (string, error) {
	if len(s) != ShortCodeLength {
		return "", ErrInvalidShortCode
	}
	out := []byte(s)
	for i, c := range out {
		switch {
		case c >= 'a' && c <= 'z':
			out[i] = c - 'a' + 'A'
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		default:
			return "", ErrInvalidShortCode
		}
	}
	return string(out), nil
}

type Coupon struct {
	id              uuid.UUID
	consumerID      uuid.UUID
	policyID        uuid.UUID
	partnershipID   uuid.UUID
	partnershipSlug string
	shortCode       string
	status          Status
	issuedOn        time.Time
	issuedAt        time.Time
	usedAt          *time.Time
	expiredAt       time.Time
}

type IssueParams struct {
	ConsumerID      uuid.UUID
	PolicyID        uuid.UUID
	PartnershipID   uuid.UUID
	PartnershipSlug string
	ShortCode       string
	// IssuedOn is the business calendar day of issuance.
	IssuedOn time.Time
	Validity time.Duration
}

func Issue(p IssueParams, now time.Time) *Coupon {
	return &Coupon{
		id:              uuid.New(),
		consumerID:      p.ConsumerID,
		policyID:        p.PolicyID,
		partnershipID:   p.PartnershipID,
		partnershipSlug: p.PartnershipSlug,
		shortCode:       p.ShortCode,
		status:          StatusActive,
		issuedOn:        p.IssuedOn,
		issuedAt:        now,
		expiredAt:       now.Add(p.Validity),
	}
}

func ReconstructCoupon(id, consumerID, policyID, partnershipID uuid.UUID, slug, shortCode string, status Status, issuedOn, issuedAt time.Time, usedAt *time.Time, expiredAt time.Time) *Coupon {
	return &Coupon{
		id:              id,
		consumerID:      consumerID,
		policyID:        policyID,
		partnershipID:   partnershipID,
		partnershipSlug: slug,
		shortCode:       shortCode,
		status:          status,
		issuedOn:        issuedOn,
		issuedAt:        issuedAt,
		usedAt:          usedAt,
		expiredAt:       expiredAt,
	}
}

// ExpireIfDue moves an overdue active coupon to expired and reports whether it changed.
func (c *Coupon) ExpireIfDue(now time.Time) bool {
	if c.status != StatusActive || !c.expiredAt.Before(now) {
		return false
	}
	c.status = StatusExpired
	return true
}

// Redeem marks the coupon used. An overdue coupon is expired first and
// ErrCouponExpired is returned; callers persist the coupon either way.
func (c *Coupon) Redeem(now time.Time) error {
	if c.ExpireIfDue(now) {
		return ErrCouponExpired
	}
	if c.status != StatusActive {
		return ErrCouponResolved
	}
	c.status = StatusUsed
	c.usedAt = &now
	return nil
}

// StatusAt is the status a reader should see at now without persisting anything.
func (c *Coupon) StatusAt(now time.Time) Status {
	if c.status == StatusActive && c.expiredAt.Before(now) {
		return StatusExpired
	}
	return c.status
}

func (c *Coupon) ID() uuid.UUID            { return c.id }
func (c *Coupon) ConsumerID() uuid.UUID    { return c.consumerID }
func (c *Coupon) PolicyID() uuid.UUID      { return c.policyID }
func (c *Coupon) PartnershipID() uuid.UUID { return c.partnershipID }
func (c *Coupon) PartnershipSlug() string  { return c.partnershipSlug }
func (c *Coupon) ShortCode() string        { return c.shortCode }
func (c *Coupon) Status() Status           { return c.status }
func (c *Coupon) IssuedOn() time.Time      { return c.issuedOn }
func (c *Coupon) IssuedAt() time.Time      { return c.issuedAt }
func (c *Coupon) UsedAt() *time.Time       { return c.usedAt }
func (c *Coupon) ExpiredAt() time.Time     { return c.expiredAt }
