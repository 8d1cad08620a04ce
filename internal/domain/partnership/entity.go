package partnership

import (
	"time"

	"neighbiz/internal/pkg/errs"
	"neighbiz/internal/pkg/random"

	"github.com/google/uuid"
)

var (
	ErrPartnershipNotFound          = errs.NotFound("PARTNERSHIP_NOT_FOUND", "partnership not found")
	ErrActivePartnershipExists      = errs.Conflict("ACTIVE_PARTNERSHIP_EXISTS", "store already has an active partnership")
	ErrInvalidOrInactivePartnership = errs.NotFound("INVALID_OR_INACTIVE_PARTNERSHIP", "partnership link is invalid or inactive")
	ErrNotParticipant               = errs.Forbidden("NOT_PARTNERSHIP_PARTICIPANT", "store is not part of this partnership")
	ErrPartnershipClosed            = errs.Conflict("PARTNERSHIP_CLOSED", "partnership is no longer running")
	ErrInvalidPeriod                = errs.Validation("INVALID_PARTNERSHIP_PERIOD", "partnership period must be at least one day")
)

// SlugLength is the number of hex characters in an entry slug (80 random bits).
const SlugLength = 20

type Status string

const (
	StatusActive     Status = "active"
	StatusExtended   Status = "extended"
	StatusTerminated Status = "terminated"
	StatusEnded      Status = "ended"
)

// IsOngoing reports whether the status still binds both stores.
func (s Status) IsOngoing() bool {
	return s == StatusActive || s == StatusExtended
}

// Side names the store a slug was handed to.
type Side string

const (
	SideA Side = "a"
	SideB Side = "b"
)

func NewSlug() (string, error) {
	return random.Hex(SlugLength)
}

type Partnership struct {
	id         uuid.UUID
	proposalID uuid.UUID
	storeAID   uuid.UUID
	storeBID   uuid.UUID
	slugForA   string
	slugForB   string
	startDate  time.Time
	endDate    time.Time
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// NewPartnership starts the day after today and runs for days calendar days.
// storeA is the proposer and storeB the recipient.
func NewPartnership(proposalID, storeAID, storeBID uuid.UUID, slugForA, slugForB string, today time.Time, days int, now time.Time) (*Partnership, error) {
	if days <= 0 {
		return nil, ErrInvalidPeriod
	}
	start := today.AddDate(0, 0, 1)
	return &Partnership{
		id:         uuid.New(),
		proposalID: proposalID,
		storeAID:   storeAID,
		storeBID:   storeBID,
		slugForA:   slugForA,
		slugForB:   slugForB,
		startDate:  start,
		endDate:    start.AddDate(0, 0, days),
		status:     StatusActive,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructPartnership(id, proposalID, storeAID, storeBID uuid.UUID, slugForA, slugForB string, startDate, endDate time.Time, status Status, createdAt, updatedAt time.Time) *Partnership {
	return &Partnership{
		id:         id,
		proposalID: proposalID,
		storeAID:   storeAID,
		storeBID:   storeBID,
		slugForA:   slugForA,
		slugForB:   slugForB,
		startDate:  startDate,
		endDate:    endDate,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// SideOf resolves which side a slug belongs to.
func (p *Partnership) SideOf(slug string) (Side, bool) {
	switch slug {
	case p.slugForA:
		return SideA, true
	case p.slugForB:
		return SideB, true
	default:
		return "", false
	}
}

// ScanningStore is the store that displays the slug of side.
func (p *Partnership) ScanningStore(side Side) uuid.UUID {
	if side == SideA {
		return p.storeAID
	}
	return p.storeBID
}

// TargetStore is the store whose offer a consumer entering through side receives.
func (p *Partnership) TargetStore(side Side) uuid.UUID {
	if side == SideA {
		return p.storeBID
	}
	return p.storeAID
}

func (p *Partnership) Involves(storeID uuid.UUID) bool {
	return p.storeAID == storeID || p.storeBID == storeID
}

func (p *Partnership) Counterparty(storeID uuid.UUID) (uuid.UUID, error) {
	switch storeID {
	case p.storeAID:
		return p.storeBID, nil
	case p.storeBID:
		return p.storeAID, nil
	default:
		return uuid.Nil, ErrNotParticipant
	}
}

func (p *Partnership) SlugFor(storeID uuid.UUID) (string, error) {
	switch storeID {
	case p.storeAID:
		return p.slugForA, nil
	case p.storeBID:
		return p.slugForB, nil
	default:
		return "", ErrNotParticipant
	}
}

// EligibleForIssuance reports whether consumers may receive coupons today.
func (p *Partnership) EligibleForIssuance(today time.Time, allowExtended bool) bool {
	switch p.status {
	case StatusActive:
	case StatusExtended:
		if !allowExtended {
			return false
		}
	default:
		return false
	}
	return !today.Before(p.startDate) && !today.After(p.endDate)
}

func (p *Partnership) Extend(days int, now time.Time) error {
	if !p.status.IsOngoing() {
		return ErrPartnershipClosed
	}
	if days <= 0 {
		return ErrInvalidPeriod
	}
	p.endDate = p.endDate.AddDate(0, 0, days)
	p.status = StatusExtended
	p.updatedAt = now
	return nil
}

func (p *Partnership) Terminate(today, now time.Time) error {
	if !p.status.IsOngoing() {
		return ErrPartnershipClosed
	}
	p.status = StatusTerminated
	p.endDate = today
	p.updatedAt = now
	return nil
}

func (p *Partnership) ID() uuid.UUID         { return p.id }
func (p *Partnership) ProposalID() uuid.UUID { return p.proposalID }
func (p *Partnership) StoreAID() uuid.UUID   { return p.storeAID }
func (p *Partnership) StoreBID() uuid.UUID   { return p.storeBID }
func (p *Partnership) SlugForA() string      { return p.slugForA }
func (p *Partnership) SlugForB() string      { return p.slugForB }
func (p *Partnership) StartDate() time.Time  { return p.startDate }
func (p *Partnership) EndDate() time.Time    { return p.endDate }
func (p *Partnership) Status() Status        { return p.status }
func (p *Partnership) CreatedAt() time.Time  { return p.createdAt }
func (p *Partnership) UpdatedAt() time.Time  { return p.updatedAt }
