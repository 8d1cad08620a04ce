package partnership

import (
	"strings"
	"time"

	"neighbiz/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrChangeRequestNotFound = errs.NotFound("CHANGE_REQUEST_NOT_FOUND", "change request not found")
	ErrChangeRequestPending  = errs.Conflict("CHANGE_REQUEST_PENDING", "a change request is already pending")
	ErrChangeRequestResolved = errs.Conflict("CHANGE_REQUEST_RESOLVED", "change request is no longer pending")
	ErrNotCounterparty       = errs.Forbidden("NOT_COUNTERPARTY", "only the other store can respond to this request")
	ErrInvalidChangeType     = errs.Validation("INVALID_CHANGE_TYPE", "change type must be extend or terminate")
	ErrReasonTooLong         = errs.Validation("CHANGE_REASON_TOO_LONG", "reason is too long")
)

const MaxReasonLength = 500

type ChangeType string

const (
	ChangeExtend    ChangeType = "extend"
	ChangeTerminate ChangeType = "terminate"
)

func NewChangeType(s string) (ChangeType, error) {
	switch t := ChangeType(s); t {
	case ChangeExtend, ChangeTerminate:
		return t, nil
	default:
		return "", ErrInvalidChangeType
	}
}

type ChangeStatus string

const (
	ChangePending  ChangeStatus = "pending"
	ChangeApproved ChangeStatus = "approved"
	ChangeRejected ChangeStatus = "rejected"
)

type ChangeRequest struct {
	id               uuid.UUID
	partnershipID    uuid.UUID
	requesterStoreID uuid.UUID
	changeType       ChangeType
	reason           string
	status           ChangeStatus
	createdAt        time.Time
	respondedAt      *time.Time
}

func NewChangeRequest(p *Partnership, requesterStoreID uuid.UUID, changeType ChangeType, reason string, now time.Time) (*ChangeRequest, error) {
	if !p.Involves(requesterStoreID) {
		return nil, ErrNotParticipant
	}
	if !p.Status().IsOngoing() {
		return nil, ErrPartnershipClosed
	}
	reason = strings.TrimSpace(reason)
	if len([]rune(reason)) > MaxReasonLength {
		return nil, ErrReasonTooLong
	}
	return &ChangeRequest{
		id:               uuid.New(),
		partnershipID:    p.ID(),
		requesterStoreID: requesterStoreID,
		changeType:       changeType,
		reason:           reason,
		status:           ChangePending,
		createdAt:        now,
	}, nil
}

func ReconstructChangeRequest(id, partnershipID, requesterStoreID uuid.UUID, changeType ChangeType, reason string, status ChangeStatus, createdAt time.Time, respondedAt *time.Time) *ChangeRequest {
	return &ChangeRequest{
		id:               id,
		partnershipID:    partnershipID,
		requesterStoreID: requesterStoreID,
		changeType:       changeType,
		reason:           reason,
		status:           status,
		createdAt:        createdAt,
		respondedAt:      respondedAt,
	}
}

// Resolve records the counterparty's answer. Applying an approved change to
// the partnership is left to the caller, which also owns the extension length.
func (r *ChangeRequest) Resolve(p *Partnership, actorStoreID uuid.UUID, approve bool, now time.Time) error {
	if p.ID() != r.partnershipID {
		return ErrChangeRequestNotFound
	}
	if actorStoreID == r.requesterStoreID || !p.Involves(actorStoreID) {
		return ErrNotCounterparty
	}
	if r.status != ChangePending {
		return ErrChangeRequestResolved
	}
	r.status = ChangeRejected
	if approve {
		r.status = ChangeApproved
	}
	r.respondedAt = &now
	return nil
}

func (r *ChangeRequest) ID() uuid.UUID               { return r.id }
func (r *ChangeRequest) PartnershipID() uuid.UUID    { return r.partnershipID }
func (r *ChangeRequest) RequesterStoreID() uuid.UUID { return r.requesterStoreID }
func (r *ChangeRequest) Type() ChangeType            { return r.changeType }
func (r *ChangeRequest) Reason() string              { return r.reason }
func (r *ChangeRequest) Status() ChangeStatus        { return r.status }
func (r *ChangeRequest) IsApproved() bool            { return r.status == ChangeApproved }
func (r *ChangeRequest) CreatedAt() time.Time        { return r.createdAt }
func (r *ChangeRequest) RespondedAt() *time.Time     { return r.respondedAt }
