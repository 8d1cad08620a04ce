package proposal

import (
	"time"

	"neighbiz/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSelfProposal          = errs.Validation("SELF_PROPOSAL", "a store cannot propose to itself")
	ErrProposalNotFound      = errs.NotFound("PROPOSAL_NOT_FOUND", "proposal not found")
	ErrRecipientNotFound     = errs.NotFound("RECIPIENT_NOT_FOUND", "recipient store not found or inactive")
	ErrAlreadyPartnered      = errs.Conflict("ALREADY_PARTNERED", "stores are already partnered")
	ErrProposalInFlight      = errs.Conflict("PROPOSAL_IN_FLIGHT", "a pending proposal already exists")
	ErrPolicyMissing         = errs.Conflict("POLICY_MISSING", "both stores need an active coupon policy")
	ErrNoCancellableProposal = errs.Conflict("NO_CANCELLABLE_PROPOSAL", "no pending proposal to cancel")
	ErrNotRecipient          = errs.Forbidden("NOT_RECIPIENT", "only the recipient can respond to this proposal")
	ErrNotParticipant        = errs.Forbidden("NOT_PROPOSAL_PARTICIPANT", "store is not part of this proposal")
	ErrAlreadyResolved       = errs.Conflict("ALREADY_RESOLVED", "proposal is no longer pending")
	ErrInvalidStatus         = errs.Validation("INVALID_PROPOSAL_STATUS", "invalid proposal status")
	ErrInvalidDecision       = errs.Validation("INVALID_DECISION", "decision must be approve or reject")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func NewStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusAccepted, StatusRejected, StatusCancelled:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func NewDecision(s string) (Decision, error) {
	switch d := Decision(s); d {
	case DecisionApprove, DecisionReject:
		return d, nil
	default:
		return "", ErrInvalidDecision
	}
}

type Proposal struct {
	id               uuid.UUID
	proposerStoreID  uuid.UUID
	recipientStoreID uuid.UUID
	status           Status
	createdAt        time.Time
	updatedAt        time.Time
}

func NewProposal(proposerStoreID, recipientStoreID uuid.UUID, now time.Time) (*Proposal, error) {
	if proposerStoreID == recipientStoreID {
		return nil, ErrSelfProposal
	}
	return &Proposal{
		id:               uuid.New(),
		proposerStoreID:  proposerStoreID,
		recipientStoreID: recipientStoreID,
		status:           StatusPending,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructProposal(id, proposerStoreID, recipientStoreID uuid.UUID, status Status, createdAt, updatedAt time.Time) *Proposal {
	return &Proposal{
		id:               id,
		proposerStoreID:  proposerStoreID,
		recipientStoreID: recipientStoreID,
		status:           status,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// EnsureRespondable checks that actor may answer and the proposal is still open.
func (p *Proposal) EnsureRespondable(actorStoreID uuid.UUID) error {
	if p.recipientStoreID != actorStoreID {
		return ErrNotRecipient
	}
	if p.status != StatusPending {
		return ErrAlreadyResolved
	}
	return nil
}

func (p *Proposal) Accept(actorStoreID uuid.UUID, now time.Time) error {
	if err := p.EnsureRespondable(actorStoreID); err != nil {
		return err
	}
	p.transition(StatusAccepted, now)
	return nil
}

func (p *Proposal) Reject(actorStoreID uuid.UUID, now time.Time) error {
	if err := p.EnsureRespondable(actorStoreID); err != nil {
		return err
	}
	p.transition(StatusRejected, now)
	return nil
}

func (p *Proposal) Cancel(actorStoreID uuid.UUID, now time.Time) error {
	if p.proposerStoreID != actorStoreID || p.status != StatusPending {
		return ErrNoCancellableProposal
	}
	p.transition(StatusCancelled, now)
	return nil
}

func (p *Proposal) transition(to Status, now time.Time) {
	p.status = to
	p.updatedAt = now
}

func (p *Proposal) Involves(storeID uuid.UUID) bool {
	return p.proposerStoreID == storeID || p.recipientStoreID == storeID
}

func (p *Proposal) ID() uuid.UUID               { return p.id }
func (p *Proposal) ProposerStoreID() uuid.UUID  { return p.proposerStoreID }
func (p *Proposal) RecipientStoreID() uuid.UUID { return p.recipientStoreID }
func (p *Proposal) Status() Status              { return p.status }
func (p *Proposal) IsPending() bool             { return p.status == StatusPending }
func (p *Proposal) CreatedAt() time.Time        { return p.createdAt }
func (p *Proposal) UpdatedAt() time.Time        { return p.updatedAt }
