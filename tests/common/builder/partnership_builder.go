//go:build unit || e2e

package builder

import (
	"time"

	"neighbiz/internal/domain/partnership"
	"neighbiz/internal/domain/proposal"
	"neighbiz/internal/usecase/queries"

	"github.com/google/uuid"
)

type PartnershipBuilder struct {
	ID         uuid.UUID
	ProposalID uuid.UUID
	StoreAID   uuid.UUID
	StoreBID   uuid.UUID
	SlugForA   string
	SlugForB   string
	StartDate  time.Time
	EndDate    time.Time
	Status     partnership.Status
}

// NewPartnershipBuilder runs from 2026-03-02 to 2026-04-01.
func NewPartnershipBuilder() *PartnershipBuilder {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return &PartnershipBuilder{
		ID:         uuid.New(),
		ProposalID: uuid.New(),
		StoreAID:   uuid.New(),
		StoreBID:   uuid.New(),
		SlugForA:   "a1b2c3d4e5",
		SlugForB:   "f6e5d4c3b2",
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 30),
		Status:     partnership.StatusActive,
	}
}

func (p *PartnershipBuilder) With(mutate func(*PartnershipBuilder)) *PartnershipBuilder {
	mutate(p)
	return p
}

func (p *PartnershipBuilder) BuildDomain() *partnership.Partnership {
	created := p.StartDate.AddDate(0, 0, -1)
	return partnership.ReconstructPartnership(p.ID, p.ProposalID, p.StoreAID, p.StoreBID,
		p.SlugForA, p.SlugForB, p.StartDate, p.EndDate, p.Status, created, created)
}

func (p *PartnershipBuilder) BuildRecord() *queries.PartnershipRecord {
	created := p.StartDate.AddDate(0, 0, -1)
	return &queries.PartnershipRecord{
		ID:         p.ID,
		ProposalID: p.ProposalID,
		StoreAID:   p.StoreAID,
		StoreBID:   p.StoreBID,
		SlugForA:   p.SlugForA,
		SlugForB:   p.SlugForB,
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
		Status:     string(p.Status),
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

type ProposalBuilder struct {
	ID               uuid.UUID
	ProposerStoreID  uuid.UUID
	RecipientStoreID uuid.UUID
	Status           proposal.Status
	CreatedAt        time.Time
}

func NewProposalBuilder() *ProposalBuilder {
	return &ProposalBuilder{
		ID:               uuid.New(),
		ProposerStoreID:  uuid.New(),
		RecipientStoreID: uuid.New(),
		Status:           proposal.StatusPending,
		CreatedAt:        time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (p *ProposalBuilder) With(mutate func(*ProposalBuilder)) *ProposalBuilder {
	mutate(p)
	return p
}

func (p *ProposalBuilder) BuildDomain() *proposal.Proposal {
	return proposal.ReconstructProposal(p.ID, p.ProposerStoreID, p.RecipientStoreID, p.Status, p.CreatedAt, p.CreatedAt)
}
