package converter

import (
	"neighbiz/internal/domain/partnership"
	"neighbiz/internal/domain/proposal"
	sqlc "neighbiz/internal/infra/sqlc/generated"
	"neighbiz/internal/pkg/pgconv"
)

func ProposalToCreateParams(p *proposal.Proposal) sqlc.CreateProposalParams {
	return sqlc.CreateProposalParams{
		ID:               p.ID(),
		ProposerStoreID:  p.ProposerStoreID(),
		RecipientStoreID: p.RecipientStoreID(),
		Status:           string(p.Status()),
		CreatedAt:        pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func ProposalFromRow(row sqlc.Proposals) *proposal.Proposal {
	return proposal.ReconstructProposal(
		row.ID,
		row.ProposerStoreID,
		row.RecipientStoreID,
		proposal.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func PartnershipToCreateParams(p *partnership.Partnership) sqlc.CreatePartnershipParams {
	return sqlc.CreatePartnershipParams{
		ID:         p.ID(),
		ProposalID: p.ProposalID(),
		StoreAID:   p.StoreAID(),
		StoreBID:   p.StoreBID(),
		SlugForA:   p.SlugForA(),
		SlugForB:   p.SlugForB(),
		StartDate:  pgconv.DateToPgtype(p.StartDate()),
		EndDate:    pgconv.DateToPgtype(p.EndDate()),
		Status:     string(p.Status()),
		CreatedAt:  pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PartnershipFromRow(row sqlc.Partnerships) *partnership.Partnership {
	return partnership.ReconstructPartnership(
		row.ID,
		row.ProposalID,
		row.StoreAID,
		row.StoreBID,
		row.SlugForA,
		row.SlugForB,
		pgconv.DateFromPgtype(row.StartDate),
		pgconv.DateFromPgtype(row.EndDate),
		partnership.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func ChangeRequestToCreateParams(r *partnership.ChangeRequest) sqlc.CreateChangeRequestParams {
	return sqlc.CreateChangeRequestParams{
		ID:               r.ID(),
		PartnershipID:    r.PartnershipID(),
		RequesterStoreID: r.RequesterStoreID(),
		ChangeType:       string(r.Type()),
		Reason:           r.Reason(),
		Status:           string(r.Status()),
		CreatedAt:        pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ChangeRequestFromRow(row sqlc.PartnershipChangeRequests) *partnership.ChangeRequest {
	return partnership.ReconstructChangeRequest(
		row.ID,
		row.PartnershipID,
		row.RequesterStoreID,
		partnership.ChangeType(row.ChangeType),
		row.Reason,
		partnership.ChangeStatus(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.RespondedAt),
	)
}
