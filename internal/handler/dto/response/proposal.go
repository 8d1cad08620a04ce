package response

import (
	"time"

	"neighbiz/internal/usecase/commands"
	"neighbiz/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProposalResponse struct {
	ID        uuid.UUID            `json:"id"`
	Proposer  queries.StoreSummary `json:"proposer"`
	Recipient queries.StoreSummary `json:"recipient"`
	Status    string               `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

type ProposalListItemResponse struct {
	ID          uuid.UUID              `json:"id"`
	Status      string                 `json:"status"`
	CreatedAt   time.Time              `json:"created_at"`
	Counterpart queries.StoreSummary   `json:"counterpart"`
	Policy      *queries.PolicySummary `json:"policy,omitempty"`
}

type RespondProposalResponse struct {
	ProposalID    uuid.UUID  `json:"proposal_id"`
	Status        string     `json:"status"`
	PartnershipID *uuid.UUID `json:"partnership_id,omitempty"`
}

func FromProposalView(v *queries.ProposalView) *ProposalResponse {
	return copyInto[ProposalResponse](v)
}

func FromProposalList(items []*queries.ProposalListItemView) []*ProposalListItemResponse {
	return copyAll[ProposalListItemResponse](items)
}

func FromRespondResult(r *commands.RespondResult) *RespondProposalResponse {
	return &RespondProposalResponse{
		ProposalID:    r.ProposalID,
		Status:        string(r.Status),
		PartnershipID: r.PartnershipID,
	}
}
