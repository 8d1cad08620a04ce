package request

import "github.com/google/uuid"

type CreateProposalRequest struct {
	RecipientStoreID uuid.UUID `json:"recipient_store_id" binding:"required"`
}

// DecisionRequest answers a proposal or a partnership change request.
type DecisionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject"`
}

type ProposalListQuery struct {
	Status *string `form:"status"`
}

type ChangeRequestRequest struct {
	Type   string `json:"type" binding:"required,oneof=extend terminate"`
	Reason string `json:"reason" binding:"max=500"`
}
