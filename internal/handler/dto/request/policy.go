package request

import (
	"neighbiz/internal/domain/policy"
	"neighbiz/internal/usecase/commands"
)

type CreatePolicyRequest struct {
	Description      string `json:"description" binding:"required"`
	ExpectedValue    int    `json:"expected_value" binding:"required"`
	ExpectedDuration string `json:"expected_duration" binding:"required"`
	MonthlyLimit     *int   `json:"monthly_limit,omitempty"`
}

func (r CreatePolicyRequest) ToTerms() policy.Terms {
	return policy.Terms{
		Description:      r.Description,
		ExpectedValue:    r.ExpectedValue,
		ExpectedDuration: r.ExpectedDuration,
		MonthlyLimit:     r.MonthlyLimit,
	}
}

// UpdatePolicyRequest: an explicit null monthly_limit means unlimited.
type UpdatePolicyRequest struct {
	Description      *string       `json:"description,omitempty"`
	ExpectedValue    *int          `json:"expected_value,omitempty"`
	ExpectedDuration *string       `json:"expected_duration,omitempty"`
	MonthlyLimit     Nullable[int] `json:"monthly_limit" swaggertype:"integer"`
}

func (r UpdatePolicyRequest) ToPatch() commands.PolicyPatch {
	return commands.PolicyPatch{
		Description:       r.Description,
		ExpectedValue:     r.ExpectedValue,
		ExpectedDuration:  r.ExpectedDuration,
		MonthlyLimit:      r.MonthlyLimit.Value,
		ClearMonthlyLimit: r.MonthlyLimit.IsNull(),
	}
}
