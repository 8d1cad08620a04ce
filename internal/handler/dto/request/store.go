package request

import (
	"encoding/json"
	"strings"

	"neighbiz/internal/domain/store"
	"neighbiz/internal/usecase/commands"
	"neighbiz/internal/usecase/queries"
)

type UpdateStoreRequest struct {
	Name          *string          `json:"name,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Phone         *string          `json:"phone,omitempty"`
	Address       *string          `json:"address,omitempty"`
	Description   Nullable[string] `json:"description" swaggertype:"string"`
	ImageKey      Nullable[string] `json:"image_key" swaggertype:"string"`
	BusinessHours json.RawMessage  `json:"business_hours,omitempty" swaggertype:"object"`
}

func (r UpdateStoreRequest) ToPatch() (commands.StorePatch, error) {
	p := commands.StorePatch{
		Name:             r.Name,
		Category:         r.Category,
		Phone:            r.Phone,
		Address:          r.Address,
		Description:      r.Description.Value,
		ClearDescription: r.Description.IsNull(),
		ImageKey:         r.ImageKey.Value,
		ClearImageKey:    r.ImageKey.IsNull(),
	}
	if len(r.BusinessHours) > 0 {
		hours, err := store.ParseBusinessHours(r.BusinessHours)
		if err != nil {
			return commands.StorePatch{}, err
		}
		p.BusinessHours = &hours
	}
	return p, nil
}

// DirectoryQuery binds GET /stores query parameters.
type DirectoryQuery struct {
	Category    *string `form:"category"`
	Keyword     *string `form:"search"`
	ValueMin    *int    `form:"expected_value_min" binding:"omitempty,min=0"`
	ValueMax    *int    `form:"expected_value_max" binding:"omitempty,min=0"`
	Duration    *string `form:"expected_duration"`
	LimitMin    *int    `form:"monthly_limit_min" binding:"omitempty,min=0"`
	LimitMax    *int    `form:"monthly_limit_max" binding:"omitempty,min=0"`
	IsPartnered *bool   `form:"is_partnered"`
	Ordering    string  `form:"ordering"`
	Page        int     `form:"page"`
	PageSize    int     `form:"page_size"`
}

func (q DirectoryQuery) ToFilter() queries.DirectoryFilter {
	keyword := q.Keyword
	if keyword != nil {
		trimmed := strings.TrimSpace(*keyword)
		if trimmed == "" {
			keyword = nil
		} else {
			keyword = &trimmed
		}
	}
	return queries.DirectoryFilter{
		Category:    q.Category,
		Keyword:     keyword,
		ValueMin:    q.ValueMin,
		ValueMax:    q.ValueMax,
		Duration:    q.Duration,
		LimitMin:    q.LimitMin,
		LimitMax:    q.LimitMax,
		IsPartnered: q.IsPartnered,
		Ordering:    q.Ordering,
		PageRequest: queries.PageRequest{Page: q.Page, PageSize: q.PageSize},
	}
}
