package response

import (
	"time"

	"neighbiz/internal/domain/store"
	"neighbiz/internal/usecase/queries"

	"github.com/google/uuid"
)

type StoreResponse struct {
	ID            uuid.UUID              `json:"id"`
	Name          string                 `json:"name"`
	Category      string                 `json:"category"`
	Phone         string                 `json:"phone"`
	Address       string                 `json:"address"`
	Description   *string                `json:"description,omitempty"`
	ImageKey      *string                `json:"image_key,omitempty"`
	BusinessHours store.BusinessHours    `json:"business_hours"`
	UpdatedAt     time.Time              `json:"updated_at"`
	Policy        *queries.PolicySummary `json:"policy,omitempty"`
	IsPartnered   bool                   `json:"is_partnered"`
}

type DirectoryItemResponse struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Category    string                `json:"category"`
	Address     string                `json:"address"`
	ImageKey    *string               `json:"image_key,omitempty"`
	Policy      queries.PolicySummary `json:"policy"`
	IsPartnered bool                  `json:"is_partnered"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

type PageResponse[T any] struct {
	Items    []*T  `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	HasNext  bool  `json:"has_next"`
}

func FromStoreDetailView(v *queries.StoreDetailView) *StoreResponse {
	return copyInto[StoreResponse](v)
}

func FromDirectoryPage(p *queries.Page[*queries.DirectoryItemView]) *PageResponse[DirectoryItemResponse] {
	return &PageResponse[DirectoryItemResponse]{
		Items:    copyAll[DirectoryItemResponse](p.Items),
		Total:    p.Total,
		Page:     p.Page,
		PageSize: p.PageSize,
		HasNext:  p.HasNext,
	}
}

type PolicyResponse struct {
	ID               uuid.UUID `json:"id"`
	Description      string    `json:"description"`
	ExpectedValue    int       `json:"expected_value"`
	ExpectedDuration string    `json:"expected_duration"`
	DurationDays     int       `json:"duration_days"`
	MonthlyLimit     *int      `json:"monthly_limit"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromPolicyView(v *queries.PolicyView) *PolicyResponse {
	return copyInto[PolicyResponse](v)
}

type IDResponse struct {
	ID uuid.UUID `json:"id"`
}

type PresignUploadResponse struct {
	UploadURL string    `json:"upload_url"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}
