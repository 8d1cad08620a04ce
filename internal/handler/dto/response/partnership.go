package response

import (
	"time"

	"neighbiz/internal/usecase/commands"
	"neighbiz/internal/usecase/queries"

	"github.com/google/uuid"
)

type ChangeRequestResponse struct {
	ID               uuid.UUID  `json:"id"`
	RequesterStoreID uuid.UUID  `json:"requester_store_id"`
	Type             string     `json:"type"`
	Reason           string     `json:"reason"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	RespondedAt      *time.Time `json:"responded_at,omitempty"`
}

type PartnershipResponse struct {
	ID             uuid.UUID                `json:"id"`
	Status         string                   `json:"status"`
	StartDate      string                   `json:"start_date"`
	EndDate        string                   `json:"end_date"`
	MySlug         string                   `json:"my_slug"`
	Partner        queries.StoreSummary     `json:"partner"`
	PartnerPolicy  *queries.PolicySummary   `json:"partner_policy,omitempty"`
	ChangeRequests []*ChangeRequestResponse `json:"change_requests"`
}

func FromPartnershipView(v *queries.PartnershipView) *PartnershipResponse {
	resp := copyInto[PartnershipResponse](v)
	resp.ChangeRequests = copyAll[ChangeRequestResponse](v.ChangeRequests)
	return resp
}

type MyPageResponse struct {
	StoreID    uuid.UUID `json:"store_id"`
	StoreName  string    `json:"store_name"`
	Status     string    `json:"status"`
	Slug       *string   `json:"slug,omitempty"`
	QRPayload  *string   `json:"qr_payload,omitempty"`
	QRImageURL *string   `json:"qr_image_url,omitempty"`
	EndDate    *string   `json:"end_date,omitempty"`
}

func FromMyPageView(v *queries.MyPageView) *MyPageResponse {
	return copyInto[MyPageResponse](v)
}

type IssueLandingResponse struct {
	Slug         string                `json:"slug"`
	ScannedStore queries.StoreSummary  `json:"scanned_store"`
	TargetStore  queries.StoreSummary  `json:"target_store"`
	Offer        queries.PolicySummary `json:"offer"`
}

func FromIssueLandingView(v *queries.IssueLandingView) *IssueLandingResponse {
	return copyInto[IssueLandingResponse](v)
}

type ChangeResultResponse struct {
	RequestID         uuid.UUID `json:"request_id"`
	Status            string    `json:"status"`
	PartnershipStatus string    `json:"partnership_status"`
	EndDate           string    `json:"end_date"`
}

func FromChangeResult(r *commands.ChangeResult) *ChangeResultResponse {
	return &ChangeResultResponse{
		RequestID:         r.RequestID,
		Status:            string(r.Status),
		PartnershipStatus: string(r.Partnership),
		EndDate:           r.EndDate.Format(queries.DateLayout),
	}
}
