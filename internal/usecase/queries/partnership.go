package queries

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"neighbiz/internal/domain/partnership"
	"neighbiz/internal/domain/user"
	"neighbiz/internal/infra"
	"neighbiz/internal/pkg/clock"
	"neighbiz/internal/pkg/errs"
	"neighbiz/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	MyPageStatusNone = "none"
	qrContentType    = "image/png"
)

// PartnershipView is the caller's running partnership from its own side
type PartnershipView struct {
	ID             uuid.UUID            `json:"id"`
	Status         string               `json:"status"`
	StartDate      string               `json:"start_date"`
	EndDate        string               `json:"end_date"`
	MySlug         string               `json:"my_slug"`
	Partner        StoreSummary         `json:"partner"`
	PartnerPolicy  *PolicySummary       `json:"partner_policy,omitempty"`
	ChangeRequests []*ChangeRequestView `json:"change_requests"`
}

type ChangeRequestView struct {
	ID               uuid.UUID  `json:"id"`
	RequesterStoreID uuid.UUID  `json:"requester_store_id"`
	Type             string     `json:"type"`
	Reason           string     `json:"reason"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	RespondedAt      *time.Time `json:"responded_at,omitempty"`
}

// MyPageView is what an owner prints next to the counter
type MyPageView struct {
	StoreID    uuid.UUID `json:"store_id"`
	StoreName  string    `json:"store_name"`
	Status     string    `json:"status"`
	Slug       *string   `json:"slug,omitempty"`
	QRPayload  *string   `json:"qr_payload,omitempty"`
	QRImageURL *string   `json:"qr_image_url,omitempty"`
	EndDate    *string   `json:"end_date,omitempty"`
}

// IssueLandingView tells a scanning consumer which offer they are about to receive
type IssueLandingView struct {
	Slug         string        `json:"slug"`
	ScannedStore StoreSummary  `json:"scanned_store"`
	TargetStore  StoreSummary  `json:"target_store"`
	Offer        PolicySummary `json:"offer"`
}

type PartnershipQueries interface {
	GetMine(ctx context.Context, principal user.Principal) (*PartnershipView, error)
	MyPage(ctx context.Context, principal user.Principal) (*MyPageView, error)
	GetIssueLanding(ctx context.Context, slug string) (*IssueLandingView, error)
}

type PartnershipReadStore interface {
	FindOngoingForStore(ctx context.Context, storeID uuid.UUID) (*PartnershipRecord, error)
	FindBySlug(ctx context.Context, slug string) (*PartnershipRecord, error)
	ListChangeRequests(ctx context.Context, partnershipID uuid.UUID) ([]*ChangeRequestView, error)
}

type PartnershipSettings struct {
	// BaseURL prefixes the QR payload: {BaseURL}/issue/{slug}
	BaseURL       string
	Location      *time.Location
	AllowExtended bool
	QRURLTTL      time.Duration
}

type partnershipQueriesImpl struct {
	partnerships PartnershipReadStore
	stores       StoreReadStore
	policies     PolicyReadStore
	storage      shared.ObjectStorage
	qr           shared.QRRenderer
	clock        clock.Clock
	settings     PartnershipSettings
}

func NewPartnershipQueries(
	partnerships PartnershipReadStore,
	stores StoreReadStore,
	policies PolicyReadStore,
	storage shared.ObjectStorage,
	qr shared.QRRenderer,
	clk clock.Clock,
	settings PartnershipSettings,
) PartnershipQueries {
	return &partnershipQueriesImpl{
		partnerships: partnerships,
		stores:       stores,
		policies:     policies,
		storage:      storage,
		qr:           qr,
		clock:        clk,
		settings:     settings,
	}
}

func (q *partnershipQueriesImpl) GetMine(ctx context.Context, principal user.Principal) (*PartnershipView, error) {
	storeID, err := principal.RequireOwner()
	if err != nil {
		return nil, err
	}
	rec, err := q.partnerships.FindOngoingForStore(ctx, storeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, partnership.ErrPartnershipNotFound
		}
		return nil, err
	}
	p := toDomainPartnership(rec)

	partnerID, err := p.Counterparty(storeID)
	if err != nil {
		return nil, err
	}
	slug, err := p.SlugFor(storeID)
	if err != nil {
		return nil, err
	}
	partner, err := q.stores.FindSummary(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	view := &PartnershipView{
		ID:        p.ID(),
		Status:    string(p.Status()),
		StartDate: p.StartDate().Format(DateLayout),
		EndDate:   p.EndDate().Format(DateLayout),
		MySlug:    slug,
		Partner:   *partner,
	}

	pol, err := q.policies.FindActiveByStoreID(ctx, partnerID)
	switch {
	case err == nil:
		summary := pol.Summary()
		view.PartnerPolicy = &summary
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, err
	}

	view.ChangeRequests, err = q.partnerships.ListChangeRequests(ctx, p.ID())
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *partnershipQueriesImpl) MyPage(ctx context.Context, principal user.Principal) (*MyPageView, error) {
	storeID, err := principal.RequireOwner()
	if err != nil {
		return nil, err
	}
	st, err := q.stores.FindSummary(ctx, storeID)
	if err != nil {
		return nil, err
	}
	view := &MyPageView{
		StoreID:   st.ID,
		StoreName: st.Name,
		Status:    MyPageStatusNone,
	}

	rec, err := q.partnerships.FindOngoingForStore(ctx, storeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return view, nil
		}
		return nil, err
	}
	p := toDomainPartnership(rec)
	slug, err := p.SlugFor(storeID)
	if err != nil {
		return nil, err
	}

	payload := strings.TrimRight(q.settings.BaseURL, "/") + "/issue/" + slug
	imageURL, err := q.qrImageURL(ctx, slug, payload)
	if err != nil {
		return nil, err
	}

	endDate := p.EndDate().Format(DateLayout)
	view.Status = string(p.Status())
	view.Slug = &slug
	view.QRPayload = &payload
	view.QRImageURL = &imageURL
	view.EndDate = &endDate
	return view, nil
}

// qrImageURL renders and uploads the slug's QR code on first use.
func (q *partnershipQueriesImpl) qrImageURL(ctx context.Context, slug, payload string) (string, error) {
	key := "qrcodes/" + slug + ".png"

	exists, err := q.storage.Exists(ctx, key)
	if err != nil {
		slog.Error("qr lookup failed", "key", key, "error", err)
		return "", errs.WithCause(shared.ErrStorageUnavailable, err)
	}
	if !exists {
		png, err := q.qr.PNG(payload)
		if err != nil {
			return "", errs.Wrap(err, "failed to render qr code")
		}
		if err := q.storage.Put(ctx, key, qrContentType, png); err != nil {
			slog.Error("qr upload failed", "key", key, "error", err)
			return "", errs.WithCause(shared.ErrStorageUnavailable, err)
		}
	}

	url, err := q.storage.PresignGet(ctx, key, q.settings.QRURLTTL)
	if err != nil {
		return "", errs.WithCause(shared.ErrStorageUnavailable, err)
	}
	return url, nil
}

func (q *partnershipQueriesImpl) GetIssueLanding(ctx context.Context, slug string) (*IssueLandingView, error) {
	rec, err := q.partnerships.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, partnership.ErrInvalidOrInactivePartnership
		}
		return nil, err
	}
	p := toDomainPartnership(rec)

	side, ok := p.SideOf(slug)
	today := clock.DateIn(q.clock.Now(), q.settings.Location)
	if !ok || !p.EligibleForIssuance(today, q.settings.AllowExtended) {
		return nil, partnership.ErrInvalidOrInactivePartnership
	}

	scanned, err := q.stores.FindSummary(ctx, p.ScanningStore(side))
	if err != nil {
		return nil, err
	}
	target, err := q.stores.FindSummary(ctx, p.TargetStore(side))
	if err != nil {
		return nil, err
	}
	offer, err := q.policies.FindActiveByStoreID(ctx, target.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, partnership.ErrInvalidOrInactivePartnership
		}
		return nil, err
	}

	return &IssueLandingView{
		Slug:         slug,
		ScannedStore: *scanned,
		TargetStore:  *target,
		Offer:        offer.Summary(),
	}, nil
}

func toDomainPartnership(r *PartnershipRecord) *partnership.Partnership {
	return partnership.ReconstructPartnership(
		r.ID, r.ProposalID, r.StoreAID, r.StoreBID,
		r.SlugForA, r.SlugForB,
		r.StartDate, r.EndDate,
		partnership.Status(r.Status),
		r.CreatedAt, r.UpdatedAt,
	)
}
