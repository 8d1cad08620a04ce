package commands

import (
	"context"
	"log/slog"
	"time"

	"neighbiz/internal/domain/coupon"
	"neighbiz/internal/domain/partnership"
	"neighbiz/internal/domain/user"
	"neighbiz/internal/infra"
	"neighbiz/internal/pkg/clock"
	"neighbiz/internal/pkg/errs"
	"neighbiz/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxShortCodeAttempts = 5

var ErrShortCodeExhausted = errs.New("failed to allocate a unique short code")

type CouponSettings struct {
	Location      *time.Location
	Validity      time.Duration
	AllowExtended bool
}

type IssueResult struct {
	Coupon        *coupon.Coupon
	AlreadyIssued bool
}

type CouponCommands interface {
	Issue(ctx context.Context, principal user.Principal, slug string, meta coupon.RequestMeta) (*IssueResult, error)
	Use(ctx context.Context, principal user.Principal, shortCode string, meta coupon.RequestMeta) (*coupon.Coupon, error)
}

type couponUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	settings CouponSettings
}

func NewCouponUseCase(uow shared.UnitOfWork, clk clock.Clock, settings CouponSettings) CouponCommands {
	return &couponUseCaseImpl{
		uow:      uow,
		clock:    clk,
		settings: settings,
	}
}

func (uc *couponUseCaseImpl) Issue(ctx context.Context, principal user.Principal, slug string, meta coupon.RequestMeta) (*IssueResult, error) {
	consumerID, err := principal.RequireConsumer()
	if err != nil {
		return nil, err
	}

	var result *IssueResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		today := clock.DateIn(now, uc.settings.Location)

		p, err := tx.Partnerships().FindBySlug(ctx, tx.DB(), slug)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return partnership.ErrInvalidOrInactivePartnership
			}
			return err
		}
		side, ok := p.SideOf(slug)
		if !ok || !p.EligibleForIssuance(today, uc.settings.AllowExtended) {
			return partnership.ErrInvalidOrInactivePartnership
		}
		target := p.TargetStore(side)

		// the policy lock serialises issuance per offer so the monthly count stays exact
		locked, err := tx.Policies().LockActiveByStoreIDs(ctx, tx.DB(), []uuid.UUID{target})
		if err != nil {
			return err
		}
		pol, ok := locked[target]
		if !ok {
			return coupon.ErrNoActivePolicy
		}

		existing, err := uc.findForDay(ctx, tx, consumerID, slug, today)
		if err != nil {
			return err
		}
		if existing != nil {
			result = &IssueResult{Coupon: existing, AlreadyIssued: true}
			return nil
		}

		issued, err := tx.Coupons().CountIssuedSince(ctx, tx.DB(), pol.ID(), clock.MonthStartIn(now, uc.settings.Location))
		if err != nil {
			return err
		}
		if !pol.AllowsIssuance(issued) {
			return coupon.ErrMonthlyLimitReached
		}

		for attempt := 0; attempt < maxShortCodeAttempts; attempt++ {
			code, err := coupon.NewShortCode()
			if err != nil {
				return errs.Wrap(err, "failed to generate short code")
			}
			c := coupon.Issue(coupon.IssueParams{
				ConsumerID:      consumerID,
				PolicyID:        pol.ID(),
				PartnershipID:   p.ID(),
				PartnershipSlug: slug,
				ShortCode:       code,
				IssuedOn:        today,
				Validity:        uc.settings.Validity,
			}, now)

			inserted, err := tx.Coupons().InsertIfAbsent(ctx, tx.DB(), c)
			if err != nil {
				return err
			}
			if inserted {
				if err := tx.Coupons().AppendEvent(ctx, tx.DB(), coupon.NewEventLog(c, coupon.EventIssued, meta, now)); err != nil {
					return err
				}
				result = &IssueResult{Coupon: c}
				return nil
			}

			// either a concurrent request won the day slot or the short code collided
			winner, err := uc.findForDay(ctx, tx, consumerID, slug, today)
			if err != nil {
				return err
			}
			if winner != nil {
				result = &IssueResult{Coupon: winner, AlreadyIssued: true}
				return nil
			}
		}
		return ErrShortCodeExhausted
	})
	if err != nil {
		return nil, err
	}

	if !result.AlreadyIssued {
		slog.Info("coupon issued",
			"coupon_id", result.Coupon.ID(),
			"partnership_id", result.Coupon.PartnershipID(),
			"consumer_id", consumerID)
	}
	return result, nil
}

func (uc *couponUseCaseImpl) Use(ctx context.Context, principal user.Principal, shortCode string, meta coupon.RequestMeta) (*coupon.Coupon, error) {
	consumerID, err := principal.RequireConsumer()
	if err != nil {
		return nil, err
	}
	code, err := coupon.NormalizeShortCode(shortCode)
	if err != nil {
		return nil, err
	}

	var (
		used       *coupon.Coupon
		redeemFail error
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Coupons().LockByShortCode(ctx, tx.DB(), code, consumerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return coupon.ErrCouponNotFound
			}
			return err
		}

		now := uc.clock.Now()
		redeemFail = c.Redeem(now)
		switch {
		case redeemFail == nil:
			if err := tx.Coupons().UpdateStatus(ctx, tx.DB(), c); err != nil {
				return err
			}
			used = c
			return tx.Coupons().AppendEvent(ctx, tx.DB(), coupon.NewEventLog(c, coupon.EventUsed, meta, now))
		case errs.Is(redeemFail, coupon.ErrCouponExpired):
			// the expiry is committed even though the call fails
			if err := tx.Coupons().UpdateStatus(ctx, tx.DB(), c); err != nil {
				return err
			}
			return tx.Coupons().AppendEvent(ctx, tx.DB(), coupon.NewEventLog(c, coupon.EventExpired, meta, now))
		default:
			return redeemFail
		}
	})
	if err != nil {
		return nil, err
	}
	if redeemFail != nil {
		return nil, redeemFail
	}

	slog.Info("coupon used", "coupon_id", used.ID(), "consumer_id", consumerID)
	return used, nil
}

func (uc *couponUseCaseImpl) findForDay(ctx context.Context, tx shared.Tx, consumerID uuid.UUID, slug string, day time.Time) (*coupon.Coupon, error) {
	c, err := tx.Coupons().FindForDay(ctx, tx.DB(), consumerID, slug, day)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}
