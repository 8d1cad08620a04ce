package commands

import (
	"context"
	"log/slog"
	"time"

	"neighbiz/internal/domain/partnership"
	"neighbiz/internal/domain/proposal"
	"neighbiz/internal/domain/user"
	"neighbiz/internal/infra"
	"neighbiz/internal/pkg/clock"
	"neighbiz/internal/usecase/shared"

	"github.com/google/uuid"
)

type ChangeResult struct {
	RequestID   uuid.UUID
	Status      partnership.ChangeStatus
	Partnership partnership.Status
	EndDate     time.Time
}

type PartnershipCommands interface {
	RequestChange(ctx context.Context, principal user.Principal, changeType, reason string) (uuid.UUID, error)
	RespondChange(ctx context.Context, principal user.Principal, requestID uuid.UUID, decision string) (*ChangeResult, error)
}

type partnershipUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
}

func NewPartnershipUseCase(uow shared.UnitOfWork, clk clock.Clock, loc *time.Location) PartnershipCommands {
	return &partnershipUseCaseImpl{
		uow:   uow,
		clock: clk,
		loc:   loc,
	}
}

func (uc *partnershipUseCaseImpl) RequestChange(ctx context.Context, principal user.Principal, changeTypeStr, reason string) (uuid.UUID, error) {
	if _, err := principal.RequireOwner(); err != nil {
		return uuid.Nil, err
	}
	changeType, err := partnership.NewChangeType(changeTypeStr)
	if err != nil {
		return uuid.Nil, err
	}
	storeID := principal.StoreID()

	var requestID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Partnerships().FindOngoingForStore(ctx, tx.DB(), storeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return partnership.ErrPartnershipNotFound
			}
			return err
		}
		p, err := tx.Partnerships().LockByID(ctx, tx.DB(), current.ID())
		if err != nil {
			return err
		}

		pending, err := tx.ChangeRequests().ExistsPending(ctx, tx.DB(), p.ID())
		if err != nil {
			return err
		}
		if pending {
			return partnership.ErrChangeRequestPending
		}

		req, err := partnership.NewChangeRequest(p, storeID, changeType, reason, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.ChangeRequests().Create(ctx, tx.DB(), req); err != nil {
			return err
		}
		requestID = req.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return requestID, nil
}

func (uc *partnershipUseCaseImpl) RespondChange(ctx context.Context, principal user.Principal, requestID uuid.UUID, decisionStr string) (*ChangeResult, error) {
	if _, err := principal.RequireOwner(); err != nil {
		return nil, err
	}
	decision, err := proposal.NewDecision(decisionStr)
	if err != nil {
		return nil, err
	}
	approve := decision == proposal.DecisionApprove
	actor := principal.StoreID()

	var result *ChangeResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.ChangeRequests().LockByID(ctx, tx.DB(), requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return partnership.ErrChangeRequestNotFound
			}
			return err
		}
		p, err := tx.Partnerships().LockByID(ctx, tx.DB(), req.PartnershipID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return partnership.ErrPartnershipNotFound
			}
			return err
		}

		now := uc.clock.Now()
		if err := req.Resolve(p, actor, approve, now); err != nil {
			return err
		}

		if req.IsApproved() {
			if err := uc.apply(ctx, tx, p, req.Type(), now); err != nil {
				return err
			}
			if err := tx.Partnerships().UpdateTerm(ctx, tx.DB(), p); err != nil {
				return err
			}
		}
		if err := tx.ChangeRequests().UpdateStatus(ctx, tx.DB(), req); err != nil {
			return err
		}

		result = &ChangeResult{
			RequestID:   req.ID(),
			Status:      req.Status(),
			Partnership: p.Status(),
			EndDate:     p.EndDate(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("partnership change resolved",
		"request_id", requestID,
		"status", result.Status,
		"partnership_status", result.Partnership)
	return result, nil
}

// apply extends by the recipient's current policy duration, or terminates today.
func (uc *partnershipUseCaseImpl) apply(ctx context.Context, tx shared.Tx, p *partnership.Partnership, changeType partnership.ChangeType, now time.Time) error {
	if changeType == partnership.ChangeTerminate {
		return p.Terminate(clock.DateIn(now, uc.loc), now)
	}

	recipientPolicy, err := tx.Policies().FindActiveByStoreID(ctx, tx.DB(), p.StoreBID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return proposal.ErrPolicyMissing
		}
		return err
	}
	days, err := recipientPolicy.ExpectedDuration().Days()
	if err != nil {
		return err
	}
	return p.Extend(days, now)
}
