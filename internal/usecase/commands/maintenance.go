package commands

import (
	"context"
	"time"

	"neighbiz/internal/pkg/clock"
	"neighbiz/internal/usecase/shared"
)

type SweepResult struct {
	ExpiredCoupons    int64
	EndedPartnerships int64
}

// MaintenanceCommands holds idempotent bulk transitions. Lazy checks on the
// request path stay authoritative; the sweep only tidies stored state.
type MaintenanceCommands interface {
	SweepExpired(ctx context.Context) (*SweepResult, error)
}

type maintenanceUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
}

func NewMaintenanceUseCase(uow shared.UnitOfWork, clk clock.Clock, loc *time.Location) MaintenanceCommands {
	return &maintenanceUseCaseImpl{
		uow:   uow,
		clock: clk,
		loc:   loc,
	}
}

func (uc *maintenanceUseCaseImpl) SweepExpired(ctx context.Context) (*SweepResult, error) {
	result := &SweepResult{}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		expired, err := tx.Coupons().ExpireOverdue(ctx, tx.DB(), now)
		if err != nil {
			return err
		}
		ended, err := tx.Partnerships().EndExpired(ctx, tx.DB(), clock.DateIn(now, uc.loc), now)
		if err != nil {
			return err
		}

		result.ExpiredCoupons = expired
		result.EndedPartnerships = ended
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
