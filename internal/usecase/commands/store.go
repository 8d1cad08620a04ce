package commands

import (
	"context"

	"neighbiz/internal/domain/store"
	"neighbiz/internal/domain/user"
	"neighbiz/internal/infra"
	"neighbiz/internal/pkg/clock"
	"neighbiz/internal/pkg/patch"
	"neighbiz/internal/usecase/shared"

	"github.com/google/uuid"
)

// StorePatch leaves nil fields unchanged. The Clear flags null out optional fields.
type StorePatch struct {
	Name             *string
	Category         *string
	Phone            *string
	Address          *string
	Description      *string
	ClearDescription bool
	ImageKey         *string
	ClearImageKey    bool
	BusinessHours    *store.BusinessHours
}

type StoreCommands interface {
	UpdateMyStore(ctx context.Context, principal user.Principal, p StorePatch) (uuid.UUID, error)
}

type storeUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewStoreUseCase(uow shared.UnitOfWork, clk clock.Clock) StoreCommands {
	return &storeUseCaseImpl{
		uow:   uow,
		clock: clk,
	}
}

func (uc *storeUseCaseImpl) UpdateMyStore(ctx context.Context, principal user.Principal, p StorePatch) (uuid.UUID, error) {
	if _, err := principal.RequireOwner(); err != nil {
		return uuid.Nil, err
	}

	var storeID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Stores().FindByOwnerID(ctx, tx.DB(), principal.ID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return store.ErrStoreNotFound
			}
			return err
		}
		if !s.IsActive() {
			return store.ErrStoreInactive
		}

		if err := s.UpdateProfile(mergeProfile(s.Profile(), p), uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Stores().Update(ctx, tx.DB(), s); err != nil {
			return err
		}
		storeID = s.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return storeID, nil
}

func mergeProfile(current store.Profile, p StorePatch) store.Profile {
	merged := store.Profile{
		Name:          patch.Coalesce(p.Name, current.Name),
		Category:      patch.Coalesce(p.Category, current.Category),
		Phone:         patch.Coalesce(p.Phone, current.Phone),
		Address:       patch.Coalesce(p.Address, current.Address),
		Description:   current.Description,
		ImageKey:      current.ImageKey,
		BusinessHours: patch.Coalesce(p.BusinessHours, current.BusinessHours),
	}
	switch {
	case p.ClearDescription:
		merged.Description = nil
	case p.Description != nil:
		merged.Description = p.Description
	}
	switch {
	case p.ClearImageKey:
		merged.ImageKey = nil
	case p.ImageKey != nil:
		merged.ImageKey = p.ImageKey
	}
	return merged
}
