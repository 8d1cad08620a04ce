package commands

import (
	"context"

	"neighbiz/internal/domain/policy"
	"neighbiz/internal/domain/user"
	"neighbiz/internal/pkg/clock"
	"neighbiz/internal/pkg/patch"
	"neighbiz/internal/usecase/shared"

	"github.com/google/uuid"
)

type PolicyPatch struct {
	Description       *string
	ExpectedValue     *int
	ExpectedDuration  *string
	MonthlyLimit      *int
	ClearMonthlyLimit bool
}

type PolicyCommands interface {
	CreatePolicy(ctx context.Context, principal user.Principal, terms policy.Terms) (uuid.UUID, error)
	UpdatePolicy(ctx context.Context, principal user.Principal, p PolicyPatch) (uuid.UUID, error)
	DeactivatePolicy(ctx context.Context, principal user.Principal) error
}

type policyUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPolicyUseCase(uow shared.UnitOfWork, clk clock.Clock) PolicyCommands {
	return &policyUseCaseImpl{
		uow:   uow,
		clock: clk,
	}
}

func (uc *policyUseCaseImpl) CreatePolicy(ctx context.Context, principal user.Principal, terms policy.Terms) (uuid.UUID, error) {
	if _, err := principal.RequireOwner(); err != nil {
		return uuid.Nil, err
	}
	storeID := principal.StoreID()

	p, err := policy.NewCouponPolicy(storeID, terms, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Policies().ExistsActiveByStoreID(ctx, tx.DB(), storeID)
		if err != nil {
			return err
		}
		if exists {
			return policy.ErrPolicyAlreadyExists
		}
		return tx.Policies().Create(ctx, tx.DB(), p)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return p.ID(), nil
}

func (uc *policyUseCaseImpl) UpdatePolicy(ctx context.Context, principal user.Principal, p PolicyPatch) (uuid.UUID, error) {
	if _, err := principal.RequireOwner(); err != nil {
		return uuid.Nil, err
	}

	var policyID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := uc.lockUnlocked(ctx, tx, principal.StoreID())
		if err != nil {
			return err
		}

		terms := current.Terms()
		terms.Description = patch.Coalesce(p.Description, terms.Description)
		terms.ExpectedValue = patch.Coalesce(p.ExpectedValue, terms.ExpectedValue)
		terms.ExpectedDuration = patch.Coalesce(p.ExpectedDuration, terms.ExpectedDuration)
		switch {
		case p.ClearMonthlyLimit:
			terms.MonthlyLimit = nil
		case p.MonthlyLimit != nil:
			terms.MonthlyLimit = p.MonthlyLimit
		}

		if err := current.UpdateTerms(terms, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Policies().Update(ctx, tx.DB(), current); err != nil {
			return err
		}
		policyID = current.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return policyID, nil
}

func (uc *policyUseCaseImpl) DeactivatePolicy(ctx context.Context, principal user.Principal) error {
	if _, err := principal.RequireOwner(); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := uc.lockUnlocked(ctx, tx, principal.StoreID())
		if err != nil {
			return err
		}
		if err := current.Deactivate(uc.clock.Now()); err != nil {
			return err
		}
		return tx.Policies().Update(ctx, tx.DB(), current)
	})
}

// lockUnlocked locks the store's active policy and refuses it while a
// partnership or proposal depends on its terms.
func (uc *policyUseCaseImpl) lockUnlocked(ctx context.Context, tx shared.Tx, storeID uuid.UUID) (*policy.CouponPolicy, error) {
	locked, err := tx.Policies().LockActiveByStoreIDs(ctx, tx.DB(), []uuid.UUID{storeID})
	if err != nil {
		return nil, err
	}
	current, ok := locked[storeID]
	if !ok {
		return nil, policy.ErrPolicyNotFound
	}

	partnered, err := tx.Partnerships().ExistsOngoingForStores(ctx, tx.DB(), []uuid.UUID{storeID})
	if err != nil {
		return nil, err
	}
	if partnered {
		return nil, policy.ErrPolicyLocked
	}
	pending, err := tx.Proposals().ExistsPendingTouching(ctx, tx.DB(), storeID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, policy.ErrPolicyLocked
	}
	return current, nil
}
