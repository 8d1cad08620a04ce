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
	"neighbiz/internal/pkg/errs"
	"neighbiz/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxSlugAttempts = 5

var ErrSlugGeneration = errs.New("failed to generate unique partnership slugs")

type RespondResult struct {
	ProposalID    uuid.UUID
	Status        proposal.Status
	PartnershipID *uuid.UUID
}

type ProposalCommands interface {
	CreateProposal(ctx context.Context, principal user.Principal, recipientStoreID uuid.UUID) (uuid.UUID, error)
	CancelProposal(ctx context.Context, principal user.Principal) (uuid.UUID, error)
	RespondToProposal(ctx context.Context, principal user.Principal, proposalID uuid.UUID, decision string) (*RespondResult, error)
}

type proposalUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
}

func NewProposalUseCase(uow shared.UnitOfWork, clk clock.Clock, loc *time.Location) ProposalCommands {
	return &proposalUseCaseImpl{
		uow:   uow,
		clock: clk,
		loc:   loc,
	}
}

func (uc *proposalUseCaseImpl) CreateProposal(ctx context.Context, principal user.Principal, recipientStoreID uuid.UUID) (uuid.UUID, error) {
	if _, err := principal.RequireOwner(); err != nil {
		return uuid.Nil, err
	}
	proposerStoreID := principal.StoreID()

	p, err := proposal.NewProposal(proposerStoreID, recipientStoreID, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		recipient, err := tx.Reads().StoreByID(ctx, recipientStoreID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return proposal.ErrRecipientNotFound
			}
			return err
		}
		if !recipient.IsActive {
			return proposal.ErrRecipientNotFound
		}

		partnered, err := tx.Partnerships().ExistsOngoingBetween(ctx, tx.DB(), proposerStoreID, recipientStoreID)
		if err != nil {
			return err
		}
		if partnered {
			return proposal.ErrAlreadyPartnered
		}

		inFlight, err := tx.Proposals().ExistsPendingByProposer(ctx, tx.DB(), proposerStoreID)
		if err != nil {
			return err
		}
		if inFlight {
			return proposal.ErrProposalInFlight
		}

		hasPolicy, err := tx.Policies().ExistsActiveByStoreID(ctx, tx.DB(), proposerStoreID)
		if err != nil {
			return err
		}
		if !hasPolicy {
			return proposal.ErrPolicyMissing
		}

		return tx.Proposals().Create(ctx, tx.DB(), p)
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("proposal created",
		"proposal_id", p.ID(),
		"proposer_store_id", proposerStoreID,
		"recipient_store_id", recipientStoreID)
	return p.ID(), nil
}

func (uc *proposalUseCaseImpl) CancelProposal(ctx context.Context, principal user.Principal) (uuid.UUID, error) {
	if _, err := principal.RequireOwner(); err != nil {
		return uuid.Nil, err
	}
	storeID := principal.StoreID()

	var proposalID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Proposals().LockPendingByProposer(ctx, tx.DB(), storeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return proposal.ErrNoCancellableProposal
			}
			return err
		}
		if err := p.Cancel(storeID, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Proposals().UpdateStatus(ctx, tx.DB(), p); err != nil {
			return err
		}
		proposalID = p.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return proposalID, nil
}

func (uc *proposalUseCaseImpl) RespondToProposal(ctx context.Context, principal user.Principal, proposalID uuid.UUID, decisionStr string) (*RespondResult, error) {
	if _, err := principal.RequireOwner(); err != nil {
		return nil, err
	}
	decision, err := proposal.NewDecision(decisionStr)
	if err != nil {
		return nil, err
	}
	actor := principal.StoreID()

	var result *RespondResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if decision == proposal.DecisionReject {
			p, err := lockProposal(ctx, tx, proposalID)
			if err != nil {
				return err
			}
			if err := p.Reject(actor, uc.clock.Now()); err != nil {
				return err
			}
			if err := tx.Proposals().UpdateStatus(ctx, tx.DB(), p); err != nil {
				return err
			}
			result = &RespondResult{ProposalID: p.ID(), Status: p.Status()}
			return nil
		}

		created, p, err := uc.accept(ctx, tx, proposalID, actor)
		if err != nil {
			return err
		}
		id := created.ID()
		result = &RespondResult{ProposalID: p.ID(), Status: p.Status(), PartnershipID: &id}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("proposal resolved",
		"proposal_id", proposalID,
		"status", result.Status,
		"actor_store_id", actor)
	return result, nil
}

// accept runs inside the caller's transaction. Every accept takes the policy
// rows of both stores in ascending store id order before any proposal row, so
// accepts sharing a store queue on the first shared policy lock.
func (uc *proposalUseCaseImpl) accept(ctx context.Context, tx shared.Tx, proposalID, actor uuid.UUID) (*partnership.Partnership, *proposal.Proposal, error) {
	// store ids never change, so an unlocked read is enough to pick the policy rows
	snapshot, err := tx.Proposals().FindByID(ctx, tx.DB(), proposalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, proposal.ErrProposalNotFound
		}
		return nil, nil, err
	}
	if err := snapshot.EnsureRespondable(actor); err != nil {
		return nil, nil, err
	}
	proposer, recipient := snapshot.ProposerStoreID(), snapshot.RecipientStoreID()
	stores := []uuid.UUID{proposer, recipient}

	policies, err := tx.Policies().LockActiveByStoreIDs(ctx, tx.DB(), stores)
	if err != nil {
		return nil, nil, err
	}

	p, err := lockProposal(ctx, tx, proposalID)
	if err != nil {
		return nil, nil, err
	}
	if err := p.EnsureRespondable(actor); err != nil {
		return nil, nil, err
	}

	if _, ok := policies[proposer]; !ok {
		return nil, nil, proposal.ErrPolicyMissing
	}
	recipientPolicy, ok := policies[recipient]
	if !ok {
		return nil, nil, proposal.ErrPolicyMissing
	}
	days, err := recipientPolicy.ExpectedDuration().Days()
	if err != nil {
		return nil, nil, err
	}

	busy, err := tx.Partnerships().ExistsOngoingForStores(ctx, tx.DB(), stores)
	if err != nil {
		return nil, nil, err
	}
	if busy {
		return nil, nil, partnership.ErrActivePartnershipExists
	}

	slugA, slugB, err := uc.freshSlugs(ctx, tx)
	if err != nil {
		return nil, nil, err
	}

	now := uc.clock.Now()
	today := clock.DateIn(now, uc.loc)
	created, err := partnership.NewPartnership(p.ID(), proposer, recipient, slugA, slugB, today, days, now)
	if err != nil {
		return nil, nil, err
	}
	if err := tx.Partnerships().Create(ctx, tx.DB(), created); err != nil {
		return nil, nil, err
	}

	// other pending rows are locked in id order
	rejected, err := tx.Proposals().RejectPendingTouching(ctx, tx.DB(), stores, p.ID(), now)
	if err != nil {
		return nil, nil, err
	}

	if err := p.Accept(actor, now); err != nil {
		return nil, nil, err
	}
	if err := tx.Proposals().UpdateStatus(ctx, tx.DB(), p); err != nil {
		return nil, nil, err
	}

	slog.Info("partnership created",
		"partnership_id", created.ID(),
		"proposal_id", p.ID(),
		"start_date", created.StartDate().Format(time.DateOnly),
		"end_date", created.EndDate().Format(time.DateOnly),
		"auto_rejected", rejected)
	return created, p, nil
}

func lockProposal(ctx context.Context, tx shared.Tx, id uuid.UUID) (*proposal.Proposal, error) {
	p, err := tx.Proposals().LockByID(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, proposal.ErrProposalNotFound
		}
		return nil, err
	}
	return p, nil
}

func (uc *proposalUseCaseImpl) freshSlugs(ctx context.Context, tx shared.Tx) (string, string, error) {
	var slugs []string
	for attempt := 0; attempt < maxSlugAttempts*2 && len(slugs) < 2; attempt++ {
		slug, err := partnership.NewSlug()
		if err != nil {
			return "", "", errs.Wrap(err, "failed to generate slug")
		}
		if len(slugs) == 1 && slugs[0] == slug {
			continue
		}
		taken, err := tx.Partnerships().SlugExists(ctx, tx.DB(), slug)
		if err != nil {
			return "", "", err
		}
		if !taken {
			slugs = append(slugs, slug)
		}
	}
	if len(slugs) < 2 {
		return "", "", ErrSlugGeneration
	}
	return slugs[0], slugs[1], nil
}
