//go:build unit

package proposal_test

import (
	"testing"
	"time"

	"neighbiz/internal/domain/proposal"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposal(t *testing.T) {
	now := time.Now()
	proposer, recipient := uuid.New(), uuid.New()

	newPending := func(t *testing.T) *proposal.Proposal {
		t.Helper()
		p, err := proposal.NewProposal(proposer, recipient, now)
		require.NoError(t, err)
		return p
	}

	t.Run("starts pending", func(t *testing.T) {
		p := newPending(t)
		assert.Equal(t, proposal.StatusPending, p.Status())
		assert.True(t, p.Involves(proposer))
		assert.True(t, p.Involves(recipient))
		assert.False(t, p.Involves(uuid.New()))
	})

	t.Run("self proposal", func(t *testing.T) {
		_, err := proposal.NewProposal(proposer, proposer, now)
		assert.ErrorIs(t, err, proposal.ErrSelfProposal)
	})

	t.Run("only recipient responds", func(t *testing.T) {
		p := newPending(t)
		assert.ErrorIs(t, p.Accept(proposer, now), proposal.ErrNotRecipient)
		assert.ErrorIs(t, p.Reject(uuid.New(), now), proposal.ErrNotRecipient)
		assert.True(t, p.IsPending())
	})

	t.Run("accept is terminal", func(t *testing.T) {
		p := newPending(t)
		require.NoError(t, p.Accept(recipient, now))
		assert.Equal(t, proposal.StatusAccepted, p.Status())
		assert.ErrorIs(t, p.Reject(recipient, now), proposal.ErrAlreadyResolved)
		assert.ErrorIs(t, p.Cancel(proposer, now), proposal.ErrNoCancellableProposal)
	})

	t.Run("reject is terminal", func(t *testing.T) {
		p := newPending(t)
		require.NoError(t, p.Reject(recipient, now))
		assert.Equal(t, proposal.StatusRejected, p.Status())
		assert.ErrorIs(t, p.Accept(recipient, now), proposal.ErrAlreadyResolved)
	})

	t.Run("cancel by proposer only", func(t *testing.T) {
		p := newPending(t)
		assert.ErrorIs(t, p.Cancel(recipient, now), proposal.ErrNoCancellableProposal)
		require.NoError(t, p.Cancel(proposer, now))
		assert.Equal(t, proposal.StatusCancelled, p.Status())
		assert.ErrorIs(t, p.Accept(recipient, now), proposal.ErrAlreadyResolved)
	})
}

func TestDecisionAndStatus(t *testing.T) {
	_, err := proposal.NewDecision("maybe")
	assert.ErrorIs(t, err, proposal.ErrInvalidDecision)
	d, err := proposal.NewDecision("approve")
	require.NoError(t, err)
	assert.Equal(t, proposal.DecisionApprove, d)

	_, err = proposal.NewStatus("open")
	assert.ErrorIs(t, err, proposal.ErrInvalidStatus)
}
