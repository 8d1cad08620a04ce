//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"neighbiz/internal/domain/proposal"
	"neighbiz/internal/handler/api"
	resdto "neighbiz/internal/handler/dto/response"
	"neighbiz/internal/usecase/commands"
	"neighbiz/internal/usecase/queries"
	"neighbiz/tests/common/httptest"
	commandsmock "neighbiz/tests/mock/commands"
	queriesmock "neighbiz/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProposalHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProposalCommands
	mockQueries  *queriesmock.MockProposalQueries
	principals   *testPrincipals
}

func (s *ProposalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProposalCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProposalQueries(s.mockCtrl)
	s.principals = newTestPrincipals(s.mockCtrl)

	handler := api.NewProposalHandler(s.mockCommands, s.mockQueries)
	owners := s.principals.owners()
	s.router.POST("/proposals", chain(owners, handler.Create)...)
	s.router.POST("/proposals/cancel", chain(owners, handler.Cancel)...)
	s.router.GET("/proposals/received", chain(owners, handler.ListReceived)...)
	s.router.GET("/proposals/sent", chain(owners, handler.ListSent)...)
	s.router.GET("/proposals/:id", chain(owners, handler.Get)...)
	s.router.POST("/proposals/:id/respond", chain(owners, handler.Respond)...)
}

func (s *ProposalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProposalHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProposalHandlerTestSuite))
}

func (s *ProposalHandlerTestSuite) view(id uuid.UUID, status string) *queries.ProposalView {
	return &queries.ProposalView{
		ID:        id,
		Proposer:  queries.StoreSummary{ID: s.principals.owner.StoreID(), Name: "Morning Crumb"},
		Recipient: queries.StoreSummary{ID: uuid.New(), Name: "Corner Cafe"},
		Status:    status,
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ProposalHandlerTestSuite) TestCreate() {
	url := "/proposals"
	recipient := uuid.New()
	body := map[string]any{"recipient_store_id": recipient.String()}

	s.Run("success: returns 201 with the proposal", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CreateProposal(gomock.Any(), s.principals.owner, recipient).Return(id, nil).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), s.principals.owner, id).Return(s.view(id, "pending"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, ownerToken)

		var res resdto.ProposalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(id, res.ID)
		s.Equal("pending", res.Status)
		s.Equal("Corner Cafe", res.Recipient.Name)
	})

	s.Run("error: 400 for a malformed recipient id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"recipient_store_id": "nope"}, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 403 for consumers", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, consumerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "store owner account required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{name: "self proposal", err: proposal.ErrSelfProposal, expectedStatus: http.StatusBadRequest},
			{name: "recipient missing", err: proposal.ErrRecipientNotFound, expectedStatus: http.StatusNotFound},
			{name: "already partnered", err: proposal.ErrAlreadyPartnered, expectedStatus: http.StatusConflict},
			{name: "in flight", err: proposal.ErrProposalInFlight, expectedStatus: http.StatusConflict},
			{name: "policy missing", err: proposal.ErrPolicyMissing, expectedStatus: http.StatusConflict},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateProposal(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, ownerToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.err.Error())
			})
		}
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ProposalHandlerTestSuite) TestCancel() {
	s.Run("success", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CancelProposal(gomock.Any(), s.principals.owner).Return(id, nil).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), gomock.Any(), id).Return(s.view(id, "cancelled"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/proposals/cancel", nil, ownerToken)

		var res resdto.ProposalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("cancelled", res.Status)
	})

	s.Run("error: 409 when nothing is pending", func() {
		s.mockCommands.EXPECT().CancelProposal(gomock.Any(), gomock.Any()).Return(uuid.Nil, proposal.ErrNoCancellableProposal).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/proposals/cancel", nil, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no pending proposal")
	})
}

// ================================================================================
// TestRespond
// ================================================================================

func (s *ProposalHandlerTestSuite) TestRespond() {
	id := uuid.New()
	url := "/proposals/" + id.String() + "/respond"

	s.Run("success: approval returns the partnership id", func() {
		partnershipID := uuid.New()
		s.mockCommands.EXPECT().RespondToProposal(gomock.Any(), s.principals.owner, id, "approve").
			Return(&commands.RespondResult{ProposalID: id, Status: proposal.StatusAccepted, PartnershipID: &partnershipID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"decision": "approve"}, ownerToken)

		var res resdto.RespondProposalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("accepted", res.Status)
		s.Require().NotNil(res.PartnershipID)
		s.Equal(partnershipID, *res.PartnershipID)
	})

	s.Run("error: 400 for an unknown decision", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"decision": "maybe"}, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/proposals/abc/respond", map[string]any{"decision": "approve"}, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 403 when the caller is not the recipient", func() {
		s.mockCommands.EXPECT().RespondToProposal(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, proposal.ErrNotRecipient).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"decision": "reject"}, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "only the recipient")
	})

	s.Run("error: 409 when already resolved", func() {
		s.mockCommands.EXPECT().RespondToProposal(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, proposal.ErrAlreadyResolved).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"decision": "approve"}, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer pending")
	})
}

// ================================================================================
// TestLists
// ================================================================================

func (s *ProposalHandlerTestSuite) TestLists() {
	item := &queries.ProposalListItemView{
		ID:          uuid.New(),
		Status:      "pending",
		Counterpart: queries.StoreSummary{ID: uuid.New(), Name: "Corner Cafe"},
	}

	s.Run("received with status filter", func() {
		s.mockQueries.EXPECT().ListReceived(gomock.Any(), s.principals.owner, gomock.Eq(ptr("pending"))).
			Return([]*queries.ProposalListItemView{item}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/proposals/received?status=pending", nil, ownerToken)

		var res []resdto.ProposalListItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 1)
		s.Equal("Corner Cafe", res[0].Counterpart.Name)
	})

	s.Run("sent without filter", func() {
		s.mockQueries.EXPECT().ListSent(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return([]*queries.ProposalListItemView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/proposals/sent", nil, ownerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("get: 404 for strangers", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().Get(gomock.Any(), gomock.Any(), id).Return(nil, proposal.ErrProposalNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/proposals/"+id.String(), nil, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "proposal not found")
	})
}
