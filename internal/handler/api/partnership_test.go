//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"neighbiz/internal/domain/partnership"
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

type PartnershipHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPartnershipCommands
	mockQueries  *queriesmock.MockPartnershipQueries
	principals   *testPrincipals
}

func (s *PartnershipHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPartnershipCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPartnershipQueries(s.mockCtrl)
	s.principals = newTestPrincipals(s.mockCtrl)

	handler := api.NewPartnershipHandler(s.mockCommands, s.mockQueries)
	owners := s.principals.owners()
	s.router.GET("/partnerships/me", chain(owners, handler.GetMine)...)
	s.router.GET("/partnerships/mypage", chain(owners, handler.MyPage)...)
	s.router.POST("/partnerships/change-requests", chain(owners, handler.RequestChange)...)
	s.router.POST("/partnerships/change-requests/:id/respond", chain(owners, handler.RespondChange)...)
	s.router.GET("/issue/:slug", handler.IssueLanding)
}

func (s *PartnershipHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPartnershipHandlerSuite(t *testing.T) {
	suite.Run(t, new(PartnershipHandlerTestSuite))
}

func (s *PartnershipHandlerTestSuite) TestGetMine() {
	s.Run("success: includes change requests", func() {
		view := &queries.PartnershipView{
			ID:        uuid.New(),
			Status:    "active",
			StartDate: "2026-03-11",
			EndDate:   "2026-04-10",
			MySlug:    "k3v9x2pq",
			Partner:   queries.StoreSummary{ID: uuid.New(), Name: "Corner Cafe"},
			ChangeRequests: []*queries.ChangeRequestView{
				{ID: uuid.New(), Type: "extend", Status: "pending", CreatedAt: time.Date(2026, 3, 20, 1, 0, 0, 0, time.UTC)},
			},
		}
		s.mockQueries.EXPECT().GetMine(gomock.Any(), s.principals.owner).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/partnerships/me", nil, ownerToken)

		var res resdto.PartnershipResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("2026-04-10", res.EndDate)
		s.Equal("k3v9x2pq", res.MySlug)
		s.Require().Len(res.ChangeRequests, 1)
		s.Equal("extend", res.ChangeRequests[0].Type)
	})

	s.Run("error: 404 without a running partnership", func() {
		s.mockQueries.EXPECT().GetMine(gomock.Any(), gomock.Any()).Return(nil, partnership.ErrPartnershipNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/partnerships/me", nil, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "partnership not found")
	})
}

func (s *PartnershipHandlerTestSuite) TestMyPage() {
	s.Run("success: store without partnership reports none", func() {
		s.mockQueries.EXPECT().MyPage(gomock.Any(), gomock.Any()).
			Return(&queries.MyPageView{StoreID: s.principals.owner.StoreID(), StoreName: "Morning Crumb", Status: queries.MyPageStatusNone}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/partnerships/mypage", nil, ownerToken)

		var res resdto.MyPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("none", res.Status)
		s.Nil(res.Slug)
		s.Nil(res.QRPayload)
	})
}

func (s *PartnershipHandlerTestSuite) TestRequestChange() {
	url := "/partnerships/change-requests"

	s.Run("success: 201 with the request id", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().RequestChange(gomock.Any(), s.principals.owner, "extend", "busy season").Return(id, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"type": "extend", "reason": "busy season"}, ownerToken)

		var res resdto.IDResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(id, res.ID)
	})

	s.Run("error: 400 for an unknown type", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"type": "pause"}, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 409 when one is already pending", func() {
		s.mockCommands.EXPECT().RequestChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, partnership.ErrChangeRequestPending).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"type": "terminate"}, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already pending")
	})

	s.Run("error: 403 for consumers", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"type": "extend"}, consumerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "store owner account required")
	})
}

func (s *PartnershipHandlerTestSuite) TestRespondChange() {
	id := uuid.New()
	url := "/partnerships/change-requests/" + id.String() + "/respond"

	s.Run("success: approved extension reports the new end date", func() {
		s.mockCommands.EXPECT().RespondChange(gomock.Any(), s.principals.owner, id, "approve").Return(&commands.ChangeResult{
			RequestID:   id,
			Status:      partnership.ChangeApproved,
			Partnership: partnership.StatusExtended,
			EndDate:     time.Date(2026, 6, 9, 0, 0, 0, 0, time.UTC),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"decision": "approve"}, ownerToken)

		var res resdto.ChangeResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("approved", res.Status)
		s.Equal("extended", res.PartnershipStatus)
		s.Equal("2026-06-09", res.EndDate)
	})

	s.Run("error: 403 for the requester", func() {
		s.mockCommands.EXPECT().RespondChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, partnership.ErrNotCounterparty).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"decision": "reject"}, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "only the other store")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/partnerships/change-requests/x/respond", map[string]any{"decision": "reject"}, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *PartnershipHandlerTestSuite) TestIssueLanding() {
	s.Run("success: public without a token", func() {
		view := &queries.IssueLandingView{
			Slug:         "k3v9x2pq",
			ScannedStore: queries.StoreSummary{ID: uuid.New(), Name: "Morning Crumb"},
			TargetStore:  queries.StoreSummary{ID: uuid.New(), Name: "Corner Cafe"},
			Offer:        queries.PolicySummary{Description: "Free cookie", ExpectedValue: 2000, ExpectedDuration: "1_month"},
		}
		s.mockQueries.EXPECT().GetIssueLanding(gomock.Any(), "k3v9x2pq").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/issue/k3v9x2pq", nil, "")

		var res resdto.IssueLandingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("Corner Cafe", res.TargetStore.Name)
		s.Equal("Free cookie", res.Offer.Description)
	})

	s.Run("error: 404 for an inactive link", func() {
		s.mockQueries.EXPECT().GetIssueLanding(gomock.Any(), "gone0000").Return(nil, partnership.ErrInvalidOrInactivePartnership).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/issue/gone0000", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "partnership link is invalid or inactive")
	})
}
