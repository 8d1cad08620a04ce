//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"neighbiz/internal/domain/policy"
	"neighbiz/internal/handler/api"
	resdto "neighbiz/internal/handler/dto/response"
	"neighbiz/internal/usecase/commands"
	"neighbiz/tests/common/builder"
	"neighbiz/tests/common/httptest"
	"neighbiz/tests/common/testutil"
	commandsmock "neighbiz/tests/mock/commands"
	queriesmock "neighbiz/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PolicyHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPolicyCommands
	mockQueries  *queriesmock.MockPolicyQueries
	principals   *testPrincipals
}

func (s *PolicyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPolicyCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPolicyQueries(s.mockCtrl)
	s.principals = newTestPrincipals(s.mockCtrl)

	handler := api.NewPolicyHandler(s.mockCommands, s.mockQueries)
	owners := s.principals.owners()
	s.router.POST("/policies", chain(owners, handler.Create)...)
	s.router.GET("/policies/me", chain(owners, handler.GetMine)...)
	s.router.PATCH("/policies/me", chain(owners, handler.Update)...)
	s.router.DELETE("/policies/me", chain(owners, handler.Deactivate)...)
}

func (s *PolicyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPolicyHandlerSuite(t *testing.T) {
	suite.Run(t, new(PolicyHandlerTestSuite))
}

type testCasePolicy struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *PolicyHandlerTestSuite) TestCreate() {
	url := "/policies"
	b := builder.NewPolicyBuilder()
	reqBody := b.BuildCreateDTO()

	s.Run("success: returns 201 with the active policy", func() {
		s.mockCommands.EXPECT().CreatePolicy(gomock.Any(), s.principals.owner, b.BuildTerms()).Return(b.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetMine(gomock.Any(), s.principals.owner).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, ownerToken)

		var res resdto.PolicyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(b.ID, res.ID)
		s.Equal(4500, res.ExpectedValue)
	})

	missing := []testCasePolicy{
		{name: "missing field: description", mutate: testutil.Field("description", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: expected_value", mutate: testutil.Field("expected_value", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: expected_duration", mutate: testutil.Field("expected_duration", nil), expectCode: http.StatusBadRequest},
	}
	s.Run("error: 400 on binding errors", func() {
		for _, tc := range missing {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), ownerToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: domain validation is reported with its code", func() {
		s.mockCommands.EXPECT().CreatePolicy(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, policy.ErrDescriptionTooLong).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("description", strings.Repeat("a", 300)))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "too long")
	})

	s.Run("error: 409 when a policy already exists", func() {
		s.mockCommands.EXPECT().CreatePolicy(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, policy.ErrPolicyAlreadyExists).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already has an active coupon policy")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *PolicyHandlerTestSuite) TestUpdate() {
	url := "/policies/me"
	view := builder.NewPolicyBuilder().BuildView()

	s.Run("success: absent monthly_limit leaves it alone", func() {
		s.mockCommands.EXPECT().UpdatePolicy(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ any, p commands.PolicyPatch) (uuid.UUID, error) {
				s.Require().NotNil(p.ExpectedValue)
				s.Equal(5000, *p.ExpectedValue)
				s.Nil(p.MonthlyLimit)
				s.False(p.ClearMonthlyLimit)
				return view.ID, nil
			}).Times(1)
		s.mockQueries.EXPECT().GetMine(gomock.Any(), gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"expected_value": 5000}, ownerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: explicit null clears monthly_limit", func() {
		s.mockCommands.EXPECT().UpdatePolicy(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ any, p commands.PolicyPatch) (uuid.UUID, error) {
				s.True(p.ClearMonthlyLimit)
				return view.ID, nil
			}).Times(1)
		s.mockQueries.EXPECT().GetMine(gomock.Any(), gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"monthly_limit": nil}, ownerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 while locked", func() {
		s.mockCommands.EXPECT().UpdatePolicy(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, policy.ErrPolicyLocked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"monthly_limit": 10}, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cannot change")
	})
}

// ================================================================================
// TestDeactivate
// ================================================================================

func (s *PolicyHandlerTestSuite) TestDeactivate() {
	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().DeactivatePolicy(gomock.Any(), s.principals.owner).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/policies/me", nil, ownerToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 without a policy", func() {
		s.mockCommands.EXPECT().DeactivatePolicy(gomock.Any(), gomock.Any()).Return(policy.ErrPolicyNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/policies/me", nil, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}
