//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"time"

	"neighbiz/internal/handler/dto/request"
	"neighbiz/internal/handler/dto/response"
	"neighbiz/internal/pkg/clock"
	"neighbiz/internal/usecase/queries"
	"neighbiz/tests/common/authtest"
	"neighbiz/tests/common/dbtest"
	"neighbiz/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Owner is a signed-in owner fixture.
type Owner struct {
	dbtest.OwnerFixture
	Token string
}

// NewOwner inserts an owner with a store and, when duration is set, an active policy.
func (s *SharedSuite) NewOwner(username, phone, category, duration string) Owner {
	t := s.T()
	f, token := authtest.CreateAndLoginOwner(t, s.DB, s.Router, username, phone, category)
	if duration != "" {
		dbtest.CreateTestPolicy(t, s.DB, f.StoreID, 3000, duration, nil)
	}
	return Owner{OwnerFixture: f, Token: token}
}

// MustPropose creates a pending proposal and returns its ID.
func (s *SharedSuite) MustPropose(from Owner, to Owner) uuid.UUID {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/proposals",
		request.CreateProposalRequest{RecipientStoreID: to.StoreID}, from.Token)
	var res response.ProposalResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	require.Equal(t, "pending", res.Status)
	return res.ID
}

// MustAccept approves a proposal as the recipient and returns the partnership ID.
func (s *SharedSuite) MustAccept(recipient Owner, proposalID uuid.UUID) uuid.UUID {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/proposals/"+proposalID.String()+"/respond",
		request.DecisionRequest{Decision: "approve"}, recipient.Token)
	var res response.RespondProposalResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.Equal(t, "accepted", res.Status)
	require.NotNil(t, res.PartnershipID)
	return *res.PartnershipID
}

// Partner links two owners and moves the clock to the first running day.
func (s *SharedSuite) Partner(a, b Owner) uuid.UUID {
	id := s.MustAccept(b, s.MustPropose(a, b))
	s.Clock.Add(24 * time.Hour)
	return id
}

func (s *SharedSuite) MyPage(o Owner) response.MyPageResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/partnerships/mypage", nil, o.Token)
	var res response.MyPageResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return res
}

func (s *SharedSuite) Today() time.Time {
	return clock.DateIn(s.Clock.Now(), s.Config.App.Location())
}

func (s *SharedSuite) FormatDay(d time.Time) string {
	return d.Format(queries.DateLayout)
}

// ErrorCode extracts the machine readable code of an error response.
func ErrorCode(body []byte) string {
	var res struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return ""
	}
	return res.Error.Code
}
