//go:build e2e

package coupon_test

import (
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"neighbiz/internal/handler/dto/request"
	"neighbiz/internal/handler/dto/response"
	"neighbiz/tests/common/authtest"
	"neighbiz/tests/common/dbtest"
	"neighbiz/tests/common/httptest"
	"neighbiz/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	issueURL = "/api/coupons/issue"
	useURL   = "/api/coupons/use"
	mineURL  = "/api/coupons/me"
)

type couponSuite struct {
	e2e.SharedSuite
}

func TestCouponSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(couponSuite))
}

// runningPair returns a cafe and a bakery in a partnership that started today.
func (s *couponSuite) runningPair() (e2e.Owner, e2e.Owner) {
	a := s.NewOwner("cafe_a", "01010000001", "cafe", "1_month")
	b := s.NewOwner("bakery_b", "01010000002", "bakery", "1_month")
	s.Partner(a, b)
	return a, b
}

func (s *couponSuite) slugOf(o e2e.Owner) string {
	page := s.MyPage(o)
	require.NotNil(s.T(), page.Slug)
	return *page.Slug
}

func (s *couponSuite) issue(token, slug string) response.IssuedCouponResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, issueURL, request.IssueCouponRequest{Slug: slug}, token)
	var res response.IssuedCouponResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return res
}

func (s *couponSuite) TestLanding() {
	s.Run("scanning a store's QR offers the partner's coupon", func() {
		t := s.T()
		a, b := s.runningPair()
		slug := s.slugOf(a)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/issue/"+slug, nil, "")
		var res response.IssueLandingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

		assert.Equal(t, a.StoreID, res.ScannedStore.ID)
		assert.Equal(t, b.StoreID, res.TargetStore.ID)
		assert.Equal(t, 3000, res.Offer.ExpectedValue)
	})

	s.Run("unknown slug", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/issue/nope", nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "INVALID_OR_INACTIVE_PARTNERSHIP", e2e.ErrorCode(w.Body.Bytes()))
	})
}

func (s *couponSuite) TestMyPage() {
	s.Run("QR code is stored once and served through a signed URL", func() {
		t := s.T()
		a, _ := s.runningPair()

		first := s.MyPage(a)
		require.NotNil(t, first.QRPayload)
		require.NotNil(t, first.QRImageURL)
		assert.Equal(t, s.Config.App.BaseURL+"/issue/"+*first.Slug, *first.QRPayload)
		assert.Equal(t, "active", first.Status)

		u, err := url.Parse(*first.QRImageURL)
		require.NoError(t, err)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, u.RequestURI(), nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		httptest.AssertHeaders(t, w, map[string]string{"Content-Type": "image/png"})
		assert.NotEmpty(t, w.Body.Bytes())

		second := s.MyPage(a)
		assert.Equal(t, *first.Slug, *second.Slug)
	})

	s.Run("store without partnership", func() {
		t := s.T()
		a := s.NewOwner("cafe_a", "01010000001", "cafe", "1_month")

		page := s.MyPage(a)

		assert.Equal(t, "none", page.Status)
		assert.Nil(t, page.Slug)
		assert.Nil(t, page.QRImageURL)
	})
}

func (s *couponSuite) TestIssue() {
	s.Run("first scan of the day issues, the next one returns the same coupon", func() {
		t := s.T()
		a, _ := s.runningPair()
		slug := s.slugOf(a)
		_, token := authtest.CreateConsumerWithToken(t, s.DB, s.JWT, "01020000001")

		first := s.issue(token, slug)
		assert.Equal(t, "active", first.Status)
		assert.False(t, first.AlreadyIssued)
		assert.Len(t, first.ShortCode, 8)
		assert.WithinDuration(t, first.IssuedAt.Add(s.Config.Coupon.Validity), first.ExpiredAt, time.Second)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, issueURL, request.IssueCouponRequest{Slug: slug}, token)
		var again response.IssuedCouponResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &again)
		assert.True(t, again.AlreadyIssued)
		assert.Equal(t, first.ID, again.ID)

		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "coupons", ""))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "coupon_event_logs", "coupon_id = $1 AND event_type = 'coupon_issued'", first.ID))
	})

	s.Run("a new day allows a new coupon", func() {
		t := s.T()
		a, _ := s.runningPair()
		slug := s.slugOf(a)
		_, token := authtest.CreateConsumerWithToken(t, s.DB, s.JWT, "01020000001")

		first := s.issue(token, slug)
		s.Clock.Add(24 * time.Hour)
		second := s.issue(token, slug)

		assert.NotEqual(t, first.ID, second.ID)
	})

	s.Run("concurrent scans issue exactly one coupon", func() {
		t := s.T()
		a, _ := s.runningPair()
		slug := s.slugOf(a)
		_, token := authtest.CreateConsumerWithToken(t, s.DB, s.JWT, "01020000001")

		const n = 5
		var wg sync.WaitGroup
		codes := make([]int, n)
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, issueURL, request.IssueCouponRequest{Slug: slug}, token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		created := 0
		for _, code := range codes {
			if code == http.StatusCreated {
				created++
			} else {
				assert.Equal(t, http.StatusOK, code)
			}
		}
		assert.Equal(t, 1, created)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "coupons", ""))
	})

	s.Run("monthly limit counts every consumer", func() {
		t := s.T()
		a := s.NewOwner("cafe_a", "01010000001", "cafe", "1_month")
		b := s.NewOwner("bakery_b", "01010000002", "bakery", "")
		limit := 1
		dbtest.CreateTestPolicy(t, s.DB, b.StoreID, 2000, "1_month", &limit)
		s.Partner(a, b)
		slug := s.slugOf(a)
		_, first := authtest.CreateConsumerWithToken(t, s.DB, s.JWT, "01020000001")
		_, second := authtest.CreateConsumerWithToken(t, s.DB, s.JWT, "01020000002")

		s.issue(first, slug)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, issueURL, request.IssueCouponRequest{Slug: slug}, second)

		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		assert.Equal(t, "MONTHLY_LIMIT_REACHED", e2e.ErrorCode(w.Body.Bytes()))
	})

	s.Run("partnership that has not started yet", func() {
		t := s.T()
		a := s.NewOwner("cafe_a", "01010000001", "cafe", "1_month")
		b := s.NewOwner("bakery_b", "01010000002", "bakery", "1_month")
		s.MustAccept(b, s.MustPropose(a, b))
		slug := s.slugOf(a)
		_, token := authtest.CreateConsumerWithToken(t, s.DB, s.JWT, "01020000001")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, issueURL, request.IssueCouponRequest{Slug: slug}, token)

		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
		assert.Equal(t, "INVALID_OR_INACTIVE_PARTNERSHIP", e2e.ErrorCode(w.Body.Bytes()))
	})

	s.Run("partner without active offer", func() {
		t := s.T()
		a, b := s.runningPair()
		slug := s.slugOf(a)
		_, err := s.DB.Exec(t.Context(), "UPDATE coupon_policies SET is_active = false WHERE store_id = $1", b.StoreID)
		require.NoError(t, err)
		_, token := authtest.CreateConsumerWithToken(t, s.DB, s.JWT, "01020000001")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, issueURL, request.IssueCouponRequest{Slug: slug}, token)

		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		assert.Equal(t, "NO_ACTIVE_POLICY", e2e.ErrorCode(w.Body.Bytes()))
	})
}

func (s *couponSuite) TestUse() {
	s.Run("coupon is used once", func() {
		t := s.T()
		a, b := s.runningPair()
		_, token := authtest.CreateConsumerWithToken(t, s.DB, s.JWT, "01020000001")
		issued := s.issue(token, s.slugOf(a))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, useURL, request.UseCouponRequest{ShortCode: issued.ShortCode}, token)
		var used response.UsedCouponResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &used)
		assert.Equal(t, "used", used.Status)
		require.NotNil(t, used.UsedAt)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, useURL, request.UseCouponRequest{ShortCode: issued.ShortCode}, token)
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "ALREADY_RESOLVED", e2e.ErrorCode(w.Body.Bytes()))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, mineURL, nil, token)
		var mine []response.CouponResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &mine)
		require.Len(t, mine, 1)
		assert.Equal(t, "used", mine[0].Status)
		assert.Equal(t, b.StoreID, mine[0].Store.ID)
	})

	s.Run("another consumer's code is not found", func() {
		t := s.T()
		a, _ := s.runningPair()
		_, owner := authtest.CreateConsumerWithToken(t, s.DB, s.JWT, "01020000001")
		_, other := authtest.CreateConsumerWithToken(t, s.DB, s.JWT, "01020000002")
		issued := s.issue(owner, s.slugOf(a))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, useURL, request.UseCouponRequest{ShortCode: issued.ShortCode}, other)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "COUPON_NOT_FOUND", e2e.ErrorCode(w.Body.Bytes()))
	})

	s.Run("malformed short code", func() {
		t := s.T()
		_, token := authtest.CreateConsumerWithToken(t, s.DB, s.JWT, "01020000001")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, useURL, request.UseCouponRequest{ShortCode: "abc"}, token)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_SHORT_CODE", e2e.ErrorCode(w.Body.Bytes()))
	})

	s.Run("expired coupon is recorded as expired and rejected", func() {
		t := s.T()
		a, _ := s.runningPair()
		_, token := authtest.CreateConsumerWithToken(t, s.DB, s.JWT, "01020000001")
		issued := s.issue(token, s.slugOf(a))

		s.Clock.Add(s.Config.Coupon.Validity + time.Minute)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, useURL, request.UseCouponRequest{ShortCode: issued.ShortCode}, token)

		require.Equal(t, http.StatusGone, w.Code, w.Body.String())
		assert.Equal(t, "COUPON_EXPIRED", e2e.ErrorCode(w.Body.Bytes()))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "coupons", "id = $1 AND status = 'expired'", issued.ID))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "coupon_event_logs", "coupon_id = $1 AND event_type = 'coupon_expired'", issued.ID))
	})
}

func (s *couponSuite) TestSweep() {
	s.Run("sweep expires overdue coupons and ends finished partnerships", func() {
		t := s.T()
		a, _ := s.runningPair()
		_, token := authtest.CreateConsumerWithToken(t, s.DB, s.JWT, "01020000001")
		overdue := s.issue(token, s.slugOf(a))
		dbtest.ShiftCouponExpiry(t, s.DB, -2*s.Config.Coupon.Validity)

		res, err := s.Maintenance.SweepExpired(t.Context())
		require.NoError(t, err)
		assert.EqualValues(t, 1, res.ExpiredCoupons)
		assert.EqualValues(t, 0, res.EndedPartnerships)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "coupons", "id = $1 AND status = 'expired'", overdue.ID))

		// past the one month term
		s.Clock.Add(40 * 24 * time.Hour)
		res, err = s.Maintenance.SweepExpired(t.Context())
		require.NoError(t, err)
		assert.EqualValues(t, 1, res.EndedPartnerships)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "partnerships", "status = 'ended'"))

		// idempotent
		res, err = s.Maintenance.SweepExpired(t.Context())
		require.NoError(t, err)
		assert.EqualValues(t, 0, res.ExpiredCoupons)
		assert.EqualValues(t, 0, res.EndedPartnerships)
	})
}
