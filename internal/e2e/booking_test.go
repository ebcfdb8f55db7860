//go:build e2e

package e2e_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"booking-core/internal/e2e"
	resdto "booking-core/internal/handler/dto/response"
	"booking-core/internal/handler/httperr"
	"booking-core/internal/pkg/jwt"
	"booking-core/internal/testutil/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	resourcesURL = "/booking/resources"
	holdsURL     = "/booking/bookings/holds"
	bookingsURL  = "/booking/bookings"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) registerRoom(name string) uuid.UUID {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, resourcesURL,
		map[string]any{"type": "ROOM", "name": name, "capacity": 4}, s.Token)
	var res resdto.ResourceResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.Require().NotEqual(uuid.Nil, res.ID)
	return res.ID
}

func (s *BookingSuite) hold(resourceID uuid.UUID, start, end string, ttl int) (*resdto.HoldResponse, int) {
	body := map[string]any{"resourceIds": []uuid.UUID{resourceID}, "startAt": start, "endAt": end}
	if ttl > 0 {
		body["ttlSeconds"] = ttl
	}
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, holdsURL, body, s.Token)
	if rec.Code != http.StatusOK {
		return nil, rec.Code
	}
	var env resdto.HoldEnvelope
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &env)
	return env.Hold, rec.Code
}

func (s *BookingSuite) direct(resourceID uuid.UUID, start, end string) *resdto.BookingResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, map[string]any{
		"resourceIds":   []uuid.UUID{resourceID},
		"startAt":       start,
		"endAt":         end,
		"bookedByName":  "Walk-in",
		"bookedByEmail": "walkin@example.com",
	}, s.Token)
	var env resdto.BookingEnvelope
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &env)
	s.Require().NotNil(env.Booking)
	return env.Booking
}

func (s *BookingSuite) getBooking(id uuid.UUID) *resdto.BookingResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/"+id.String(), nil, s.Token)
	var env resdto.BookingEnvelope
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &env)
	return env.Booking
}

func (s *BookingSuite) list(query string) resdto.BookingListResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+query, nil, s.Token)
	var out resdto.BookingListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &out)
	return out
}

func ids(items []*resdto.BookingResponse) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(items))
	for _, b := range items {
		out = append(out, b.ID)
	}
	return out
}

// =============================================================================
// TestLifecycle - hold, confirm, direct create, conflict, reschedule, cancel
// =============================================================================

func (s *BookingSuite) TestLifecycle() {
	t := s.T()
	r1 := s.registerRoom("R1")

	// 1. hold
	before := time.Now()
	hold, code := s.hold(r1, "2028-06-16T10:00:00Z", "2028-06-16T11:00:00Z", 600)
	require.Equal(t, http.StatusOK, code)
	s.Equal("ACTIVE", hold.Status)
	s.Equal(s.TenantID, hold.TenantID)
	s.Equal([]uuid.UUID{r1}, hold.ResourceIDs)
	s.WithinDuration(before.Add(600*time.Second), hold.ExpiresAt, 5*time.Second)

	// 2. confirm
	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, map[string]any{
		"holdId":        hold.ID,
		"bookedByName":  "E2E Customer",
		"bookedByEmail": "e2e@example.com",
	}, s.Token)
	var confirmed resdto.BookingEnvelope
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &confirmed)
	s.Equal("CONFIRMED", confirmed.Booking.Status)
	s.Require().NotNil(confirmed.Booking.HoldID)
	s.Equal(hold.ID, *confirmed.Booking.HoldID)
	s.Equal("E2E Customer", confirmed.Booking.BookedByName)

	// 3. direct create
	direct := s.direct(r1, "2028-06-20T08:00:00Z", "2028-06-20T09:00:00Z")
	s.Equal("CONFIRMED", direct.Status)
	s.Nil(direct.HoldID)

	// 4. overlapping hold
	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, holdsURL, map[string]any{
		"resourceIds": []uuid.UUID{r1},
		"startAt":     "2028-06-16T10:30:00Z",
		"endAt":       "2028-06-16T11:30:00Z",
	}, s.Token)
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, httperr.CodeResourceUnavailable)

	// 5. reschedule frees the old slot
	rec = httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingsURL+"/"+confirmed.Booking.ID.String()+"/reschedule", map[string]any{
		"startAt": "2028-07-01T10:00:00Z",
		"endAt":   "2028-07-01T11:00:00Z",
	}, s.Token)
	var moved resdto.BookingEnvelope
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &moved)
	want := time.Date(2028, 7, 1, 10, 0, 0, 0, time.UTC)
	s.True(want.Equal(moved.Booking.StartAt))
	s.True(want.Equal(s.getBooking(confirmed.Booking.ID).StartAt))

	_, code = s.hold(r1, "2028-06-16T10:00:00Z", "2028-06-16T11:00:00Z", 0)
	s.Equal(http.StatusOK, code, "old slot should be bookable again")

	// 6. cancel
	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+direct.ID.String()+"/cancel",
		map[string]any{"reason": "Changed plans"}, s.Token)
	var cancelled resdto.BookingEnvelope
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &cancelled)
	s.Equal("CANCELLED", cancelled.Booking.Status)
	s.Require().NotNil(cancelled.Booking.CancelledReason)
	s.Equal("Changed plans", *cancelled.Booking.CancelledReason)

	s.Contains(ids(s.list("?status=CANCELLED").Items), direct.ID)
	s.NotContains(ids(s.list("?status=CONFIRMED").Items), direct.ID)
	s.Contains(ids(s.list("?status=CONFIRMED").Items), confirmed.Booking.ID)

	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+direct.ID.String()+"/cancel", nil, s.Token)
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, httperr.CodeAlreadyCancelled)

	// cancel frees capacity
	again := s.direct(r1, "2028-06-20T08:00:00Z", "2028-06-20T09:00:00Z")
	s.NotEqual(direct.ID, again.ID)
}

// =============================================================================
// Properties
// =============================================================================

func (s *BookingSuite) TestConcurrentHoldsOnSameSlot() {
	r1 := s.registerRoom("R1")
	const callers = 16

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		codes = map[int]int{}
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, holdsURL, map[string]any{
				"resourceIds": []uuid.UUID{r1},
				"startAt":     "2028-06-16T10:00:00Z",
				"endAt":       "2028-06-16T11:00:00Z",
			}, s.Token)
			mu.Lock()
			codes[rec.Code]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	s.Equal(map[int]int{http.StatusOK: 1, http.StatusConflict: callers - 1}, codes)
}

func (s *BookingSuite) TestHoldExpiry() {
	t := s.T()
	r1 := s.registerRoom("R1")

	hold, code := s.hold(r1, "2028-06-16T10:00:00Z", "2028-06-16T11:00:00Z", 1)
	require.Equal(t, http.StatusOK, code)
	time.Sleep(1500 * time.Millisecond)

	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, map[string]any{
		"holdId": hold.ID, "bookedByName": "Late", "bookedByEmail": "late@example.com",
	}, s.Token)
	httptest.AssertErrorResponse(t, rec, http.StatusGone, httperr.CodeHoldExpired)

	s.direct(r1, "2028-06-16T10:00:00Z", "2028-06-16T11:00:00Z")
}

func (s *BookingSuite) TestRescheduleConflictLeavesBookingUnchanged() {
	t := s.T()
	r1 := s.registerRoom("R1")
	b := s.direct(r1, "2028-06-16T09:00:00Z", "2028-06-16T10:00:00Z")
	s.direct(r1, "2028-06-16T12:00:00Z", "2028-06-16T13:00:00Z")

	rec := httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingsURL+"/"+b.ID.String()+"/reschedule", map[string]any{
		"startAt": "2028-06-16T12:30:00Z",
		"endAt":   "2028-06-16T13:30:00Z",
	}, s.Token)
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, httperr.CodeResourceUnavailable)

	got := s.getBooking(b.ID)
	s.True(b.StartAt.Equal(got.StartAt))
	s.Equal(b.Version, got.Version)
}

func (s *BookingSuite) TestMultiResourceHoldIsAllOrNothing() {
	t := s.T()
	r1, r2 := s.registerRoom("R1"), s.registerRoom("R2")
	s.direct(r2, "2028-06-16T10:00:00Z", "2028-06-16T11:00:00Z")

	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, holdsURL, map[string]any{
		"resourceIds": []uuid.UUID{r1, r2},
		"startAt":     "2028-06-16T10:00:00Z",
		"endAt":       "2028-06-16T11:00:00Z",
	}, s.Token)
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, httperr.CodeResourceUnavailable)

	_, code := s.hold(r1, "2028-06-16T10:00:00Z", "2028-06-16T11:00:00Z", 0)
	s.Equal(http.StatusOK, code, "R1 must not keep a partial allocation")
}

func (s *BookingSuite) TestIdempotencyKeyReplaysHold() {
	t := s.T()
	r1 := s.registerRoom("R1")
	body := map[string]any{
		"resourceIds": []uuid.UUID{r1},
		"startAt":     "2028-06-16T10:00:00Z",
		"endAt":       "2028-06-16T11:00:00Z",
	}
	headers := map[string]string{"Idempotency-Key": "retry-after-timeout"}

	first := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, holdsURL, body, s.Token, headers)
	var a resdto.HoldEnvelope
	httptest.AssertSuccessResponse(t, first, http.StatusOK, &a)

	second := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, holdsURL, body, s.Token, headers)
	var b resdto.HoldEnvelope
	httptest.AssertSuccessResponse(t, second, http.StatusOK, &b)
	httptest.AssertHeaders(t, second, map[string]string{"Idempotent-Replayed": "true"})
	s.Equal(a.Hold.ID, b.Hold.ID)
}

func (s *BookingSuite) TestTenantIsolation() {
	t := s.T()
	r1 := s.registerRoom("R1")
	b := s.direct(r1, "2028-06-16T09:00:00Z", "2028-06-16T10:00:00Z")

	other, err := jwt.NewService(s.Config.JWT.Secret).GenerateToken(uuid.New(), "intruder", time.Hour)
	require.NoError(t, err)

	rec := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+b.ID.String(), nil, other)
	httptest.AssertErrorResponse(t, rec, http.StatusNotFound, httperr.CodeNotFound)

	rec = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, httperr.CodeUnauthorized)
}
