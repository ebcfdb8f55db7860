//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/handler/api"
	resdto "booking-core/internal/handler/dto/response"
	"booking-core/internal/handler/httperr"
	"booking-core/internal/handler/middleware"
	"booking-core/internal/infra/memory"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/pkg/ptr"
	"booking-core/internal/testutil"
	"booking-core/internal/testutil/builder"
	"booking-core/internal/testutil/httptest"
	commandsmock "booking-core/internal/testutil/mock/commands"
	queriesmock "booking-core/internal/testutil/mock/queries"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockHolds    *commandsmock.MockHoldCommands
	mockBookings *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	tenantID     uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockHolds = commandsmock.NewMockHoldCommands(s.mockCtrl)
	s.mockBookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)

	clk := clock.NewMockClock(time.Date(2028, 6, 1, 9, 0, 0, 0, time.UTC))
	guard := commands.NewIdempotencyGuard(memory.NewStore(clk), clk)
	s.handler = api.NewBookingHandler(s.mockHolds, s.mockBookings, s.mockQueries, guard)
	s.tenantID = uuid.New()

	// Mock tenant middleware for testing
	tenantMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized", "code": httperr.CodeUnauthorized}})
			return
		}
		middleware.SetTenantID(c, s.tenantID)
		c.Next()
	}

	g := s.router.Group("/booking/bookings", tenantMiddleware)
	g.POST("/holds", s.handler.CreateHold)
	g.GET("/holds/:id", s.handler.GetHold)
	g.DELETE("/holds/:id", s.handler.ReleaseHold)
	g.POST("", s.handler.CreateBooking)
	g.GET("", s.handler.ListBookings)
	g.GET("/:id", s.handler.GetBooking)
	g.PATCH("/:id/reschedule", s.handler.Reschedule)
	g.PATCH("/:id/notes", s.handler.UpdateNotes)
	g.POST("/:id/cancel", s.handler.Cancel)

	// route without tenant resolution
	s.router.POST("/untenanted/holds", s.handler.CreateHold)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

type errorCase struct {
	name       string
	err        error
	expectCode int
	expectErr  string
}

func marked(target error) error {
	return errs.Mark(errors.New("underlying failure"), target)
}

// ================================================================================
// TestCreateHold
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateHold() {
	url := "/booking/bookings/holds"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildHoldRequestDTO()
	returnView := b.BuildHoldView()

	validation := []testCaseBooking{
		{name: "missing field: resourceIds", mutate: testutil.Field("resourceIds", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: startAt", mutate: testutil.Field("startAt", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: endAt", mutate: testutil.Field("endAt", nil), expectCode: http.StatusBadRequest},
		{name: "malformed startAt", mutate: testutil.Field("startAt", "tomorrow"), expectCode: http.StatusBadRequest},
		{name: "negative ttlSeconds", mutate: testutil.Field("ttlSeconds", -1), expectCode: http.StatusBadRequest},
		{name: "ttlSeconds omitted selects the default", mutate: testutil.Field("ttlSeconds", nil), expectCode: http.StatusOK},
		{name: "notes omitted", mutate: testutil.Field("notes", nil), expectCode: http.StatusOK},
	}

	s.Run("success: returns 200 with the hold envelope", func() {
		s.mockHolds.EXPECT().CreateHold(gomock.Any(), reqBody.ToInput(s.tenantID)).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.HoldEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.Hold)
		s.Equal(returnView.ID, body.Hold.ID)
		s.Equal("ACTIVE", body.Hold.Status)
		s.Equal(returnView.ExpiresAt, body.Hold.ExpiresAt)
		s.Empty(rec.Header().Get("Idempotent-Replayed"))
	})

	s.Run("validation", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusOK {
					s.mockHolds.EXPECT().CreateHold(gomock.Any(), gomock.Any()).Return(returnView, nil).Times(1)
				}
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error mapping", func() {
		cases := []errorCase{
			{name: "validation", err: marked(commands.ErrValidation), expectCode: http.StatusBadRequest, expectErr: httperr.CodeValidation},
			{name: "slot taken", err: marked(commands.ErrResourceUnavailable), expectCode: http.StatusConflict, expectErr: httperr.CodeResourceUnavailable},
			{name: "storage down", err: marked(commands.ErrServiceUnavailable), expectCode: http.StatusServiceUnavailable, expectErr: httperr.CodeServiceUnavailable},
			{name: "unexpected", err: errors.New("boom"), expectCode: http.StatusInternalServerError, expectErr: httperr.CodeInternal},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockHolds.EXPECT().CreateHold(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectErr)
			})
		}
	})

	s.Run("idempotent retry replays the first hold", func() {
		headers := map[string]string{"Idempotency-Key": "hold-key-1"}
		s.mockHolds.EXPECT().CreateHold(gomock.Any(), gomock.Any()).Return(returnView, nil).Times(1)
		s.mockQueries.EXPECT().GetHold(gomock.Any(), s.tenantID, returnView.ID).Return(returnView, nil).Times(1)

		first := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", headers)
		httptest.AssertSuccessResponse(s.T(), first, http.StatusOK, nil)

		second := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", headers)
		var body resdto.HoldEnvelope
		httptest.AssertSuccessResponse(s.T(), second, http.StatusOK, &body)
		httptest.AssertHeaders(s.T(), second, map[string]string{"Idempotent-Replayed": "true"})
		s.Equal(returnView.ID, body.Hold.ID)

		changed := testutil.DtoMap(s.T(), reqBody, testutil.Field("ttlSeconds", 30))
		conflict := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, changed, "bearer-token", headers)
		httptest.AssertErrorResponse(s.T(), conflict, http.StatusConflict, httperr.CodeIdempotencyConflict)
	})

	s.Run("oversized idempotency key", func() {
		headers := map[string]string{"Idempotency-Key": strings.Repeat("k", 256)}
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
	})

	s.Run("unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, httperr.CodeUnauthorized)
	})

	s.Run("unauthorized without tenant", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/untenanted/holds", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, httperr.CodeUnauthorized)
	})
}

// ================================================================================
// TestHolds
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetAndReleaseHold() {
	view := builder.NewBookingBuilder().BuildHoldView()
	url := "/booking/bookings/holds/" + view.ID.String()

	s.Run("get", func() {
		s.mockQueries.EXPECT().GetHold(gomock.Any(), s.tenantID, view.ID).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		var body resdto.HoldEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.Hold.ID)
	})

	s.Run("get unknown", func() {
		s.mockQueries.EXPECT().GetHold(gomock.Any(), s.tenantID, view.ID).Return(nil, marked(queries.ErrHoldNotFound)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, httperr.CodeHoldNotFound)
	})

	s.Run("release", func() {
		released := *view
		released.Status = booking.HoldStatusReleased.String()
		s.mockHolds.EXPECT().ReleaseHold(gomock.Any(), s.tenantID, view.ID).Return(&released, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		var body resdto.HoldEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("RELEASED", body.Hold.Status)
	})

	s.Run("malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking/bookings/holds/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
	})
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/booking/bookings"
	b := builder.NewBookingBuilder()
	holdID := uuid.New()
	returnView := b.BuildBookingView()
	returnView.HoldID = &holdID

	s.Run("success: confirm from hold", func() {
		want := commands.ConfirmFromHoldInput{
			TenantID:      s.tenantID,
			HoldID:        holdID,
			BookedByName:  b.BookedByName,
			BookedByEmail: b.BookedByEmail,
		}
		s.mockBookings.EXPECT().Create(gomock.Any(), want).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildConfirmRequestDTO(holdID), "bearer-token")
		var body resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.Booking.ID)
		s.Equal(holdID, *body.Booking.HoldID)
		s.Equal("CONFIRMED", body.Booking.Status)
	})

	s.Run("success: direct booking", func() {
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(commands.CreateDirectInput{})).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildDirectRequestDTO(), "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("request shape", func() {
		direct := b.BuildDirectRequestDTO()
		cases := []struct {
			name string
			body map[string]any
		}{
			{name: "holdId together with a direct interval", body: testutil.DtoMap(s.T(), direct, testutil.Field("holdId", holdID.String()))},
			{name: "direct without endAt", body: testutil.DtoMap(s.T(), direct, testutil.Field("endAt", nil))},
			{name: "direct without resourceIds", body: testutil.DtoMap(s.T(), direct, testutil.Field("resourceIds", nil))},
			{name: "neither form", body: testutil.DtoMap(s.T(), direct, testutil.Field("startAt", nil), testutil.Field("endAt", nil), testutil.Field("resourceIds", nil))},
			{name: "missing bookedByName", body: testutil.DtoMap(s.T(), direct, testutil.Field("bookedByName", nil))},
			{name: "missing bookedByEmail", body: testutil.DtoMap(s.T(), b.BuildConfirmRequestDTO(holdID), testutil.Field("bookedByEmail", nil))},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
			})
		}
	})

	s.Run("error mapping", func() {
		cases := []errorCase{
			{name: "hold expired", err: marked(commands.ErrHoldExpired), expectCode: http.StatusGone, expectErr: httperr.CodeHoldExpired},
			{name: "hold consumed", err: marked(commands.ErrHoldAlreadyConsumed), expectCode: http.StatusConflict, expectErr: httperr.CodeHoldAlreadyConsumed},
			{name: "hold unknown", err: marked(commands.ErrHoldNotFound), expectCode: http.StatusNotFound, expectErr: httperr.CodeHoldNotFound},
			{name: "slot taken", err: marked(commands.ErrResourceUnavailable), expectCode: http.StatusConflict, expectErr: httperr.CodeResourceUnavailable},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildConfirmRequestDTO(holdID), "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectErr)
			})
		}
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	list := &queries.BookingList{
		Items:    []*queries.BookingView{builder.NewBookingBuilder().BuildBookingView()},
		PageInfo: queries.PageInfo{Total: 11, Page: 2, PageSize: 10, HasNext: false},
	}

	s.Run("query is turned into a filter", func() {
		roomID := uuid.New()
		cancelled := booking.StatusCancelled
		want := queries.BookingFilter{
			Status:     &cancelled,
			ResourceID: &roomID,
			From:       ptr.To(time.Date(2028, 6, 16, 0, 0, 0, 0, time.UTC)),
			// a bare toDate covers the whole day
			To: ptr.To(time.Date(2028, 6, 18, 0, 0, 0, 0, time.UTC)),
		}
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), s.tenantID, want, 2, 10).Return(list, nil).Times(1)

		path := "/booking/bookings?status=cancelled&resourceId=" + roomID.String() +
			"&fromDate=2028-06-16&toDate=2028-06-17&page=2&pageSize=10"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "bearer-token")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Equal(resdto.PageInfo{Total: 11, Page: 2, PageSize: 10, HasNext: false}, body.PageInfo)
	})

	s.Run("no parameters", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), s.tenantID, queries.BookingFilter{}, 0, 0).Return(list, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking/bookings", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	for _, q := range []string{"status=PENDING", "fromDate=16-06-2028", "resourceId=abc", "page=-1", "pageSize=0x"} {
		s.Run("invalid "+q, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking/bookings?"+q, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
		})
	}

	s.Run("invalid range from the query layer", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), s.tenantID, gomock.Any(), 0, 0).
			Return(nil, queries.ErrInvalidQuery).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking/bookings?fromDate=2028-06-17&toDate=2028-06-01", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
	})
}

// ================================================================================
// TestGetBooking / TestReschedule / TestUpdateNotes / TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	view := builder.NewBookingBuilder().BuildBookingView()

	s.mockQueries.EXPECT().GetBooking(gomock.Any(), s.tenantID, view.ID).Return(view, nil).Times(1)
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking/bookings/"+view.ID.String(), nil, "bearer-token")
	var body resdto.BookingEnvelope
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(view.BookedByEmail, body.Booking.BookedByEmail)

	missing := uuid.New()
	s.mockQueries.EXPECT().GetBooking(gomock.Any(), s.tenantID, missing).Return(nil, marked(queries.ErrBookingNotFound)).Times(1)
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking/bookings/"+missing.String(), nil, "bearer-token")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound)
}

func (s *BookingHandlerTestSuite) TestReschedule() {
	b := builder.NewBookingBuilder()
	view := b.BuildBookingView()
	url := "/booking/bookings/" + view.ID.String() + "/reschedule"
	body := map[string]any{"startAt": "2028-06-16T14:00:00Z", "endAt": "2028-06-16T15:00:00Z"}

	s.Run("success", func() {
		want := commands.RescheduleInput{
			TenantID:  s.tenantID,
			BookingID: view.ID,
			StartAt:   time.Date(2028, 6, 16, 14, 0, 0, 0, time.UTC),
			EndAt:     time.Date(2028, 6, 16, 15, 0, 0, 0, time.UTC),
		}
		s.mockBookings.EXPECT().Reschedule(gomock.Any(), want).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("missing endAt", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"startAt": "2028-06-16T14:00:00Z"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
	})

	s.Run("error mapping", func() {
		cases := []errorCase{
			{name: "conflict", err: marked(commands.ErrResourceUnavailable), expectCode: http.StatusConflict, expectErr: httperr.CodeResourceUnavailable},
			{name: "cancelled booking", err: marked(commands.ErrBookingNotReschedulable), expectCode: http.StatusConflict, expectErr: httperr.CodeBookingNotReschedulable},
			{name: "unknown booking", err: marked(commands.ErrBookingNotFound), expectCode: http.StatusNotFound, expectErr: httperr.CodeNotFound},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockBookings.EXPECT().Reschedule(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectErr)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestUpdateNotes() {
	view := builder.NewBookingBuilder().BuildBookingView()
	url := "/booking/bookings/" + view.ID.String() + "/notes"

	s.Run("empty string clears the notes", func() {
		s.mockBookings.EXPECT().UpdateNotes(gomock.Any(), s.tenantID, view.ID, "").Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"notes": ""}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("notes field is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	view := builder.NewBookingBuilder().BuildBookingView()
	view.Status = booking.StatusCancelled.String()
	url := "/booking/bookings/" + view.ID.String() + "/cancel"

	s.Run("without a body", func() {
		s.mockBookings.EXPECT().Cancel(gomock.Any(), s.tenantID, view.ID, nil).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		var body resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CANCELLED", body.Booking.Status)
	})

	s.Run("with a reason", func() {
		s.mockBookings.EXPECT().Cancel(gomock.Any(), s.tenantID, view.ID, ptr.To("double booked")).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reason": "double booked"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("already cancelled", func() {
		s.mockBookings.EXPECT().Cancel(gomock.Any(), s.tenantID, view.ID, nil).Return(nil, marked(commands.ErrAlreadyCancelled)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, httperr.CodeAlreadyCancelled)
	})
}
