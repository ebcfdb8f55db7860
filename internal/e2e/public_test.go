//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"
	"time"

	"booking-core/internal/e2e"
	resdto "booking-core/internal/handler/dto/response"
	"booking-core/internal/handler/httperr"
	"booking-core/internal/testutil/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const publicURL = "/public/booking/pages/acme-clinic"

type PublicPageSuite struct {
	e2e.SharedSuite
}

func TestPublicPageSuite(t *testing.T) {
	suite.Run(t, new(PublicPageSuite))
}

// setupPage publishes acme-clinic (UTC, Fridays 09:00-12:00) with a one hour service on one room.
func (s *PublicPageSuite) setupPage() (serviceID uuid.UUID) {
	t := s.T()

	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/booking/resources",
		map[string]any{"type": "ROOM", "name": "Room 1", "capacity": 1}, s.Token)
	var room resdto.ResourceResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &room)

	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, "/booking/pages", map[string]any{
		"slug":     "acme-clinic",
		"title":    "Acme Clinic",
		"timezone": "UTC",
		"workingHours": map[string]any{
			"fri": []map[string]string{{"start": "09:00", "end": "12:00"}},
		},
	}, s.Token)
	var page resdto.PageEnvelope
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &page)

	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, "/booking/pages/"+page.Page.ID.String()+"/services", map[string]any{
		"name":            "Consultation",
		"durationMinutes": 60,
		"resourceIds":     []uuid.UUID{room.ID},
	}, s.Token)
	var svc resdto.ServiceEnvelope
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &svc)
	return svc.Service.ID
}

func (s *PublicPageSuite) availability(serviceID uuid.UUID) resdto.AvailabilityResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
		publicURL+"/availability?serviceId="+serviceID.String()+"&day=2028-06-16", nil, "")
	var out resdto.AvailabilityResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &out)
	return out
}

func (s *PublicPageSuite) TestSelfServiceBooking() {
	t := s.T()
	serviceID := s.setupPage()

	rec := httptest.PerformRequest(t, s.Router, http.MethodGet, publicURL, nil, "")
	var page resdto.PageEnvelope
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &page)
	s.Require().Len(page.Page.Services, 1)

	slots := s.availability(serviceID)
	s.Equal("UTC", slots.Timezone)
	s.Equal([]string{"2028-06-16"}, slots.AvailableDays)
	s.Require().NotEmpty(slots.TimeSlots)
	nine := time.Date(2028, 6, 16, 9, 0, 0, 0, time.UTC)
	s.True(nine.Equal(slots.TimeSlots[0].Start))

	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, publicURL+"/holds",
		map[string]any{"serviceId": serviceID, "startAt": "2028-06-16T09:00:00Z"}, "")
	var hold resdto.HoldEnvelope
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &hold)
	s.Equal("ACTIVE", hold.Hold.Status)

	for _, slot := range s.availability(serviceID).TimeSlots {
		s.False(slot.Start.Before(nine.Add(time.Hour)), "held hour still offered at %s", slot.Start)
	}

	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, publicURL+"/holds",
		map[string]any{"serviceId": serviceID, "startAt": "2028-06-16T09:30:00Z"}, "")
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, httperr.CodeResourceUnavailable)

	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, publicURL+"/confirm", map[string]any{
		"holdId": hold.Hold.ID, "name": "Ada Lovelace", "email": "ada@example.com",
	}, "")
	var booking resdto.BookingEnvelope
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &booking)
	s.Equal("CONFIRMED", booking.Booking.Status)
	s.Equal("ada@example.com", booking.Booking.BookedByEmail)

	// the booking shows up on the tenant side
	rec = httptest.PerformRequest(t, s.Router, http.MethodGet, "/booking/bookings/"+booking.Booking.ID.String(), nil, s.Token)
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
}

func (s *PublicPageSuite) TestOutsideWorkingHours() {
	serviceID := s.setupPage()

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, publicURL+"/holds",
		map[string]any{"serviceId": serviceID, "startAt": "2028-06-16T11:30:00Z"}, "")
	s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/public/booking/pages/unknown-slug", nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound)
}
