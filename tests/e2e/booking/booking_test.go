//go:build e2e

package booking_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"stayledger/internal/handler/dto/response"
	"stayledger/tests/common/dbtest"
	"stayledger/tests/common/httptest"
	"stayledger/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL  = "/api/bookings"
	roomsURL     = "/api/rooms"
	clientsURL   = "/api/clients"
	availableURL = "/api/rooms/available"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) createBooking(clientID, roomID, checkIn, checkOut string) *nethttptest.ResponseRecorder {
	body := map[string]any{
		"client_id": clientID,
		"room_id":   roomID,
		"check_in":  checkIn,
		"check_out": checkOut,
	}
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, body)
}

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("book, overlap-reject, cancel, rebook", func() {
		t := s.T()

		clientID := dbtest.CreateTestClient(t, s.DB, "Ivan", "Ivanov", "1234567890")
		roomID := dbtest.CreateTestRoom(t, s.DB, "101", 2500)

		// Book three nights.
		rec := s.createBooking(clientID.String(), roomID.String(), "2024-03-01", "2024-03-04")
		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)
		require.Equal(t, int64(7500), created.TotalCents)
		require.Equal(t, "confirmed", created.Status)

		// An overlapping request for the same room must be refused.
		rec = s.createBooking(clientID.String(), roomID.String(), "2024-03-03", "2024-03-06")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "not available")

		// A back-to-back stay is fine.
		rec = s.createBooking(clientID.String(), roomID.String(), "2024-03-04", "2024-03-06")
		var second response.BookingResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &second)

		// Cancel the first booking and take its dates again.
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+created.ID.String()+"/cancel", nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = s.createBooking(clientID.String(), roomID.String(), "2024-03-01", "2024-03-04")
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)

		// Cancelling again must be refused.
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+created.ID.String()+"/cancel", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "already cancelled or completed")
	})

	s.Run("availability search reflects bookings", func() {
		t := s.T()

		clientID := dbtest.CreateTestClient(t, s.DB, "Anna", "Petrova", "4455667788")
		roomA := dbtest.CreateTestRoom(t, s.DB, "101", 2500)
		dbtest.CreateTestRoom(t, s.DB, "201", 5000)

		rec := s.createBooking(clientID.String(), roomA.String(), "2024-05-01", "2024-05-05")
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet,
			availableURL+"?check_in=2024-05-02&check_out=2024-05-03", nil)

		var free []response.RoomResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &free)
		require.Len(t, free, 1)
		require.Equal(t, "201", free[0].Number)
	})

	s.Run("completed booking admits no further transitions", func() {
		t := s.T()

		clientID := dbtest.CreateTestClient(t, s.DB, "Ivan", "Ivanov", "1234567890")
		roomID := dbtest.CreateTestRoom(t, s.DB, "101", 2500)

		rec := s.createBooking(clientID.String(), roomID.String(), "2024-06-01", "2024-06-03")
		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+created.ID.String()+"/complete", nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		// Completed is terminal: no further transitions.
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+created.ID.String()+"/cancel", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "")
	})

	s.Run("unknown room and client are rejected", func() {
		t := s.T()

		clientID := dbtest.CreateTestClient(t, s.DB, "Ivan", "Ivanov", "1234567890")

		rec := s.createBooking(clientID.String(), "00000000-0000-0000-0000-000000000001", "2024-03-01", "2024-03-04")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Room not found")

		roomID := dbtest.CreateTestRoom(t, s.DB, "101", 2500)
		rec = s.createBooking("00000000-0000-0000-0000-000000000002", roomID.String(), "2024-03-01", "2024-03-04")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Client not found")
	})
}

func (s *BookingSuite) TestRegistryEndpoints() {
	s.Run("rooms and clients can be registered over HTTP", func() {
		t := s.T()

		roomBody := map[string]any{
			"number":             "301",
			"room_type":          "suite",
			"nightly_rate_cents": 9000,
			"capacity":           4,
		}
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, roomBody)
		var room response.RoomResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &room)
		require.True(t, room.Lettable)

		// Duplicate room numbers are refused.
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL, roomBody)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "already registered")

		clientBody := map[string]any{
			"first_name":      "Maria",
			"last_name":       "Sidorova",
			"passport_number": "9900112233",
		}
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, clientsURL, clientBody)
		var client response.ClientResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &client)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, clientsURL, clientBody)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "already registered")
	})

	s.Run("withdrawn rooms cannot be booked", func() {
		t := s.T()

		clientID := dbtest.CreateTestClient(t, s.DB, "Ivan", "Ivanov", "1234567890")
		roomID := dbtest.CreateTestRoom(t, s.DB, "101", 2500)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL+"/"+roomID.String()+"/withdraw", nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = s.createBooking(clientID.String(), roomID.String(), "2024-03-01", "2024-03-04")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "not available")

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL+"/"+roomID.String()+"/restore", nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = s.createBooking(clientID.String(), roomID.String(), "2024-03-01", "2024-03-04")
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)
	})
}
