//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"stayledger/internal/domain/booking"
	"stayledger/internal/handler/api"
	resdto "stayledger/internal/handler/dto/response"
	"stayledger/internal/pkg/errs"
	"stayledger/internal/usecase/queries"
	"stayledger/tests/common/httptest"
	commandsmock "stayledger/tests/mock/commands"
	queriesmock "stayledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.GET("/bookings", s.handler.ListBookings)
	s.router.GET("/bookings/:id", s.handler.GetBooking)
	s.router.POST("/bookings/:id/cancel", s.handler.CancelBooking)
	s.router.POST("/bookings/:id/complete", s.handler.CompleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) newEntity() *booking.Booking {
	stay, err := booking.NewStayRange(
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
	)
	s.Require().NoError(err)
	entity, err := booking.NewBooking(uuid.New(), uuid.New(), stay, 2500)
	s.Require().NoError(err)
	return entity
}

func (s *BookingHandlerTestSuite) validBody() map[string]any {
	return map[string]any{
		"client_id": uuid.New().String(),
		"room_id":   uuid.New().String(),
		"check_in":  "2024-03-01",
		"check_out": "2024-03-04",
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	s.Run("success: returns 201 with priced booking", func() {
		entity := s.newEntity()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entity, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.validBody())

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(entity.ID(), body.ID)
		s.Equal(int64(7500), body.TotalCents)
		s.Equal("confirmed", body.Status)
	})

	s.Run("error: 400 on missing fields", func() {
		body := s.validBody()
		delete(body, "room_id")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on malformed date", func() {
		body := s.validBody()
		body["check_in"] = "01-03-2024"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "inverted range",
				commandsError:  errs.ErrInvalidRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Check-out must be after check-in",
			},
			{
				name:           "room not found",
				commandsError:  errs.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "client not found",
				commandsError:  errs.ErrClientNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Client not found",
			},
			{
				name:           "room unavailable",
				commandsError:  errs.ErrRoomUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not available",
			},
			// The usecase tags repository causes with errs.Mark; the mapping
			// must recognize the sentinel through that wrapping too.
			{
				name:           "marked room not found",
				commandsError:  errs.Mark(errs.New("no row"), errs.ErrRoomNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "marked range error",
				commandsError:  errs.Mark(errs.New("check-out not after check-in"), errs.ErrInvalidRange),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Check-out must be after check-in",
			},
			{
				name:           "marked exclusion conflict",
				commandsError:  errs.Mark(errs.New("row conflict"), errs.ErrRoomUnavailable),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not available",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.validBody())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	id := uuid.New()

	s.Run("success: returns joined view", func() {
		view := &queries.BookingView{
			ID:         id,
			ClientName: "Ivan Ivanov",
			RoomNumber: "101",
			CheckIn:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			CheckOut:   time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			Nights:     3,
			TotalCents: 7500,
			Status:     "confirmed",
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Ivan Ivanov", body.ClientName)
		s.Equal("2024-03-01", body.CheckIn)
	})

	s.Run("error: 404 when unknown", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/cancel"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when already terminal", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).
			Return(errs.ErrBookingAlreadyTerminal).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already cancelled or completed")
	})

	s.Run("error: 409 when terminal sentinel is marked onto a cause", func() {
		cause := errs.Mark(errs.New("cannot transition"), errs.ErrBookingAlreadyTerminal)
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).Return(cause).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already cancelled or completed")
	})

	s.Run("error: 404 when unknown", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).
			Return(errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestCompleteBooking() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/complete"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when already terminal", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), id).
			Return(errs.ErrBookingAlreadyTerminal).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("success: returns all bookings", func() {
		views := []queries.BookingView{
			{ID: uuid.New(), Status: "confirmed"},
			{ID: uuid.New(), Status: "cancelled"},
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil)

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})
}
