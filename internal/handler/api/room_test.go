//go:build unit

package api_test

import (
	"net/http"
	"testing"

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

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoomCommands
	mockQueries  *queriesmock.MockRoomQueries
	handler      *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/rooms", s.handler.AddRoom)
	s.router.GET("/rooms", s.handler.ListRooms)
	s.router.GET("/rooms/available", s.handler.AvailableRooms)
	s.router.GET("/rooms/:id", s.handler.GetRoom)
	s.router.POST("/rooms/:id/withdraw", s.handler.WithdrawRoom)
	s.router.POST("/rooms/:id/restore", s.handler.RestoreRoom)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestAvailableRooms() {
	url := "/rooms/available?check_in=2024-03-01&check_out=2024-03-04"

	s.Run("success: returns free rooms", func() {
		views := []queries.RoomView{
			{ID: uuid.New(), Number: "101", NightlyRateCents: 2500},
			{ID: uuid.New(), Number: "201", NightlyRateCents: 5000},
		}
		s.mockQueries.EXPECT().Available(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal("101", body[0].Number)
	})

	s.Run("error: 400 when params missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/available", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on inverted range", func() {
		s.mockQueries.EXPECT().Available(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/rooms/available?check_in=2024-03-04&check_out=2024-03-01", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Check-out must be after check-in")
	})
}

func (s *RoomHandlerTestSuite) TestAddRoom() {
	url := "/rooms"
	body := map[string]any{
		"number":             "101",
		"room_type":          "standard",
		"nightly_rate_cents": 2500,
		"capacity":           2,
	}

	s.Run("error: 409 on duplicate number", func() {
		s.mockCommands.EXPECT().Add(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDuplicateRoomNumber).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already registered")
	})

	s.Run("error: 400 on missing fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"number": "101"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 422 on domain rejection", func() {
		s.mockCommands.EXPECT().Add(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrValidationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}

func (s *RoomHandlerTestSuite) TestWithdrawRestore() {
	id := uuid.New()

	s.Run("withdraw returns 204", func() {
		s.mockCommands.EXPECT().Withdraw(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms/"+id.String()+"/withdraw", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("restore returns 204", func() {
		s.mockCommands.EXPECT().Restore(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms/"+id.String()+"/restore", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("withdraw unknown room returns 404", func() {
		s.mockCommands.EXPECT().Withdraw(gomock.Any(), id).
			Return(errs.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms/"+id.String()+"/withdraw", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}
