package api

import (
	"context"
	"net/http"
	"time"

	reqdto "stayledger/internal/handler/dto/request"
	resdto "stayledger/internal/handler/dto/response"
	"stayledger/internal/handler/httperr"
	"stayledger/internal/pkg/errs"
	"stayledger/internal/usecase/commands"
	"stayledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomCommands commands.RoomCommands
	roomQueries  queries.RoomQueries
}

func NewRoomHandler(roomCommands commands.RoomCommands, roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomCommands: roomCommands,
		roomQueries:  roomQueries,
	}
}

// @Summary Add room
// @Description Register a room in the inventory
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRoomRequest true "Room request"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /rooms [post]
func (h *RoomHandler) AddRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	entity, err := h.roomCommands.Add(c.Request.Context(), commands.AddRoomInput{
		Number:           req.Number,
		RoomType:         req.RoomType,
		NightlyRateCents: req.NightlyRateCents,
		Capacity:         req.Capacity,
		Description:      req.Description,
	})
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrDuplicateRoomNumber):
			httperr.AbortWithError(c, http.StatusConflict, err, "Room number already registered", nil)
		case errs.Is(err, errs.ErrValidationFailed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomView(queries.RoomView{
		ID:               entity.ID(),
		Number:           entity.Number(),
		RoomType:         entity.RoomType(),
		NightlyRateCents: entity.NightlyRateCents(),
		Capacity:         entity.Capacity(),
		Description:      entity.Description(),
		Lettable:         entity.Lettable(),
	}))
}

// @Summary List rooms
// @Description List the full room inventory
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	views, err := h.roomQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Get room
// @Description Get room by ID
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}

	view, err := h.roomQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errs.ErrRoomNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(*view))
}

// @Summary Search available rooms
// @Description List rooms free over a date range
// @Tags rooms
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms/available [get]
func (h *RoomHandler) AvailableRooms(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "check_in and check_out query parameters are required", nil)
		return
	}

	checkIn, err := time.Parse(time.DateOnly, q.CheckIn)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must use YYYY-MM-DD format", nil)
		return
	}
	checkOut, err := time.Parse(time.DateOnly, q.CheckOut)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must use YYYY-MM-DD format", nil)
		return
	}

	views, err := h.roomQueries.Available(c.Request.Context(), checkIn, checkOut)
	if err != nil {
		if errs.Is(err, errs.ErrInvalidRange) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-out must be after check-in", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Withdraw room
// @Description Take a room out of letting; existing bookings are untouched
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/withdraw [post]
func (h *RoomHandler) WithdrawRoom(c *gin.Context) {
	h.setLettable(c, h.roomCommands.Withdraw)
}

// @Summary Restore room
// @Description Return a withdrawn room to letting
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/restore [post]
func (h *RoomHandler) RestoreRoom(c *gin.Context) {
	h.setLettable(c, h.roomCommands.Restore)
}

func (h *RoomHandler) setLettable(c *gin.Context, cmd func(ctx context.Context, id uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}

	if err := cmd(c.Request.Context(), id); err != nil {
		if errs.Is(err, errs.ErrRoomNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
