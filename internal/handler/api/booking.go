package api

import (
	"context"
	"net/http"

	reqdto "stayledger/internal/handler/dto/request"
	resdto "stayledger/internal/handler/dto/response"
	"stayledger/internal/handler/httperr"
	"stayledger/internal/handler/middleware"
	"stayledger/internal/pkg/errs"
	"stayledger/internal/usecase/commands"
	"stayledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a room for a client over a date range
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must use YYYY-MM-DD format", nil)
		return
	}

	entity, err := h.bookingCommands.Create(c.Request.Context(), commands.CreateBookingInput{
		ClientID: req.ClientID,
		RoomID:   req.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	if err != nil {
		status := bookingErrorStatus(err)
		middleware.ObserveBooking("create", status)
		httperr.AbortWithError(c, status, err, bookingErrorMessage(err), nil)
		return
	}

	middleware.ObserveBooking("create", http.StatusCreated)
	c.JSON(http.StatusCreated, resdto.FromBookingEntity(entity))
}

// @Summary Get booking
// @Description Get booking by ID with client and room details
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errs.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List every booking on record
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	views, err := h.bookingQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.BookingResponse, len(views))
	for i := range views {
		response[i] = resdto.FromBookingView(&views[i])
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Cancel booking
// @Description Cancel a confirmed booking, freeing its dates
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.transition(c, "cancel", h.bookingCommands.Cancel)
}

// @Summary Complete booking
// @Description Mark a confirmed booking as completed after checkout
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/complete [post]
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	h.transition(c, "complete", h.bookingCommands.Complete)
}

func (h *BookingHandler) transition(c *gin.Context, operation string, cmd func(ctx context.Context, id uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	if err := cmd(c.Request.Context(), id); err != nil {
		status := bookingErrorStatus(err)
		middleware.ObserveBooking(operation, status)
		httperr.AbortWithError(c, status, err, bookingErrorMessage(err), nil)
		return
	}

	middleware.ObserveBooking(operation, http.StatusNoContent)
	c.Status(http.StatusNoContent)
}

func bookingErrorStatus(err error) int {
	switch {
	case errs.Is(err, errs.ErrInvalidRange):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrRoomNotFound),
		errs.Is(err, errs.ErrClientNotFound),
		errs.Is(err, errs.ErrBookingNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrRoomUnavailable),
		errs.Is(err, errs.ErrBookingAlreadyTerminal):
		return http.StatusConflict
	case errs.Is(err, errs.ErrValidationFailed):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func bookingErrorMessage(err error) string {
	switch {
	case errs.Is(err, errs.ErrInvalidRange):
		return "Check-out must be after check-in"
	case errs.Is(err, errs.ErrRoomNotFound):
		return "Room not found"
	case errs.Is(err, errs.ErrClientNotFound):
		return "Client not found"
	case errs.Is(err, errs.ErrBookingNotFound):
		return "Booking not found"
	case errs.Is(err, errs.ErrRoomUnavailable):
		return "Room is not available for the requested dates"
	case errs.Is(err, errs.ErrBookingAlreadyTerminal):
		return "Booking is already cancelled or completed"
	case errs.Is(err, errs.ErrValidationFailed):
		return "Domain validation failed"
	default:
		return "Internal server error"
	}
}
