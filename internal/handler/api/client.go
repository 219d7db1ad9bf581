package api

import (
	"net/http"

	reqdto "stayledger/internal/handler/dto/request"
	resdto "stayledger/internal/handler/dto/response"
	"stayledger/internal/handler/httperr"
	"stayledger/internal/pkg/errs"
	"stayledger/internal/usecase/commands"
	"stayledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientHandler struct {
	clientCommands commands.ClientCommands
	clientQueries  queries.ClientQueries
}

func NewClientHandler(clientCommands commands.ClientCommands, clientQueries queries.ClientQueries) *ClientHandler {
	return &ClientHandler{
		clientCommands: clientCommands,
		clientQueries:  clientQueries,
	}
}

// @Summary Register client
// @Description Register a guest with a unique passport number
// @Tags clients
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterClientRequest true "Client request"
// @Success 201 {object} resdto.ClientResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /clients [post]
func (h *ClientHandler) RegisterClient(c *gin.Context) {
	var req reqdto.RegisterClientRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	entity, err := h.clientCommands.Register(c.Request.Context(), commands.RegisterClientInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PassportNumber: req.PassportNumber,
		Phone:          req.Phone,
		Email:          req.Email,
	})
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrDuplicatePassport):
			httperr.AbortWithError(c, http.StatusConflict, err, "Passport number already registered", nil)
		case errs.Is(err, errs.ErrValidationFailed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromClientView(queries.ClientView{
		ID:             entity.ID(),
		FirstName:      entity.FirstName(),
		LastName:       entity.LastName(),
		PassportNumber: entity.PassportNumber(),
		Phone:          entity.Phone(),
		Email:          entity.Email(),
	}))
}

// @Summary List clients
// @Description List every registered guest
// @Tags clients
// @Produce json
// @Success 200 {array} resdto.ClientResponse
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	views, err := h.clientQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClientViews(views))
}

// @Summary Get client
// @Description Get client by ID
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} resdto.ClientResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid client ID format", nil)
		return
	}

	view, err := h.clientQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errs.ErrClientNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Client not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromClientView(*view))
}
