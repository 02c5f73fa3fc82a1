package api

import (
	"net/http"
	"strconv"

	reqdto "salon-broker/internal/handler/dto/request"
	resdto "salon-broker/internal/handler/dto/response"
	"salon-broker/internal/handler/httperr"
	"salon-broker/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type IntakeHandler struct {
	cmds commands.IntakeCommands
}

func NewIntakeHandler(cmds commands.IntakeCommands) *IntakeHandler {
	return &IntakeHandler{cmds: cmds}
}

// @Summary Create service request
// @Description Open a service request from a referral link
// @Tags service-requests
// @Accept json
// @Produce json
// @Param request body reqdto.CreateServiceRequestRequest true "Service request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/service-requests [post]
func (h *IntakeHandler) Create(c *gin.Context) {
	var req reqdto.CreateServiceRequestRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.cmds.CreateServiceRequest(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Header("Location", "/api/service-requests/"+strconv.FormatInt(id, 10))
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}
