package api

import (
	"net/http"

	reqdto "salon-broker/internal/handler/dto/request"
	resdto "salon-broker/internal/handler/dto/response"
	"salon-broker/internal/handler/httperr"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/usecase/commands"
	"salon-broker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// ClientHandler serves the client decision page and checkout. The hour and
// checkout tokens in the link are the client's credential.
type ClientHandler struct {
	reservations commands.ReservationCommands
	bookings     commands.BookingCommands
	ledger       commands.SlotLedger
	decisions    queries.DecisionQueries
}

func NewClientHandler(
	reservations commands.ReservationCommands,
	bookings commands.BookingCommands,
	ledger commands.SlotLedger,
	decisions queries.DecisionQueries,
) *ClientHandler {
	return &ClientHandler{
		reservations: reservations,
		bookings:     bookings,
		ledger:       ledger,
		decisions:    decisions,
	}
}

// @Summary Get decision page
// @Description Offered times with live availability for a decision link
// @Tags client
// @Produce json
// @Param id path int true "Service request ID"
// @Param token query string true "Hour token"
// @Success 200 {object} queries.DecisionView
// @Failure 401 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /api/requests/{id}/decision [get]
func (h *ClientHandler) GetDecision(c *gin.Context) {
	requestID, ok := requestIDParam(c)
	if !ok {
		return
	}
	token := c.Query("token")
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrHoldInvalid, "Missing token", nil)
		return
	}

	view, err := h.decisions.GetDecisionView(c.Request.Context(), requestID, token)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Check slot availability
// @Tags client
// @Produce json
// @Param id path int true "Service request ID"
// @Param option path string true "Time option"
// @Success 200 {object} resdto.AvailabilityResponse
// @Router /api/requests/{id}/slots/{option}/availability [get]
func (h *ClientHandler) CheckAvailability(c *gin.Context) {
	requestID, ok := requestIDParam(c)
	if !ok {
		return
	}
	option := c.Param("option")

	av, err := h.ledger.CheckAvailability(c.Request.Context(), requestID, option)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		RequestID:  requestID,
		TimeOption: option,
		Available:  av.Available,
		Reason:     av.Reason,
	})
}

// @Summary Select a time
// @Description Hold the chosen slot and open a checkout
// @Tags client
// @Accept json
// @Produce json
// @Param id path int true "Service request ID"
// @Param request body reqdto.SelectTimeRequest true "Selection"
// @Success 201 {object} resdto.CheckoutSessionResponse
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/requests/{id}/select [post]
func (h *ClientHandler) SelectTime(c *gin.Context) {
	requestID, ok := requestIDParam(c)
	if !ok {
		return
	}
	var req reqdto.SelectTimeRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.reservations.SelectTime(c.Request.Context(), requestID, req.HourToken, req.TimeOption)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutSession(session))
}

// @Summary Cancel a request
// @Description Withdraw a request that has not been paid for. Any token from the client's links is accepted.
// @Tags client
// @Accept json
// @Param id path int true "Service request ID"
// @Param request body reqdto.ClientTokenRequest true "Client token"
// @Success 204
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/requests/{id}/cancel [post]
func (h *ClientHandler) CancelRequest(c *gin.Context) {
	requestID, ok := requestIDParam(c)
	if !ok {
		return
	}
	var req reqdto.ClientTokenRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.reservations.CancelRequest(c.Request.Context(), requestID, req.Token); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Ask for other times
// @Description Tell the salon none of the offered times work and suggest new ones
// @Tags client
// @Accept json
// @Param id path int true "Service request ID"
// @Param request body reqdto.RescheduleRequest true "Preferred dates"
// @Success 204
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/requests/{id}/reschedule [post]
func (h *ClientHandler) RequestReschedule(c *gin.Context) {
	requestID, ok := requestIDParam(c)
	if !ok {
		return
	}
	var req reqdto.RescheduleRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.reservations.RequestReschedule(c.Request.Context(), requestID, req.Token, req.PreferredDates); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Abandon checkout
// @Tags client
// @Param token path string true "Checkout token"
// @Success 204
// @Failure 401 {object} httperr.Response
// @Router /api/checkout/{token}/abandon [post]
func (h *ClientHandler) Abandon(c *gin.Context) {
	if err := h.reservations.Abandon(c.Request.Context(), c.Param("token")); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Accept alternative time
// @Description Move a paid booking to the newly selected time without a new charge
// @Tags client
// @Produce json
// @Param token path string true "Checkout token"
// @Success 200 {object} resdto.AcceptedAlternativeResponse
// @Failure 404 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /api/checkout/{token}/accept-alternative [post]
func (h *ClientHandler) AcceptAlternative(c *gin.Context) {
	accepted, err := h.bookings.AcceptAlternative(c.Request.Context(), c.Param("token"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAcceptedAlternative(accepted))
}
