package api

import (
	"net/http"
	"strconv"

	"salon-broker/internal/handler/httperr"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EarningsHandler struct {
	queries queries.EarningsQueries
}

func NewEarningsHandler(q queries.EarningsQueries) *EarningsHandler {
	return &EarningsHandler{queries: q}
}

// @Summary Referrer earnings
// @Description Running total and credit history, newest first
// @Tags referrer
// @Produce json
// @Security BearerAuth
// @Param id path string true "Referrer ID"
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} queries.ReferrerEarningsView
// @Failure 403 {object} httperr.Response
// @Router /api/referrers/{id}/earnings [get]
func (h *EarningsHandler) GetEarnings(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	referrerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrDomainValidation), "Invalid limit", nil)
			return
		}
		limit = n
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	view, err := h.queries.GetReferrerEarnings(c.Request.Context(), p, referrerID, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
