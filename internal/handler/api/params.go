package api

import (
	"net/http"
	"strconv"

	"salon-broker/internal/handler/httperr"
	"salon-broker/internal/handler/middleware"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errInvalidParam = errs.New("invalid path parameter")

func requestIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(errInvalidParam, errs.ErrDomainValidation), "Invalid request id", nil)
		return 0, false
	}
	return id, true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrDomainValidation), "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// principal must be called behind RequirePrincipal.
func principal(c *gin.Context) (shared.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Unauthorized", nil)
	}
	return p, ok
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrDomainValidation), "Invalid request format", nil)
		return false
	}
	return true
}
