package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"salon-broker/internal/handler/httperr"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/usecase"
	"salon-broker/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	resolver usecase.PrincipalResolver
}

const ctxPrincipalKey = "principal"

func NewAuthMiddleware(resolver usecase.PrincipalResolver) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
	}
}

// RequirePrincipal resolves the bearer credential and aborts unless the
// principal is one of kinds.
func (m *AuthMiddleware) RequirePrincipal(kinds ...shared.PrincipalKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := bearerToken(c)
		if credential == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Access token required", nil)
			return
		}

		p, err := m.resolver.ResolvePrincipal(c.Request.Context(), credential)
		if err != nil {
			if usecase.IsAuthError(err) {
				slog.Warn("Credential rejected in auth middleware", "error", err.Error())
				httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
				return
			}
			httperr.Abort(c, err)
			return
		}

		if len(kinds) > 0 && !slices.Contains(kinds, p.Kind) {
			httperr.AbortWithError(c, http.StatusForbidden, errs.ErrForbidden, "Insufficient permissions", nil)
			return
		}

		c.Set(ctxPrincipalKey, p)
		c.Set("jwt_claims", map[string]any{
			"principal_id": principalID(p),
			"role":         string(p.Kind),
		})
		c.Next()
	}
}

func GetPrincipal(c *gin.Context) (shared.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return shared.Principal{}, false
	}
	p, ok := v.(shared.Principal)
	return p, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func principalID(p shared.Principal) string {
	if p.Kind == shared.PrincipalClient {
		return "request:" + strconv.FormatInt(p.RequestID, 10)
	}
	return p.AccountID.String()
}
