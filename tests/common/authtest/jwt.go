//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"salon-broker/internal/pkg/config"
	"salon-broker/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) SalonToken(t *testing.T, salonID uuid.UUID) string {
	t.Helper()
	return h.generate(t, h.cfg.Duration, salonID, jwt.RoleSalon)
}

func (h *JWTHelper) ReferrerToken(t *testing.T, referrerID uuid.UUID) string {
	t.Helper()
	return h.generate(t, h.cfg.Duration, referrerID, jwt.RoleReferrer)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, subjectID uuid.UUID, role string) string {
	t.Helper()
	token := h.generate(t, time.Millisecond, subjectID, role)
	time.Sleep(10 * time.Millisecond)
	return token
}

func (h *JWTHelper) generate(t *testing.T, d time.Duration, subjectID uuid.UUID, role string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, d)
	token, err := service.GenerateToken(subjectID, role)
	require.NoError(t, err)
	return token
}
