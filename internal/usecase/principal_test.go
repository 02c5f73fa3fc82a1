//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"salon-broker/internal/domain/hold"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/pkg/jwt"
	"salon-broker/internal/pkg/token"
	"salon-broker/internal/usecase"
	"salon-broker/internal/usecase/shared"
	"salon-broker/tests/common/helper"
	"salon-broker/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePrincipal(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)
	store := memstore.New()
	resolver := usecase.NewPrincipalResolver(jwtService, store)

	accountID := uuid.MustParse("5a10c0de-0000-4000-8000-000000000001")
	salonToken, err := jwtService.GenerateToken(accountID, jwt.RoleSalon)
	require.NoError(t, err)
	referrerToken, err := jwtService.GenerateToken(accountID, jwt.RoleReferrer)
	require.NoError(t, err)

	holdToken, err := token.New(token.PrefixCheckout)
	require.NoError(t, err)
	h, err := hold.NewCheckout(holdToken, 42, "Tue 3pm", time.Now().Add(-time.Hour), 10*time.Minute)
	require.NoError(t, err)
	store.PutHold(h)

	t.Run("salon session", func(t *testing.T) {
		p, err := resolver.ResolvePrincipal(context.Background(), salonToken)
		require.NoError(t, err)
		assert.Equal(t, shared.Principal{Kind: shared.PrincipalSalon, AccountID: accountID}, p)
	})

	t.Run("referrer session", func(t *testing.T) {
		p, err := resolver.ResolvePrincipal(context.Background(), referrerToken)
		require.NoError(t, err)
		assert.Equal(t, shared.PrincipalReferrer, p.Kind)
	})

	t.Run("client hold token resolves even after expiry", func(t *testing.T) {
		p, err := resolver.ResolvePrincipal(context.Background(), " "+holdToken+" ")
		require.NoError(t, err)
		assert.Equal(t, shared.Principal{Kind: shared.PrincipalClient, RequestID: 42, HoldToken: holdToken}, p)
	})

	testCases := []struct {
		name       string
		credential string
	}{
		{name: "empty", credential: "  "},
		{name: "garbage", credential: "not-a-token"},
		{name: "signed with another key", credential: mustSign(t, jwt.NewService("other", time.Hour), accountID)},
		{name: "expired session", credential: mustSign(t, jwt.NewService("test-secret", -time.Minute), accountID)},
		{name: "unknown hold token", credential: mustToken(t, token.PrefixDecision)},
	}
	for _, tc := range testCases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			_, err := resolver.ResolvePrincipal(context.Background(), tc.credential)
			helper.AssertErrorIs(t, err, errs.ErrUnauthenticated)
			assert.True(t, usecase.IsAuthError(err))
		})
	}
}

func mustSign(t *testing.T, svc *jwt.Service, id uuid.UUID) string {
	t.Helper()
	tok, err := svc.GenerateToken(id, jwt.RoleSalon)
	require.NoError(t, err)
	return tok
}

func mustToken(t *testing.T, prefix string) string {
	t.Helper()
	tok, err := token.New(prefix)
	require.NoError(t, err)
	return tok
}
