package usecase

import (
	"context"
	"strings"

	"salon-broker/internal/infra"
	"salon-broker/internal/pkg/errs"
	"salon-broker/internal/pkg/jwt"
	"salon-broker/internal/pkg/token"
	"salon-broker/internal/usecase/shared"
)

// PrincipalResolver turns a bearer credential into a Principal. Salon and
// referrer sessions are signed JWTs; clients present the opaque hold token
// they were emailed.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, credential string) (shared.Principal, error)
}

type principalResolverImpl struct {
	jwtService *jwt.Service
	uow        shared.UnitOfWork
}

func NewPrincipalResolver(jwtService *jwt.Service, uow shared.UnitOfWork) PrincipalResolver {
	return &principalResolverImpl{
		jwtService: jwtService,
		uow:        uow,
	}
}

func (r *principalResolverImpl) ResolvePrincipal(ctx context.Context, credential string) (shared.Principal, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return shared.Principal{}, errs.ErrUnauthenticated
	}
	if token.LooksOpaque(credential) {
		return r.resolveHold(ctx, credential)
	}

	claims, err := r.jwtService.ValidateToken(credential)
	if err != nil {
		return shared.Principal{}, errs.Mark(err, errs.ErrUnauthenticated)
	}

	var kind shared.PrincipalKind
	switch claims.Role {
	case jwt.RoleSalon:
		kind = shared.PrincipalSalon
	case jwt.RoleReferrer:
		kind = shared.PrincipalReferrer
	default:
		return shared.Principal{}, errs.ErrUnauthenticated
	}
	return shared.Principal{Kind: kind, AccountID: claims.SubjectID}, nil
}

// resolveHold scopes the client to the request the token was issued for.
// Expiry is left to the command that consumes the token.
func (r *principalResolverImpl) resolveHold(ctx context.Context, credential string) (shared.Principal, error) {
	var p shared.Principal
	err := r.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, err := tx.Holds().FindByToken(ctx, credential)
		if err != nil {
			return err
		}
		p = shared.Principal{
			Kind:      shared.PrincipalClient,
			RequestID: h.RequestID(),
			HoldToken: h.Token(),
		}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return shared.Principal{}, errs.Mark(err, errs.ErrUnauthenticated)
		}
		return shared.Principal{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return p, nil
}

// IsAuthError reports whether err should be answered with 401.
func IsAuthError(err error) bool {
	return errs.Is(err, errs.ErrUnauthenticated)
}
