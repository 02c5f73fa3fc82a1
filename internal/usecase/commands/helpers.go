package commands

import (
	"errors"

	"salon-broker/internal/domain/booking"
	"salon-broker/internal/domain/hold"
	"salon-broker/internal/infra"
	"salon-broker/internal/pkg/errs"
)

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}

func isDuplicate(err error) bool {
	return infra.IsKind(err, infra.KindDuplicateKey)
}

func storageErr(err error) error {
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

// holdErr maps hold validation failures onto the usecase taxonomy.
func holdErr(err error) error {
	switch {
	case errors.Is(err, hold.ErrExpired):
		return errs.Mark(err, errs.ErrHoldExpired)
	case errors.Is(err, hold.ErrWrongKind), errors.Is(err, hold.ErrWrongRequest):
		return errs.Mark(err, errs.ErrHoldInvalid)
	default:
		return err
	}
}

func transitionErr(err error) error {
	if errors.Is(err, booking.ErrInvalidTransition) {
		return errs.Mark(err, errs.ErrInvalidTransition)
	}
	return errs.Mark(err, errs.ErrDomainValidation)
}
