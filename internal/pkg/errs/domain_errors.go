package errs

import "errors"

// Sentinel errors shared by the usecase layer and the HTTP mapping
var (
	// Intake errors
	ErrReferralCodeNotFound   = errors.New("referral code not found")
	ErrServiceRequestNotFound = errors.New("service request not found")
	ErrRequestClosed          = errors.New("service request no longer accepts time options")

	// Slot ledger errors
	ErrSlotTaken            = errors.New("time option is no longer available")
	ErrTimeOptionNotOffered = errors.New("time option was not offered for this request")

	// Hold errors
	ErrHoldExpired        = errors.New("hold expired")
	ErrHoldInvalid        = errors.New("hold token invalid")
	ErrCheckoutInProgress = errors.New("a checkout is already open for this request")

	// Booking errors
	ErrBookingNotFound       = errors.New("booking not found")
	ErrInvalidTransition     = errors.New("invalid booking transition")
	ErrRefundReasonRequired  = errors.New("refund reason required")
	ErrInvalidPaymentEvent   = errors.New("invalid payment event")
	ErrSettlementInterrupted = errors.New("settlement interrupted")

	// Principal errors
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")

	// External capability errors
	ErrPaymentCapability = errors.New("payment capability unavailable")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
