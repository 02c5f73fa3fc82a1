package booking

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRate        = errors.New("commission rate must be within [0, 1]")
	ErrReferrerExceedsCut = errors.New("referrer rate cannot exceed platform rate")
	ErrNonPositiveFee     = errors.New("service fee must be positive")
)

// Rates are fractions of the service fee. The referrer share is paid out of
// the platform share, so the salon nets fee minus the platform commission.
type Rates struct {
	platform decimal.Decimal
	referrer decimal.Decimal
}

func NewRates(platform, referrer decimal.Decimal) (Rates, error) {
	one := decimal.NewFromInt(1)
	for _, r := range []decimal.Decimal{platform, referrer} {
		if r.IsNegative() || r.GreaterThan(one) {
			return Rates{}, ErrInvalidRate
		}
	}
	if referrer.GreaterThan(platform) {
		return Rates{}, ErrReferrerExceedsCut
	}
	return Rates{platform: platform, referrer: referrer}, nil
}

func DefaultRates() Rates {
	return Rates{
		platform: decimal.RequireFromString("0.20"),
		referrer: decimal.RequireFromString("0.15"),
	}
}

func (r Rates) Platform() decimal.Decimal { return r.platform }
func (r Rates) Referrer() decimal.Decimal { return r.referrer }

// Split is the commission breakdown fixed at booking creation.
type Split struct {
	FeeCents                int64
	PlatformCommissionCents int64
	ReferrerCommissionCents int64
	SalonNetCents           int64
}

// Split rounds each share to whole cents, half away from zero.
func (r Rates) Split(feeCents int64) (Split, error) {
	if feeCents <= 0 {
		return Split{}, ErrNonPositiveFee
	}
	fee := decimal.NewFromInt(feeCents)
	platform := fee.Mul(r.platform).Round(0).IntPart()
	referrer := fee.Mul(r.referrer).Round(0).IntPart()
	return Split{
		FeeCents:                feeCents,
		PlatformCommissionCents: platform,
		ReferrerCommissionCents: referrer,
		SalonNetCents:           feeCents - platform,
	}, nil
}

// FormatCents renders an amount as a fixed two-decimal string.
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
