package commands

import (
	"time"

	"salon-broker/internal/domain/booking"
	"salon-broker/internal/pkg/config"
)

// Policy holds the tunables shared by the booking commands.
type Policy struct {
	DecisionHoldTTL time.Duration
	CheckoutHoldTTL time.Duration
	// HoldRetention keeps lapsed hold records around so late presenters get
	// an expired answer rather than an unknown token.
	HoldRetention time.Duration
	// SalonResponseWindow is quoted to salons whenever they owe the client an answer.
	SalonResponseWindow time.Duration
	Currency            string
	SuccessURL          string
	CancelURL           string
	Rates               booking.Rates
}

func NewPolicy(cfg config.Config) (Policy, error) {
	platform, referrer, err := cfg.Booking.Rates()
	if err != nil {
		return Policy{}, err
	}
	rates, err := booking.NewRates(platform, referrer)
	if err != nil {
		return Policy{}, err
	}
	return Policy{
		DecisionHoldTTL:     cfg.Booking.DecisionHoldTTL,
		CheckoutHoldTTL:     cfg.Booking.CheckoutHoldTTL,
		HoldRetention:       24 * time.Hour,
		SalonResponseWindow: cfg.Booking.SalonResponseWindow,
		Currency:            cfg.Booking.Currency,
		SuccessURL:          cfg.Payment.SuccessURL,
		CancelURL:           cfg.Payment.CancelURL,
		Rates:               rates,
	}, nil
}

func DefaultPolicy() Policy {
	return Policy{
		DecisionHoldTTL:     time.Hour,
		CheckoutHoldTTL:     10 * time.Minute,
		HoldRetention:       24 * time.Hour,
		SalonResponseWindow: 48 * time.Hour,
		Currency:            "usd",
		SuccessURL:          "http://localhost:3000/booking/success",
		CancelURL:           "http://localhost:3000/booking/cancelled",
		Rates:               booking.DefaultRates(),
	}
}
