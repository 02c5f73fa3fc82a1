package request

import (
	"strings"

	"salon-broker/internal/usecase/commands"
)

type CreateServiceRequestRequest struct {
	ReferralCode   string `json:"referral_code" binding:"required,max=64"`
	ClientName     string `json:"client_name" binding:"required,max=200"`
	ClientEmail    string `json:"client_email" binding:"required,email"`
	ClientPhone    string `json:"client_phone" binding:"omitempty,max=40"`
	PreferredDates string `json:"preferred_dates" binding:"omitempty,max=1000"`
}

func (r CreateServiceRequestRequest) ToInput() commands.CreateServiceRequestInput {
	return commands.CreateServiceRequestInput{
		ReferralCode:   strings.TrimSpace(r.ReferralCode),
		ClientName:     r.ClientName,
		ClientEmail:    r.ClientEmail,
		ClientPhone:    r.ClientPhone,
		PreferredDates: r.PreferredDates,
	}
}

// TimeOptionsRequest is used both for the first response and for alternatives.
type TimeOptionsRequest struct {
	TimeOptions []string `json:"time_options" binding:"required,min=1,max=10,dive,required,max=100"`
}

type SelectTimeRequest struct {
	HourToken  string `json:"hour_token" binding:"required"`
	TimeOption string `json:"time_option" binding:"required,max=100"`
}

// ClientTokenRequest carries the hour or checkout token from the client's link.
type ClientTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type RescheduleRequest struct {
	Token          string `json:"token" binding:"required"`
	PreferredDates string `json:"preferred_dates" binding:"required,max=1000"`
}

type RefundRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}
