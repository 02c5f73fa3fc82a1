package servicerequest

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrEmptyClientName   = errors.New("client name cannot be empty")
	ErrClientNameTooLong = errors.New("client name too long")
	ErrInvalidStatus     = errors.New("invalid service request status")
	ErrInvalidFee        = errors.New("service fee must be positive")
	ErrEmptyReferralCode = errors.New("referral code cannot be empty")
	ErrClosed            = errors.New("service request no longer accepts time options")
)

const MaxClientNameLength = 120

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type ClientContact struct {
	name  string
	email string
	phone string
}

func NewClientContact(name, email, phone string) (ClientContact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ClientContact{}, ErrEmptyClientName
	}
	if utf8.RuneCountInString(name) > MaxClientNameLength {
		return ClientContact{}, ErrClientNameTooLong
	}
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return ClientContact{}, ErrInvalidEmail
	}
	return ClientContact{name: name, email: strings.ToLower(email), phone: strings.TrimSpace(phone)}, nil
}

func (c ClientContact) Name() string  { return c.name }
func (c ClientContact) Email() string { return c.email }
func (c ClientContact) Phone() string { return c.phone }
