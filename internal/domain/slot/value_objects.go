package slot

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const MaxTimeOptionLength = 255

var (
	ErrEmptyTimeOption    = errors.New("time option cannot be empty")
	ErrTimeOptionTooLong  = errors.New("time option too long")
	ErrNoTimeOptions      = errors.New("at least one time option is required")
	ErrTooManyTimeOptions = errors.New("too many time options")
)

const MaxTimeOptions = 10

// TimeOption is the salon's free-form label for a proposed appointment time.
type TimeOption string

func NewTimeOption(s string) (TimeOption, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", ErrEmptyTimeOption
	}
	if utf8.RuneCountInString(trimmed) > MaxTimeOptionLength {
		return "", ErrTimeOptionTooLong
	}
	return TimeOption(trimmed), nil
}

func (t TimeOption) String() string {
	return string(t)
}

// NewTimeOptions validates a salon offer, dropping duplicates while keeping order.
func NewTimeOptions(raw []string) ([]TimeOption, error) {
	if len(raw) == 0 {
		return nil, ErrNoTimeOptions
	}
	seen := make(map[TimeOption]struct{}, len(raw))
	out := make([]TimeOption, 0, len(raw))
	for _, r := range raw {
		opt, err := NewTimeOption(r)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[opt]; dup {
			continue
		}
		seen[opt] = struct{}{}
		out = append(out, opt)
	}
	if len(out) > MaxTimeOptions {
		return nil, ErrTooManyTimeOptions
	}
	return out, nil
}

func Strings(opts []TimeOption) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.String()
	}
	return out
}
