package validation

import (
	"errors"
	"regexp"
	"strings"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Rule checks a single raw field value. A nil error means the value passes.
type Rule interface {
	Check(value string) error
}

// NotEmpty fails on values that are empty after trimming whitespace.
type NotEmpty struct{}

func (NotEmpty) Check(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("must not be empty")
	}
	return nil
}

// EmailAddress fails on values that are not a plausible e-mail address.
type EmailAddress struct{}

func (EmailAddress) Check(value string) error {
	if !emailRegexp.MatchString(strings.TrimSpace(value)) {
		return errors.New("must be a valid e-mail address")
	}
	return nil
}

// True accepts the usual affirmative form values of a checked checkbox.
// Anything else fails, including the empty string of an unchecked box.
type True struct{}

func (True) Check(value string) error {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "on", "yes":
		return nil
	}
	return errors.New("must be accepted")
}

// Optional accepts any value, including a missing one. Adding it to a field
// registers the field so its value is carried into the result.
type Optional struct{}

func (Optional) Check(value string) error { return nil }
