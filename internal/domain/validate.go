package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// requireText checks that a required text field is non-blank and at most max runes long.
func requireText(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return missing(field)
	}
	return limitText(field, value, max)
}

// limitText checks that an optional text field is at most max runes long.
func limitText(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return invalid(field, fmt.Sprintf("must be at most %d characters", max))
	}
	return nil
}

// requireEmail checks that value is present and looks like an e-mail address.
func requireEmail(field, value string) error {
	if err := requireText(field, value, 100); err != nil {
		return err
	}
	if err := validate.Var(value, "email"); err != nil {
		return invalid(field, "must be a valid email address")
	}
	return nil
}

// requireID checks that a foreign key has been set.
func requireID(field string, id int64) error {
	if id <= 0 {
		return missing(field)
	}
	return nil
}

// checkDateRange enforces date_start <= date_end.
func checkDateRange(start, end Date) error {
	if start.IsZero() {
		return missing("date_start")
	}
	if end.IsZero() {
		return missing("date_end")
	}
	if start.After(end) {
		return invalid("date_start", "must be on or before date_end")
	}
	return nil
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// applyDate parses a patched date field when present.
func applyDate(field string, value *string, dst *Date) error {
	if value == nil {
		return nil
	}
	d, err := ParseDate(field, *value)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

func applyString(value *string, dst *string) {
	if value != nil {
		*dst = *value
	}
}

func applyInt64(value *int64, dst *int64) {
	if value != nil {
		*dst = *value
	}
}
