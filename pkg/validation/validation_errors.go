package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Describe turns a binding error into a client-facing message. Non-validation
// errors (malformed JSON and friends) fall through unchanged.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeField(fe))
	}
	return strings.Join(msgs, "; ")
}

func describeField(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "valid_phone":
		return field + " must be a valid phone number"
	case "no_emoji":
		return field + " must not contain emoji or symbols"
	default:
		return field + " is invalid"
	}
}
