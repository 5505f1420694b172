// Package validation holds the custom request validators registered into
// gin's shared binding engine at startup.
package validation

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// E164-like phone: optional +, digits 7-15 length
var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// Register adds the custom validators to the validator instance.
func Register(v *validator.Validate) {
	_ = v.RegisterValidation("valid_phone", validPhone)
	_ = v.RegisterValidation("no_emoji", noEmoji)
}

// validPhone validates a phone number structure. Empty values pass; combine
// with required when the field is mandatory.
func validPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}

// noEmoji rejects emoji and symbol characters in free-text name fields.
func noEmoji(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}
