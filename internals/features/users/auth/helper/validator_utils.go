package helper

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Egyptian mobile numbers: 01 + operator digit (0/1/2/5) + 8 digits.
var egyPhoneRegex = regexp.MustCompile(`^01[0125][0-9]{8}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("egy_phone", validEgyPhone)
	_ = v.RegisterValidation("church_code", validChurchCode)
	return v
}

// ValidateStruct runs the shared validator instance with the custom
// auth rules registered.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validEgyPhone(fl validator.FieldLevel) bool {
	return egyPhoneRegex.MatchString(fl.Field().String())
}

// Church codes are exactly 4 alphanumeric characters containing at
// least one uppercase letter, one lowercase letter and one digit.
// Checked by hand since the rule needs three co-occurring classes.
func validChurchCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if len(code) != 4 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range code {
		switch {
		case unicode.IsUpper(r) && r < 128:
			hasUpper = true
		case unicode.IsLower(r) && r < 128:
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			return false
		}
	}
	return hasUpper && hasLower && hasDigit
}
