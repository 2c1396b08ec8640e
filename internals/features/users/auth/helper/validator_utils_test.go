package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type phoneHolder struct {
	Phone string `validate:"egy_phone"`
}

type codeHolder struct {
	Code string `validate:"church_code"`
}

func TestEgyPhone(t *testing.T) {
	valid := []string{
		"01001234567", // Vodafone
		"01112345678", // Etisalat
		"01234567890", // Orange
		"01512345678", // WE
	}
	for _, p := range valid {
		assert.NoError(t, ValidateStruct(&phoneHolder{Phone: p}), p)
	}

	invalid := []string{
		"01301234567",   // no such operator prefix
		"0100123456",    // too short
		"010012345678",  // too long
		"21001234567",   // must start with 01
		"0100123456a",   // digits only
		"+201001234567", // no country code form
		"R",             // developer identifier is not a phone
	}
	for _, p := range invalid {
		assert.Error(t, ValidateStruct(&phoneHolder{Phone: p}), p)
	}
}

func TestChurchCode(t *testing.T) {
	valid := []string{"Ab1x", "Zz9q", "a1Bc", "9zXy"}
	for _, c := range valid {
		assert.NoError(t, ValidateStruct(&codeHolder{Code: c}), c)
	}

	invalid := []string{
		"abcd", // no uppercase, no digit
		"ABCD", // no lowercase, no digit
		"1234", // digits only
		"Ab1",  // too short
		"Ab1xZ", // too long
		"Ab1!", // symbol
		"Ab1م", // ASCII only
		"",
	}
	for _, c := range invalid {
		assert.Error(t, ValidateStruct(&codeHolder{Code: c}), c)
	}
}
