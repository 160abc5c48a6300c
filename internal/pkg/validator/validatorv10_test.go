package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required,alphaspace"`
	Email string `validate:"required,email"`
	DOB   string `validate:"required,datetime=2006-01-02"`
}

func newValidator(t *testing.T) *V10Validator {
	t.Helper()

	v, err := NewV10Validator()
	require.NoError(t, err)

	return v
}

func TestV10ValidatorIsValidator(t *testing.T) {
	t.Parallel()

	var _ Validator = newValidator(t)
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	v := newValidator(t)

	err := v.Validate(sample{Name: "Jane Doe", Email: "jane@example.com", DOB: "1990-04-15"})
	assert.NoError(t, err)
}

func TestValidate_FieldKeysAreSnakeCase(t *testing.T) {
	t.Parallel()

	v := newValidator(t)

	err := v.Validate(sample{Name: "Jane Doe", Email: "nope", DOB: "1990-04-15"})
	require.Error(t, err)

	var verr V10ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Values(), "email")
}

func TestValidate_AlphaSpace(t *testing.T) {
	t.Parallel()

	v := newValidator(t)

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"Letters", "Jane", true},
		{"LettersAndSpaces", "Jane van Doe", true},
		{"Digits", "Jane2", false},
		{"LeadingSpace", " Jane", false},
		{"Symbols", "Jane!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate(sample{Name: tt.value, Email: "jane@example.com", DOB: "1990-04-15"})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				var verr V10ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Contains(t, verr.Values(), "name")
			}
		})
	}
}

func TestValidate_BadDateOfBirth(t *testing.T) {
	t.Parallel()

	v := newValidator(t)

	err := v.Validate(sample{Name: "Jane Doe", Email: "jane@example.com", DOB: "15/04/1990"})
	require.Error(t, err)

	var verr V10ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Values(), "dob")
}
