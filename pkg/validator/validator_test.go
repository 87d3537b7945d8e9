package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Name     string `validate:"max=5"`
}

func TestFormatValidationError(t *testing.T) {
	v := validator.New()

	err := v.Struct(sampleInput{Email: "not-an-email", Password: "short", Name: "toolongname"})
	require.Error(t, err)

	msg := FormatValidationError(err)
	assert.Contains(t, msg, "email must be a valid email address")
	assert.Contains(t, msg, "password must be at least 8 characters")
	assert.Contains(t, msg, "name must be at most 5 characters")

	err = v.Struct(sampleInput{Password: "longenough"})
	require.Error(t, err)
	assert.Contains(t, FormatValidationError(err), "email is required")
}

func TestFormatValidationError_PassesThroughOtherErrors(t *testing.T) {
	err := errors.New("unexpected EOF")
	assert.Equal(t, "unexpected EOF", FormatValidationError(err))
}
