package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrConflict, http.StatusConflict},
		{ErrBadRequest, http.StatusBadRequest},
		{ErrInvalidInput, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
		{fmt.Errorf("email already in use: %w", ErrConflict), http.StatusConflict},
		{New(http.StatusTeapot, "odd", nil), http.StatusTeapot},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MapErrorToStatus(tc.err), "error %v", tc.err)
	}
}

func TestAppError_Message(t *testing.T) {
	err := New(http.StatusConflict, "name already in use", ErrConflict)
	assert.Equal(t, "name already in use", err.Error())
	assert.ErrorIs(t, err, ErrConflict)

	bare := New(http.StatusBadRequest, "", ErrBadRequest)
	assert.Equal(t, ErrBadRequest.Error(), bare.Error())
}
