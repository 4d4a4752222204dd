package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{ErrLoginRequired, http.StatusUnauthorized},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrNoPermission, http.StatusForbidden},
		{ErrPostNotFound, http.StatusNotFound},
		{ErrBoardNotFound, http.StatusNotFound},
		{ErrPostGone, http.StatusBadRequest},
		{ErrInvalidInput, http.StatusBadRequest},
		{ErrUserAlreadyExists, http.StatusConflict},
		{fmt.Errorf("wrapped: %w", ErrPostNotFound), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusOf(tt.err), "%v", tt.err)
	}
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "post not found", MessageOf(fmt.Errorf("find: %w", ErrPostNotFound)))
	assert.Equal(t, "internal server error", MessageOf(errors.New("dial tcp: connection refused")))
}

func TestErrorKinds(t *testing.T) {
	assert.ErrorIs(t, ErrPostGone, ErrBadRequest)
	assert.NotErrorIs(t, ErrPostGone, ErrNotFound)
	assert.ErrorIs(t, ErrNoPermission, ErrPermissionDenied)
}
