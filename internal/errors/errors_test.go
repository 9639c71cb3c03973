package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"user not found", ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{"post not found", ErrPostNotFound, http.StatusNotFound, "POST_NOT_FOUND"},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"email taken", ErrEmailTaken, http.StatusConflict, "EMAIL_TAKEN"},
		{"username taken", ErrUsernameTaken, http.StatusConflict, "USERNAME_TAKEN"},
		{"not post owner", ErrNotPostOwner, http.StatusForbidden, "NOT_POST_OWNER"},
		{"unclassified", errors.New("store unreachable"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.expectedStatus, httpErr.StatusCode)
			assert.Equal(t, tt.expectedCode, httpErr.Code)
		})
	}
}

func TestMapErrorToHTTP_WrappedError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), ErrNotPostOwner)
	httpErr := MapErrorToHTTP(wrapped)
	assert.Equal(t, http.StatusForbidden, httpErr.StatusCode)
}
