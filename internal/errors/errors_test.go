package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"permission denied", ErrPermissionDenied, http.StatusForbidden, "PERMISSION_DENIED"},
		{"wrapped not found", fmt.Errorf("edit recipe 3: %w", ErrRecipeNotFound), http.StatusNotFound, "RECIPE_NOT_FOUND"},
		{"comment mismatch", ErrCommentRecipeMismatch, http.StatusBadRequest, "COMMENT_RECIPE_MISMATCH"},
		{"bad credentials", ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}

func TestMapErrorToHTTP_KeepsDomainMessage(t *testing.T) {
	httpErr := MapErrorToHTTP(fmt.Errorf("delete comment: %w", ErrPermissionDenied))

	assert.Equal(t, "작성자만 접근할 수 있습니다.", httpErr.Message)
	assert.Equal(t, ErrorResponse{Error: "작성자만 접근할 수 있습니다.", Code: "PERMISSION_DENIED"}, httpErr.ToErrorResponse())
}

func TestMapErrorToHTTP_HidesInternalMessage(t *testing.T) {
	httpErr := MapErrorToHTTP(errors.New("dial tcp 10.0.0.3:3306: i/o timeout"))

	assert.Equal(t, "internal server error", httpErr.Error())
}
