package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrPermissionDenied is returned when a user mutates content they do not own.
	ErrPermissionDenied = errors.New("작성자만 접근할 수 있습니다.")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("사용자가 존재하지 않습니다.")
	// ErrRecipeNotFound is returned when a recipe is not found.
	ErrRecipeNotFound = errors.New("레시피가 존재하지 않습니다.")
	// ErrCommentNotFound is returned when a comment is not found.
	ErrCommentNotFound = errors.New("댓글이 존재하지 않습니다.")
	// ErrCommentRecipeMismatch is returned when a comment is addressed through another recipe.
	ErrCommentRecipeMismatch = errors.New("해당 레시피에 작성된 댓글이 아닙니다.")
	// ErrAlreadyWithdrawn is returned when a withdrawn user is withdrawn again.
	ErrAlreadyWithdrawn = errors.New("이미 탈퇴한 회원입니다.")
	// ErrUserWithdrawn is returned when a withdrawn user tries to authenticate.
	ErrUserWithdrawn = errors.New("탈퇴한 회원입니다.")
	// ErrInvalidCredentials is returned when the login id or password is incorrect.
	ErrInvalidCredentials = errors.New("아이디 또는 비밀번호가 일치하지 않습니다.")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid, expired or revoked.
	ErrInvalidRefreshToken = errors.New("유효하지 않은 리프레시 토큰입니다.")
	// ErrUnauthorized is returned when a request carries no usable access token.
	ErrUnauthorized = errors.New("인증이 필요합니다.")
	// ErrTokenRevoked is returned for an access token revoked by logout or withdrawal.
	ErrTokenRevoked = errors.New("로그아웃된 토큰입니다.")
	// ErrInvalidSortField is returned for an unsupported sortBy value.
	ErrInvalidSortField = errors.New("정렬할 수 없는 항목입니다.")
	// ErrInvalidDate is returned when a date query parameter cannot be parsed.
	ErrInvalidDate = errors.New("날짜 형식이 올바르지 않습니다. (yyyy-MM-dd)")
	// ErrInvalidDateRange is returned when the start date is after the end date.
	ErrInvalidDateRange = errors.New("시작 날짜가 종료 날짜보다 늦을 수 없습니다.")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

var mappings = []struct {
	err    error
	status int
	code   string
}{
	{ErrPermissionDenied, http.StatusForbidden, "PERMISSION_DENIED"},
	{ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
	{ErrRecipeNotFound, http.StatusNotFound, "RECIPE_NOT_FOUND"},
	{ErrCommentNotFound, http.StatusNotFound, "COMMENT_NOT_FOUND"},
	{ErrCommentRecipeMismatch, http.StatusBadRequest, "COMMENT_RECIPE_MISMATCH"},
	{ErrAlreadyWithdrawn, http.StatusBadRequest, "ALREADY_WITHDRAWN"},
	{ErrUserWithdrawn, http.StatusUnauthorized, "USER_WITHDRAWN"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{ErrInvalidRefreshToken, http.StatusUnauthorized, "INVALID_REFRESH_TOKEN"},
	{ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
	{ErrTokenRevoked, http.StatusUnauthorized, "TOKEN_REVOKED"},
	{ErrInvalidSortField, http.StatusBadRequest, "INVALID_SORT_FIELD"},
	{ErrInvalidDate, http.StatusBadRequest, "INVALID_DATE"},
	{ErrInvalidDateRange, http.StatusBadRequest, "INVALID_DATE_RANGE"},
}

// MapErrorToHTTP maps domain errors, including wrapped ones, to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	for _, m := range mappings {
		if errors.Is(err, m.err) {
			return NewHTTPError(m.status, m.err.Error(), m.code)
		}
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}
