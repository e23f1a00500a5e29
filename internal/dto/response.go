// Package dto holds request and response shapes shared by services and handlers.
package dto

import "net/http"

// Response is a domain result: a status code with a user facing message.
// Services return it for expected outcomes such as duplicates or password
// mismatches instead of an error.
type Response struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

// OK builds a 200 Response.
func OK(message string) *Response {
	return &Response{StatusCode: http.StatusOK, Message: message}
}

// BadRequest builds a 400 Response.
func BadRequest(message string) *Response {
	return &Response{StatusCode: http.StatusBadRequest, Message: message}
}

// Page is one page of a listing. Number is 1-based.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

// NewPage builds a page and derives the page count.
func NewPage[T any](content []T, number, size int, total int64) *Page[T] {
	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}
	return &Page[T]{
		Content:       content,
		Number:        number,
		Size:          size,
		TotalElements: total,
		TotalPages:    pages,
	}
}

// Listing is either a page of items or, when nothing matched, a notice.
type Listing[T any] struct {
	Page   *Page[T]
	Notice string
}

// IsEmpty reports whether the listing carries a notice instead of a page.
func (l *Listing[T]) IsEmpty() bool {
	return l.Page == nil
}
