// Package apperr defines the application error taxonomy. Engines return
// *Error values; the response layer maps codes onto HTTP statuses so the
// domain code never mentions HTTP.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeInvalidInput            Code = "INVALID_INPUT"
	CodeUnauthorized            Code = "UNAUTHORIZED"
	CodeForbidden               Code = "FORBIDDEN"
	CodeNotFound                Code = "NOT_FOUND"
	CodeConflict                Code = "CONFLICT"
	CodeInternal                Code = "INTERNAL_ERROR"
	CodeInsufficientStock       Code = "INSUFFICIENT_STOCK"
	CodeInvalidStatusTransition Code = "INVALID_STATUS_TRANSITION"

	CodeProductNotFound Code = "PRODUCT_NOT_FOUND"
	CodeCartNotFound    Code = "CART_NOT_FOUND"
	CodeOrderNotFound   Code = "ORDER_NOT_FOUND"
)

type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error code onto the HTTP status carried to the client.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeInvalidInput, CodeInsufficientStock, CodeInvalidStatusTransition:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound, CodeProductNotFound, CodeCartNotFound, CodeOrderNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func InvalidInput(message string) *Error {
	return New(CodeInvalidInput, message)
}

func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

func Unauthorized(message string) *Error {
	return New(CodeUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(CodeForbidden, message)
}

func Conflict(message string) *Error {
	return New(CodeConflict, message)
}

func Internal(err error, message string) *Error {
	return Wrap(err, CodeInternal, message)
}

func InsufficientStock(message string) *Error {
	return New(CodeInsufficientStock, message)
}

func InvalidStatusTransition(from, to string) *Error {
	return New(CodeInvalidStatusTransition,
		fmt.Sprintf("cannot change order status from %s to %s", from, to))
}

func ProductNotFound() *Error {
	return New(CodeProductNotFound, "product not found")
}

func CartNotFound() *Error {
	return New(CodeCartNotFound, "cart not found")
}

func OrderNotFound() *Error {
	return New(CodeOrderNotFound, "order not found")
}

// From normalizes any error into an *Error. Unknown errors become internal so
// their details never leak to the client.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err, "internal server error")
}
