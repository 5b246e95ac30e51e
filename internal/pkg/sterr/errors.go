package sterr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound         = "NOT_FOUND"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeModelUnavailable = "MODEL_UNAVAILABLE"
	CodeTooManyRequests  = "TOO_MANY_REQUESTS"
	CodeInternalError    = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a route or resource does not exist.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrModelUnavailable is returned by analysis when a classifier is required but none is loaded.
	ErrModelUnavailable = New(fiber.StatusServiceUnavailable, CodeModelUnavailable, "Model failed to load.")

	// ErrTooManyRequests is returned when the client exceeds the rate limit.
	ErrTooManyRequests = New(fiber.StatusTooManyRequests, CodeTooManyRequests, "too many requests: please slow down")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]any

type StroopError struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *StroopError {
	return &StroopError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e StroopError) Msg(format string, parts ...any) *StroopError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e StroopError) WithExtras(extras Extras) *StroopError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations any) *StroopError {
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *StroopError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
