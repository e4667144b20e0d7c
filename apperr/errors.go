// Package apperr defines the error taxonomy shared by services and handlers.
// Every error a service returns is either one of the coded errors below or an
// unexpected failure, which is reported to clients as a 500.
package apperr

import (
	"fmt"
	"net/http"

	"github.com/samber/oops"
)

const (
	CodeValidation         = "VALIDATION"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeConflict           = "CONFLICT"
	CodeInvalidState       = "INVALID_STATE"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeInternal           = "INTERNAL"
)

var statusByCode = map[string]int{
	CodeValidation:         http.StatusBadRequest,
	CodeInvalidCredentials: http.StatusBadRequest,
	CodeConflict:           http.StatusBadRequest,
	CodeInvalidState:       http.StatusBadRequest,
	CodeUnauthorized:       http.StatusUnauthorized,
	CodeForbidden:          http.StatusForbidden,
	CodeNotFound:           http.StatusNotFound,
}

func Validation(format string, args ...any) error {
	return oops.Code(CodeValidation).Errorf(format, args...)
}

func InvalidCredentials() error {
	return oops.Code(CodeInvalidCredentials).Errorf("invalid credentials")
}

func Conflict(format string, args ...any) error {
	return oops.Code(CodeConflict).Errorf(format, args...)
}

func InvalidState(format string, args ...any) error {
	return oops.Code(CodeInvalidState).Errorf(format, args...)
}

func Unauthorized(format string, args ...any) error {
	return oops.Code(CodeUnauthorized).Errorf(format, args...)
}

func Forbidden(format string, args ...any) error {
	return oops.Code(CodeForbidden).Errorf(format, args...)
}

func NotFound(format string, args ...any) error {
	return oops.Code(CodeNotFound).Errorf(format, args...)
}

// Code returns the taxonomy code carried by err, or CodeInternal when err is
// not one of ours.
func Code(err error) string {
	if err == nil {
		return ""
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return CodeInternal
	}
	code := fmt.Sprint(oopsErr.Code())
	if _, known := statusByCode[code]; !known {
		return CodeInternal
	}
	return code
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	return Code(err) == code
}

// Status maps err to the HTTP status returned to clients.
func Status(err error) int {
	if status, ok := statusByCode[Code(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// PublicMessage is the text safe to show to a client. Internal failures get
// a generic message; the detail stays in the server log.
func PublicMessage(err error) string {
	if Code(err) == CodeInternal {
		return "internal server error"
	}
	if oopsErr, ok := oops.AsOops(err); ok {
		return oopsErr.Error()
	}
	return err.Error()
}
