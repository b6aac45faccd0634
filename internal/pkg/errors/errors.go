package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	CodeNotFound          ErrorCode = "NOT_FOUND"
	CodeInvalidInput      ErrorCode = "INVALID_INPUT"
	CodeConflict          ErrorCode = "CONFLICT"
	CodeStateViolation    ErrorCode = "STATE_VIOLATION"
	CodeAutomationFailure ErrorCode = "AUTOMATION_FAILURE"
	CodeUnauthorized      ErrorCode = "UNAUTHORIZED"
	CodeInternal          ErrorCode = "INTERNAL_SERVER_ERROR"
)

// CustomError is the only error type that crosses the usecase boundary.
type CustomError struct {
	Code     ErrorCode
	HttpCode int
	Message  string
}

func (e CustomError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NotFound(msg string) error {
	return CustomError{Code: CodeNotFound, HttpCode: http.StatusNotFound, Message: msg}
}

func BadRequest(msg string) error {
	return CustomError{Code: CodeInvalidInput, HttpCode: http.StatusBadRequest, Message: msg}
}

func Conflict(msg string) error {
	return CustomError{Code: CodeConflict, HttpCode: http.StatusConflict, Message: msg}
}

func StateViolation(msg string) error {
	return CustomError{Code: CodeStateViolation, HttpCode: http.StatusUnprocessableEntity, Message: msg}
}

func AutomationFailure(msg string) error {
	return CustomError{Code: CodeAutomationFailure, HttpCode: http.StatusInternalServerError, Message: msg}
}

func UnauthorizedError(msg string) error {
	return CustomError{Code: CodeUnauthorized, HttpCode: http.StatusUnauthorized, Message: msg}
}

func InternalServerError(msg string) error {
	return CustomError{Code: CodeInternal, HttpCode: http.StatusInternalServerError, Message: msg}
}

func As(err error) (CustomError, bool) {
	var ce CustomError
	ok := stderrors.As(err, &ce)
	return ce, ok
}

// CodeOf returns the code of the first CustomError in err's chain, or CodeInternal.
func CodeOf(err error) ErrorCode {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce.Code
	}
	return CodeInternal
}

func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}
	return CodeOf(err) == code
}

// HttpCode returns the status that should be written for err.
func HttpCode(err error) int {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce.HttpCode
	}
	return http.StatusInternalServerError
}
