// Package apperr defines the application error family shared by all HTTP
// handlers. Every user-visible failure carries a numeric code, an HTTP status,
// and renders as {"success": false, "code": ..., "message": ..., "data": null}.
package apperr

import "fmt"

type Code string

const (
	CodeInvalidInput Code = "4001"
	CodeForbidden    Code = "4003"
	CodeNotFound     Code = "4005"
	CodeConflict     Code = "4006"
	CodeUnauthorized Code = "4009"
	CodeUpstream     Code = "4012"
	CodeInternal     Code = "5001"
)

var httpStatusByCode = map[Code]int{
	CodeInvalidInput: 400,
	CodeForbidden:    403,
	CodeNotFound:     404,
	CodeConflict:     400,
	CodeUnauthorized: 401,
	CodeUpstream:     400,
	CodeInternal:     500,
}

type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) HTTPStatus() int {
	if s, ok := httpStatusByCode[e.Code]; ok {
		return s
	}
	return 500
}

// InvalidInput reports a malformed or unacceptable input value. The argument
// names what was wrong, e.g. "Ordering Field 'color'".
func InvalidInput(what string) *Error {
	return &Error{
		Code:    CodeInvalidInput,
		Message: fmt.Sprintf("The %s you entered is incorrect. Kindly check and try again.", what),
	}
}

// InvalidInputMsg is like InvalidInput but with a verbatim message.
func InvalidInputMsg(message string) *Error {
	return &Error{Code: CodeInvalidInput, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Code: CodeForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Code: CodeUnauthorized, Message: message}
}

func Upstream(message string) *Error {
	return &Error{Code: CodeUpstream, Message: message}
}

func Internal(message string) *Error {
	return &Error{Code: CodeInternal, Message: message}
}
