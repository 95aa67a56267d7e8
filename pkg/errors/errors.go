package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinels shared by the repository layer.
var (
	ErrNotFound       = errors.New("record not found")
	ErrBadRequest     = errors.New("bad request")
	ErrInternalServer = errors.New("internal server error")
)

// TokenError covers every credential failure: missing, malformed, expired or
// revoked (absent from the token store). Always surfaced as 401, never retried.
type TokenError struct {
	Msg string
	Err error
}

func (e *TokenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *TokenError) Unwrap() error { return e.Err }

func NewTokenError(msg string) *TokenError {
	return &TokenError{Msg: msg}
}

func WrapTokenError(msg string, err error) *TokenError {
	return &TokenError{Msg: msg, Err: err}
}

// AuthorizationError means the caller is authenticated but not privileged
// enough. Always surfaced as 403, never retried.
type AuthorizationError struct {
	Msg string
}

func (e *AuthorizationError) Error() string { return e.Msg }

func NewAuthorizationError(msg string) *AuthorizationError {
	return &AuthorizationError{Msg: msg}
}

// ServerError is an internal misconfiguration detected while handling a
// request. Fatal for that request only; surfaced as 500.
type ServerError struct {
	Msg string
	Err error
}

func (e *ServerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ServerError) Unwrap() error { return e.Err }

func NewServerError(msg string, err error) *ServerError {
	return &ServerError{Msg: msg, Err: err}
}

// HttpError carries an explicit status code for the ordinary CRUD failures
// (404, 400, 409). The top-level response mapper honours the code as-is.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, message, nil)
}

func NewNotFoundError(message string) *HttpError {
	return NewHttpError(http.StatusNotFound, message, nil)
}

func NewConflictError(message string) *HttpError {
	return NewHttpError(http.StatusConflict, message, nil)
}
