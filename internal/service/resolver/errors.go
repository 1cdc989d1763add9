package resolver

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrorValidation          ErrorCode = "VALIDATION_ERROR"
	ErrorProviderUnavailable ErrorCode = "PROVIDER_UNAVAILABLE"
	ErrorProviderFailure     ErrorCode = "PROVIDER_FAILURE"
	ErrorServerFault         ErrorCode = "SERVER_FAULT"
)

// ErrProviderRequired is wrapped when the deployment mandates a provider but none is wired.
var ErrProviderRequired = errors.New("resolver: provider credential required but missing")

type Error struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("resolver: %s (%s)", e.Code, e.Reason)
	}
	return fmt.Sprintf("resolver: %s (%s): %v", e.Code, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(code ErrorCode, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}

// Unavailable reports that no provider strategy could be built.
func Unavailable(reason string, err error) *Error {
	return newError(ErrorProviderUnavailable, reason, err)
}

// CodeOf returns the code of a resolver error, or ErrorServerFault for anything else.
func CodeOf(err error) ErrorCode {
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr.Code
	}
	return ErrorServerFault
}
