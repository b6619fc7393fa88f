// Package apperr provides the error type used across pomo
package apperr

import (
	"errors"
	"fmt"
)

// Error is an application error with a user-facing message.
type Error struct {
	Cause    error
	Message  string
	template string
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target carries the same message template, so that an
// error produced by Fmt or Wrap still matches its sentinel.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Message == e.Message || t.tmpl() == e.tmpl()
}

// tmpl is the original format string for errors created by Fmt.
func (e *Error) tmpl() string {
	if e.template != "" {
		return e.template
	}

	return e.Message
}

// Fmt returns a copy of the error with its message formatted with args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message:  fmt.Sprintf(e.Message, args...),
		Cause:    e.Cause,
		template: e.tmpl(),
	}
}

// Wrap returns a copy of the error with err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message:  e.Message,
		Cause:    err,
		template: e.template,
	}
}
