// Package sgserr provides the coded error values used throughout the
// engine instead of ad-hoc errors or panics crossing a resolver boundary
// (spec.md §7). It is adapted directly from the teacher toolkit's rpgerr
// package: same Code/Error/Option/Wrap shape, with the Code catalog
// replaced by this engine's rule and resolution error codes.
package sgserr

import (
	"errors"
	"fmt"
)

// Code names why an action failed.
type Code string

// Rule error codes (spec.md §7).
const (
	CodeNone               Code = "none"
	CodePhaseNotAllowed    Code = "phase_not_allowed"
	CodePlayerNotActive    Code = "player_not_active"
	CodeCardNotOwned       Code = "card_not_owned"
	CodeCardTypeNotAllowed Code = "card_type_not_allowed"
	CodeUsageLimitReached  Code = "usage_limit_reached"
	CodeTargetRequired     Code = "target_required"
	CodeTargetOutOfRange   Code = "target_out_of_range"
	CodeTargetNotAlive     Code = "target_not_alive"
	CodeResponseNotAllowed Code = "response_not_allowed"
	CodeNoLegalOptions     Code = "no_legal_options"
)

// Resolution error codes (spec.md §7).
const (
	CodeInvalidState  Code = "invalid_state"
	CodeInvalidTarget Code = "invalid_target"
	CodeCardNotFound  Code = "card_not_found"
	CodeMissingService Code = "missing_service"
)

// General-purpose codes used outside the spec's two catalogs (input
// validation, movement-service atomicity, internal bugs).
const (
	CodeInvalidArgument Code = "invalid_argument"
	CodeCardNotInSource Code = "card_not_in_source"
	CodeInternal        Code = "internal"
)

// Error is a coded engine error. It is returned by value through the
// typed RuleResult/ResolutionResult wrappers (see result.go) rather than
// thrown; Error still satisfies the error interface so it composes with
// errors.Is/As and fmt.Errorf("%w", ...) when convenient.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Option configures an Error at construction.
type Option func(*Error)

// WithMeta attaches a key/value of game-state context to the error.
func WithMeta(key string, value any) Option {
	return func(e *Error) {
		if e.Meta == nil {
			e.Meta = make(map[string]any)
		}
		e.Meta[key] = value
	}
}

// New creates a coded error.
func New(code Code, message string, opts ...Option) *Error {
	e := &Error{Code: code, Message: message}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err, preserving its Code and Meta if it is already an *Error.
func Wrap(err error, message string, opts ...Option) *Error {
	if err == nil {
		return New(CodeInternal, fmt.Sprintf("sgserr.Wrap called with nil: %s", message))
	}
	var inner *Error
	wrapped := &Error{Code: CodeUnknownOr(err), Message: message, Cause: err}
	if errors.As(err, &inner) {
		wrapped.Code = inner.Code
		wrapped.Meta = copyMeta(inner.Meta)
	}
	for _, opt := range opts {
		opt(wrapped)
	}
	return wrapped
}

// CodeUnknownOr returns CodeInternal unless err is already a coded Error,
// in which case it returns that Error's code.
func CodeUnknownOr(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

func copyMeta(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "sgserr: nil"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Message, e.Code, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// GetCode extracts the Code from any error, returning CodeInternal if err
// is not a coded Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Code
	}
	return CodeInternal
}
