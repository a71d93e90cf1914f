// Package errors defines the coded errors navcoord returns to callers and
// the CLI renders for users.
package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Navigation state errors
	ErrCodeSnapshotInvalid ErrorCode = "SNAPSHOT_INVALID"
	ErrCodeSnapshotIO      ErrorCode = "SNAPSHOT_IO"
	ErrCodeUnknownRoute    ErrorCode = "UNKNOWN_ROUTE"
	ErrCodeUnknownTab      ErrorCode = "UNKNOWN_TAB"

	// Terminal errors
	ErrCodeNotATerminal ErrorCode = "NOT_A_TERMINAL"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Lookup describes a route or tab name that did not decode.
type Lookup struct {
	// Area is the tab whose routes were searched. Empty for tab lookups.
	Area string `json:"area,omitempty"`
	Name string `json:"name"`
	// Known lists the names that would have decoded, sorted.
	Known []string `json:"known,omitempty"`
	// Suggestion is the closest known name, if any is a plausible typo.
	Suggestion string `json:"suggestion,omitempty"`
}

// NavError is a coded error. Lookup is set for unknown routes and tabs;
// Details carries anything else worth showing, such as a file path.
type NavError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Lookup  *Lookup                `json:"lookup,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

func (e *NavError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *NavError) Unwrap() error {
	return e.Cause
}

// WithDetail sets key in Details and returns e.
func (e *NavError) WithDetail(key string, value interface{}) *NavError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON renders e for --verbose output. The cause, when present, is
// included as text.
func (e *NavError) ToJSON() string {
	type plain NavError
	out := struct {
		*plain
		Cause string `json:"cause,omitempty"`
	}{plain: (*plain)(e)}
	if e.Cause != nil {
		out.Cause = e.Cause.Error()
	}
	data, _ := json.MarshalIndent(out, "", "  ")
	return string(data)
}

func New(code ErrorCode, message string) *NavError {
	return &NavError{Code: code, Message: message}
}

// Wrap attaches code and message to err.
func Wrap(err error, code ErrorCode, message string) *NavError {
	return &NavError{Code: code, Message: message, Cause: err}
}

// As returns the first NavError in err's chain.
func As(err error) (*NavError, bool) {
	var navErr *NavError
	if stderrors.As(err, &navErr) {
		return navErr, true
	}
	return nil, false
}

// Is reports whether the first NavError in err's chain has code.
func Is(err error, code ErrorCode) bool {
	return code != "" && GetCode(err) == code
}

// GetCode returns the code of the first NavError in err's chain, or "".
func GetCode(err error) ErrorCode {
	if navErr, ok := As(err); ok {
		return navErr.Code
	}
	return ""
}

// Detail returns a Details value from the first NavError in err's chain.
func Detail(err error, key string) (interface{}, bool) {
	navErr, ok := As(err)
	if !ok {
		return nil, false
	}
	v, ok := navErr.Details[key]
	return v, ok
}

// LookupOf returns the failed lookup behind an unknown route or tab error.
func LookupOf(err error) (*Lookup, bool) {
	navErr, ok := As(err)
	if !ok || navErr.Lookup == nil {
		return nil, false
	}
	return navErr.Lookup, true
}
