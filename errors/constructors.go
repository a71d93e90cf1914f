package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *NavError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *NavError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// UnknownRoute reports a route name that no codec entry of l.Area matches.
func UnknownRoute(l Lookup) *NavError {
	msg := fmt.Sprintf("unknown route '%s' in area '%s'", l.Name, l.Area)
	return &NavError{Code: ErrCodeUnknownRoute, Message: withSuggestion(msg, l), Lookup: &l}
}

// UnknownTab reports a tab name that no codec entry matches.
func UnknownTab(l Lookup) *NavError {
	msg := fmt.Sprintf("unknown tab '%s'", l.Name)
	return &NavError{Code: ErrCodeUnknownTab, Message: withSuggestion(msg, l), Lookup: &l}
}

func withSuggestion(msg string, l Lookup) string {
	if l.Suggestion == "" {
		return msg
	}
	return fmt.Sprintf("%s, did you mean '%s'?", msg, l.Suggestion)
}

// SnapshotInvalid wraps a failure to decode a persisted navigation snapshot
func SnapshotInvalid(path string, err error) *NavError {
	return Wrap(err, ErrCodeSnapshotInvalid, fmt.Sprintf("invalid navigation snapshot: %s", path)).
		WithDetail("path", path)
}

// NotATerminal is returned when an interactive command runs without a TTY
func NotATerminal(stream string) *NavError {
	return New(ErrCodeNotATerminal, fmt.Sprintf("%s is not a terminal", stream)).
		WithDetail("stream", stream)
}
