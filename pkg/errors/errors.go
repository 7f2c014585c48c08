package errors

import (
	"fmt"
)

// ParseError represents tool output that a lookup strategy could not parse.
type ParseError struct {
	Strategy string
	Message  string
	Err      error
}

// NewParseError constructs a ParseError for the named strategy.
func NewParseError(strategy string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Strategy: strategy, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Strategy != "" {
		return fmt.Sprintf("parse error [%s]: %s", e.Strategy, e.Message)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// LookupError represents a failed invocation of the package-management tool.
type LookupError struct {
	Strategy string
	Err      error
}

// NewLookupError constructs a LookupError for the named strategy.
func NewLookupError(strategy string, err error) error {
	return &LookupError{Strategy: strategy, Err: err}
}

func (e *LookupError) Error() string {
	if e == nil {
		return ""
	}
	if e.Strategy != "" {
		return fmt.Sprintf("lookup error [%s]: %v", e.Strategy, e.Err)
	}
	return fmt.Sprintf("lookup error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *LookupError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
