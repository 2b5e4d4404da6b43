package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RefreshError reports a failed dashboard widget refresh. The widget keeps
// its previous value; the error is only shown.
type RefreshError struct {
	Widget string
	Err    error
}

// NewRefreshError constructs a RefreshError for the named widget.
func NewRefreshError(widget string, err error) error {
	return &RefreshError{Widget: widget, Err: err}
}

func (e *RefreshError) Error() string {
	if e == nil {
		return ""
	}
	if e.Widget != "" {
		return fmt.Sprintf("refresh error [%s]: %v", e.Widget, e.Err)
	}
	return fmt.Sprintf("refresh error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RefreshError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError indicates a page or component could not be rendered, for
// example when an unknown page name is requested.
type RenderError struct {
	Target  string
	Message string
	Err     error
}

// NewRenderError constructs a RenderError.
func NewRenderError(target, message string, err error) error {
	return &RenderError{Target: target, Message: message, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Target != "" {
		return fmt.Sprintf("render error [%s]: %s", e.Target, e.Message)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
