// Package errs provides the error types shared across the application.
// Sentinels support programmatic checks with errors.Is; the typed errors
// carry enough context for a user-facing message.
package errs

import (
	"errors"
	"fmt"
)

// Common sentinel errors.
var (
	// ErrUnsupportedFile indicates a file extension the loader cannot read.
	ErrUnsupportedFile = errors.New("unsupported file type")

	// ErrEmptySheet indicates a spreadsheet with no usable data rows.
	ErrEmptySheet = errors.New("empty sheet")

	// ErrInvalidSetting indicates a settings value that failed validation.
	ErrInvalidSetting = errors.New("invalid setting")
)

// LoadError wraps a failure to read one of the input files.
type LoadError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

// Unwrap supports errors.Is and errors.As on the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a LoadError for the given file.
func NewLoadError(path string, err error) *LoadError {
	return &LoadError{Path: path, Err: err}
}

// SettingError reports a single invalid settings field.
type SettingError struct {
	Field   string
	Value   string
	Message string
}

// Error implements the error interface.
func (e *SettingError) Error() string {
	return fmt.Sprintf("setting %s=%q: %s", e.Field, e.Value, e.Message)
}

// Is makes every SettingError match ErrInvalidSetting.
func (e *SettingError) Is(target error) bool {
	return target == ErrInvalidSetting
}

// NewSettingError creates a SettingError for the given field.
func NewSettingError(field, value, message string) *SettingError {
	return &SettingError{Field: field, Value: value, Message: message}
}
