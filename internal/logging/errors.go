package logging

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrLogInit     = errors.New("log file initialization failed")
	ErrInvalidName = errors.New("invalid logger name")
)

// InitError reports a file sink that could not be opened. The handle
// returned alongside it still logs to the console.
type InitError struct {
	Name string
	Path string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("logger %s: open log file %s: %v", e.Name, e.Path, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

func (e *InitError) Is(target error) bool {
	return target == ErrLogInit
}

// NameError reports a logger name that cannot be used in a log filename.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("invalid logger name %q: must contain only letters, numbers, and underscores and not start with a number", e.Name)
}

func (e *NameError) Is(target error) bool {
	return target == ErrInvalidName
}
