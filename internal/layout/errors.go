package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrPathConflict = errors.New("path conflict")
	ErrUnknownName  = errors.New("unknown logical name")
)

// ConflictError reports a required directory segment blocked by a
// non-directory file.
type ConflictError struct {
	Name string
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s exists and is not a directory", e.Name, e.Path)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrPathConflict
}

// UnknownNameError reports a lookup of a logical name outside the fixed
// layout. This is a programmer error, not an environment condition.
type UnknownNameError struct {
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown logical name %q", e.Name)
}

func (e *UnknownNameError) Is(target error) bool {
	return target == ErrUnknownName
}
