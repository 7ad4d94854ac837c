package cgen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidType is matched by every *InvalidTypeError.
	ErrInvalidType = errors.New("invalid type")

	// ErrInvalidProperty reports a property setter given an unusable value.
	ErrInvalidProperty = errors.New("invalid property value")
)

// InvalidTypeError is returned when a declaration is given a base type
// outside the primitive type whitelist.
type InvalidTypeError struct {
	Type string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("wrong type: %q", e.Type)
}

// Is reports whether target is ErrInvalidType.
func (e *InvalidTypeError) Is(target error) bool {
	return target == ErrInvalidType
}
