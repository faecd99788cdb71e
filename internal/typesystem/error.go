package typesystem

import "fmt"

// UnknownTypeError indicates a type name was not found in the registry
type UnknownTypeError struct {
	Name TypeID
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type: %s", e.Name)
}

func NewUnknownTypeError(name TypeID) *UnknownTypeError {
	return &UnknownTypeError{Name: name}
}

// DuplicateTypeError indicates a type name was registered twice
type DuplicateTypeError struct {
	Name TypeID
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("type already registered: %s", e.Name)
}

func NewDuplicateTypeError(name TypeID) *DuplicateTypeError {
	return &DuplicateTypeError{Name: name}
}

// InvalidTypeError indicates a malformed type declaration
type InvalidTypeError struct {
	Reason string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid type: %s", e.Reason)
}

func NewInvalidTypeError(reason string) *InvalidTypeError {
	return &InvalidTypeError{Reason: reason}
}
