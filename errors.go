package formguard

import "errors"

// Predefined errors for the formguard package.
var (
	// ErrUnknownRule is returned when a class token names a validation rule
	// that is neither built in nor present in the expression table.
	ErrUnknownRule = errors.New("unknown validation rule")

	// ErrUnknownFileGroup is returned when a file rule references a group
	// that is not present in the file-type table.
	ErrUnknownFileGroup = errors.New("unknown file-type group")

	// ErrNoSuchField is returned when an error element's derived field name
	// does not resolve to any form control.
	ErrNoSuchField = errors.New("no form control for field")

	// ErrBadPattern is returned when a table file declares an expression
	// that does not compile.
	ErrBadPattern = errors.New("invalid expression pattern")

	// ErrFocusFailed is returned when focus could not be moved to any member
	// of the first failing field's control group.
	ErrFocusFailed = errors.New("focus failed")
)
