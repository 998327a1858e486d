package enu

import "errors"

// Declaration errors. All of them surface synchronously at declaration time
// and are meant to be fixed by correcting the declaration; none is retryable.
var (
	// ErrDuplicateName indicates the option name is already registered on the
	// enum, including names inherited through Derive.
	ErrDuplicateName = errors.New("duplicate option name")

	// ErrReservedName indicates the option name collides with one of the
	// enum's own operations or with an accessor generated by a previous
	// option.
	ErrReservedName = errors.New("reserved option name")

	// ErrInvalidValue indicates an explicit value that is not an integer.
	ErrInvalidValue = errors.New("option value is not an integer")

	// ErrDuplicateValue indicates the resolved value (explicit or
	// auto-assigned) is already taken by another option.
	ErrDuplicateValue = errors.New("duplicate option value")

	// ErrEmptyEnum indicates a read that needs at least one option, such as
	// Default, was performed on an enum with no options declared.
	ErrEmptyEnum = errors.New("enum has no options")
)
