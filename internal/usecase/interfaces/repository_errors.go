package interfaces

import "errors"

var (
	// ErrDuplicate is returned by a Create whose row would break a uniqueness
	// rule the store enforces (one settlement per quote, one default sheet,
	// one sheet per customer).
	ErrDuplicate = errors.New("record already exists")

	// ErrWriteConflict is returned when a read-modify-write kept losing to
	// concurrent writers and gave up.
	ErrWriteConflict = errors.New("concurrent write conflict")
)
