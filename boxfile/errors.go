package boxfile

import "errors"

var (
	// ErrBadRecord signals a line that is not a box record.
	ErrBadRecord = errors.New("boxfile: malformed box record")
	// ErrEmptyBox signals a record whose corners denote no volume at all.
	ErrEmptyBox = errors.New("boxfile: record denotes an empty box")
)
