package tokenize

import "errors"

var (
	// ErrRead is returned when a corpus file cannot be read.
	ErrRead = errors.New("corpus read failed")
)
