package output

import (
	"errors"
)

var (
	// ErrInvalidMaxLines is returned when the maximum rows per file is zero or negative.
	ErrInvalidMaxLines = errors.New("maxlines must be an integer greater than 0")

	// ErrUnknownEncoding is returned when the encoding name is not a known charset.
	ErrUnknownEncoding = errors.New("unknown output encoding")
)
