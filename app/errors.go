package app

import (
	"errors"
)

var (
	// ErrCountNotInteger is returned when the count argument is not a positive integer.
	ErrCountNotInteger = errors.New("count must be an integer greater than 0")

	// ErrLengthNotInteger is returned when the length argument is not a positive integer.
	ErrLengthNotInteger = errors.New("length must be an integer greater than 0")

	// ErrEmptyCustomCharset is returned when the interactive custom charset prompt gets an empty reply.
	ErrEmptyCustomCharset = errors.New("custom character set cannot be empty")
)
