package generator

import (
	"errors"
)

var (
	// ErrCapacityExceeded is returned when the requested code count exceeds the
	// number of distinct codes the alphabet can represent at the given length.
	ErrCapacityExceeded = errors.New("requested count exceeds the capacity of the character set")

	// ErrEmptyAlphabet is returned when the alphabet has no characters.
	ErrEmptyAlphabet = errors.New("alphabet is empty")
)
