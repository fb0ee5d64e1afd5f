package charset

import (
	"errors"
)

var (
	// ErrInvalidCharset is returned when the charset name is not one of the known base sets.
	ErrInvalidCharset = errors.New("invalid charset")

	// ErrInvalidCase is returned when the case option is not lower, upper or mixed.
	ErrInvalidCase = errors.New("invalid case")

	// ErrEmptyCustomSet is returned when the custom charset is selected but no characters were supplied.
	ErrEmptyCustomSet = errors.New("custom character set is empty")

	// ErrDuplicateChars is returned when the custom character set contains the same character twice.
	ErrDuplicateChars = errors.New("custom character set contains duplicate characters")

	// ErrNonPrintableChars is returned when a supplied character set contains non-printable characters.
	ErrNonPrintableChars = errors.New("character set contains non-printable characters")

	// ErrEmptySet is returned when the resulting alphabet is empty after applying omit and add.
	ErrEmptySet = errors.New("used character set is empty")
)
