package config

import (
	"errors"
)

var (
	// ErrNegativeMaxLines error if config generate.maxlines is negative.
	ErrNegativeMaxLines = errors.New("toml config generate.maxlines can not be negative")
)
