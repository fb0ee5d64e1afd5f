package config

import (
	"github.com/codeminter/codeminter/internal/logger"
)

// Generate holds the defaults applied to generate runs when the
// corresponding command line flag is not set.
type Generate struct {
	Charset   string // base character set name
	Case      string // letter case for alpha characters
	Encoding  string // output file encoding
	MaxLines  int    // maximum codes per file, 0 = all in one file
	OutputDir string // directory the code files are written to
}

// Config overall data structure.
type Config struct {
	DevMode  bool // enable dev mode for development
	Title    string
	Generate Generate
	Log      logger.Log
}
