// Package output saves generated codes to one or more CSV files, one code
// per row. When the batch exceeds the configured maximum rows per file it is
// split across numbered files. Rows pass through a text encoder selected by
// IANA charset name, so files can be produced in encodings other than UTF-8.
package output
