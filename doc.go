// Package main provides the entry point for the codeminter command line tool.
// It generates batches of unique random codes from a configurable character
// set and writes them to one or more CSV files, splitting the batch across
// files when a maximum row count per file is configured. Typical uses are
// redemption, voucher and ticket code batches.
package main
