// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "codeminter",
	Short: "codeminter generates batches of unique random codes",
	Long: `codeminter generates a requested quantity of unique random codes of a
fixed length from a configurable character set and saves them to one or
more CSV files.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
