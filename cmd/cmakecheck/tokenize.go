package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cmakecheck/internal/diagfmt"
	"cmakecheck/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] script.cmake",
	Short: "Tokenize a CMake script",
	Long:  `Tokenize breaks down a CMake script into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Tokenize(filePath, 0)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Lex diagnostics go to stderr so the token dump stays machine-readable.
	if result.Bag.HasErrors() {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color: useColor(cmd, os.Stderr),
		})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
