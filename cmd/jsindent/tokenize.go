package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jsindent/internal/diag"
	"jsindent/internal/diagfmt"
	"jsindent/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.js",
	Short: "Print the token stream the indentation engine sees",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	registerTokenizeFlags(tokenizeCmd)
}

func registerTokenizeFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Int("context", 1, "source lines shown around each diagnostic")
	cmd.Flags().String("diag-format", "pretty", "diagnostic format on stderr (pretty|short)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	diagFormat, err := cmd.Flags().GetString("diag-format")
	if err != nil {
		return fmt.Errorf("failed to get diag-format flag: %w", err)
	}
	if diagFormat != "pretty" && diagFormat != "short" {
		return fmt.Errorf("unknown diagnostic format: %s", diagFormat)
	}
	contextLines, err := cmd.Flags().GetInt("context")
	if err != nil {
		return fmt.Errorf("failed to get context flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Tokenize(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Диагностики лексера идут в stderr, токены в stdout
	switch {
	case result.Bag.Len() == 0:
	case diagFormat == "short":
		fmt.Fprint(cmd.ErrOrStderr(), diag.FormatShort(result.Bag.Items(), result.FileSet, true))
	default:
		useColor, err := colorEnabled(cmd, os.Stderr)
		if err != nil {
			return err
		}
		opts := diagfmt.PrettyOpts{Color: useColor, Context: contextLines, ShowNotes: true}
		if err := diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, opts); err != nil {
			return err
		}
	}

	if format == "json" {
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	}
	return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
}
