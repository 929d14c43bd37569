package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"jsindent/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "jsindent",
	Short: "Indentation engine for JavaScript-like sources",
	Long: `jsindent computes the indentation of a line from the code above it,
reindents whole files and serves the same engine to editors over LSP`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(indentCmd)
	rootCmd.AddCommand(reindentCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(lspCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	registerGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		on, err := colorEnabled(cmd, os.Stdout)
		if err != nil {
			return err
		}
		color.NoColor = !on
		return nil
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerGlobalFlags adds the flags every subcommand reads from the root.
func registerGlobalFlags(pf *pflag.FlagSet) {
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	addIndentFlags(pf)
	addTraceFlags(pf)
	addProfileFlags(pf)
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// colorEnabled resolves --color for output going to f.
func colorEnabled(cmd *cobra.Command, f *os.File) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto", "":
		return isTerminal(f) && os.Getenv("NO_COLOR") == "", nil
	}
	return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
}
