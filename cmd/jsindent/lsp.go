package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jsindent/internal/lsp"
)

var lspCmd = &cobra.Command{
	Use:   "lsp",
	Short: "Run the jsindent language server over stdio",
	Long: `The server answers onTypeFormatting, formatting and rangeFormatting and the
custom jsindent/indent request. Indentation flags given here are defaults
that client settings and per-request formatting options override.`,
	SilenceUsage: true,
	RunE:         runLSP,
}

func runLSP(cmd *cobra.Command, _ []string) (err error) {
	overrides, err := overridesFromFlags(cmd)
	if err != nil {
		return err
	}
	stopProfiling, err := startProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	tracer, cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer func() { cleanup(err) }()

	server := lsp.NewServer(os.Stdin, os.Stdout, lsp.ServerOptions{
		Overrides: overrides,
		Tracer:    tracer,
		Log:       os.Stderr,
	})
	if err := server.Run(cmd.Context()); err != nil {
		if errors.Is(err, lsp.ErrExit) {
			return nil
		}
		if errors.Is(err, lsp.ErrExitWithoutShutdown) {
			return fmt.Errorf("lsp exit without shutdown")
		}
		return err
	}
	return nil
}
