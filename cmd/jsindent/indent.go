package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"jsindent/internal/driver"
	"jsindent/internal/indent"
	"jsindent/internal/source"
	"jsindent/internal/trace"
)

var indentCmd = &cobra.Command{
	Use:   "indent [flags] <file|-> <line>",
	Short: "Print the indentation column of one line",
	Long: `Indent computes the indentation of a 1-based line from the lines above it.
A line one past the end of the file is treated as a new empty line.
Use - to read the buffer from stdin; settings are then looked up from
the current directory or --stdin-filename.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runIndent,
}

func init() {
	registerIndentCmdFlags(indentCmd)
}

func registerIndentCmdFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("string", false, "print the indentation whitespace instead of the column")
	cmd.Flags().String("format", "text", "output format (text|json)")
	cmd.Flags().String("stdin-filename", "", "path used to find settings when reading stdin")
}

type indentPayload struct {
	Path   string `json:"path"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Indent string `json:"indent"`
}

func runIndent(cmd *cobra.Command, args []string) (err error) {
	path := args[0]
	lnum, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid line number %q", args[1])
	}
	asString, err := cmd.Flags().GetBool("string")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("unsupported format %q (must be text or json)", format)
	}
	stdinName, err := cmd.Flags().GetString("stdin-filename")
	if err != nil {
		return err
	}

	tracer, cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer func() { cleanup(err) }()

	resolver, _, err := resolverFromFlags(cmd)
	if err != nil {
		return err
	}

	settingsPath := path
	var lines []string
	if path == "-" {
		settingsPath = stdinName
		if settingsPath == "" {
			settingsPath = filepath.Join(".", "stdin.js")
		}
		lines, err = readBufferLines(cmd.InOrStdin(), settingsPath)
	} else {
		lines, err = loadLines(path)
	}
	if err != nil {
		return err
	}
	settings, err := resolver.For(settingsPath)
	if err != nil {
		return err
	}
	if lnum == len(lines)+1 {
		lines = append(lines, "")
	}

	span := trace.Begin(tracer, trace.ScopeRun, "indent", 0).Field("path", path)
	opts := []indent.Option{indent.WithTracer(tracer), indent.WithParentSpan(span.ID())}
	ws, err := driver.IndentLineString(lines, lnum, settings, opts...)
	if err != nil {
		span.End("error")
		return err
	}
	column, err := settings.Indent.Width(ws)
	if err != nil {
		span.End("error")
		return err
	}
	span.Field("column", strconv.Itoa(column)).End("")

	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(indentPayload{Path: path, Line: lnum, Column: column, Indent: ws})
	}
	if asString {
		_, err = fmt.Fprintln(out, ws)
		return err
	}
	_, err = fmt.Fprintln(out, column)
	return err
}

func loadLines(path string) ([]string, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return fs.Get(id).Lines(), nil
}

// readBufferLines reads an editor buffer, dropping a BOM and CR line endings
// the same way files loaded from disk are normalised.
func readBufferLines(r io.Reader, name string) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual(name, data)).Lines(), nil
}
