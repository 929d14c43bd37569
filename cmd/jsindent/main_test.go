package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsindent/internal/indent"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// execute runs sub under a fresh root so flag state never leaks between tests.
func execute(t *testing.T, sub *cobra.Command, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := &cobra.Command{Use: "jsindent", SilenceUsage: true, SilenceErrors: true}
	registerGlobalFlags(root.PersistentFlags())
	root.AddCommand(sub)

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{sub.Name()}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func newIndentCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "indent", Args: cobra.ExactArgs(2), RunE: runIndent}
	registerIndentCmdFlags(cmd)
	return cmd
}

func newReindentCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "reindent", Args: cobra.MinimumNArgs(1), RunE: runReindent}
	registerReindentFlags(cmd)
	return cmd
}

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "tokenize", Args: cobra.ExactArgs(1), RunE: runTokenize}
	registerTokenizeFlags(cmd)
	return cmd
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, " on ": uiModeOn, "off": uiModeOff} {
		got, err := readUIMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := readUIMode("sometimes")
	assert.Error(t, err)
	assert.False(t, shouldUseTUI(uiModeOff, 10))
	assert.True(t, shouldUseTUI(uiModeOn, 0))
}

func TestOverridesFromFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	addIndentFlags(cmd.Flags())
	require.NoError(t, cmd.ParseFlags([]string{"--shift-width", "2", "--tab-style", "tabs"}))

	o, err := overridesFromFlags(cmd)
	require.NoError(t, err)
	require.NotNil(t, o.ShiftWidth)
	assert.Equal(t, 2, *o.ShiftWidth)
	require.NotNil(t, o.Style)
	assert.Equal(t, indent.StyleTabs, *o.Style)
	assert.Nil(t, o.TabStop)
	assert.Nil(t, o.ContextLines)

	bad := &cobra.Command{Use: "x"}
	addIndentFlags(bad.Flags())
	require.NoError(t, bad.ParseFlags([]string{"--tab-style", "mixed"}))
	_, err = overridesFromFlags(bad)
	assert.ErrorContains(t, err, "--tab-style")
}

func TestReindentFlagsValidate(t *testing.T) {
	tests := []struct {
		name string
		rf   reindentFlags
		ok   bool
	}{
		{"plain", reindentFlags{format: "text"}, true},
		{"check json", reindentFlags{check: true, format: "json"}, true},
		{"explain", reindentFlags{check: true, explain: true, format: "text"}, true},
		{"bad format", reindentFlags{format: "yaml"}, false},
		{"stdout and diff", reindentFlags{stdout: true, diff: true, format: "text"}, false},
		{"check and stdout", reindentFlags{check: true, stdout: true, format: "text"}, false},
		{"explain without check", reindentFlags{explain: true, format: "text"}, false},
		{"diff json", reindentFlags{diff: true, format: "json"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rf.validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestIndentCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.js", "function f() {\nx();\n}\n")

	out, _, err := execute(t, newIndentCmd(), "", path, "2")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	out, _, err = execute(t, newIndentCmd(), "", "--string", path, "2")
	require.NoError(t, err)
	assert.Equal(t, "    \n", out)

	out, _, err = execute(t, newIndentCmd(), "", "--shift-width", "2", path, "2")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	// строка сразу после конца файла считается новой пустой строкой
	out, _, err = execute(t, newIndentCmd(), "", path, "4")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	out, _, err = execute(t, newIndentCmd(), "", "--format", "json", path, "2")
	require.NoError(t, err)
	var payload indentPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, indentPayload{Path: path, Line: 2, Column: 4, Indent: "    "}, payload)

	_, _, err = execute(t, newIndentCmd(), "", path, "9")
	assert.Error(t, err)
	_, _, err = execute(t, newIndentCmd(), "", path, "two")
	assert.Error(t, err)
}

func TestIndentCommandStdin(t *testing.T) {
	out, _, err := execute(t, newIndentCmd(), "\xEF\xBB\xBFif (a) {\r\nb\r\n", "-", "2")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestReindentCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	path := writeFile(t, dir, "a.js", "function f() {\nx();\n}\n")

	out, _, err := execute(t, newReindentCmd(), "", "--check", "--explain", "--ui", "off", "--color", "off", dir)
	require.ErrorIs(t, err, errChangesRequired)
	assert.Contains(t, out, "would reindent "+path+"\n")
	assert.Contains(t, out, "1 of 1 files would be reindented\n")
	assert.Contains(t, out, path+":2:1: WARNING IND6001: indented to column 0, expected 4\n")

	out, _, err = execute(t, newReindentCmd(), "", "--diff", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "-x();\n+    x();\n")

	out, _, err = execute(t, newReindentCmd(), "", "--stdout", path)
	require.NoError(t, err)
	assert.Equal(t, "function f() {\n    x();\n}\n", out)

	out, _, err = execute(t, newReindentCmd(), "", "--ui", "off", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "reindented "+path+" (1 lines)\n")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "function f() {\n    x();\n}\n", string(data))

	out, _, err = execute(t, newReindentCmd(), "", "--check", "--format", "json", dir)
	require.NoError(t, err)
	var payload []reindentJSON
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Len(t, payload, 1)
	assert.False(t, payload[0].Changed)
	assert.True(t, payload[0].Check)
}

func TestReindentCommandErrors(t *testing.T) {
	dir := t.TempDir()
	_, errOut, err := execute(t, newReindentCmd(), "", "--stdout", "--diff", dir)
	assert.Error(t, err)
	assert.Contains(t, errOut, "--stdout cannot be used with --diff")

	_, _, err = execute(t, newReindentCmd(), "", "--ui", "off", filepath.Join(dir, "missing.js"))
	assert.Error(t, err)

	writeFile(t, dir, "notes.txt", "x\n")
	_, _, err = execute(t, newReindentCmd(), "", "--ui", "off", dir)
	assert.Error(t, err)
}

func TestTokenizeCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "t.js", "s = 'open\n")

	out, errOut, err := execute(t, newTokenizeCmd(), "", "--format", "json", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"kind": "Ident"`)
	assert.Contains(t, errOut, "LEX1002")

	_, errOut, err = execute(t, newTokenizeCmd(), "", "--diag-format", "short", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, path+":1:5: ERROR LEX1002: newline in string literal\n")

	_, _, err = execute(t, newTokenizeCmd(), "", "--format", "xml", path)
	assert.Error(t, err)
}

func TestRenderVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderVersionJSON(&buf, true))
	var payload versionPayload
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.Equal(t, "jsindent", payload.Tool)
	assert.NotEmpty(t, payload.Version)
	assert.NotEmpty(t, payload.GitCommit)

	buf.Reset()
	renderVersionPretty(&buf, false)
	assert.True(t, strings.HasPrefix(buf.String(), "jsindent "))
	assert.NotContains(t, buf.String(), "commit:")
}
