package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsindent/internal/lexer"
	"jsindent/internal/source"
)

func lexText(text string) (*source.FileSet, *lexer.Lexer) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.js", []byte(text)))
	return fs, lexer.New(file, lexer.Options{})
}

func TestFormatTokensPretty(t *testing.T) {
	fs, lx := lexText("a = 1")
	var buf bytes.Buffer
	require.NoError(t, FormatTokensPretty(&buf, lx.All(), fs))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, `  1: Ident           "a" at 1:1-1:2`, lines[0])
	assert.Equal(t, `  3: Op:=            "=" at 1:3-1:4`, lines[2])
	assert.Equal(t, `  5: NumberLit       "1" at 1:5-1:6`, lines[4])
}

func TestFormatTokensPrettyAlignsWideText(t *testing.T) {
	fs, lx := lexText("x = '日本'")
	var buf bytes.Buffer
	require.NoError(t, FormatTokensPretty(&buf, lx.All(), fs))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	// "'日本'" в кавычках занимает 8 колонок, остальные дополняются до неё
	assert.Equal(t, `  1: Ident           "x"      at 1:1-1:2`, lines[0])
	assert.True(t, strings.HasSuffix(lines[4], `"'日本'" at 1:5-1:13`), lines[4])
}

func TestFormatTokensJSON(t *testing.T) {
	fs, lx := lexText("f(\n)")
	var buf bytes.Buffer
	require.NoError(t, FormatTokensJSON(&buf, lx.All(), fs))

	var got []TokenOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 4)
	assert.Equal(t, "Ident", got[0].Kind)
	assert.Equal(t, "Newline", got[2].Kind)
	assert.Equal(t, source.LineCol{Line: 2, Col: 1}, got[3].Start)
	assert.Equal(t, "Op:)", got[3].Kind)
}
