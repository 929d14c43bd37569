package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsindent/internal/diag"
	"jsindent/internal/source"
)

func sampleBag(path string) (*diag.Bag, *source.FileSet, source.FileID) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(path, []byte("let x = 1;\nif (y) {\n\tz();\n}\n"))
	bag := diag.NewBag(10)
	d := diag.New(diag.SevWarning, diag.IndentMismatch,
		source.Span{File: id, Start: 21, End: 22}, "indented to column 8, expected 4")
	bag.Add(d.WithNote(source.Span{File: id, Start: 18, End: 19}, "block opened here"))
	return bag, fs, id
}

func TestPrettySnippet(t *testing.T) {
	bag, fs, _ := sampleBag("test.js")
	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, bag, fs, PrettyOpts{}))

	want := "test.js:3:2: WARNING IND6001: indented to column 8, expected 4\n" +
		"3 |     z();\n" +
		"  |     ^\n"
	assert.Equal(t, want, buf.String())
}

func TestPrettyContextAndNotes(t *testing.T) {
	bag, fs, _ := sampleBag("test.js")
	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, bag, fs, PrettyOpts{Context: 1, ShowNotes: true}))

	out := buf.String()
	assert.Contains(t, out, "2 | if (y) {\n")
	assert.Contains(t, out, "4 | }\n")
	assert.Contains(t, out, "  note: test.js:2:8: block opened here\n")
	assert.NotContains(t, out, "1 | let")
}

func TestPathModes(t *testing.T) {
	bag, fs, _ := sampleBag("/home/user/project/src/test.js")

	tests := []struct {
		name string
		opts PrettyOpts
		want string
	}{
		{"auto", PrettyOpts{}, "/home/user/project/src/test.js:3:2:"},
		{"absolute", PrettyOpts{PathMode: PathModeAbsolute}, "/home/user/project/src/test.js:3:2:"},
		{"relative", PrettyOpts{PathMode: PathModeRelative, BaseDir: "/home/user/project"}, "src/test.js:3:2:"},
		{"basename", PrettyOpts{PathMode: PathModeBasename}, "test.js:3:2:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Pretty(&buf, bag, fs, tt.opts))
			assert.True(t, strings.HasPrefix(buf.String(), tt.want), buf.String())
		})
	}
}

func TestPrettyColor(t *testing.T) {
	bag, fs, _ := sampleBag("test.js")
	var plain, colored bytes.Buffer
	require.NoError(t, Pretty(&plain, bag, fs, PrettyOpts{}))
	require.NoError(t, Pretty(&colored, bag, fs, PrettyOpts{Color: true}))
	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, colored.String(), "\x1b[")
}

func TestPrettyNilInputs(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Pretty(&buf, nil, nil, PrettyOpts{}))
	assert.Zero(t, buf.Len())
}
