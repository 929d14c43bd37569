package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"jsindent/internal/indent"
)

// FileName is the per-project settings file looked up from the target's directory.
const FileName = ".jsindent.toml"

// DefaultContextLines bounds how many preceding lines an indentation query sees.
const DefaultContextLines = 100

// ErrInvalid is wrapped by every settings validation error.
var ErrInvalid = errors.New("invalid settings")

// Settings is the resolved configuration for one file.
type Settings struct {
	Indent       indent.Config
	ContextLines int // 0 = from file start
	Extensions   []string
	Path         string // settings file it came from, "" for defaults
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Indent:       indent.DefaultConfig(),
		ContextLines: DefaultContextLines,
		Extensions:   []string{".js", ".mjs", ".cjs", ".jsx"},
	}
}

type fileConfig struct {
	Indent indentSection `toml:"indent"`
	Files  filesSection  `toml:"files"`
}

type indentSection struct {
	TabStop      int             `toml:"tab_stop"`
	ShiftWidth   int             `toml:"shift_width"`
	TabStyle     indent.TabStyle `toml:"tab_style"`
	ContextLines int             `toml:"context_lines"`
}

type filesSection struct {
	Extensions []string `toml:"extensions"`
}

// Find walks up from startDir to locate FileName.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes a settings file over the defaults. Keys the file does not set
// keep their default values.
func Load(path string) (Settings, error) {
	def := Default()
	raw := fileConfig{
		Indent: indentSection{
			TabStop:      def.Indent.TabStop,
			ShiftWidth:   def.Indent.ShiftWidth,
			TabStyle:     def.Indent.Style,
			ContextLines: def.ContextLines,
		},
		Files: filesSection{Extensions: def.Extensions},
	}
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Settings{}, fmt.Errorf("%s: %w: unknown keys %s", path, ErrInvalid, strings.Join(keys, ", "))
	}

	s := Settings{
		Indent: indent.Config{
			TabStop:    raw.Indent.TabStop,
			ShiftWidth: raw.Indent.ShiftWidth,
			Style:      raw.Indent.TabStyle,
		},
		ContextLines: raw.Indent.ContextLines,
		Extensions:   raw.Files.Extensions,
		Path:         path,
	}
	if meta.IsDefined("files", "extensions") {
		s.Extensions = normalizeExtensions(raw.Files.Extensions)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Resolve returns the settings for files under startDir: the nearest
// settings file if there is one, defaults otherwise.
func Resolve(startDir string) (Settings, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Settings{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks the indentation settings and the context window.
func (s Settings) Validate() error {
	if err := s.Indent.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if s.ContextLines < 0 {
		return fmt.Errorf("%w: context_lines must not be negative, got %d", ErrInvalid, s.ContextLines)
	}
	if len(s.Extensions) == 0 {
		return fmt.Errorf("%w: files.extensions must not be empty", ErrInvalid)
	}
	return nil
}

// Matches reports whether path has one of the configured extensions.
func (s Settings) Matches(path string) bool {
	return slices.Contains(s.Extensions, strings.ToLower(filepath.Ext(path)))
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if !slices.Contains(out, e) {
			out = append(out, e)
		}
	}
	return out
}
