package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto uses the path as it was given.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative // relative to PrettyOpts.BaseDir
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	Context   int // строки исходника до и после строки с ошибкой
	PathMode  PathMode
	BaseDir   string // для PathModeRelative; пусто - текущая директория
	ShowNotes bool
}
