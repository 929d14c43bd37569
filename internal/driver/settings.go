package driver

import (
	"path/filepath"
	"sync"

	"jsindent/internal/config"
)

// Resolver finds the settings for a file: nearest .jsindent.toml, then
// overrides. Lookups are cached per directory.
type Resolver struct {
	overrides config.Overrides
	fixed     *config.Settings

	mu    sync.Mutex
	byDir map[string]resolved
}

type resolved struct {
	settings config.Settings
	err      error
}

// NewResolver returns a resolver that applies o on top of whatever settings
// file is found.
func NewResolver(o config.Overrides) *Resolver {
	return &Resolver{overrides: o, byDir: make(map[string]resolved)}
}

// FixedResolver always returns s, without looking at the filesystem.
func FixedResolver(s config.Settings) *Resolver {
	return &Resolver{fixed: &s, byDir: make(map[string]resolved)}
}

// For returns the settings that apply to path.
func (r *Resolver) For(path string) (config.Settings, error) {
	if r.fixed != nil {
		return *r.fixed, nil
	}
	dir := filepath.Dir(path)
	r.mu.Lock()
	defer r.mu.Unlock()
	if res, ok := r.byDir[dir]; ok {
		return res.settings, res.err
	}
	s, err := config.Resolve(dir)
	if err == nil {
		s, err = s.Apply(r.overrides)
	}
	r.byDir[dir] = resolved{settings: s, err: err}
	return s, err
}

var noOverrides config.Overrides
