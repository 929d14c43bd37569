package lsp

import (
	"net/url"
	"path/filepath"
)

// uriToPath maps a file: URI (or a bare path) to an absolute filesystem
// path. Other schemes map to "" and get no .jsindent.toml lookup.
func uriToPath(uri string) string {
	u, err := url.Parse(uri)
	switch {
	case uri == "" || err != nil:
		return ""
	case u.Scheme == "":
		return absPath(filepath.FromSlash(uri))
	case u.Scheme != "file":
		return ""
	}
	// url.Parse уже раскодировал %XX в u.Path
	return absPath(filepath.FromSlash(u.Path))
}

func pathToURI(path string) string {
	if path == "" {
		return ""
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(absPath(path))}).String()
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// canonicalURI gives differently escaped spellings of one file the same
// document key. Non-file URIs (untitled:) are kept as is.
func canonicalURI(uri string) string {
	if path := uriToPath(uri); path != "" {
		return pathToURI(path)
	}
	return uri
}
