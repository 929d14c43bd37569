package lsp

import (
	"encoding/json"
	"path/filepath"

	"jsindent/internal/config"
	"jsindent/internal/driver"
	"jsindent/internal/indent"
)

func (s *Server) handleDidChangeConfiguration(msg *rpcMessage) error {
	if len(msg.Params) == 0 {
		return nil
	}
	var params didChangeConfigurationParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		s.logf("invalid configuration: %v", err)
		return nil
	}
	s.applySettings(params.Settings)
	// settings files may have changed as well
	s.mu.Lock()
	s.resolver = driver.NewResolver(s.cliOverrides)
	s.mu.Unlock()
	return nil
}

// applySettings accepts {"jsindent": {...}} as well as the bare inner object,
// which is what most clients put into initializationOptions.
func (s *Server) applySettings(raw json.RawMessage) {
	if len(raw) == 0 {
		return
	}
	var wrapped lspSettings
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		s.logf("invalid settings: %v", err)
		return
	}
	settings := wrapped.JSIndent
	if settings == (jsindentSettings{}) {
		if err := json.Unmarshal(raw, &settings); err != nil {
			return
		}
	}

	var o config.Overrides
	o.TabStop = settings.TabStop
	o.ShiftWidth = settings.ShiftWidth
	o.ContextLines = settings.ContextLines
	if settings.TabStyle != nil {
		style, err := indent.ParseTabStyle(*settings.TabStyle)
		if err != nil {
			s.logf("ignoring tabStyle: %v", err)
		} else {
			o.Style = &style
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = o
	if settings.LSP.Trace != nil {
		s.traceLSP = *settings.LSP.Trace
	}
}

// settingsFor resolves the settings of a document: settings file, command
// line, client settings and finally the request's formatting options.
func (s *Server) settingsFor(uri string, opts *formattingOptions) (config.Settings, error) {
	s.mu.Lock()
	resolver, client, root := s.resolver, s.client, s.workspaceRoot
	s.mu.Unlock()

	path := uriToPath(uri)
	if path == "" {
		// untitled buffers pick up the workspace settings
		path = filepath.Join(root, "untitled.js")
	}
	settings, err := resolver.For(path)
	if err != nil {
		return config.Settings{}, err
	}
	if settings, err = settings.Apply(client); err != nil {
		return config.Settings{}, err
	}
	if opts == nil || opts.TabSize <= 0 {
		return settings, nil
	}
	settings.Indent.ShiftWidth = opts.TabSize
	if opts.InsertSpaces {
		settings.Indent.Style = indent.StyleSpaces
	} else {
		settings.Indent.Style = indent.StyleTabs
		settings.Indent.TabStop = opts.TabSize
	}
	return settings, settings.Validate()
}
