package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"jsindent/internal/config"
	"jsindent/internal/driver"
	"jsindent/internal/indent"
)

func addIndentFlags(fs *pflag.FlagSet) {
	fs.Int("tab-stop", 0, "override tab_stop from .jsindent.toml")
	fs.Int("shift-width", 0, "override shift_width from .jsindent.toml")
	fs.String("tab-style", "", "override tab_style (spaces|tabs|infer)")
	fs.Int("context-lines", 0, "override context_lines (0 = whole file above the line)")
}

// overridesFromFlags collects the indentation flags the user actually set.
// Unset flags leave .jsindent.toml values in place.
func overridesFromFlags(cmd *cobra.Command) (config.Overrides, error) {
	var o config.Overrides
	flags := cmd.Flags()

	intFlag := func(name string) (*int, error) {
		if !flags.Changed(name) {
			return nil, nil
		}
		v, err := flags.GetInt(name)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}

	var err error
	if o.TabStop, err = intFlag("tab-stop"); err != nil {
		return o, err
	}
	if o.ShiftWidth, err = intFlag("shift-width"); err != nil {
		return o, err
	}
	if o.ContextLines, err = intFlag("context-lines"); err != nil {
		return o, err
	}
	if flags.Changed("tab-style") {
		raw, err := flags.GetString("tab-style")
		if err != nil {
			return o, err
		}
		style, err := indent.ParseTabStyle(raw)
		if err != nil {
			return o, fmt.Errorf("--tab-style: %w", err)
		}
		o.Style = &style
	}
	return o, nil
}

func resolverFromFlags(cmd *cobra.Command) (*driver.Resolver, config.Overrides, error) {
	o, err := overridesFromFlags(cmd)
	if err != nil {
		return nil, o, err
	}
	return driver.NewResolver(o), o, nil
}
