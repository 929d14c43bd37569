// Package diag defines the diagnostic model shared by the lexer, the
// configuration loader and the CLI.
//
// Diagnostics are data: Severity, a compact numeric Code with a stable string
// form, a short Message, the Primary span and optional Notes. Producers emit
// through a Reporter; BagReporter collects into a Bag that can be sorted and
// deduplicated. FormatShort renders a Bag one line per entry for the CLI.
//
// Lexer diagnostics never stop tokenization: an unterminated string still
// yields a token and the indentation engine keeps running.
package diag
