package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"jsindent/internal/driver"
	"jsindent/internal/ui"
)

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	}
	return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// shouldUseTUI decides whether the progress UI runs; auto means stdout is a
// terminal and there are enough files to be worth watching.
func shouldUseTUI(mode uiMode, files int) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	}
	return files > 1 && isTerminal(os.Stdout)
}

type reindentOutcome struct {
	results []driver.FileResult
	err     error
}

// runReindentWithUI runs ReindentPaths on files while a bubbletea program
// renders its progress events.
func runReindentWithUI(ctx context.Context, title string, files []string, opts driver.ReindentOptions) ([]driver.FileResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan reindentOutcome, 1)

	go func() {
		opts.Progress = driver.ChannelSink{Ch: events}
		results, err := driver.ReindentPaths(ctx, files, opts)
		outcomeCh <- reindentOutcome{results: results, err: err}
		close(events)
	}()

	program := tea.NewProgram(ui.NewProgressModel(title, files, events), tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// UI может выйти раньше (Ctrl+C): дочитываем события, чтобы воркеры не встали
	go func() {
		for range events {
		}
	}()
	var outcome reindentOutcome
	select {
	case outcome = <-outcomeCh:
	default:
		// UI закрыли до конца прогона
		cancel()
		outcome = <-outcomeCh
	}
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
