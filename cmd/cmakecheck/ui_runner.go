package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"cmakecheck/internal/driver"
	"cmakecheck/internal/ui"
)

// wantProgressUI maps the --ui flag to a concrete decision for this run.
// "auto" turns the progress display on only when stdout is a terminal.
func wantProgressUI(value string) (bool, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return isTerminal(os.Stdout), nil
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

type checkOutcome struct {
	result *driver.RunResult
	err    error
}

// channelObserver forwards driver progress into the Bubble Tea model. Paths
// are shown relative to the checked root.
type channelObserver struct {
	ch   chan ui.Event
	root string
}

func (o *channelObserver) OnStart(int) {}

func (o *channelObserver) OnFileStart(path string) {
	o.ch <- ui.Event{Path: displayPath(o.root, path), Status: ui.StatusChecking}
}

func (o *channelObserver) OnFileDone(path string, findings int, parseFailed bool) {
	status := ui.StatusClean
	switch {
	case parseFailed:
		status = ui.StatusFailed
	case findings > 0:
		status = ui.StatusIssues
	}
	o.ch <- ui.Event{Path: displayPath(o.root, path), Status: status, Findings: findings}
}

func (o *channelObserver) OnFinish() { close(o.ch) }

func runCheckWithUI(ctx context.Context, title string, files []string, opts driver.Options) (*driver.RunResult, error) {
	events := make(chan ui.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	opts.Observer = &channelObserver{ch: events, root: opts.Root}
	go func() {
		res, err := driver.CheckDir(ctx, opts)
		outcomeCh <- checkOutcome{result: res, err: err}
	}()

	display := make([]string, len(files))
	for i, f := range files {
		display[i] = displayPath(opts.Root, f)
	}

	model := ui.NewProgressModel(title, display, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}

func displayPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return path
}
