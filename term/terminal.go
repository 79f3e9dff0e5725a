// Copyright © 2025 Inkwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/terminal.go
// Summary: Terminal - one shell session wired to an in-memory screen.
// Usage: NewTerminal, call Tick from the host loop, render from Snapshot.

package term

import (
	"log"
	"os"
	"os/exec"

	"github.com/inkwell-md/inkterm/term/parser"
)

// Terminal composes a PTY session with an escape parser and a screen
// buffer. It is the single type most hosts need: feed it ticks, give it
// keys, and render its snapshots.
type Terminal struct {
	session *Session
	screen  *parser.Screen
	parser  *parser.Parser
	index   *parser.SearchIndex

	title string
}

// Option configures a Terminal before the shell is spawned.
type Option func(*config)

type config struct {
	shell         string
	maxScrollback int
	indexPath     string
}

// WithShell overrides the shell command to launch.
func WithShell(shell string) Option {
	return func(c *config) { c.shell = shell }
}

// WithMaxScrollback bounds the number of retained scrollback lines.
func WithMaxScrollback(n int) Option {
	return func(c *config) { c.maxScrollback = n }
}

// WithSearchIndex persists archived scrollback lines to a searchable
// database at the given path. ":memory:" keeps the index ephemeral.
func WithSearchIndex(path string) Option {
	return func(c *config) { c.indexPath = path }
}

// DefaultShell picks $SHELL when set, falling back to bash then sh.
func DefaultShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	if path, err := exec.LookPath("bash"); err == nil {
		return path
	}
	return "/bin/sh"
}

// NewTerminal spawns the shell and assembles the emulation pipeline.
func NewTerminal(cols, rows int, opts ...Option) (*Terminal, error) {
	cfg := config{
		shell:         DefaultShell(),
		maxScrollback: 10000,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Terminal{}

	var index *parser.SearchIndex
	if cfg.indexPath != "" {
		var err error
		index, err = parser.OpenSearchIndex(cfg.indexPath)
		if err != nil {
			return nil, err
		}
	}

	screenOpts := []parser.Option{
		parser.WithMaxScrollback(cfg.maxScrollback),
		parser.WithTitleChangeHandler(func(title string) { t.title = title }),
	}
	if index != nil {
		screenOpts = append(screenOpts, parser.WithArchiveHook(func(l parser.Line) {
			if err := index.IndexLine(l.Text()); err != nil {
				log.Printf("Terminal: scrollback index: %v", err)
			}
		}))
	}

	session, err := Open(cfg.shell, cols, rows)
	if err != nil {
		if index != nil {
			index.Close()
		}
		return nil, err
	}

	t.session = session
	t.screen = parser.NewScreen(cols, rows, screenOpts...)
	t.parser = parser.NewParser(t.screen)
	t.index = index
	return t, nil
}

// Tick drains pending shell output into the screen. Returns true if any
// output was processed, so hosts can skip redraws on idle ticks.
func (t *Terminal) Tick() bool {
	data := t.session.ReadAvailable()
	if len(data) == 0 {
		return false
	}
	t.parser.Process(data)
	return true
}

// Write passes raw bytes (typed text) through to the shell.
func (t *Terminal) Write(data []byte) error {
	return t.session.Write(data)
}

// SendKey encodes and delivers a special key.
func (t *Terminal) SendKey(k Key) error {
	return t.session.SendKey(k)
}

// Resize grows or shrinks both the PTY and the screen buffer.
func (t *Terminal) Resize(cols, rows int) error {
	if err := t.session.Resize(cols, rows); err != nil {
		return err
	}
	t.screen.Resize(cols, rows)
	return nil
}

// Alive reports whether the shell process is still running.
func (t *Terminal) Alive() bool { return t.session.Alive() }

// Title returns the window title last set by the application, if any.
func (t *Terminal) Title() string { return t.title }

// Screen exposes the underlying screen buffer for direct inspection.
func (t *Terminal) Screen() *parser.Screen { return t.screen }

// SearchScrollback queries the persistent index, newest lines first.
// Returns nil when no index was configured.
func (t *Terminal) SearchScrollback(query string, limit int) ([]parser.SearchResult, error) {
	if t.index == nil {
		return nil, nil
	}
	return t.index.Search(query, limit)
}

// Snapshot is a detached copy of the visible screen state, safe to hand
// to a renderer while the terminal keeps processing.
type Snapshot struct {
	Lines         []parser.Line
	Cols, Rows    int
	CursorX       int
	CursorY       int
	CursorVisible bool
	Title         string
}

// Snapshot deep-copies the current visible state.
func (t *Terminal) Snapshot() Snapshot {
	cols, rows := t.screen.Size()
	x, y := t.screen.Cursor()
	snap := Snapshot{
		Lines:         make([]parser.Line, rows),
		Cols:          cols,
		Rows:          rows,
		CursorX:       x,
		CursorY:       y,
		CursorVisible: t.screen.CursorVisible(),
		Title:         t.title,
	}
	for i := 0; i < rows; i++ {
		snap.Lines[i] = t.screen.Row(i).Clone()
	}
	return snap
}

// Close tears down the shell session and any search index.
func (t *Terminal) Close() error {
	err := t.session.Close()
	if t.index != nil {
		if cerr := t.index.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
