// Copyright © 2025 Inkwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/parser/testharness.go
// Summary: Test harness for control sequence testing.
// Usage: Used by test files to send sequences and verify buffer state.

package parser

import (
	"strings"
	"testing"
)

// TestHarness provides utilities for testing Screen control sequences.
type TestHarness struct {
	screen *Screen
	parser *Parser
}

// NewTestHarness creates a harness with the specified terminal size.
func NewTestHarness(width, height int, opts ...Option) *TestHarness {
	screen := NewScreen(width, height, opts...)
	return &TestHarness{screen: screen, parser: NewParser(screen)}
}

// Screen returns the underlying screen buffer.
func (h *TestHarness) Screen() *Screen { return h.screen }

// Parser returns the underlying parser.
func (h *TestHarness) Parser() *Parser { return h.parser }

// SendSeq sends a control sequence string through the parser.
// Example: h.SendSeq("\x1b[5A") sends "cursor up 5".
func (h *TestHarness) SendSeq(seq string) {
	h.parser.Process([]byte(seq))
}

// SendText sends printable text through the parser.
func (h *TestHarness) SendText(text string) {
	h.parser.Process([]byte(text))
}

// Cell returns the cell at (x, y), or a zero cell when out of bounds.
func (h *TestHarness) Cell(x, y int) Cell {
	if y < 0 || y >= h.screen.height || x < 0 || x >= h.screen.width {
		return Cell{}
	}
	return h.screen.grid[y].Cells[x]
}

// Cursor returns the current cursor position (0-based).
func (h *TestHarness) Cursor() (x, y int) {
	return h.screen.Cursor()
}

// RowText returns the text content of a row, trailing spaces trimmed.
func (h *TestHarness) RowText(y int) string {
	return h.screen.Row(y).Text()
}

// AssertCell verifies the cell at (x, y) against an expected value.
func (h *TestHarness) AssertCell(t *testing.T, x, y int, expected Cell) {
	t.Helper()
	actual := h.Cell(x, y)
	if actual.Rune != expected.Rune {
		t.Errorf("Cell[%d,%d] rune: expected %q, got %q", x, y, expected.Rune, actual.Rune)
	}
	if actual.FG != expected.FG {
		t.Errorf("Cell[%d,%d] fg: expected %+v, got %+v", x, y, expected.FG, actual.FG)
	}
	if actual.BG != expected.BG {
		t.Errorf("Cell[%d,%d] bg: expected %+v, got %+v", x, y, expected.BG, actual.BG)
	}
	if actual.Attr != expected.Attr {
		t.Errorf("Cell[%d,%d] attr: expected %v, got %v", x, y, expected.Attr, actual.Attr)
	}
}

// AssertText verifies that text appears starting at (x, y).
func (h *TestHarness) AssertText(t *testing.T, x, y int, expected string) {
	t.Helper()
	var b strings.Builder
	for i := range expected {
		b.WriteRune(h.Cell(x+i, y).Rune)
	}
	if got := b.String(); got != expected {
		t.Errorf("Text at (%d,%d): expected %q, got %q", x, y, expected, got)
	}
}

// AssertLineBlank verifies every cell of a row is a default blank.
func (h *TestHarness) AssertLineBlank(t *testing.T, y int) {
	t.Helper()
	for x := 0; x < h.screen.width; x++ {
		c := h.Cell(x, y)
		if c.Rune != ' ' && c.Rune != 0 {
			t.Errorf("Line %d not blank: cell %d holds %q", y, x, c.Rune)
			return
		}
	}
}

// AssertCursor verifies the cursor position.
func (h *TestHarness) AssertCursor(t *testing.T, x, y int) {
	t.Helper()
	gx, gy := h.Cursor()
	if gx != x || gy != y {
		t.Errorf("Cursor: expected (%d,%d), got (%d,%d)", x, y, gx, gy)
	}
}

// AssertInvariants verifies the structural invariants that must hold after
// every operation: grid geometry, cursor bounds, region bounds, and the
// scrollback cap.
func (h *TestHarness) AssertInvariants(t *testing.T) {
	t.Helper()
	s := h.screen
	if len(s.grid) != s.height {
		t.Fatalf("grid has %d rows, declared %d", len(s.grid), s.height)
	}
	for y, line := range s.grid {
		if len(line.Cells) != s.width {
			t.Fatalf("row %d has %d cells, declared %d", y, len(line.Cells), s.width)
		}
	}
	if s.cursorX < 0 || s.cursorX >= s.width || s.cursorY < 0 || s.cursorY >= s.height {
		t.Fatalf("cursor (%d,%d) out of %dx%d bounds", s.cursorX, s.cursorY, s.width, s.height)
	}
	if s.marginTop < 0 || s.marginTop > s.marginBottom || s.marginBottom >= s.height {
		t.Fatalf("scroll region (%d,%d) invalid for height %d", s.marginTop, s.marginBottom, s.height)
	}
	if s.maxScrollback > 0 && len(s.scrollback) > s.maxScrollback {
		t.Fatalf("scrollback %d exceeds cap %d", len(s.scrollback), s.maxScrollback)
	}
}
