// Copyright © 2025 Inkwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/parser/screen.go
// Summary: Screen buffer core - grid, cursor, scroll region and pending style.
// Usage: Mutated exclusively by the escape-sequence parser; read by renderers.
// Notes: All operations re-establish the grid/cursor/region invariants.

package parser

import (
	"github.com/mattn/go-runewidth"
)

const defaultMaxScrollback = 10000

// Screen holds the visible grid of styled cells, the cursor, the active
// scroll region, the bounded scrollback and the pending style applied to
// future writes.
type Screen struct {
	width, height    int
	grid             []Line
	scrollback       []Line
	maxScrollback    int
	cursorX, cursorY int
	savedX, savedY   int
	savedSet         bool
	marginTop        int
	marginBottom     int
	curFG, curBG     Color
	curAttr          Attribute
	wrapNext         bool
	cursorVisible    bool

	// TitleChanged is invoked when an OSC title sequence is parsed.
	TitleChanged func(string)

	onArchive func(Line)
}

// Option configures a Screen.
type Option func(*Screen)

// WithMaxScrollback bounds the scrollback line count.
func WithMaxScrollback(n int) Option {
	return func(s *Screen) {
		if n >= 0 {
			s.maxScrollback = n
		}
	}
}

// WithArchiveHook sets a callback invoked for every line that moves from
// the visible grid into scrollback.
func WithArchiveHook(fn func(Line)) Option {
	return func(s *Screen) { s.onArchive = fn }
}

// WithTitleChangeHandler sets a callback for OSC title changes.
func WithTitleChangeHandler(fn func(string)) Option {
	return func(s *Screen) { s.TitleChanged = fn }
}

// NewScreen creates a blank screen of the given size.
func NewScreen(width, height int, opts ...Option) *Screen {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s := &Screen{
		width:         width,
		height:        height,
		maxScrollback: defaultMaxScrollback,
		curFG:         DefaultFG,
		curBG:         DefaultBG,
		cursorVisible: true,
		marginTop:     0,
		marginBottom:  height - 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.grid = make([]Line, height)
	for i := range s.grid {
		s.grid[i] = newLine(width)
	}
	return s
}

// Size returns (cols, rows).
func (s *Screen) Size() (int, int) { return s.width, s.height }

// Cursor returns the cursor position (col, row).
func (s *Screen) Cursor() (int, int) { return s.cursorX, s.cursorY }

// CursorVisible reports whether the cursor should be drawn.
func (s *Screen) CursorVisible() bool { return s.cursorVisible }

// ScrollRegion returns the active scroll region (top, bottom), 0-based inclusive.
func (s *Screen) ScrollRegion() (int, int) { return s.marginTop, s.marginBottom }

// Row returns the line at the given row. Out-of-range rows yield a blank line.
func (s *Screen) Row(y int) Line {
	if y < 0 || y >= s.height {
		return newLine(s.width)
	}
	return s.grid[y]
}

// Grid returns the visible lines. The slice is live; callers that need a
// stable view should copy it (see Terminal.Snapshot).
func (s *Screen) Grid() []Line { return s.grid }

// Scrollback returns the archived lines, oldest first.
func (s *Screen) Scrollback() []Line { return s.scrollback }

// ScrollbackLen returns the number of archived lines.
func (s *Screen) ScrollbackLen() int { return len(s.scrollback) }

// put writes a rune at the cursor with the pending style, advancing the
// cursor and wrapping/scrolling on overflow. Wrapping respects the active
// scroll region, the same as linefeed and explicit scrolls.
func (s *Screen) put(r rune) {
	w := runewidth.RuneWidth(r)
	if w <= 0 {
		return // combining and zero-width runes are not stored
	}
	if s.wrapNext {
		s.wrapToNextRow()
	}
	if w == 2 && s.cursorX == s.width-1 {
		// A wide rune cannot straddle the right edge; pad and wrap first.
		s.grid[s.cursorY].Cells[s.cursorX] = s.styledBlank()
		s.wrapToNextRow()
	}
	s.grid[s.cursorY].Cells[s.cursorX] = Cell{
		Rune: r, FG: s.curFG, BG: s.curBG, Attr: s.curAttr, Wide: w == 2,
	}
	if w == 2 && s.cursorX+1 < s.width {
		spacer := s.styledBlank()
		spacer.Rune = 0
		s.grid[s.cursorY].Cells[s.cursorX+1] = spacer
	}
	if s.cursorX+w > s.width-1 {
		s.cursorX = s.width - 1
		s.wrapNext = true
	} else {
		s.cursorX += w
	}
}

// wrapToNextRow moves to column 0 of the next row, scrolling the active
// region when the cursor sits on its bottom row, and marks the new row as
// a wrapped continuation.
func (s *Screen) wrapToNextRow() {
	s.wrapNext = false
	s.cursorX = 0
	s.LineFeed()
	s.grid[s.cursorY].Wrapped = true
}

// styledBlank returns a space cell carrying the pending style.
func (s *Screen) styledBlank() Cell {
	return Cell{Rune: ' ', FG: s.curFG, BG: s.curBG, Attr: s.curAttr}
}

// LineFeed moves the cursor down one row, scrolling the active region up
// when the cursor is on its bottom row. The column is preserved.
func (s *Screen) LineFeed() {
	s.wrapNext = false
	if s.cursorY == s.marginBottom {
		s.ScrollUp(1)
		return
	}
	if s.cursorY < s.height-1 {
		s.cursorY++
	}
}

// ReverseIndex moves the cursor up one row, scrolling the active region
// down when the cursor is on its top row.
func (s *Screen) ReverseIndex() {
	s.wrapNext = false
	if s.cursorY == s.marginTop {
		s.ScrollDown(1)
		return
	}
	if s.cursorY > 0 {
		s.cursorY--
	}
}

// CarriageReturn moves the cursor to column 0.
func (s *Screen) CarriageReturn() {
	s.wrapNext = false
	s.cursorX = 0
}

// Backspace moves the cursor one column left, floored at 0.
func (s *Screen) Backspace() {
	s.wrapNext = false
	if s.cursorX > 0 {
		s.cursorX--
	}
}

// Tab advances to the next multiple-of-8 column, clamped to the last column.
func (s *Screen) Tab() {
	s.wrapNext = false
	next := (s.cursorX/8 + 1) * 8
	if next > s.width-1 {
		next = s.width - 1
	}
	s.cursorX = next
}

// SetCursor moves the cursor to an absolute position, clamped to bounds.
func (s *Screen) SetCursor(col, row int) {
	s.wrapNext = false
	s.cursorX = clamp(col, 0, s.width-1)
	s.cursorY = clamp(row, 0, s.height-1)
}

// MoveCursor moves the cursor relatively, clamped to bounds.
func (s *Screen) MoveCursor(dcol, drow int) {
	s.SetCursor(s.cursorX+dcol, s.cursorY+drow)
}

// SaveCursor records the cursor position, replacing any previous save.
func (s *Screen) SaveCursor() {
	s.savedX, s.savedY = s.cursorX, s.cursorY
	s.savedSet = true
}

// RestoreCursor returns the cursor to the most recently saved position.
// Without a prior save it is a no-op.
func (s *Screen) RestoreCursor() {
	if !s.savedSet {
		return
	}
	s.SetCursor(s.savedX, s.savedY)
}

// SetScrollRegion sets the active scroll region, 0-based inclusive, clamped
// to the grid. Degenerate regions (top >= bottom after clamping) are
// ignored entirely, leaving both the region and the cursor untouched; only
// an accepted region homes the cursor. This matches xterm's DECSTBM.
func (s *Screen) SetScrollRegion(top, bottom int) {
	if top < 0 {
		top = 0
	}
	if bottom > s.height-1 {
		bottom = s.height - 1
	}
	if top >= bottom {
		return
	}
	s.marginTop, s.marginBottom = top, bottom
	s.SetCursor(0, 0)
}

// ResetScrollRegion restores the full-screen scroll region.
func (s *Screen) ResetScrollRegion() {
	s.marginTop, s.marginBottom = 0, s.height-1
}

// Reset performs a full terminal reset (RIS): clears the grid, homes the
// cursor, resets the pending style and scroll region.
func (s *Screen) Reset() {
	s.EraseScreen()
	s.resetAttributes()
	s.ResetScrollRegion()
	s.savedSet = false
	s.cursorVisible = true
	s.wrapNext = false
	s.SetCursor(0, 0)
}

func (s *Screen) setTitle(title string) {
	if s.TitleChanged != nil {
		s.TitleChanged(title)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
