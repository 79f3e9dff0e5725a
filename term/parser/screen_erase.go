// Copyright © 2025 Inkwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/parser/screen_erase.go
// Summary: Erase operations - screen, line, and character erasing.
// Usage: Part of the Screen buffer.

package parser

// EraseLineMode handles EL (Erase in Line): 0 = cursor to end,
// 1 = start to cursor, 2 = whole line.
func (s *Screen) EraseLineMode(mode int) {
	s.wrapNext = false
	switch mode {
	case 0:
		s.eraseCells(s.cursorY, s.cursorX, s.width)
	case 1:
		s.eraseCells(s.cursorY, 0, s.cursorX+1)
	case 2:
		s.eraseCells(s.cursorY, 0, s.width)
		s.grid[s.cursorY].Wrapped = false
	}
}

// EraseScreenMode handles ED (Erase in Display): 0 = cursor to end of
// screen, 1 = start of screen to cursor, 2 = whole screen, 3 = whole
// screen plus the saved scrollback lines.
func (s *Screen) EraseScreenMode(mode int) {
	s.wrapNext = false
	switch mode {
	case 0:
		s.eraseCells(s.cursorY, s.cursorX, s.width)
		for y := s.cursorY + 1; y < s.height; y++ {
			s.grid[y] = newLine(s.width)
		}
	case 1:
		s.eraseCells(s.cursorY, 0, s.cursorX+1)
		for y := 0; y < s.cursorY; y++ {
			s.grid[y] = newLine(s.width)
		}
	case 2:
		s.EraseScreen()
	case 3:
		s.EraseScreen()
		s.scrollback = s.scrollback[:0]
	}
}

// EraseScreen blanks the entire visible grid. Scrollback is untouched.
func (s *Screen) EraseScreen() {
	s.wrapNext = false
	for y := range s.grid {
		s.grid[y] = newLine(s.width)
	}
}

// EraseCharacters blanks n cells from the cursor forward on the current row.
func (s *Screen) EraseCharacters(n int) {
	s.wrapNext = false
	if n < 1 {
		n = 1
	}
	s.eraseCells(s.cursorY, s.cursorX, s.cursorX+n)
}

// eraseCells blanks columns [from, to) of a row with the default style.
func (s *Screen) eraseCells(row, from, to int) {
	if row < 0 || row >= s.height {
		return
	}
	from = clamp(from, 0, s.width)
	to = clamp(to, 0, s.width)
	cells := s.grid[row].Cells
	for x := from; x < to; x++ {
		cells[x] = blankCell()
	}
}
