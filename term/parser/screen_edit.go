// Copyright © 2025 Inkwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/parser/screen_edit.go
// Summary: Line insert/delete, character delete, and grid resize.
// Usage: Part of the Screen buffer.

package parser

// InsertLines inserts n blank lines at the cursor row, pushing the rows
// below down within the active scroll region. Rows pushed past the bottom
// of the region are discarded. No-op when the cursor is outside the region.
func (s *Screen) InsertLines(n int) {
	s.wrapNext = false
	if s.cursorY < s.marginTop || s.cursorY > s.marginBottom {
		return
	}
	if max := s.marginBottom - s.cursorY + 1; n > max {
		n = max
	}
	for i := 0; i < n; i++ {
		for y := s.marginBottom; y > s.cursorY; y-- {
			s.grid[y] = s.grid[y-1]
		}
		s.grid[s.cursorY] = newLine(s.width)
	}
}

// DeleteLines deletes n lines at the cursor row, pulling the rows below up
// within the active scroll region; blank lines appear at the region bottom.
// No-op when the cursor is outside the region.
func (s *Screen) DeleteLines(n int) {
	s.wrapNext = false
	if s.cursorY < s.marginTop || s.cursorY > s.marginBottom {
		return
	}
	if max := s.marginBottom - s.cursorY + 1; n > max {
		n = max
	}
	for i := 0; i < n; i++ {
		for y := s.cursorY; y < s.marginBottom; y++ {
			s.grid[y] = s.grid[y+1]
		}
		s.grid[s.marginBottom] = newLine(s.width)
	}
}

// DeleteCharacters deletes n characters at the cursor, shifting the rest
// of the row left and blank-filling the vacated tail.
func (s *Screen) DeleteCharacters(n int) {
	s.wrapNext = false
	if n < 1 {
		n = 1
	}
	if n > s.width-s.cursorX {
		n = s.width - s.cursorX
	}
	cells := s.grid[s.cursorY].Cells
	copy(cells[s.cursorX:], cells[s.cursorX+n:])
	for x := s.width - n; x < s.width; x++ {
		cells[x] = blankCell()
	}
}

// Resize changes the grid geometry in place. Lines are truncated or
// blank-padded to the new column count; rows are appended blank or trimmed
// from the bottom. Content is never rewrapped. The cursor and scroll
// region are re-clamped; a region that would invert resets to full screen.
func (s *Screen) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols == s.width && rows == s.height {
		return
	}
	s.wrapNext = false
	wasFullRegion := s.marginTop == 0 && s.marginBottom == s.height-1

	for y := range s.grid {
		s.grid[y] = resizeLine(s.grid[y], cols)
	}
	for len(s.grid) < rows {
		s.grid = append(s.grid, newLine(cols))
	}
	if len(s.grid) > rows {
		s.grid = s.grid[:rows]
	}

	s.width, s.height = cols, rows
	s.cursorX = clamp(s.cursorX, 0, cols-1)
	s.cursorY = clamp(s.cursorY, 0, rows-1)
	s.marginTop = clamp(s.marginTop, 0, rows-1)
	s.marginBottom = clamp(s.marginBottom, 0, rows-1)
	if wasFullRegion || s.marginTop >= s.marginBottom {
		s.ResetScrollRegion()
	}
}

// resizeLine truncates or blank-pads a line to the given width. A wide
// cell left without its spacer at the new right edge is blanked.
func resizeLine(l Line, width int) Line {
	if len(l.Cells) > width {
		l.Cells = l.Cells[:width]
		if width > 0 && l.Cells[width-1].Wide {
			l.Cells[width-1] = blankCell()
		}
		return l
	}
	for len(l.Cells) < width {
		l.Cells = append(l.Cells, blankCell())
	}
	return l
}
