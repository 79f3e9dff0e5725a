// Copyright © 2025 Inkwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/parser/screen_scroll.go
// Summary: Scroll operations and scrollback archiving.
// Usage: Part of the Screen buffer.

package parser

// ScrollUp scrolls the active region up by n lines. The lines leaving the
// top of the region are archived to scrollback, oldest evicted first once
// capacity is exceeded; n fresh blank lines appear at the region bottom.
func (s *Screen) ScrollUp(n int) {
	s.scrollLinesUp(n, true)
}

// scrollUpDiscard scrolls the active region up by n lines, discarding the
// lines that leave the top. Used by explicit scroll commands (CSI S),
// which do not archive.
func (s *Screen) scrollUpDiscard(n int) {
	s.scrollLinesUp(n, false)
}

func (s *Screen) scrollLinesUp(n int, archive bool) {
	s.wrapNext = false
	if n <= 0 {
		return
	}
	if region := s.marginBottom - s.marginTop + 1; n > region {
		n = region
	}
	for i := 0; i < n; i++ {
		if archive {
			s.archiveLine(s.grid[s.marginTop])
		}
		for y := s.marginTop; y < s.marginBottom; y++ {
			s.grid[y] = s.grid[y+1]
		}
		s.grid[s.marginBottom] = newLine(s.width)
	}
}

// ScrollDown scrolls the active region down by n lines. Lines scrolled off
// the bottom of the region are discarded; blank lines appear at the top.
func (s *Screen) ScrollDown(n int) {
	s.wrapNext = false
	if n <= 0 {
		return
	}
	if region := s.marginBottom - s.marginTop + 1; n > region {
		n = region
	}
	for i := 0; i < n; i++ {
		for y := s.marginBottom; y > s.marginTop; y-- {
			s.grid[y] = s.grid[y-1]
		}
		s.grid[s.marginTop] = newLine(s.width)
	}
}

// archiveLine appends a line to scrollback, evicting the oldest lines once
// the configured capacity is exceeded.
func (s *Screen) archiveLine(l Line) {
	if s.onArchive != nil {
		s.onArchive(l)
	}
	if s.maxScrollback == 0 {
		return
	}
	s.scrollback = append(s.scrollback, l)
	if len(s.scrollback) > s.maxScrollback {
		excess := len(s.scrollback) - s.maxScrollback
		copy(s.scrollback, s.scrollback[excess:])
		for i := s.maxScrollback; i < len(s.scrollback); i++ {
			s.scrollback[i] = Line{}
		}
		s.scrollback = s.scrollback[:s.maxScrollback]
	}
}
