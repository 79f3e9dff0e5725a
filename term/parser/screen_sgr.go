// Copyright © 2025 Inkwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/parser/screen_sgr.go
// Summary: SGR (Select Graphic Rendition) - pending text attributes and colors.
// Usage: Part of the Screen buffer.

package parser

// handleSGR processes SGR parameters left to right, mutating the pending
// style only; already-written cells are never touched. Unknown codes are
// ignored.
func (s *Screen) handleSGR(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}
	i := 0
	for i < len(params) {
		p := params[i]
		switch {
		case p == 0:
			s.resetAttributes()
		case p == 1:
			s.curAttr |= AttrBold
		case p == 3:
			s.curAttr |= AttrItalic
		case p == 4:
			s.curAttr |= AttrUnderline
		case p == 7:
			s.curAttr |= AttrReverse
		case p == 9:
			s.curAttr |= AttrStrike
		case p == 22:
			s.curAttr &^= AttrBold
		case p == 23:
			s.curAttr &^= AttrItalic
		case p == 24:
			s.curAttr &^= AttrUnderline
		case p == 27:
			s.curAttr &^= AttrReverse
		case p == 29:
			s.curAttr &^= AttrStrike
		case p >= 30 && p <= 37:
			s.curFG = Color{Mode: ColorModeStandard, Value: uint8(p - 30)}
		case p == 38: // Extended foreground color
			if c, consumed, ok := extendedColor(params[i+1:]); ok {
				s.curFG = c
				i += consumed
			}
		case p == 39:
			s.curFG = DefaultFG
		case p >= 40 && p <= 47:
			s.curBG = Color{Mode: ColorModeStandard, Value: uint8(p - 40)}
		case p == 48: // Extended background color
			if c, consumed, ok := extendedColor(params[i+1:]); ok {
				s.curBG = c
				i += consumed
			}
		case p == 49:
			s.curBG = DefaultBG
		case p >= 90 && p <= 97: // Bright foreground
			s.curFG = Color{Mode: ColorModeStandard, Value: uint8(p - 90 + 8)}
		case p >= 100 && p <= 107: // Bright background
			s.curBG = Color{Mode: ColorModeStandard, Value: uint8(p - 100 + 8)}
		}
		i++
	}
}

// extendedColor parses the tail of a 38/48 sequence: "5;n" selects from the
// 256-color palette, "2;r;g;b" selects a 24-bit color. Returns the color,
// the number of parameters consumed, and whether the tail was valid.
func extendedColor(tail []int) (Color, int, bool) {
	if len(tail) >= 2 && tail[0] == 5 {
		return Color{Mode: ColorMode256, Value: uint8(tail[1])}, 2, true
	}
	if len(tail) >= 4 && tail[0] == 2 {
		return Color{
			Mode: ColorModeRGB,
			R:    uint8(tail[1]), G: uint8(tail[2]), B: uint8(tail[3]),
		}, 4, true
	}
	return Color{}, 0, false
}

// resetAttributes restores the default pending style.
func (s *Screen) resetAttributes() {
	s.curFG = DefaultFG
	s.curBG = DefaultBG
	s.curAttr = 0
}

// PendingStyle returns the style applied to future writes.
func (s *Screen) PendingStyle() (fg, bg Color, attr Attribute) {
	return s.curFG, s.curBG, s.curAttr
}
