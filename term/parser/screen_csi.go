// Copyright © 2025 Inkwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/parser/screen_csi.go
// Summary: CSI command dispatch against the Screen buffer.
// Usage: Invoked by the parser once a control sequence is complete.
// Notes: Unknown commands are consumed silently and never desynchronize parsing.

package parser

import "log"

// processCSI applies a complete CSI sequence. Missing or zero parameters
// take their per-command defaults.
func (s *Screen) processCSI(command rune, params []int, private bool) {
	param := func(i, def int) int {
		if i < len(params) && params[i] != 0 {
			return params[i]
		}
		return def
	}

	if private {
		s.processPrivateCSI(command, params)
		return
	}

	switch command {
	case 'A': // CUU - Cursor Up
		s.MoveCursor(0, -param(0, 1))
	case 'B': // CUD - Cursor Down
		s.MoveCursor(0, param(0, 1))
	case 'C': // CUF - Cursor Forward
		s.MoveCursor(param(0, 1), 0)
	case 'D': // CUB - Cursor Back
		s.MoveCursor(-param(0, 1), 0)
	case 'E': // CNL - Cursor Next Line
		s.MoveCursor(0, param(0, 1))
		s.CarriageReturn()
	case 'F': // CPL - Cursor Previous Line
		s.MoveCursor(0, -param(0, 1))
		s.CarriageReturn()
	case 'G': // CHA - Cursor Horizontal Absolute
		s.SetCursor(param(0, 1)-1, s.cursorY)
	case 'H', 'f': // CUP / HVP - Cursor Position
		s.SetCursor(param(1, 1)-1, param(0, 1)-1)
	case 'd': // VPA - Vertical Position Absolute
		s.SetCursor(s.cursorX, param(0, 1)-1)
	case 'J': // ED - Erase in Display
		s.EraseScreenMode(param(0, 0))
	case 'K': // EL - Erase in Line
		s.EraseLineMode(param(0, 0))
	case 'L': // IL - Insert Lines
		s.InsertLines(param(0, 1))
	case 'M': // DL - Delete Lines
		s.DeleteLines(param(0, 1))
	case 'P': // DCH - Delete Characters
		s.DeleteCharacters(param(0, 1))
	case 'X': // ECH - Erase Characters
		s.EraseCharacters(param(0, 1))
	case 'S': // SU - Scroll Up (discards, never archives)
		s.scrollUpDiscard(param(0, 1))
	case 'T': // SD - Scroll Down
		s.ScrollDown(param(0, 1))
	case 'm': // SGR
		s.handleSGR(params)
	case 's': // SCOSC - Save Cursor
		s.SaveCursor()
	case 'u': // SCORC - Restore Cursor
		s.RestoreCursor()
	case 'r': // DECSTBM - Set Top and Bottom Margins
		s.SetScrollRegion(param(0, 1)-1, param(1, s.height)-1)
	default:
		log.Printf("Parser: Unhandled CSI sequence: %q, params: %v", command, params)
	}
}

// processPrivateCSI handles DEC private mode sequences (CSI ? ... h/l).
// Only cursor visibility is modeled; everything else is consumed.
func (s *Screen) processPrivateCSI(command rune, params []int) {
	if len(params) == 0 {
		return
	}
	switch command {
	case 'h':
		if params[0] == 25 {
			s.cursorVisible = true
		}
	case 'l':
		if params[0] == 25 {
			s.cursorVisible = false
		}
	}
}
