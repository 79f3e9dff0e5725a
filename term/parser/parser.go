// Copyright © 2025 Inkwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/parser/parser.go
// Summary: Incremental VT100/ANSI byte-stream state machine.
// Usage: Feed PTY output through Process; state survives across calls so
// sequences split at arbitrary byte boundaries parse identically.
// Notes: Never fails on malformed input; unknown sequences are consumed.

package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

type state int

const (
	stateGround state = iota
	stateEscape
	stateCSI
	stateOSC
	stateDCS
	stateDCSEscape
	stateCharset
)

const (
	maxParams    = 32
	maxParam     = 65535
	maxOSCLength = 4096
)

// Parser converts a byte stream into semantic operations on a Screen.
type Parser struct {
	state        state
	screen       *Screen
	params       []int
	currentParam int
	private      bool
	oscBuffer    []byte
	pending      []byte // partial UTF-8 sequence carried across Process calls
}

// NewParser creates a parser bound to a screen buffer.
func NewParser(s *Screen) *Parser {
	return &Parser{
		screen:    s,
		params:    make([]int, 0, 16),
		oscBuffer: make([]byte, 0, 128),
	}
}

// Process consumes a chunk of PTY output. Chunks may split escape
// sequences and UTF-8 runes at any byte boundary.
func (p *Parser) Process(data []byte) {
	for _, b := range data {
		p.step(b)
	}
}

func (p *Parser) step(b byte) {
	switch p.state {
	case stateGround:
		p.stepGround(b)
	case stateEscape:
		p.stepEscape(b)
	case stateCSI:
		p.stepCSI(b)
	case stateOSC:
		p.stepOSC(b)
	case stateDCS:
		if b == 0x1b {
			p.state = stateDCSEscape
		}
		// DCS payload is consumed and ignored
	case stateDCSEscape:
		if b == '\\' {
			p.state = stateGround
		} else {
			p.state = stateDCS
		}
	case stateCharset:
		p.state = stateGround
	}
}

func (p *Parser) stepGround(b byte) {
	if b >= 0x80 {
		p.continueRune(b)
		return
	}
	// An ASCII byte aborts any partial UTF-8 sequence.
	p.pending = p.pending[:0]
	switch b {
	case 0x1b:
		p.state = stateEscape
	case '\n':
		p.screen.LineFeed()
	case '\r':
		p.screen.CarriageReturn()
	case '\b':
		p.screen.Backspace()
	case '\t':
		p.screen.Tab()
	case 0x07: // BEL
	default:
		if b >= 0x20 && b != 0x7f {
			p.screen.put(rune(b))
		}
	}
}

// continueRune assembles multi-byte UTF-8 across chunk boundaries. Invalid
// sequences are dropped without affecting the state machine.
func (p *Parser) continueRune(b byte) {
	p.pending = append(p.pending, b)
	if !utf8.FullRune(p.pending) {
		if len(p.pending) >= utf8.UTFMax {
			p.pending = p.pending[:0]
		}
		return
	}
	r, _ := utf8.DecodeRune(p.pending)
	p.pending = p.pending[:0]
	if r != utf8.RuneError {
		p.screen.put(r)
	}
}

func (p *Parser) stepEscape(b byte) {
	p.state = stateGround
	switch b {
	case '[':
		p.state = stateCSI
		p.params = p.params[:0]
		p.currentParam = 0
		p.private = false
	case ']':
		p.state = stateOSC
		p.oscBuffer = p.oscBuffer[:0]
	case 'P':
		p.state = stateDCS
	case '(', ')', '#':
		// Charset selection and DECALN-family sequences carry one more
		// byte; consume it.
		p.state = stateCharset
	case '7': // DECSC
		p.screen.SaveCursor()
	case '8': // DECRC
		p.screen.RestoreCursor()
	case 'D': // IND
		p.screen.LineFeed()
	case 'E': // NEL
		p.screen.LineFeed()
		p.screen.CarriageReturn()
	case 'M': // RI
		p.screen.ReverseIndex()
	case 'c': // RIS
		p.screen.Reset()
	case '=', '>':
		// Keypad modes, ignored
	default:
		// Unknown escape, consumed silently
	}
}

func (p *Parser) stepCSI(b byte) {
	switch {
	case b >= '0' && b <= '9':
		p.currentParam = p.currentParam*10 + int(b-'0')
		if p.currentParam > maxParam {
			p.currentParam = maxParam
		}
	case b == ';':
		p.pushParam()
	case b >= '<' && b <= '?':
		p.private = true
	case b >= 0x20 && b <= 0x2f:
		// Intermediate bytes, consumed; the sequences they introduce are
		// not modeled and their final byte falls through to the default
		// dispatch case.
	case b >= 0x40 && b <= 0x7e:
		p.pushParam()
		p.screen.processCSI(rune(b), p.params, p.private)
		p.state = stateGround
	case b == 0x1b:
		p.state = stateEscape
	case b == 0x18 || b == 0x1a: // CAN / SUB abort the sequence
		p.state = stateGround
	default:
		// Stray control bytes inside CSI are ignored
	}
}

func (p *Parser) pushParam() {
	if len(p.params) < maxParams {
		p.params = append(p.params, p.currentParam)
	}
	p.currentParam = 0
}

func (p *Parser) stepOSC(b byte) {
	switch b {
	case 0x07: // BEL terminates
		p.handleOSC()
		p.state = stateGround
	case 0x1b: // Start of ST (ESC \) or a new sequence
		p.handleOSC()
		p.state = stateEscape
	default:
		if len(p.oscBuffer) < maxOSCLength {
			p.oscBuffer = append(p.oscBuffer, b)
		}
	}
}

// handleOSC consumes an Operating System Command. Only title changes
// (OSC 0 and 2) carry semantics; everything else is dropped.
func (p *Parser) handleOSC() {
	payload := string(p.oscBuffer)
	p.oscBuffer = p.oscBuffer[:0]

	cmd, rest, ok := strings.Cut(payload, ";")
	if !ok {
		return
	}
	n, err := strconv.Atoi(cmd)
	if err != nil {
		return
	}
	switch n {
	case 0, 2:
		p.screen.setTitle(rest)
	}
}
