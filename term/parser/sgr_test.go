// Copyright © 2025 Inkwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/parser/sgr_test.go
// Summary: SGR attribute and color handling tests.

package parser

import "testing"

func TestSGRForegroundRed(t *testing.T) {
	h := NewTestHarness(20, 5)
	h.SendSeq("\x1b[31mX")
	c := h.Cell(0, 0)
	if c.FG != (Color{Mode: ColorModeStandard, Value: 1}) {
		t.Fatalf("expected standard red foreground, got %+v", c.FG)
	}
	if rgb := c.FG.RGB(false); rgb != (RGB{205, 49, 49}) {
		t.Fatalf("expected red to resolve to (205,49,49), got %+v", rgb)
	}
}

func TestSGRResetAffectsOnlyNewCells(t *testing.T) {
	h := NewTestHarness(20, 5)
	h.SendSeq("\x1b[31mX\x1b[0mY")
	if c := h.Cell(0, 0); c.FG.Mode != ColorModeStandard || c.FG.Value != 1 {
		t.Errorf("existing cell lost its color: %+v", c.FG)
	}
	if c := h.Cell(1, 0); c.FG != DefaultFG {
		t.Errorf("cell after reset should be default, got %+v", c.FG)
	}
}

func TestSGRAttributes(t *testing.T) {
	h := NewTestHarness(40, 5)
	h.SendSeq("\x1b[1mB\x1b[3mI\x1b[4mU\x1b[9mS\x1b[7mR")
	h.AssertCell(t, 0, 0, Cell{Rune: 'B', FG: DefaultFG, BG: DefaultBG, Attr: AttrBold})
	if c := h.Cell(1, 0); c.Attr != AttrBold|AttrItalic {
		t.Errorf("expected bold+italic, got %v", c.Attr)
	}
	if c := h.Cell(4, 0); c.Attr != AttrBold|AttrItalic|AttrUnderline|AttrStrike|AttrReverse {
		t.Errorf("expected all attributes, got %v", c.Attr)
	}
}

func TestSGRSelectiveResets(t *testing.T) {
	h := NewTestHarness(40, 5)
	h.SendSeq("\x1b[1;3;4;7;9m\x1b[22m\x1b[23m\x1b[24m\x1b[27m\x1b[29mx")
	if c := h.Cell(0, 0); c.Attr != 0 {
		t.Errorf("expected all attributes cleared, got %v", c.Attr)
	}
}

func TestSGRBrightAndBackground(t *testing.T) {
	h := NewTestHarness(40, 5)
	h.SendSeq("\x1b[92;44mx")
	c := h.Cell(0, 0)
	if c.FG != (Color{Mode: ColorModeStandard, Value: 10}) {
		t.Errorf("expected bright green fg, got %+v", c.FG)
	}
	if c.BG != (Color{Mode: ColorModeStandard, Value: 4}) {
		t.Errorf("expected blue bg, got %+v", c.BG)
	}
	h.SendSeq("\x1b[39;49my")
	c = h.Cell(1, 0)
	if c.FG != DefaultFG || c.BG != DefaultBG {
		t.Errorf("39/49 should restore defaults, got fg=%+v bg=%+v", c.FG, c.BG)
	}
}

func TestSGR256Color(t *testing.T) {
	h := NewTestHarness(40, 5)
	h.SendSeq("\x1b[38;5;196m\x1b[48;5;21mx")
	c := h.Cell(0, 0)
	if c.FG != (Color{Mode: ColorMode256, Value: 196}) {
		t.Errorf("expected 256-color fg 196, got %+v", c.FG)
	}
	if c.BG != (Color{Mode: ColorMode256, Value: 21}) {
		t.Errorf("expected 256-color bg 21, got %+v", c.BG)
	}
}

func TestSGRTrueColor(t *testing.T) {
	h := NewTestHarness(40, 5)
	h.SendSeq("\x1b[38;2;10;20;30mx")
	c := h.Cell(0, 0)
	want := Color{Mode: ColorModeRGB, R: 10, G: 20, B: 30}
	if c.FG != want {
		t.Errorf("expected truecolor fg %+v, got %+v", want, c.FG)
	}
}

func TestSGRCombinedInOneSequence(t *testing.T) {
	h := NewTestHarness(40, 5)
	h.SendSeq("\x1b[1;38;2;1;2;3;44mx")
	c := h.Cell(0, 0)
	if c.Attr != AttrBold {
		t.Errorf("expected bold, got %v", c.Attr)
	}
	if c.FG != (Color{Mode: ColorModeRGB, R: 1, G: 2, B: 3}) {
		t.Errorf("truecolor fg lost in combined sequence: %+v", c.FG)
	}
	if c.BG != (Color{Mode: ColorModeStandard, Value: 4}) {
		t.Errorf("expected blue bg, got %+v", c.BG)
	}
}

func TestSGREmptyIsReset(t *testing.T) {
	h := NewTestHarness(40, 5)
	h.SendSeq("\x1b[1;31m\x1b[mx")
	c := h.Cell(0, 0)
	if c.Attr != 0 || c.FG != DefaultFG {
		t.Errorf("ESC[m should reset pending style, got %+v", c)
	}
}

func TestSGRMalformedExtendedColorIgnored(t *testing.T) {
	h := NewTestHarness(40, 5)
	h.SendSeq("\x1b[38;9mx") // unknown colorspace
	if c := h.Cell(0, 0); c.FG != DefaultFG {
		t.Errorf("malformed 38 should leave fg default, got %+v", c.FG)
	}
}

func TestReverseVideoEffectiveColors(t *testing.T) {
	h := NewTestHarness(40, 5)
	h.SendSeq("\x1b[7;31;44mx")
	c := h.Cell(0, 0)
	if got := c.EffectiveFG(); got != (Color{Mode: ColorModeStandard, Value: 4}) {
		t.Errorf("effective fg under reverse should be the bg, got %+v", got)
	}
	if got := c.EffectiveBG(); got != (Color{Mode: ColorModeStandard, Value: 1}) {
		t.Errorf("effective bg under reverse should be the fg, got %+v", got)
	}
}

func TestColor256Resolution(t *testing.T) {
	// Cube corner and grayscale ramp values
	if got := Color256(16); got != (RGB{0, 0, 0}) {
		t.Errorf("index 16 should be black, got %+v", got)
	}
	if got := Color256(231); got != (RGB{255, 255, 255}) {
		t.Errorf("index 231 should be white, got %+v", got)
	}
	if got := Color256(232); got != (RGB{8, 8, 8}) {
		t.Errorf("index 232 should be (8,8,8), got %+v", got)
	}
	if got := Color256(1); got != ANSIPalette[1] {
		t.Errorf("low indices should map to the ANSI palette, got %+v", got)
	}
}
