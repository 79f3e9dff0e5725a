// Copyright © 2025 Inkwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/parser/cell.go
// Summary: Cell, line and color types for the screen buffer.
// Usage: Consumed by the parser and by renderers reading snapshots.
// Notes: Keeps display-state types isolated from rendering.

package parser

import "strings"

// Attribute is a bitmask of text attributes.
type Attribute uint16

const (
	AttrBold Attribute = 1 << iota
	AttrItalic
	AttrUnderline
	AttrStrike
	AttrReverse
)

// String returns a human-readable representation of the attribute flags.
func (a Attribute) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	if a&AttrBold != 0 {
		parts = append(parts, "bold")
	}
	if a&AttrItalic != 0 {
		parts = append(parts, "italic")
	}
	if a&AttrUnderline != 0 {
		parts = append(parts, "underline")
	}
	if a&AttrStrike != 0 {
		parts = append(parts, "strike")
	}
	if a&AttrReverse != 0 {
		parts = append(parts, "reverse")
	}
	return strings.Join(parts, "|")
}

// ColorMode defines the type of color stored.
type ColorMode int

const (
	ColorModeDefault  ColorMode = iota // Default terminal color
	ColorModeStandard                  // The 16 basic ANSI colors
	ColorMode256                       // 256-color palette
	ColorModeRGB                       // 24-bit "true" color
)

// Color represents a color in potentially different modes.
type Color struct {
	Mode    ColorMode
	Value   uint8 // Color code for Standard (0-15) and 256-mode (0-255)
	R, G, B uint8 // Component values for RGB mode
}

var (
	DefaultFG = Color{Mode: ColorModeDefault}
	DefaultBG = Color{Mode: ColorModeDefault}
)

// Cell represents a single character cell on the screen.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
	Attr Attribute
	Wide bool // Cell holds a 2-column character; the next cell is its spacer
}

// blankCell is the value erased and vacated cells take.
func blankCell() Cell {
	return Cell{Rune: ' ', FG: DefaultFG, BG: DefaultBG}
}

// EffectiveFG returns the foreground to render, honoring reverse video.
// Reverse is a rendering-time swap; stored colors are never mutated.
func (c Cell) EffectiveFG() Color {
	if c.Attr&AttrReverse != 0 {
		return c.BG
	}
	return c.FG
}

// EffectiveBG returns the background to render, honoring reverse video.
func (c Cell) EffectiveBG() Color {
	if c.Attr&AttrReverse != 0 {
		return c.FG
	}
	return c.BG
}

// Line is a fixed-width row of cells. Wrapped marks the line as the
// visual continuation of the previous one.
type Line struct {
	Cells   []Cell
	Wrapped bool
}

// newLine creates a blank line of the given width.
func newLine(width int) Line {
	cells := make([]Cell, width)
	for i := range cells {
		cells[i] = blankCell()
	}
	return Line{Cells: cells}
}

// Text returns the line content with trailing spaces trimmed.
func (l Line) Text() string {
	var b strings.Builder
	for _, c := range l.Cells {
		if c.Rune == 0 {
			continue
		}
		b.WriteRune(c.Rune)
	}
	return strings.TrimRight(b.String(), " ")
}

// Clone returns a deep copy of the line.
func (l Line) Clone() Line {
	cells := make([]Cell, len(l.Cells))
	copy(cells, l.Cells)
	return Line{Cells: cells, Wrapped: l.Wrapped}
}
