// Copyright © 2025 Inkwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/parser/color.go
// Summary: ANSI and xterm-256 palette tables and color resolution.
// Usage: Renderers resolve Cell colors to concrete RGB through these tables.

package parser

// RGB is a concrete 24-bit color.
type RGB struct {
	R, G, B uint8
}

// ANSIPalette holds the 16 base colors (VS Code terminal values).
var ANSIPalette = [16]RGB{
	{0, 0, 0},       // Black
	{205, 49, 49},   // Red
	{13, 188, 121},  // Green
	{229, 229, 16},  // Yellow
	{36, 114, 200},  // Blue
	{188, 63, 188},  // Magenta
	{17, 168, 205},  // Cyan
	{229, 229, 229}, // White
	{102, 102, 102}, // Bright Black (Gray)
	{241, 76, 76},   // Bright Red
	{35, 209, 139},  // Bright Green
	{245, 245, 67},  // Bright Yellow
	{59, 142, 234},  // Bright Blue
	{214, 112, 214}, // Bright Magenta
	{41, 184, 219},  // Bright Cyan
	{255, 255, 255}, // Bright White
}

// Default rendered colors when a cell carries ColorModeDefault.
var (
	DefaultForeground = RGB{229, 229, 229}
	DefaultBackground = RGB{0, 0, 0}
)

// Color256 resolves an xterm-256 palette index to RGB.
// Indexes 16-231 form a 6x6x6 cube where component c maps to 0 when c == 0
// and 55 + 40*c otherwise; 232-255 are a grayscale ramp at 8 + 10*i.
func Color256(index uint8) RGB {
	if index < 16 {
		return ANSIPalette[index]
	}
	if index < 232 {
		i := index - 16
		cube := func(c uint8) uint8 {
			if c == 0 {
				return 0
			}
			return 55 + 40*c
		}
		return RGB{cube(i / 36 % 6), cube(i / 6 % 6), cube(i % 6)}
	}
	gray := 8 + 10*(index-232)
	return RGB{gray, gray, gray}
}

// RGB resolves the color to concrete components. isBackground selects the
// default to fall back on for ColorModeDefault cells.
func (c Color) RGB(isBackground bool) RGB {
	switch c.Mode {
	case ColorModeStandard, ColorMode256:
		return Color256(c.Value)
	case ColorModeRGB:
		return RGB{c.R, c.G, c.B}
	default:
		if isBackground {
			return DefaultBackground
		}
		return DefaultForeground
	}
}
