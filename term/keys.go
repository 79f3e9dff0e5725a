// Copyright © 2025 Inkwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/keys.go
// Summary: Special key to escape sequence encoding for shell input.

package term

// Key identifies a special key to encode for the child process.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyBackspace
	KeyTab
	KeyEnter
	KeyEscape
	KeyCtrlC
	KeyCtrlD
	KeyCtrlZ
	KeyCtrlL
	KeyF1
	KeyF2
	KeyF3
	KeyF4
)

var keySequences = map[Key][]byte{
	KeyUp:       []byte("\x1b[A"),
	KeyDown:     []byte("\x1b[B"),
	KeyRight:    []byte("\x1b[C"),
	KeyLeft:     []byte("\x1b[D"),
	KeyHome:     []byte("\x1b[H"),
	KeyEnd:      []byte("\x1b[F"),
	KeyPageUp:   []byte("\x1b[5~"),
	KeyPageDown: []byte("\x1b[6~"),
	KeyInsert:   []byte("\x1b[2~"),
	KeyDelete:   []byte("\x1b[3~"),
	// DEL, not BS; shells remap it themselves
	KeyBackspace: []byte{0x7f},
	KeyTab:       []byte{'\t'},
	KeyEnter:     []byte{'\r'},
	KeyEscape:    []byte{0x1b},
	KeyCtrlC:     []byte{0x03},
	KeyCtrlD:     []byte{0x04},
	KeyCtrlZ:     []byte{0x1a},
	KeyCtrlL:     []byte{0x0c},
	KeyF1:        []byte("\x1bOP"),
	KeyF2:        []byte("\x1bOQ"),
	KeyF3:        []byte("\x1bOR"),
	KeyF4:        []byte("\x1bOS"),
}

// Sequence returns the byte sequence a terminal sends for the key, or
// nil for an unknown key.
func (k Key) Sequence() []byte {
	return keySequences[k]
}
