// Copyright © 2025 Inkwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/inkterm/main.go
// Summary: Standalone host - runs a shell terminal inside a tcell screen.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	termemu "github.com/inkwell-md/inkterm/term"
	"github.com/inkwell-md/inkterm/term/parser"
)

var (
	shellFlag      = flag.String("shell", "", "shell command to run (default $SHELL)")
	scrollbackFlag = flag.Int("scrollback", 10000, "maximum scrollback lines kept in memory")
	historyFlag    = flag.String("history", "", "path to a persistent scrollback search database")
)

func main() {
	flag.Parse()
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "inkterm: stdin is not a terminal")
		os.Exit(1)
	}
	if err := run(); err != nil {
		log.Fatalf("inkterm: %v", err)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.Clear()

	cols, rows := screen.Size()
	opts := []termemu.Option{termemu.WithMaxScrollback(*scrollbackFlag)}
	if *shellFlag != "" {
		opts = append(opts, termemu.WithShell(*shellFlag))
	}
	if *historyFlag != "" {
		opts = append(opts, termemu.WithSearchIndex(*historyFlag))
	}

	t, err := termemu.NewTerminal(cols, rows, opts...)
	if err != nil {
		return err
	}
	defer t.Close()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	draw(screen, t)
	for {
		select {
		case <-ticker.C:
			if !t.Alive() {
				return nil
			}
			if t.Tick() {
				draw(screen, t)
			}
		case ev := <-events:
			switch tev := ev.(type) {
			case *tcell.EventResize:
				w, h := tev.Size()
				if err := t.Resize(w, h); err != nil {
					log.Printf("inkterm: resize: %v", err)
				}
				screen.Sync()
				draw(screen, t)
			case *tcell.EventKey:
				if err := handleKey(t, tev); err != nil {
					// The shell exiting mid-keystroke is a clean shutdown
					if !t.Alive() {
						return nil
					}
					log.Printf("inkterm: key: %v", err)
				}
			}
		}
	}
}

// handleKey translates a tcell key event into bytes for the shell.
func handleKey(t *termemu.Terminal, ev *tcell.EventKey) error {
	if key, ok := specialKeys[ev.Key()]; ok {
		return t.SendKey(key)
	}
	switch ev.Key() {
	case tcell.KeyRune:
		return t.Write([]byte(string(ev.Rune())))
	default:
		// Remaining control keys map straight to their ASCII values
		if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
			return t.Write([]byte{byte(ev.Key())})
		}
	}
	return nil
}

var specialKeys = map[tcell.Key]termemu.Key{
	tcell.KeyUp:        termemu.KeyUp,
	tcell.KeyDown:      termemu.KeyDown,
	tcell.KeyRight:     termemu.KeyRight,
	tcell.KeyLeft:      termemu.KeyLeft,
	tcell.KeyHome:      termemu.KeyHome,
	tcell.KeyEnd:       termemu.KeyEnd,
	tcell.KeyPgUp:      termemu.KeyPageUp,
	tcell.KeyPgDn:      termemu.KeyPageDown,
	tcell.KeyInsert:    termemu.KeyInsert,
	tcell.KeyDelete:    termemu.KeyDelete,
	tcell.KeyBackspace: termemu.KeyBackspace,
	tcell.KeyTab:       termemu.KeyTab,
	tcell.KeyEnter:     termemu.KeyEnter,
	tcell.KeyEsc:       termemu.KeyEscape,
	tcell.KeyF1:        termemu.KeyF1,
	tcell.KeyF2:        termemu.KeyF2,
	tcell.KeyF3:        termemu.KeyF3,
	tcell.KeyF4:        termemu.KeyF4,
}

func draw(screen tcell.Screen, t *termemu.Terminal) {
	snap := t.Snapshot()
	for y, line := range snap.Lines {
		for x, cell := range line.Cells {
			if cell.Rune == 0 {
				continue // spacer behind a wide cell
			}
			style := tcell.StyleDefault.
				Foreground(toTcellColor(cell.EffectiveFG(), false)).
				Background(toTcellColor(cell.EffectiveBG(), true)).
				Bold(cell.Attr&parser.AttrBold != 0).
				Italic(cell.Attr&parser.AttrItalic != 0).
				Underline(cell.Attr&parser.AttrUnderline != 0).
				StrikeThrough(cell.Attr&parser.AttrStrike != 0)
			screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	if snap.CursorVisible {
		screen.ShowCursor(snap.CursorX, snap.CursorY)
	} else {
		screen.HideCursor()
	}
	if title := snap.Title; title != "" {
		screen.SetTitle(title)
	}
	screen.Show()
}

// toTcellColor resolves a cell color to a concrete RGB tcell color.
// Defaults stay tcell defaults so the host terminal theme shows through.
func toTcellColor(c parser.Color, background bool) tcell.Color {
	if c.Mode == parser.ColorModeDefault {
		return tcell.ColorDefault
	}
	rgb := c.RGB(background)
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}
