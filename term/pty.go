// Copyright © 2025 Inkwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/pty.go
// Summary: PTY session - spawns a shell and pumps its output to a channel.
// Usage: Open, then poll ReadAvailable; Close tears down process and PTY.

package term

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"sync"
	"syscall"

	"github.com/creack/pty"
)

const readBufferSize = 4096

// Session owns one shell process attached to a pseudo-terminal. Output
// is pumped by an internal goroutine into a buffered channel so the
// caller can poll without blocking.
type Session struct {
	shell string
	cmd   *exec.Cmd
	ptmx  *os.File

	out  chan []byte
	done chan struct{}

	mu         sync.Mutex
	cols, rows int

	closeOnce sync.Once
}

// Open launches the shell under a new PTY with the given initial size.
func Open(shell string, cols, rows int) (*Session, error) {
	if cols < 1 || rows < 1 {
		return nil, &SpawnError{Shell: shell, Err: fmt.Errorf("invalid size %dx%d", cols, rows)}
	}
	cmd := exec.Command(shell)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Cols: uint16(cols),
		Rows: uint16(rows),
	})
	if err != nil {
		return nil, &SpawnError{Shell: shell, Err: err}
	}

	s := &Session{
		shell: shell,
		cmd:   cmd,
		ptmx:  ptmx,
		out:   make(chan []byte, 64),
		done:  make(chan struct{}),
		cols:  cols,
		rows:  rows,
	}
	go s.readLoop()
	go s.waitLoop()
	return s, nil
}

// readLoop pumps PTY output into the channel until EOF. The channel is
// closed afterwards so drains observe the end of stream.
func (s *Session) readLoop() {
	defer close(s.out)
	for {
		buf := make([]byte, readBufferSize)
		n, err := s.ptmx.Read(buf)
		if n > 0 {
			s.out <- buf[:n]
		}
		if err != nil {
			if err != io.EOF {
				log.Printf("Session: read loop ended: %v", err)
			}
			return
		}
	}
}

// waitLoop reaps the child so Alive flips as soon as it exits.
func (s *Session) waitLoop() {
	s.cmd.Wait()
	close(s.done)
}

// ReadAvailable returns all output currently buffered without blocking.
// A nil slice means no output was pending.
func (s *Session) ReadAvailable() []byte {
	var data []byte
	for {
		select {
		case chunk, ok := <-s.out:
			if !ok {
				return data
			}
			data = append(data, chunk...)
		default:
			return data
		}
	}
}

// Write sends bytes to the shell's stdin.
func (s *Session) Write(data []byte) error {
	if !s.Alive() {
		return ErrSessionClosed
	}
	if _, err := s.ptmx.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// SendKey encodes a special key and writes it to the shell.
func (s *Session) SendKey(k Key) error {
	seq := k.Sequence()
	if seq == nil {
		return fmt.Errorf("%w: unknown key %d", ErrWrite, k)
	}
	return s.Write(seq)
}

// Resize propagates a new window size to the PTY, which raises SIGWINCH
// in the child.
func (s *Session) Resize(cols, rows int) error {
	if cols < 1 || rows < 1 {
		return fmt.Errorf("%w: invalid size %dx%d", ErrResize, cols, rows)
	}
	if err := pty.Setsize(s.ptmx, &pty.Winsize{
		Cols: uint16(cols),
		Rows: uint16(rows),
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrResize, err)
	}
	s.mu.Lock()
	s.cols, s.rows = cols, rows
	s.mu.Unlock()
	return nil
}

// Alive reports whether the child process is still running.
func (s *Session) Alive() bool {
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

// Shell returns the command the session was started with.
func (s *Session) Shell() string { return s.shell }

// Size returns the last size set on the PTY.
func (s *Session) Size() (cols, rows int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cols, s.rows
}

// Close terminates the child and releases the PTY. Safe to call more
// than once and after the child has already exited.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if s.cmd.Process != nil {
			s.cmd.Process.Signal(syscall.SIGTERM)
		}
		s.ptmx.Close()
	})
	return nil
}
