// Copyright © 2025 Inkwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/errors.go
// Summary: Error types for PTY session lifecycle failures.

package term

import (
	"errors"
	"fmt"
)

// ErrSessionClosed is returned by operations on a session whose child
// process has exited or whose PTY has been torn down.
var ErrSessionClosed = errors.New("terminal session closed")

// ErrWrite wraps failures to deliver input to the child process.
var ErrWrite = errors.New("pty write failed")

// ErrResize wraps failures to propagate a window size change.
var ErrResize = errors.New("pty resize failed")

// SpawnError reports a failure to launch the shell in a PTY.
type SpawnError struct {
	Shell string
	Err   error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawn %s: %v", e.Shell, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }
