// Copyright © 2025 Inkwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/pty_test.go
// Summary: PTY session integration tests against a real /bin/sh.

package term

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func openTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := Open("/bin/sh", 80, 24)
	if err != nil {
		t.Skipf("cannot spawn /bin/sh: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// drainUntil polls ReadAvailable until the predicate matches or the
// deadline passes.
func drainUntil(t *testing.T, s *Session, deadline time.Duration, match func([]byte) bool) []byte {
	t.Helper()
	var buf bytes.Buffer
	end := time.Now().Add(deadline)
	for time.Now().Before(end) {
		buf.Write(s.ReadAvailable())
		if match(buf.Bytes()) {
			return buf.Bytes()
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("deadline passed, collected %q", buf.String())
	return nil
}

func TestSessionEcho(t *testing.T) {
	s := openTestSession(t)
	if err := s.Write([]byte("echo __marker__\r")); err != nil {
		t.Fatalf("write: %v", err)
	}
	drainUntil(t, s, 5*time.Second, func(b []byte) bool {
		return bytes.Contains(b, []byte("__marker__"))
	})
}

func TestSessionAliveAndExit(t *testing.T) {
	s := openTestSession(t)
	if !s.Alive() {
		t.Fatal("fresh session should be alive")
	}
	if err := s.Write([]byte("exit\r")); err != nil {
		t.Fatalf("write: %v", err)
	}
	end := time.Now().Add(5 * time.Second)
	for s.Alive() && time.Now().Before(end) {
		time.Sleep(10 * time.Millisecond)
	}
	if s.Alive() {
		t.Fatal("session still alive after exit")
	}
	if err := s.Write([]byte("x")); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("write after exit: got %v, want ErrSessionClosed", err)
	}
}

func TestSessionResize(t *testing.T) {
	s := openTestSession(t)
	if err := s.Resize(40, 10); err != nil {
		t.Fatalf("resize: %v", err)
	}
	cols, rows := s.Size()
	if cols != 40 || rows != 10 {
		t.Fatalf("size not recorded: %dx%d", cols, rows)
	}
	if err := s.Resize(0, 10); !errors.Is(err, ErrResize) {
		t.Fatalf("invalid resize: got %v, want ErrResize", err)
	}
}

func TestSessionSpawnFailure(t *testing.T) {
	_, err := Open("/nonexistent/shell-binary", 80, 24)
	if err == nil {
		t.Fatal("expected spawn error")
	}
	var spawn *SpawnError
	if !errors.As(err, &spawn) {
		t.Fatalf("expected *SpawnError, got %T", err)
	}
	if spawn.Shell != "/nonexistent/shell-binary" {
		t.Fatalf("error should carry the shell path, got %q", spawn.Shell)
	}
}

func TestSessionCloseIdempotent(t *testing.T) {
	s := openTestSession(t)
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestSendKey(t *testing.T) {
	s := openTestSession(t)
	if err := s.SendKey(KeyEnter); err != nil {
		t.Fatalf("send key: %v", err)
	}
	if err := s.SendKey(Key(9999)); err == nil {
		t.Fatal("unknown key should fail")
	}
}
