// Copyright © 2025 Inkwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/parser/search_index.go
// Summary: SQLite-backed substring search over archived scrollback lines.
// Usage: Fed through the Screen archive hook; queried by the host UI.
// Notes: Results are ordered newest first and bounded by the caller's limit.

package parser

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SearchResult is a single matching scrollback line.
type SearchResult struct {
	LineIdx   int64 // Monotonic index of the archived line
	Timestamp time.Time
	Content   string
}

// SearchIndex stores archived scrollback lines in SQLite and answers
// substring queries over them.
type SearchIndex struct {
	mu     sync.Mutex
	db     *sql.DB
	insert *sql.Stmt
	nextID int64
}

const searchSchema = `
CREATE TABLE IF NOT EXISTS scrollback (
	idx     INTEGER PRIMARY KEY,
	ts      INTEGER NOT NULL,
	content TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS scrollback_ts ON scrollback(ts);
`

// OpenSearchIndex opens (or creates) a search index at the given path.
// Use ":memory:" for an ephemeral index.
func OpenSearchIndex(path string) (*SearchIndex, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open search index %s: %w", path, err)
	}
	// A second pooled connection to ":memory:" would see its own empty
	// database; pin the pool to one connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(searchSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init search index schema: %w", err)
	}

	var next int64
	if err := db.QueryRow(`SELECT COALESCE(MAX(idx)+1, 0) FROM scrollback`).Scan(&next); err != nil {
		db.Close()
		return nil, fmt.Errorf("read search index size: %w", err)
	}

	insert, err := db.Prepare(`INSERT INTO scrollback (idx, ts, content) VALUES (?, ?, ?)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare search index insert: %w", err)
	}
	return &SearchIndex{db: db, insert: insert, nextID: next}, nil
}

// IndexLine records one archived line. Blank lines are skipped but still
// advance the line index so positions stay aligned with scroll history.
func (ix *SearchIndex) IndexLine(text string) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	idx := ix.nextID
	ix.nextID++
	if text == "" {
		return nil
	}
	if _, err := ix.insert.Exec(idx, time.Now().UnixMilli(), text); err != nil {
		return fmt.Errorf("index line %d: %w", idx, err)
	}
	return nil
}

// Search returns up to limit lines containing the query as a substring,
// newest first.
func (ix *SearchIndex) Search(query string, limit int) ([]SearchResult, error) {
	return ix.query(
		`SELECT idx, ts, content FROM scrollback
		 WHERE instr(content, ?) > 0
		 ORDER BY idx DESC LIMIT ?`, query, limit)
}

// SearchInRange restricts matches to [start, end].
func (ix *SearchIndex) SearchInRange(query string, start, end time.Time, limit int) ([]SearchResult, error) {
	return ix.query(
		`SELECT idx, ts, content FROM scrollback
		 WHERE instr(content, ?) > 0 AND ts BETWEEN ? AND ?
		 ORDER BY idx DESC LIMIT ?`, query, start.UnixMilli(), end.UnixMilli(), limit)
}

func (ix *SearchIndex) query(q string, args ...any) ([]SearchResult, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	rows, err := ix.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("search scrollback: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		var ts int64
		if err := rows.Scan(&r.LineIdx, &ts, &r.Content); err != nil {
			return nil, fmt.Errorf("scan search result: %w", err)
		}
		r.Timestamp = time.UnixMilli(ts)
		results = append(results, r)
	}
	return results, rows.Err()
}

// Len returns the total number of lines seen by the index.
func (ix *SearchIndex) Len() int64 {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.nextID
}

// Close releases the underlying database.
func (ix *SearchIndex) Close() error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.insert.Close()
	return ix.db.Close()
}
