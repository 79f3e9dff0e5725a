// Copyright © 2025 Inkwell contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/parser/search_index_test.go
// Summary: Scrollback search index tests against an in-memory database.

package parser

import (
	"sync"
	"testing"
	"time"
)

func openTestIndex(t *testing.T) *SearchIndex {
	t.Helper()
	idx, err := OpenSearchIndex(":memory:")
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx
}

func TestSearchIndexFindsSubstring(t *testing.T) {
	idx := openTestIndex(t)
	lines := []string{
		"fetching origin",
		"error: connection refused",
		"retrying in 2s",
		"error: connection refused",
		"done",
	}
	for _, l := range lines {
		if err := idx.IndexLine(l); err != nil {
			t.Fatalf("index line: %v", err)
		}
	}

	results, err := idx.Search("connection refused", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(results))
	}
	// Most recent first
	if results[0].LineIdx != 3 || results[1].LineIdx != 1 {
		t.Fatalf("unexpected hit order: %d, %d", results[0].LineIdx, results[1].LineIdx)
	}
	if results[0].Content != "error: connection refused" {
		t.Fatalf("unexpected content: %q", results[0].Content)
	}
}

func TestSearchIndexLimit(t *testing.T) {
	idx := openTestIndex(t)
	for i := 0; i < 10; i++ {
		if err := idx.IndexLine("repeated needle line"); err != nil {
			t.Fatalf("index line: %v", err)
		}
	}
	results, err := idx.Search("needle", 3)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected limit of 3, got %d", len(results))
	}
}

func TestSearchIndexBlankLinesAdvanceIndex(t *testing.T) {
	idx := openTestIndex(t)
	idx.IndexLine("first")
	idx.IndexLine("")
	idx.IndexLine("third")

	if idx.Len() != 3 {
		t.Fatalf("expected logical length 3, got %d", idx.Len())
	}
	results, err := idx.Search("third", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].LineIdx != 2 {
		t.Fatalf("blank line must still consume an index, got %+v", results)
	}
}

func TestSearchIndexTimeRange(t *testing.T) {
	idx := openTestIndex(t)
	before := time.Now().Add(-time.Minute)
	for i := 0; i < 5; i++ {
		idx.IndexLine("needle")
	}
	after := time.Now().Add(time.Minute)

	results, err := idx.SearchInRange("needle", before, after, 100)
	if err != nil {
		t.Fatalf("search in range: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("expected 5 hits inside the window, got %d", len(results))
	}

	past, err := idx.SearchInRange("needle", before.Add(-time.Hour), before, 100)
	if err != nil {
		t.Fatalf("search in range: %v", err)
	}
	if len(past) != 0 {
		t.Fatalf("expected no hits before the window, got %d", len(past))
	}
}

func TestSearchIndexConcurrentUse(t *testing.T) {
	idx := openTestIndex(t)
	idx.IndexLine("seed needle")

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				if err := idx.IndexLine("needle from writer"); err != nil {
					t.Errorf("index line: %v", err)
					return
				}
				// Every connection must see the seeded table; a reader
				// landing on a fresh in-memory database would miss it.
				results, err := idx.Search("seed needle", 1)
				if err != nil {
					t.Errorf("search: %v", err)
					return
				}
				if len(results) != 1 {
					t.Error("seeded line not visible to concurrent reader")
					return
				}
			}
		}()
	}
	wg.Wait()

	if idx.Len() != 101 {
		t.Fatalf("expected 101 indexed lines, got %d", idx.Len())
	}
}

func TestSearchIndexNoMatches(t *testing.T) {
	idx := openTestIndex(t)
	idx.IndexLine("nothing interesting")
	results, err := idx.Search("absent", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no hits, got %d", len(results))
	}
}
