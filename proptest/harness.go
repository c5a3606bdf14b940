package proptest

import (
	"os"
	"path/filepath"
	"testing"

	"pgregory.net/rapid"

	"libbymon/internal/watchlist"
)

const (
	typicalMinBooks = 1
	typicalMaxBooks = 10
)

type Harness struct {
	T   *rapid.T
	Dir string
}

func (h *Harness) GenBook(opts ...BookGenOpt) watchlist.Book {
	return GenBook(h.T, opts...)
}

type StoreHarness struct {
	Harness
	Store watchlist.Store
}

func (h *StoreHarness) MustAddBook(opts ...BookGenOpt) watchlist.Book {
	b := h.GenBook(opts...)
	if err := h.Store.Add(b); err != nil {
		h.T.Fatalf("failed to add book: %v", err)
	}
	return b
}

func (h *StoreHarness) AddBooks(minCount, maxCount int) []watchlist.Book {
	var added []watchlist.Book
	n := rapid.IntRange(minCount, maxCount).Draw(h.T, "numBooks")
	for range n {
		b := h.GenBook()
		if err := h.Store.Add(b); err == nil {
			added = append(added, b)
		}
	}
	return added
}

func RunWithStore(t *testing.T, fn func(h *StoreHarness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
		if err := os.MkdirAll(iterDir, 0o755); err != nil {
			rt.Fatalf("failed to create iter dir: %v", err)
		}

		store, err := watchlist.NewYAMLStore(filepath.Join(iterDir, "watchlist.yaml"))
		if err != nil {
			rt.Fatalf("failed to create store: %v", err)
		}

		harness := &StoreHarness{
			Harness: Harness{
				T:   rt,
				Dir: iterDir,
			},
			Store: store,
		}

		fn(harness)
	})
}
