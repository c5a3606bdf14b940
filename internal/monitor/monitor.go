// Package monitor drives the watchlist reconciliation: query the
// catalogue, match results, persist status transitions.
package monitor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"libbymon/internal/match"
	"libbymon/internal/overdrive"
	"libbymon/internal/watchlist"
)

// DefaultDelay is the politeness throttle between successive catalogue
// calls. It is policy, not correctness; tests run with zero.
const DefaultDelay = time.Second

type Searcher interface {
	Search(ctx context.Context, libraryCode, query string) ([]overdrive.CatalogEntry, error)
}

// Result is the outcome of checking one watched book.
type Result struct {
	Book     watchlist.Book
	Previous watchlist.Status
	Current  watchlist.Status
	Entry    *overdrive.CatalogEntry
	Err      error
}

// NewlyFound reports whether this check flipped the book to found.
func (r Result) NewlyFound() bool {
	return r.Err == nil && r.Previous == watchlist.StatusNotFound && r.Current == watchlist.StatusFound
}

type Monitor struct {
	Store  watchlist.Store
	Client Searcher
	Delay  time.Duration
	Sleep  func(time.Duration)
	Now    func() time.Time
}

func New(store watchlist.Store, client Searcher) *Monitor {
	return &Monitor{
		Store:  store,
		Client: client,
		Delay:  DefaultDelay,
		Sleep:  time.Sleep,
		Now:    time.Now,
	}
}

// Check walks the watchlist in list order, one catalogue call per book. A
// search failure is captured on that book's Result and the batch
// continues; the book's stored state is left untouched so the next run
// retries it. Storage failures abort the batch: the file is the source of
// truth and further checks would be lost anyway. Each book's update is
// committed atomically before the next call, so an interrupted run keeps
// every completed result.
func (m *Monitor) Check(ctx context.Context) ([]Result, error) {
	books := m.Store.List()
	results := make([]Result, 0, len(books))

	for i, book := range books {
		if i > 0 && m.Delay > 0 {
			m.Sleep(m.Delay)
		}

		res := m.checkOne(ctx, book)
		results = append(results, res)
		if res.Err != nil {
			continue
		}

		if err := m.Store.Update(res.Book); err != nil {
			return results, fmt.Errorf("failed to update %q: %w", book.Title, err)
		}
		if err := m.Store.Save(); err != nil {
			return results, fmt.Errorf("failed to save watchlist: %w", err)
		}
	}

	return results, nil
}

func (m *Monitor) checkOne(ctx context.Context, book watchlist.Book) Result {
	res := Result{Book: book, Previous: book.Status, Current: book.Status}

	query := strings.TrimSpace(book.Title + " " + book.Author)
	entries, err := m.Client.Search(ctx, book.Library, query)
	if err != nil {
		res.Err = err
		return res
	}

	entry, found := match.FirstOwned(book, entries)
	book.RecordCheck(found, m.Now())
	if found {
		res.Entry = &entry
	}

	res.Book = book
	res.Current = book.Status
	return res
}
