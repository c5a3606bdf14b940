// Package match reconciles noisy catalogue search results against
// watchlist entries.
package match

import (
	"strings"

	"golang.org/x/text/cases"

	"libbymon/internal/overdrive"
	"libbymon/internal/watchlist"
)

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Matches reports whether a catalogue entry corresponds to a watched book.
// Direction matters: the watched title must appear inside the entry title,
// not the other way around. When the watched book names an author, the
// watched author must appear inside the entry author; an absent author
// passes vacuously. Comparison is Unicode case-folded, so non-Latin titles
// compare correctly.
func Matches(b watchlist.Book, e overdrive.CatalogEntry) bool {
	title := fold(b.Title)
	if title == "" {
		return false
	}
	if !strings.Contains(fold(e.Title), title) {
		return false
	}
	if author := fold(b.Author); author != "" {
		if !strings.Contains(fold(e.Author), author) {
			return false
		}
	}
	return true
}

// FirstOwned returns the first matching entry that is part of the lendable
// collection. A match that is merely indexed (isOwned false) does not count
// as found. No ranking beyond first-match.
func FirstOwned(b watchlist.Book, entries []overdrive.CatalogEntry) (overdrive.CatalogEntry, bool) {
	for _, e := range entries {
		if e.IsOwned && Matches(b, e) {
			return e, true
		}
	}
	return overdrive.CatalogEntry{}, false
}
